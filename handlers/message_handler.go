package handlers

import (
	"encoding/json"
	"net/http"

	"socialmedia/dto"
	"socialmedia/models"
	"socialmedia/monitoring"
)

// CreateMessage handles POST /messages
func (h *Handler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var req dto.MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		monitoring.MessagePostFailure.WithLabelValues("invalid_json").Inc()
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	message, err := h.svc.CreateMessage(r.Context(), req)
	if err != nil {
		monitoring.MessagePostFailure.WithLabelValues(failureReason(err)).Inc()
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	monitoring.MessagesPosted.Inc()
	writeJSON(w, http.StatusOK, message)
}

// GetMessages handles GET /messages. A store failure reads as no messages.
func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.svc.GetAllMessages(r.Context())
	if err != nil || messages == nil {
		messages = []models.Message{}
	}
	writeJSON(w, http.StatusOK, messages)
}

// GetMessage handles GET /messages/{message_id}. An unknown id answers 200
// with an empty body.
func (h *Handler) GetMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "message_id")
	if !ok {
		return
	}

	message, err := h.svc.GetMessageByID(r.Context(), id)
	if err != nil {
		w.WriteHeader(http.StatusOK)
		return
	}
	writeJSON(w, http.StatusOK, message)
}

// DeleteMessage handles DELETE /messages/{message_id} and returns the
// deleted row. An unknown id answers 200 with an empty body.
func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "message_id")
	if !ok {
		return
	}

	message, err := h.svc.DeleteMessageByID(r.Context(), id)
	if err != nil {
		w.WriteHeader(http.StatusOK)
		return
	}

	monitoring.MessagesDeleted.Inc()
	writeJSON(w, http.StatusOK, message)
}

// UpdateMessage handles PATCH /messages/{message_id}
func (h *Handler) UpdateMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "message_id")
	if !ok {
		return
	}

	var req dto.MessageUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	message, err := h.svc.UpdateMessageByID(r.Context(), id, req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	monitoring.MessagesUpdated.Inc()
	writeJSON(w, http.StatusOK, message)
}
