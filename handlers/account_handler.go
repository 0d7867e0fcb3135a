package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"socialmedia/dto"
	"socialmedia/monitoring"
	"socialmedia/repositories"
	"socialmedia/service"
)

// Register handles POST /register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.AccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		monitoring.RegisterFailure.WithLabelValues("invalid_json").Inc()
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	account, err := h.svc.CreateAccount(r.Context(), req)
	if err != nil {
		monitoring.RegisterFailure.WithLabelValues(failureReason(err)).Inc()
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	monitoring.RegisterSuccess.Inc()
	writeJSON(w, http.StatusOK, account)
}

// Login handles POST /login. Credentials are checked on every call, no
// session is created.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.AccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		monitoring.LoginFailure.WithLabelValues("invalid_json").Inc()
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	account, err := h.svc.Login(r.Context(), req)
	if err != nil {
		monitoring.LoginFailure.WithLabelValues(failureReason(err)).Inc()
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	monitoring.LoginSuccess.Inc()
	writeJSON(w, http.StatusOK, account)
}

// GetMessagesByAccount handles GET /accounts/{account_id}/messages
func (h *Handler) GetMessagesByAccount(w http.ResponseWriter, r *http.Request) {
	accountID, ok := pathID(w, r, "account_id")
	if !ok {
		return
	}

	messages, err := h.svc.GetMessagesByUserID(r.Context(), accountID)
	if err != nil {
		w.WriteHeader(http.StatusOK)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, repositories.ErrNotFound):
		return "not_found"
	case errors.Is(err, repositories.ErrStore):
		return "store_error"
	default:
		return "unknown"
	}
}
