package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"socialmedia/dto"
	"socialmedia/models"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// SocialMediaService is what the handlers need from the service layer.
type SocialMediaService interface {
	CreateAccount(ctx context.Context, req dto.AccountRequest) (*models.Account, error)
	Login(ctx context.Context, req dto.AccountRequest) (*models.Account, error)
	CreateMessage(ctx context.Context, req dto.MessageRequest) (*models.Message, error)
	GetAllMessages(ctx context.Context) ([]models.Message, error)
	GetMessageByID(ctx context.Context, id int) (*models.Message, error)
	DeleteMessageByID(ctx context.Context, id int) (*models.Message, error)
	UpdateMessageByID(ctx context.Context, id int, req dto.MessageUpdateRequest) (*models.Message, error)
	GetMessagesByUserID(ctx context.Context, postedBy int) ([]models.Message, error)
}

// Handler serves the account and message endpoints.
type Handler struct {
	svc SocialMediaService
}

func NewHandler(svc SocialMediaService) *Handler {
	return &Handler{svc: svc}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("failed to encode response")
	}
}

// pathID reads an integer path variable. A malformed value is not a client
// error this API reports: it answers 500 with no body.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := mux.Vars(r)[name]
	id, err := strconv.Atoi(raw)
	if err != nil {
		logrus.WithFields(logrus.Fields{"param": name, "value": raw}).WithError(err).Error("unparseable path parameter")
		w.WriteHeader(http.StatusInternalServerError)
		return 0, false
	}
	return id, true
}
