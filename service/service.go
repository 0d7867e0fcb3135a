// Package service holds the business rules that sit between the HTTP
// handlers and the repositories. It only checks input; everything else is
// delegated to the repositories unchanged.
package service

import (
	"context"
	"errors"

	"socialmedia/dto"
	"socialmedia/models"
	"socialmedia/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/sirupsen/logrus"
)

// ErrInvalidInput is returned when a request fails validation. The store is
// not touched in that case.
var ErrInvalidInput = errors.New("service: invalid input")

type Service struct {
	accounts repositories.AccountRepository
	messages repositories.MessageRepository
	validate *validator.Validate
}

func New(accounts repositories.AccountRepository, messages repositories.MessageRepository) *Service {
	validate := validator.New()
	if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}

	return &Service{accounts: accounts, messages: messages, validate: validate}
}

func (s *Service) CreateAccount(ctx context.Context, req dto.AccountRequest) (*models.Account, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	return s.accounts.CreateAccount(ctx, req.Username, req.Password)
}

// Login applies the same rules as CreateAccount, so an account holding a
// password shorter than four characters can never log in.
func (s *Service) Login(ctx context.Context, req dto.AccountRequest) (*models.Account, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	return s.accounts.Login(ctx, req.Username, req.Password)
}

func (s *Service) CreateMessage(ctx context.Context, req dto.MessageRequest) (*models.Message, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	return s.messages.CreateMessage(ctx, req.MessageText, req.PostedBy, req.TimePostedEpoch)
}

func (s *Service) GetAllMessages(ctx context.Context) ([]models.Message, error) {
	return s.messages.GetAllMessages(ctx)
}

func (s *Service) GetMessageByID(ctx context.Context, id int) (*models.Message, error) {
	return s.messages.GetMessageByID(ctx, id)
}

func (s *Service) DeleteMessageByID(ctx context.Context, id int) (*models.Message, error) {
	return s.messages.DeleteMessageByID(ctx, id)
}

func (s *Service) UpdateMessageByID(ctx context.Context, id int, req dto.MessageUpdateRequest) (*models.Message, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	return s.messages.UpdateMessageByID(ctx, id, req.MessageText)
}

func (s *Service) GetMessagesByUserID(ctx context.Context, postedBy int) ([]models.Message, error) {
	return s.messages.GetMessagesByUserID(ctx, postedBy)
}

func (s *Service) check(req any) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			logrus.WithFields(logrus.Fields{"field": fe.Field(), "rule": fe.Tag()}).Debug("validation failed")
		}
	}
	return ErrInvalidInput
}
