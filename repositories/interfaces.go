//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=../mocks/mock_repositories.go -package=mocks
package repositories

import (
	"context"

	"socialmedia/models"
)

type AccountRepository interface {
	CreateAccount(ctx context.Context, username, password string) (*models.Account, error)
	Login(ctx context.Context, username, password string) (*models.Account, error)
}

type MessageRepository interface {
	CreateMessage(ctx context.Context, text string, postedBy int, postedAtEpoch int64) (*models.Message, error)
	GetAllMessages(ctx context.Context) ([]models.Message, error)
	GetMessageByID(ctx context.Context, id int) (*models.Message, error)
	DeleteMessageByID(ctx context.Context, id int) (*models.Message, error)
	UpdateMessageByID(ctx context.Context, id int, text string) (*models.Message, error)
	GetMessagesByUserID(ctx context.Context, postedBy int) ([]models.Message, error)
}
