package repositories

import (
	"context"
	"errors"

	"socialmedia/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) CreateMessage(ctx context.Context, text string, postedBy int, postedAtEpoch int64) (*models.Message, error) {
	message := models.Message{
		PostedBy:        postedBy,
		MessageText:     text,
		TimePostedEpoch: postedAtEpoch,
	}
	if err := r.db.WithContext(ctx).Create(&message).Error; err != nil {
		return nil, storeFailure("create_message", err, logrus.Fields{"posted_by": postedBy})
	}
	return &message, nil
}

func (r *messageRepository) GetAllMessages(ctx context.Context) ([]models.Message, error) {
	messages := []models.Message{}
	if err := r.db.WithContext(ctx).Order("message_id").Find(&messages).Error; err != nil {
		return []models.Message{}, storeFailure("get_all_messages", err, nil)
	}
	return messages, nil
}

func (r *messageRepository) GetMessageByID(ctx context.Context, id int) (*models.Message, error) {
	var message models.Message
	err := r.db.WithContext(ctx).Where("message_id = ?", id).First(&message).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storeFailure("get_message", err, logrus.Fields{"message_id": id})
	}
	return &message, nil
}

// DeleteMessageByID removes the message and returns the row as it was before
// deletion. A single DELETE ... RETURNING statement reads and removes the row,
// so of two concurrent deletes only one gets the snapshot back.
func (r *messageRepository) DeleteMessageByID(ctx context.Context, id int) (*models.Message, error) {
	var message models.Message
	result := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("message_id = ?", id).
		Delete(&message)
	if result.Error != nil {
		return nil, storeFailure("delete_message", result.Error, logrus.Fields{"message_id": id})
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &message, nil
}

// UpdateMessageByID replaces the message text and returns the updated row,
// read back in the same transaction as the write.
func (r *messageRepository) UpdateMessageByID(ctx context.Context, id int, text string) (*models.Message, error) {
	var message models.Message
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Message{}).Where("message_id = ?", id).Update("message_text", text)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("message_id = ?", id).First(&message).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storeFailure("update_message", err, logrus.Fields{"message_id": id})
	}
	return &message, nil
}

func (r *messageRepository) GetMessagesByUserID(ctx context.Context, postedBy int) ([]models.Message, error) {
	messages := []models.Message{}
	err := r.db.WithContext(ctx).
		Where("posted_by = ?", postedBy).
		Order("message_id").
		Find(&messages).Error
	if err != nil {
		return []models.Message{}, storeFailure("get_messages_by_user", err, logrus.Fields{"posted_by": postedBy})
	}
	return messages, nil
}
