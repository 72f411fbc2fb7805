package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "gametrade/internal/models/db_models"
)

type MessageRepository interface {
	Create(ctx context.Context, message *dbm.Message) error
	Conversation(ctx context.Context, userID, peerID uuid.UUID, page, pageSize int) ([]dbm.Message, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *dbm.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *messageRepository) Conversation(ctx context.Context, userID, peerID uuid.UUID, page, pageSize int) ([]dbm.Message, error) {
	var messages []dbm.Message
	err := r.db.WithContext(ctx).
		Preload("Sender").
		Preload("Receiver").
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, peerID, peerID, userID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&messages).Error
	return messages, err
}
