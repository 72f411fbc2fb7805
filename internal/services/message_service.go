package services

import (
	"context"

	"github.com/google/uuid"

	dbm "gametrade/internal/models/db_models"
	rqm "gametrade/internal/models/request_models"
	"gametrade/internal/repositories"
	"gametrade/pkg/utils"
)

type MessageServiceInterface interface {
	SendMessage(ctx context.Context, senderID uuid.UUID, request rqm.SendMessageRequest) (*dbm.Message, error)
	Conversation(ctx context.Context, userID, peerID uuid.UUID, page, pageSize int) ([]dbm.Message, error)
}

type MessageService struct {
	messageRepo repositories.MessageRepository
	userRepo    repositories.UserRepository
}

func NewMessageService(messageRepo repositories.MessageRepository, userRepo repositories.UserRepository) MessageServiceInterface {
	return &MessageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

func (s *MessageService) SendMessage(ctx context.Context, senderID uuid.UUID, request rqm.SendMessageRequest) (*dbm.Message, error) {
	receiverID, err := uuid.Parse(request.ReceiverID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	receiver, err := s.userRepo.FindByID(ctx, receiverID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if receiver == nil {
		return nil, utils.ErrAccountNotFound
	}

	message := &dbm.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    request.Content,
	}
	if request.ListingID != "" {
		listingID, err := uuid.Parse(request.ListingID)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		message.ListingID = &listingID
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return message, nil
}

func (s *MessageService) Conversation(ctx context.Context, userID, peerID uuid.UUID, page, pageSize int) ([]dbm.Message, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 50
	}
	messages, err := s.messageRepo.Conversation(ctx, userID, peerID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return messages, nil
}
