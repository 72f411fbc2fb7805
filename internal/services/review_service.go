package services

import (
	"context"

	"github.com/google/uuid"

	dbm "gametrade/internal/models/db_models"
	rqm "gametrade/internal/models/request_models"
	"gametrade/internal/repositories"
	"gametrade/pkg/utils"
)

type ReviewServiceInterface interface {
	CreateReview(ctx context.Context, reviewerID uuid.UUID, request rqm.CreateReviewRequest) (*dbm.Review, error)
	ListForUser(ctx context.Context, revieweeID uuid.UUID, page, pageSize int) ([]dbm.Review, error)
}

type ReviewService struct {
	reviewRepo repositories.ReviewRepository
	txnRepo    repositories.TransactionRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository, txnRepo repositories.TransactionRepository) ReviewServiceInterface {
	return &ReviewService{
		reviewRepo: reviewRepo,
		txnRepo:    txnRepo,
	}
}

// CreateReview lets a party to a COMPLETED transaction rate the counterparty
// once. The reviewee's reputation score is recomputed in the same database
// transaction as the insert.
func (s *ReviewService) CreateReview(ctx context.Context, reviewerID uuid.UUID, request rqm.CreateReviewRequest) (*dbm.Review, error) {
	txnID, err := uuid.Parse(request.TransactionID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	txn, err := s.txnRepo.GetByID(ctx, txnID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if txn == nil {
		return nil, utils.ErrTransactionNotFound
	}
	if txn.BuyerID != reviewerID && txn.SellerID != reviewerID {
		return nil, utils.ErrNotTransactionParty
	}
	if txn.Status != dbm.TxnStatusCompleted {
		return nil, utils.ErrReviewNotAllowed
	}

	exists, err := s.reviewRepo.ExistsForTransaction(ctx, txnID, reviewerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if exists {
		return nil, utils.ErrReviewAlreadyExists
	}

	revieweeID := txn.SellerID
	if reviewerID == txn.SellerID {
		revieweeID = txn.BuyerID
	}

	review := &dbm.Review{
		TransactionID: txnID,
		ReviewerID:    reviewerID,
		RevieweeID:    revieweeID,
		Rating:        request.Rating,
		Comment:       request.Comment,
	}
	if err := s.reviewRepo.CreateAndScore(ctx, review); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return review, nil
}

func (s *ReviewService) ListForUser(ctx context.Context, revieweeID uuid.UUID, page, pageSize int) ([]dbm.Review, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	reviews, err := s.reviewRepo.ListByReviewee(ctx, revieweeID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return reviews, nil
}
