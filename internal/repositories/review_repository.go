package repositories

import (
	"context"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "gametrade/internal/models/db_models"
)

type ReviewRepository interface {
	// CreateAndScore inserts the review and recomputes the reviewee's
	// denormalized reputation score in the same database transaction.
	CreateAndScore(ctx context.Context, review *dbm.Review) error
	ExistsForTransaction(ctx context.Context, transactionID uuid.UUID, reviewerID uuid.UUID) (bool, error)
	ListByReviewee(ctx context.Context, revieweeID uuid.UUID, page, pageSize int) ([]dbm.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// reputationScore is the denormalized seller score: the mean rating,
// rounded to two decimals. Zero when the seller has no reviews yet.
func reputationScore(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	avg := float64(sum) / float64(len(ratings))
	return math.Round(avg*100) / 100
}

func (r *reviewRepository) CreateAndScore(ctx context.Context, review *dbm.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return err
		}

		var ratings []int
		if err := tx.Model(&dbm.Review{}).
			Where("reviewee_id = ?", review.RevieweeID).
			Pluck("rating", &ratings).Error; err != nil {
			return err
		}

		return tx.Model(&dbm.User{}).
			Where("id = ?", review.RevieweeID).
			Update("reputation_score", reputationScore(ratings)).Error
	})
}

func (r *reviewRepository) ExistsForTransaction(ctx context.Context, transactionID uuid.UUID, reviewerID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Review{}).
		Where("transaction_id = ? AND reviewer_id = ?", transactionID, reviewerID).
		Count(&count).Error
	return count > 0, err
}

func (r *reviewRepository) ListByReviewee(ctx context.Context, revieweeID uuid.UUID, page, pageSize int) ([]dbm.Review, error) {
	var reviews []dbm.Review
	err := r.db.WithContext(ctx).
		Preload("Reviewer").
		Where("reviewee_id = ?", revieweeID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&reviews).Error
	return reviews, err
}
