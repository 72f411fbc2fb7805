package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbm "gametrade/internal/models/db_models"
	rqm "gametrade/internal/models/request_models"
	"gametrade/pkg/utils"
)

type ListingRepository interface {
	Create(ctx context.Context, listing *dbm.Listing, images []dbm.ListingImage) error
	GetByID(ctx context.Context, id uuid.UUID) (*dbm.Listing, error)
	List(ctx context.Context, filter rqm.ListingFilter) ([]dbm.Listing, error)
	// SetStatus force-sets the lifecycle status, used by owner/moderator
	// actions independent of any transaction. A non-nil logEntry is
	// written in the same database transaction as the status change.
	SetStatus(ctx context.Context, id uuid.UUID, status dbm.ListingStatus, logEntry *dbm.ModerationLog) error
}

type listingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) Create(ctx context.Context, listing *dbm.Listing, images []dbm.ListingImage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(listing).Error; err != nil {
			return err
		}
		if len(images) == 0 {
			return nil
		}
		for i := range images {
			images[i].ListingID = listing.ID
		}
		return tx.Create(&images).Error
	})
}

func (r *listingRepository) GetByID(ctx context.Context, id uuid.UUID) (*dbm.Listing, error) {
	var listing dbm.Listing
	err := r.db.WithContext(ctx).
		Preload("Game").
		Preload("ServiceType").
		Preload("Images").
		Preload("User").
		Where("id = ?", id).
		First(&listing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &listing, nil
}

// listingCond is one WHERE fragment of the browse query.
type listingCond struct {
	expr string
	arg  interface{}
}

// listingQuery is the assembled browse query, kept separate from gorm so
// the assembly rules are testable on their own.
type listingQuery struct {
	conds  []listingCond
	order  string
	limit  int
	offset int
}

// buildListingQuery normalizes the browse filter: status defaults to
// ACTIVE, the sort key is whitelisted, page and page size are clamped.
func buildListingQuery(filter rqm.ListingFilter) listingQuery {
	status := filter.Status
	if status == "" {
		status = string(dbm.ListingStatusActive)
	}
	q := listingQuery{conds: []listingCond{{"status = ?", status}}}

	if filter.GameID != "" {
		q.conds = append(q.conds, listingCond{"game_id = ?", filter.GameID})
	}
	if filter.ServiceTypeID != "" {
		q.conds = append(q.conds, listingCond{"service_type_id = ?", filter.ServiceTypeID})
	}
	if filter.MinPrice != nil {
		q.conds = append(q.conds, listingCond{"price >= ?", *filter.MinPrice})
	}
	if filter.MaxPrice != nil {
		q.conds = append(q.conds, listingCond{"price <= ?", *filter.MaxPrice})
	}

	switch filter.Sort {
	case "price_asc":
		q.order = "price ASC"
	case "price_desc":
		q.order = "price DESC"
	default:
		q.order = "created_at DESC"
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	q.limit = pageSize
	q.offset = (page - 1) * pageSize

	return q
}

func (r *listingRepository) List(ctx context.Context, filter rqm.ListingFilter) ([]dbm.Listing, error) {
	q := r.db.WithContext(ctx).Model(&dbm.Listing{}).
		Preload("Game").
		Preload("ServiceType").
		Preload("Images")

	built := buildListingQuery(filter)
	for _, cond := range built.conds {
		q = q.Where(cond.expr, cond.arg)
	}

	var listings []dbm.Listing
	err := q.Order(built.order).
		Offset(built.offset).
		Limit(built.limit).
		Find(&listings).Error
	return listings, err
}

func (r *listingRepository) SetStatus(ctx context.Context, id uuid.UUID, status dbm.ListingStatus, logEntry *dbm.ModerationLog) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var listing dbm.Listing
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&listing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrListingNotFound
			}
			return err
		}
		if err := tx.Model(&listing).Update("status", status).Error; err != nil {
			return err
		}
		if logEntry == nil {
			return nil
		}
		logEntry.ListingID = listing.ID
		logEntry.Action = status
		return tx.Create(logEntry).Error
	})
}
