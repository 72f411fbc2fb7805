package services

import (
	"context"

	"github.com/google/uuid"

	dbm "gametrade/internal/models/db_models"
	rqm "gametrade/internal/models/request_models"
	"gametrade/internal/repositories"
	"gametrade/pkg/utils"
)

type ListingServiceInterface interface {
	CreateListing(ctx context.Context, ownerID uuid.UUID, request rqm.CreateListingRequest) (*dbm.Listing, error)
	GetListing(ctx context.Context, id uuid.UUID) (*dbm.Listing, error)
	ListListings(ctx context.Context, filter rqm.ListingFilter) ([]dbm.Listing, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, requesterID uuid.UUID, requesterRole string, status string, reason string) (*dbm.Listing, error)
}

type ListingService struct {
	listingRepo repositories.ListingRepository
}

func NewListingService(listingRepo repositories.ListingRepository) ListingServiceInterface {
	return &ListingService{listingRepo: listingRepo}
}

func (l *ListingService) CreateListing(ctx context.Context, ownerID uuid.UUID, request rqm.CreateListingRequest) (*dbm.Listing, error) {
	gameID, err := uuid.Parse(request.GameID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	serviceTypeID, err := uuid.Parse(request.ServiceTypeID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	quantity := request.Quantity
	if quantity < 1 {
		quantity = 1
	}
	currency := request.Currency
	if currency == "" {
		currency = "USD"
	}

	listing := &dbm.Listing{
		Title:         request.Title,
		Description:   request.Description,
		Price:         request.Price,
		Currency:      currency,
		Quantity:      quantity,
		Status:        dbm.ListingStatusActive,
		UserID:        ownerID,
		GameID:        gameID,
		ServiceTypeID: serviceTypeID,
	}

	images := make([]dbm.ListingImage, 0, len(request.ImageURLs))
	for _, url := range request.ImageURLs {
		images = append(images, dbm.ListingImage{ImageURL: url})
	}

	if err := l.listingRepo.Create(ctx, listing, images); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return l.listingRepo.GetByID(ctx, listing.ID)
}

func (l *ListingService) GetListing(ctx context.Context, id uuid.UUID) (*dbm.Listing, error) {
	listing, err := l.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if listing == nil {
		return nil, utils.ErrListingNotFound
	}
	return listing, nil
}

func (l *ListingService) ListListings(ctx context.Context, filter rqm.ListingFilter) ([]dbm.Listing, error) {
	listings, err := l.listingRepo.List(ctx, filter)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return listings, nil
}

// UpdateStatus is the owner/moderator lifecycle override, independent of
// transactions. Owners may retire their own listings; releasing a PENDING
// reservation is moderator-only since a buyer's payment may be in flight.
// Moderator overrides are recorded in the moderation log together with the
// supplied reason.
func (l *ListingService) UpdateStatus(ctx context.Context, id uuid.UUID, requesterID uuid.UUID, requesterRole string, status string, reason string) (*dbm.Listing, error) {
	target := dbm.ListingStatus(status)
	switch target {
	case dbm.ListingStatusActive, dbm.ListingStatusInactive, dbm.ListingStatusCancelled:
	default:
		return nil, utils.ErrInvalidStatus
	}

	listing, err := l.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if listing == nil {
		return nil, utils.ErrListingNotFound
	}

	moderator := requesterRole == "moderator"
	if listing.UserID != requesterID && !moderator {
		return nil, utils.ErrNotListingOwner
	}
	if listing.Status == dbm.ListingStatusPending && !moderator {
		return nil, utils.ErrListingUnavailable
	}
	if target == dbm.ListingStatusActive && listing.Quantity == 0 {
		return nil, utils.ErrOutOfStock
	}

	var logEntry *dbm.ModerationLog
	if moderator {
		logEntry = &dbm.ModerationLog{
			ModeratorID: requesterID,
			Reason:      reason,
		}
	}

	if err := l.listingRepo.SetStatus(ctx, id, target, logEntry); err != nil {
		return nil, err
	}
	return l.listingRepo.GetByID(ctx, id)
}
