package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "gametrade/internal/models/db_models"
	rqm "gametrade/internal/models/request_models"
	"gametrade/pkg/utils"
)

func TestListingCreate(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	repo := newFakeListingRepo()
	svc := NewListingService(repo)

	listing, err := svc.CreateListing(ctx, ownerID, rqm.CreateListingRequest{
		Title:         "Immortal account",
		Description:   "hand leveled",
		Price:         149.5,
		GameID:        uuid.New().String(),
		ServiceTypeID: uuid.New().String(),
		ImageURLs:     []string{"https://img.example/a.png"},
	})
	require.NoError(t, err)

	assert.Equal(t, dbm.ListingStatusActive, listing.Status)
	assert.Equal(t, 1, listing.Quantity, "quantity defaults to one")
	assert.Equal(t, "USD", listing.Currency)
	assert.Equal(t, ownerID, listing.UserID)
	assert.Len(t, listing.Images, 1)
}

func TestListingCreateRejectsMalformedIDs(t *testing.T) {
	ctx := context.Background()
	svc := NewListingService(newFakeListingRepo())

	_, err := svc.CreateListing(ctx, uuid.New(), rqm.CreateListingRequest{
		Title:         "broken",
		Price:         10,
		GameID:        "not-a-uuid",
		ServiceTypeID: uuid.New().String(),
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestListingUpdateStatus(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	seed := func(status dbm.ListingStatus, quantity int) (*fakeListingRepo, ListingServiceInterface, *dbm.Listing) {
		repo := newFakeListingRepo()
		listing := newListing(ownerID, 10, quantity)
		listing.Status = status
		require.NoError(t, repo.Create(ctx, listing, nil))
		return repo, NewListingService(repo), listing
	}

	t.Run("owner retires own listing", func(t *testing.T) {
		repo, svc, listing := seed(dbm.ListingStatusActive, 2)
		updated, err := svc.UpdateStatus(ctx, listing.ID, ownerID, "user", "INACTIVE", "")
		require.NoError(t, err)
		assert.Equal(t, dbm.ListingStatusInactive, updated.Status)
		assert.Empty(t, repo.modLogs, "owner actions are not moderation")
	})

	t.Run("stranger cannot touch someone else's listing", func(t *testing.T) {
		_, svc, listing := seed(dbm.ListingStatusActive, 2)
		_, err := svc.UpdateStatus(ctx, listing.ID, uuid.New(), "user", "INACTIVE", "")
		assert.ErrorIs(t, err, utils.ErrNotListingOwner)
	})

	t.Run("moderator overrides ownership and leaves an audit trail", func(t *testing.T) {
		repo, svc, listing := seed(dbm.ListingStatusActive, 2)
		moderatorID := uuid.New()
		updated, err := svc.UpdateStatus(ctx, listing.ID, moderatorID, "moderator", "CANCELLED", "scam report")
		require.NoError(t, err)
		assert.Equal(t, dbm.ListingStatusCancelled, updated.Status)

		require.Len(t, repo.modLogs, 1)
		entry := repo.modLogs[0]
		assert.Equal(t, moderatorID, entry.ModeratorID)
		assert.Equal(t, listing.ID, entry.ListingID)
		assert.Equal(t, dbm.ListingStatusCancelled, entry.Action)
		assert.Equal(t, "scam report", entry.Reason)
	})

	t.Run("owner cannot release a reservation", func(t *testing.T) {
		_, svc, listing := seed(dbm.ListingStatusPending, 2)
		_, err := svc.UpdateStatus(ctx, listing.ID, ownerID, "user", "ACTIVE", "")
		assert.ErrorIs(t, err, utils.ErrListingUnavailable)
	})

	t.Run("moderator releases a reservation", func(t *testing.T) {
		_, svc, listing := seed(dbm.ListingStatusPending, 2)
		updated, err := svc.UpdateStatus(ctx, listing.ID, uuid.New(), "moderator", "ACTIVE", "stale reservation")
		require.NoError(t, err)
		assert.Equal(t, dbm.ListingStatusActive, updated.Status)
	})

	t.Run("cannot reactivate with no stock", func(t *testing.T) {
		_, svc, listing := seed(dbm.ListingStatusInactive, 0)
		_, err := svc.UpdateStatus(ctx, listing.ID, ownerID, "user", "ACTIVE", "")
		assert.ErrorIs(t, err, utils.ErrOutOfStock)
	})

	t.Run("terminal marketplace statuses cannot be forced", func(t *testing.T) {
		_, svc, listing := seed(dbm.ListingStatusActive, 2)
		_, err := svc.UpdateStatus(ctx, listing.ID, ownerID, "user", "SOLD", "")
		assert.ErrorIs(t, err, utils.ErrInvalidStatus)
	})
}
