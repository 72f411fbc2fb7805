package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbm "gametrade/internal/models/db_models"
	"gametrade/pkg/utils"
)

// TransactionRepository owns every multi-row mutation of the purchase flow.
// Each mutating method runs inside a single database transaction and takes a
// FOR UPDATE lock on the listing row before touching inventory, so two
// concurrent buyers (or a request racing a webhook) can never both observe
// stock and both consume it.
type TransactionRepository interface {
	// CreatePending validates the purchase preconditions under lock and
	// creates the transaction row in PENDING/pending state. The listing is
	// NOT reserved here; reservation happens only after the gateway call
	// succeeds (see ReserveListing).
	CreatePending(ctx context.Context, buyerID uuid.UUID, listingID uuid.UUID, quantity int) (*dbm.Transaction, error)

	// AttachPaymentIntent stores the gateway intent id and raw snapshot on
	// the transaction row.
	AttachPaymentIntent(ctx context.Context, txnID uuid.UUID, intentID string, snapshot []byte) error

	// ReserveListing flips the listing from ACTIVE to PENDING. Fails with
	// ErrListingUnavailable if another buyer won the race while the gateway
	// call was in flight.
	ReserveListing(ctx context.Context, listingID uuid.UUID) error

	// Complete applies the terminal COMPLETED transition together with its
	// inventory effect: transaction -> COMPLETED/paid/completedAt, listing
	// quantity decremented by the transaction quantity, listing status
	// recomputed (SOLD at zero, ACTIVE otherwise). Exactly-once: an already
	// terminal transaction fails with ErrTransactionFinal and nothing is
	// re-applied.
	Complete(ctx context.Context, txnID uuid.UUID) error

	// Cancel applies the terminal CANCELLED transition with the given
	// payment status and releases the listing reservation (PENDING back to
	// ACTIVE, quantity untouched) — but only when no other non-terminal
	// transaction still references the listing, so cancelling a loser of
	// the reservation race never releases the winner's hold. Same
	// exactly-once contract as Complete.
	Cancel(ctx context.Context, txnID uuid.UUID, paymentStatus dbm.PaymentStatus) error

	GetByID(ctx context.Context, id uuid.UUID) (*dbm.Transaction, error)
	GetByPaymentIntentID(ctx context.Context, intentID string) (*dbm.Transaction, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]dbm.Transaction, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) CreatePending(ctx context.Context, buyerID uuid.UUID, listingID uuid.UUID, quantity int) (*dbm.Transaction, error) {
	var out *dbm.Transaction

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var listing dbm.Listing
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", listingID).
			First(&listing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrListingNotFound
			}
			return err
		}

		// Precondition order matters: availability, then ownership, then stock.
		if listing.Status != dbm.ListingStatusActive {
			return utils.ErrListingUnavailable
		}
		if listing.UserID == buyerID {
			return utils.ErrSelfPurchase
		}
		if listing.Quantity < quantity {
			return utils.ErrOutOfStock
		}

		txn := &dbm.Transaction{
			Amount:        listing.Price * float64(quantity),
			Quantity:      quantity,
			Currency:      listing.Currency,
			Status:        dbm.TxnStatusPending,
			PaymentStatus: dbm.PaymentStatusPending,
			BuyerID:       buyerID,
			SellerID:      listing.UserID,
			ListingID:     listing.ID,
		}
		if err := tx.Create(txn).Error; err != nil {
			return err
		}
		out = txn
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *transactionRepository) AttachPaymentIntent(ctx context.Context, txnID uuid.UUID, intentID string, snapshot []byte) error {
	updates := map[string]interface{}{
		"stripe_payment_intent_id": intentID,
	}
	if len(snapshot) > 0 {
		updates["metadata"] = snapshot
	}
	return r.db.WithContext(ctx).
		Model(&dbm.Transaction{}).
		Where("id = ?", txnID).
		Updates(updates).Error
}

func (r *transactionRepository) ReserveListing(ctx context.Context, listingID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var listing dbm.Listing
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", listingID).
			First(&listing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrListingNotFound
			}
			return err
		}
		if listing.Status != dbm.ListingStatusActive {
			return utils.ErrListingUnavailable
		}
		return tx.Model(&listing).Update("status", dbm.ListingStatusPending).Error
	})
}

func (r *transactionRepository) Complete(ctx context.Context, txnID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txn dbm.Transaction
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", txnID).
			First(&txn).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrTransactionNotFound
			}
			return err
		}
		if txn.Terminal() {
			return utils.ErrTransactionFinal
		}

		var listing dbm.Listing
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", txn.ListingID).
			First(&listing).Error; err != nil {
			return err
		}
		if listing.Quantity < txn.Quantity {
			return utils.ErrOutOfStock
		}

		now := time.Now().Unix()
		if err := tx.Model(&txn).Updates(map[string]interface{}{
			"status":         dbm.TxnStatusCompleted,
			"payment_status": dbm.PaymentStatusPaid,
			"completed_at":   now,
		}).Error; err != nil {
			return err
		}

		newQuantity := listing.Quantity - txn.Quantity
		newStatus := dbm.ListingStatusActive
		if newQuantity == 0 {
			newStatus = dbm.ListingStatusSold
		}
		return tx.Model(&listing).Updates(map[string]interface{}{
			"quantity": newQuantity,
			"status":   newStatus,
		}).Error
	})
}

func (r *transactionRepository) Cancel(ctx context.Context, txnID uuid.UUID, paymentStatus dbm.PaymentStatus) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txn dbm.Transaction
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", txnID).
			First(&txn).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrTransactionNotFound
			}
			return err
		}
		if txn.Terminal() {
			return utils.ErrTransactionFinal
		}

		if err := tx.Model(&txn).Updates(map[string]interface{}{
			"status":         dbm.TxnStatusCancelled,
			"payment_status": paymentStatus,
		}).Error; err != nil {
			return err
		}

		// Release the reservation if one is held. Quantity is untouched,
		// nothing was consumed.
		var listing dbm.Listing
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", txn.ListingID).
			First(&listing).Error; err != nil {
			return err
		}
		if listing.Status != dbm.ListingStatusPending {
			return nil
		}

		// A PENDING listing has exactly one outstanding transaction. If
		// that transaction is not the one being cancelled (this cancel is
		// compensating a purchase that never reserved), the hold stays.
		var open int64
		if err := tx.Model(&dbm.Transaction{}).
			Where("listing_id = ? AND status = ? AND id <> ?",
				txn.ListingID, dbm.TxnStatusPending, txn.ID).
			Count(&open).Error; err != nil {
			return err
		}
		if open > 0 {
			return nil
		}
		return tx.Model(&listing).Update("status", dbm.ListingStatusActive).Error
	})
}

func (r *transactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*dbm.Transaction, error) {
	var txn dbm.Transaction
	err := r.db.WithContext(ctx).
		Preload("Buyer").
		Preload("Seller").
		Preload("Listing").
		Where("id = ?", id).
		First(&txn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &txn, nil
}

func (r *transactionRepository) GetByPaymentIntentID(ctx context.Context, intentID string) (*dbm.Transaction, error) {
	var txn dbm.Transaction
	err := r.db.WithContext(ctx).
		Where("stripe_payment_intent_id = ?", intentID).
		First(&txn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &txn, nil
}

func (r *transactionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]dbm.Transaction, error) {
	var txns []dbm.Transaction
	err := r.db.WithContext(ctx).
		Preload("Buyer").
		Preload("Seller").
		Preload("Listing").
		Where("buyer_id = ? OR seller_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&txns).Error
	return txns, err
}
