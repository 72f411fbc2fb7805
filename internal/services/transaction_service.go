package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"gametrade/internal/gateway"
	dbm "gametrade/internal/models/db_models"
	"gametrade/internal/models/response_models"
	"gametrade/internal/repositories"
	mem "gametrade/pkg/memcache"
	"gametrade/pkg/utils"
)

// Webhook event ids are remembered this long; Stripe redelivers within days,
// but the database terminal-state check covers anything older.
const seenEventTTL = 24 * time.Hour

type TransactionServiceInterface interface {
	CreateTransaction(ctx context.Context, buyerID uuid.UUID, listingID uuid.UUID, quantity int) (*response_models.CheckoutResponse, error)
	UpdateStatus(ctx context.Context, txnID uuid.UUID, requesterID uuid.UUID, newStatus string) (*dbm.Transaction, error)
	GetByID(ctx context.Context, txnID uuid.UUID, requesterID uuid.UUID) (*dbm.Transaction, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]dbm.Transaction, error)
	HandleWebhookEvent(ctx context.Context, event *gateway.WebhookEvent) error
}

type TransactionService struct {
	txnRepo repositories.TransactionRepository
	gw      gateway.PaymentGateway
	seen    mem.SeenEventStore
}

func NewTransactionService(
	txnRepo repositories.TransactionRepository,
	gw gateway.PaymentGateway,
	seen mem.SeenEventStore,
) TransactionServiceInterface {
	return &TransactionService{
		txnRepo: txnRepo,
		gw:      gw,
		seen:    seen,
	}
}

// CreateTransaction runs the purchase flow in its required order: the
// transaction row must exist before the gateway call (the intent carries its
// id as correlation metadata), and the gateway call must succeed before the
// listing is reserved, so a failed remote call never strands a PENDING
// listing.
func (s *TransactionService) CreateTransaction(ctx context.Context, buyerID uuid.UUID, listingID uuid.UUID, quantity int) (*response_models.CheckoutResponse, error) {
	if quantity < 1 {
		quantity = 1
	}

	txn, err := s.txnRepo.CreatePending(ctx, buyerID, listingID, quantity)
	if err != nil {
		return nil, err
	}

	intent, err := s.gw.CreatePaymentIntent(ctx, txn.ID, txn.Amount)
	if err != nil {
		// Compensation: close out the row so the buyer never holds a
		// transaction without a usable client secret.
		if cerr := s.txnRepo.Cancel(ctx, txn.ID, dbm.PaymentStatusFailed); cerr != nil {
			log.Printf("transaction %s: compensation after gateway failure: %v", txn.ID, cerr)
		}
		return nil, err
	}

	if err := s.txnRepo.AttachPaymentIntent(ctx, txn.ID, intent.ID, intent.Raw); err != nil {
		s.abortCreatedIntent(ctx, txn.ID, intent.ID)
		return nil, err
	}

	// No row lock was held across the gateway call, so another buyer may
	// have taken the listing in the meantime; the reservation re-checks
	// ACTIVE under lock and this is where the loser finds out.
	if err := s.txnRepo.ReserveListing(ctx, txn.ListingID); err != nil {
		s.abortCreatedIntent(ctx, txn.ID, intent.ID)
		return nil, err
	}

	reloaded, err := s.txnRepo.GetByID(ctx, txn.ID)
	if err != nil {
		return nil, err
	}

	return &response_models.CheckoutResponse{
		Transaction:  reloaded,
		ClientSecret: intent.ClientSecret,
	}, nil
}

func (s *TransactionService) abortCreatedIntent(ctx context.Context, txnID uuid.UUID, intentID string) {
	if err := s.gw.CancelPaymentIntent(ctx, intentID); err != nil {
		log.Printf("transaction %s: best-effort intent cancel: %v", txnID, err)
	}
	if err := s.txnRepo.Cancel(ctx, txnID, dbm.PaymentStatusFailed); err != nil {
		log.Printf("transaction %s: compensation cancel: %v", txnID, err)
	}
}

func (s *TransactionService) UpdateStatus(ctx context.Context, txnID uuid.UUID, requesterID uuid.UUID, newStatus string) (*dbm.Transaction, error) {
	txn, err := s.txnRepo.GetByID(ctx, txnID)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, utils.ErrTransactionNotFound
	}
	if txn.BuyerID != requesterID && txn.SellerID != requesterID {
		return nil, utils.ErrNotTransactionParty
	}

	switch dbm.TransactionStatus(newStatus) {
	case dbm.TxnStatusCancelled:
		if txn.Terminal() {
			return nil, utils.ErrTransactionFinal
		}
		// Best-effort compensating action: an intent already settled or
		// cancelled remotely must not block the local transition.
		if txn.StripePaymentIntentID != nil {
			if err := s.gw.CancelPaymentIntent(ctx, *txn.StripePaymentIntentID); err != nil {
				log.Printf("transaction %s: gateway cancel: %v", txn.ID, err)
			}
		}
		if err := s.txnRepo.Cancel(ctx, txnID, dbm.PaymentStatusCancelled); err != nil {
			return nil, err
		}

	case dbm.TxnStatusCompleted:
		if err := s.txnRepo.Complete(ctx, txnID); err != nil {
			return nil, err
		}

	default:
		return nil, utils.ErrInvalidStatus
	}

	return s.txnRepo.GetByID(ctx, txnID)
}

func (s *TransactionService) GetByID(ctx context.Context, txnID uuid.UUID, requesterID uuid.UUID) (*dbm.Transaction, error) {
	txn, err := s.txnRepo.GetByID(ctx, txnID)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, utils.ErrTransactionNotFound
	}
	if txn.BuyerID != requesterID && txn.SellerID != requesterID {
		return nil, utils.ErrNotTransactionParty
	}
	return txn, nil
}

func (s *TransactionService) ListForUser(ctx context.Context, userID uuid.UUID) ([]dbm.Transaction, error) {
	return s.txnRepo.ListByUser(ctx, userID)
}

// HandleWebhookEvent reconciles a verified gateway event with local state.
// The synchronous path and this one are unordered; whichever reaches a
// terminal state first wins and the other lands on the already-terminal
// check and no-ops. Errors here are for the operator log, never for the
// gateway: the HTTP boundary acknowledges receipt regardless.
func (s *TransactionService) HandleWebhookEvent(ctx context.Context, event *gateway.WebhookEvent) error {
	if event.Kind == gateway.EventUnknown {
		return nil
	}

	if event.ID != "" && s.seen.Seen(event.ID) {
		log.Printf("webhook: replayed event %s, skipping", event.ID)
		return nil
	}

	txn, err := s.txnRepo.GetByPaymentIntentID(ctx, event.PaymentIntentID)
	if err != nil {
		return err
	}
	if txn == nil {
		// Data-integrity anomaly: the gateway knows an intent we do not.
		return fmt.Errorf("webhook: no transaction for payment intent %s", event.PaymentIntentID)
	}

	switch event.Kind {
	case gateway.EventPaymentSucceeded:
		err = s.txnRepo.Complete(ctx, txn.ID)
		if errors.Is(err, utils.ErrOutOfStock) {
			// Paid but nothing left to hand over; only possible if the
			// reservation was force-released. Left PENDING for out-of-band
			// reconciliation.
			return fmt.Errorf("webhook: intent %s paid but listing %s exhausted", event.PaymentIntentID, txn.ListingID)
		}

	case gateway.EventPaymentFailed:
		err = s.txnRepo.Cancel(ctx, txn.ID, dbm.PaymentStatusFailed)
	}

	if errors.Is(err, utils.ErrTransactionFinal) {
		// Redelivery, or the synchronous path got there first.
		err = nil
	}
	if err == nil && event.ID != "" {
		s.seen.MarkSeen(event.ID, seenEventTTL)
	}
	return err
}
