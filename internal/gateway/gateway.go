package gateway

import (
	"context"

	"github.com/google/uuid"
)

// PaymentIntent is the slice of the remote intent the rest of the system
// cares about. ClientSecret is opaque and handed to the buyer's client.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	AmountMinor  int64
	Status       string
	Raw          []byte
}

type EventKind string

const (
	EventPaymentSucceeded EventKind = "payment_succeeded"
	EventPaymentFailed    EventKind = "payment_failed"
	EventUnknown          EventKind = "unknown"
)

// WebhookEvent is the decoded, signature-verified gateway callback. Decoding
// happens exactly once at the HTTP boundary; everything downstream dispatches
// on Kind.
type WebhookEvent struct {
	ID              string
	Kind            EventKind
	PaymentIntentID string
}

// PaymentGateway isolates all interaction with the remote payment processor
// so the transaction state machine can be tested against a fake.
type PaymentGateway interface {
	// CreatePaymentIntent registers a charge for amount (decimal currency
	// units) with transactionID attached as correlation metadata.
	CreatePaymentIntent(ctx context.Context, transactionID uuid.UUID, amount float64) (*PaymentIntent, error)

	// CancelPaymentIntent requests remote cancellation. Callers treat a
	// failure here as best-effort: an intent already settled remotely must
	// not block the local transition.
	CancelPaymentIntent(ctx context.Context, intentID string) error

	// DecodeWebhookEvent verifies the signature over the raw, unparsed body
	// and returns the typed event. Verification must see the exact bytes the
	// gateway signed, so no re-serialized JSON.
	DecodeWebhookEvent(payload []byte, signatureHeader string) (*WebhookEvent, error)
}
