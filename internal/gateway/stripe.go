package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"

	"gametrade/pkg/utils"
)

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	Currency      string        // ISO 4217 lowercase, e.g. "usd"
	Timeout       time.Duration // bound on every remote call
}

type stripeGateway struct {
	sc  *client.API
	cfg StripeConfig
}

func NewStripeGateway(cfg StripeConfig) (PaymentGateway, error) {
	if cfg.SecretKey == "" || cfg.WebhookSecret == "" {
		return nil, fmt.Errorf("missing stripe credentials")
	}
	if cfg.Currency == "" {
		cfg.Currency = "usd"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	})

	sc := &client.API{}
	sc.Init(cfg.SecretKey, &stripe.Backends{
		API:     backend,
		Connect: backend,
		Uploads: backend,
	})

	return &stripeGateway{sc: sc, cfg: cfg}, nil
}

func (g *stripeGateway) CreatePaymentIntent(ctx context.Context, transactionID uuid.UUID, amount float64) (*PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(utils.ToMinorUnits(amount)),
		Currency: stripe.String(g.cfg.Currency),
	}
	params.Context = ctx
	params.AddMetadata("transaction_id", transactionID.String())

	pi, err := g.sc.PaymentIntents.New(params)
	if err != nil {
		log.Printf("stripe: create payment intent for transaction %s: %v", transactionID, err)
		return nil, fmt.Errorf("%w: %v", utils.ErrPaymentGateway, err)
	}

	raw, _ := json.Marshal(pi)
	return &PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		AmountMinor:  pi.Amount,
		Status:       string(pi.Status),
		Raw:          raw,
	}, nil
}

func (g *stripeGateway) CancelPaymentIntent(ctx context.Context, intentID string) error {
	params := &stripe.PaymentIntentCancelParams{}
	params.Context = ctx

	if _, err := g.sc.PaymentIntents.Cancel(intentID, params); err != nil {
		return fmt.Errorf("%w: cancel intent %s: %v", utils.ErrPaymentGateway, intentID, err)
	}
	return nil
}

func (g *stripeGateway) DecodeWebhookEvent(payload []byte, signatureHeader string) (*WebhookEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, g.cfg.WebhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrWebhookSignature, err)
	}
	return eventFromStripe(event)
}

func eventFromStripe(event stripe.Event) (*WebhookEvent, error) {
	out := &WebhookEvent{ID: event.ID, Kind: EventUnknown}

	switch event.Type {
	case "payment_intent.succeeded":
		out.Kind = EventPaymentSucceeded
	case "payment_intent.payment_failed":
		out.Kind = EventPaymentFailed
	default:
		return out, nil
	}

	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		return nil, fmt.Errorf("%w: decode %s payload: %v", utils.ErrWebhookSignature, event.Type, err)
	}
	out.PaymentIntentID = pi.ID
	return out, nil
}
