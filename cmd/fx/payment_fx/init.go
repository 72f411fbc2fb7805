package payment_fx

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/fx"

	"gametrade/internal/gateway"
	mem "gametrade/pkg/memcache"
)

var Module = fx.Provide(
	providePaymentGateway,
	provideSeenEvents,
)

// providePaymentGateway fails fx startup when the credentials are absent; a
// marketplace that cannot reach its payment gateway must not serve traffic.
func providePaymentGateway() (gateway.PaymentGateway, error) {
	cfg := gateway.StripeConfig{
		SecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		WebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		Currency:      os.Getenv("CURRENCY"),
		Timeout:       15 * time.Second,
	}

	instance, err := gateway.NewStripeGateway(cfg)
	if err != nil {
		return nil, fmt.Errorf("payment gateway: %w", err)
	}
	return instance, nil
}

func provideSeenEvents() mem.SeenEventStore {
	return mem.NewSeenEvents()
}
