package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gametrade/pkg/utils"
)

const testWebhookSecret = "whsec_test_secret"

func newTestGateway(t *testing.T) PaymentGateway {
	t.Helper()
	gw, err := NewStripeGateway(StripeConfig{
		SecretKey:     "sk_test_123",
		WebhookSecret: testWebhookSecret,
	})
	require.NoError(t, err)
	return gw
}

// signPayload builds a Stripe-Signature header the way Stripe does: HMAC
// SHA-256 over "<timestamp>.<raw body>" with the webhook secret.
func signPayload(payload []byte, secret string, at time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", at.Unix(), payload)
	return fmt.Sprintf("t=%d,v1=%s", at.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func eventJSON(eventType string) []byte {
	return []byte(fmt.Sprintf(
		`{"id":"evt_123","object":"event","type":"%s","data":{"object":{"id":"pi_123","object":"payment_intent"}}}`,
		eventType))
}

func TestDecodeWebhookEvent(t *testing.T) {
	gw := newTestGateway(t)

	t.Run("payment succeeded", func(t *testing.T) {
		payload := eventJSON("payment_intent.succeeded")
		event, err := gw.DecodeWebhookEvent(payload, signPayload(payload, testWebhookSecret, time.Now()))
		require.NoError(t, err)

		assert.Equal(t, "evt_123", event.ID)
		assert.Equal(t, EventPaymentSucceeded, event.Kind)
		assert.Equal(t, "pi_123", event.PaymentIntentID)
	})

	t.Run("payment failed", func(t *testing.T) {
		payload := eventJSON("payment_intent.payment_failed")
		event, err := gw.DecodeWebhookEvent(payload, signPayload(payload, testWebhookSecret, time.Now()))
		require.NoError(t, err)
		assert.Equal(t, EventPaymentFailed, event.Kind)
	})

	t.Run("unrecognized event types map to unknown", func(t *testing.T) {
		payload := eventJSON("charge.refunded")
		event, err := gw.DecodeWebhookEvent(payload, signPayload(payload, testWebhookSecret, time.Now()))
		require.NoError(t, err)
		assert.Equal(t, EventUnknown, event.Kind)
		assert.Empty(t, event.PaymentIntentID)
	})

	t.Run("wrong secret fails verification", func(t *testing.T) {
		payload := eventJSON("payment_intent.succeeded")
		_, err := gw.DecodeWebhookEvent(payload, signPayload(payload, "whsec_other", time.Now()))
		assert.ErrorIs(t, err, utils.ErrWebhookSignature)
	})

	t.Run("tampered body fails verification", func(t *testing.T) {
		payload := eventJSON("payment_intent.succeeded")
		header := signPayload(payload, testWebhookSecret, time.Now())
		tampered := eventJSON("payment_intent.payment_failed")
		_, err := gw.DecodeWebhookEvent(tampered, header)
		assert.ErrorIs(t, err, utils.ErrWebhookSignature)
	})

	t.Run("stale timestamp fails verification", func(t *testing.T) {
		payload := eventJSON("payment_intent.succeeded")
		header := signPayload(payload, testWebhookSecret, time.Now().Add(-time.Hour))
		_, err := gw.DecodeWebhookEvent(payload, header)
		assert.ErrorIs(t, err, utils.ErrWebhookSignature)
	})

	t.Run("garbage header fails verification", func(t *testing.T) {
		payload := eventJSON("payment_intent.succeeded")
		_, err := gw.DecodeWebhookEvent(payload, "not-a-signature")
		assert.ErrorIs(t, err, utils.ErrWebhookSignature)
	})
}

func TestNewStripeGatewayValidation(t *testing.T) {
	_, err := NewStripeGateway(StripeConfig{})
	assert.Error(t, err)

	_, err = NewStripeGateway(StripeConfig{SecretKey: "sk_test_123"})
	assert.Error(t, err, "webhook secret is required")
}
