package controllers

import (
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"gametrade/internal/gateway"
	"gametrade/internal/services"
)

type WebhookController struct {
	gw                 gateway.PaymentGateway
	transactionService services.TransactionServiceInterface
}

func NewWebhookController(gw gateway.PaymentGateway, transactionService services.TransactionServiceInterface) *WebhookController {
	return &WebhookController{
		gw:                 gw,
		transactionService: transactionService,
	}
}

// HandleStripeWebhook verifies and applies an asynchronous gateway event.
// Signature verification runs over the raw request body; parsing it first
// and re-serializing would change the bytes and break verification. Once the
// signature checks out the endpoint always acknowledges with 200, even when
// local reconciliation fails, so the gateway does not redeliver forever.
func (w *WebhookController) HandleStripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.String(http.StatusBadRequest, "Webhook Error: %s", err.Error())
		return
	}

	event, err := w.gw.DecodeWebhookEvent(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		c.String(http.StatusBadRequest, "Webhook Error: %s", err.Error())
		return
	}

	if err := w.transactionService.HandleWebhookEvent(c.Request.Context(), event); err != nil {
		// Operator-facing only; surfacing an error status would trigger a
		// redelivery storm for a condition retries cannot fix.
		log.Printf("webhook: reconciliation for event %s: %v", event.ID, err)
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
