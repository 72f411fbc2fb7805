package response_models

import (
	dbm "gametrade/internal/models/db_models"
)

// CheckoutResponse pairs the freshly created transaction with the gateway
// client secret the buyer's payment UI needs to finish authorizing the charge.
type CheckoutResponse struct {
	Transaction  *dbm.Transaction `json:"transaction"`
	ClientSecret string           `json:"client_secret"`
}
