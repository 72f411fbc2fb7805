package utils

import "errors"

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrListingNotFound     = errors.New("listing not found")
	ErrGameNotFound        = errors.New("game not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrCategoryExists      = errors.New("category already exists")
	ErrServiceTypeNotFound = errors.New("service type not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrListingUnavailable  = errors.New("listing is not available")
	ErrSelfPurchase        = errors.New("cannot buy your own listing")
	ErrOutOfStock          = errors.New("listing is out of stock")
	ErrNotTransactionParty = errors.New("not a party to this transaction")
	ErrNotListingOwner     = errors.New("not the owner of this listing")
	ErrInvalidStatus       = errors.New("invalid status value")
	ErrInvalidInput        = errors.New("invalid input")
	ErrTransactionFinal    = errors.New("transaction already finalized")
	ErrReviewNotAllowed    = errors.New("review not allowed for this transaction")
	ErrReviewAlreadyExists = errors.New("review already exists")
	ErrPaymentGateway      = errors.New("payment gateway error")
	ErrWebhookSignature    = errors.New("webhook signature verification failed")
	ErrDatabaseError       = errors.New("database error")
)
