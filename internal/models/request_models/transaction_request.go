package request_models

type CreateTransactionRequest struct {
	ListingID string `json:"listing_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity"`
}

type UpdateTransactionStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
