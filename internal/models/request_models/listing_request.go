package request_models

type CreateListingRequest struct {
	Title         string   `json:"title" binding:"required,max=200"`
	Description   string   `json:"description" binding:"required"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	Currency      string   `json:"currency"`
	Quantity      int      `json:"quantity"`
	GameID        string   `json:"game_id" binding:"required,uuid"`
	ServiceTypeID string   `json:"service_type_id" binding:"required,uuid"`
	ImageURLs     []string `json:"image_urls"`
}

type UpdateListingStatusRequest struct {
	Status string `json:"status" binding:"required"`
	// Reason lands in the moderation log when a moderator overrides.
	Reason string `json:"reason" binding:"max=500"`
}

// ListingFilter carries the query parameters of GET /listings.
type ListingFilter struct {
	GameID        string
	ServiceTypeID string
	Status        string
	MinPrice      *float64
	MaxPrice      *float64
	Sort          string // newest | price_asc | price_desc
	Page          int
	PageSize      int
}
