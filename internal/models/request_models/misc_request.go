package request_models

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
}

type CreateGameRequest struct {
	Name       string `json:"name" binding:"required,max=100"`
	Slug       string `json:"slug" binding:"required,max=100"`
	ImageURL   string `json:"image_url"`
	CategoryID string `json:"category_id" binding:"omitempty,uuid"`
}

type CreateServiceTypeRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type CreateReviewRequest struct {
	TransactionID string `json:"transaction_id" binding:"required,uuid"`
	Rating        int    `json:"rating" binding:"required,min=1,max=5"`
	Comment       string `json:"comment"`
}

type SendMessageRequest struct {
	ReceiverID string `json:"receiver_id" binding:"required,uuid"`
	ListingID  string `json:"listing_id" binding:"omitempty,uuid"`
	Content    string `json:"content" binding:"required,max=2000"`
}
