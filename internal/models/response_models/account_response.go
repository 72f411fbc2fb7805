package response_models

type ProfileResponse struct {
	ID              string  `json:"id"`
	Username        string  `json:"username"`
	Email           string  `json:"email,omitempty"`
	Bio             string  `json:"bio,omitempty"`
	AvatarURL       string  `json:"avatar_url,omitempty"`
	ReputationScore float64 `json:"reputation_score"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
