package db_models

type User struct {
	BaseModel
	Username        string `gorm:"uniqueIndex;size:50"`
	Email           string `gorm:"uniqueIndex"`
	PasswordHash    string
	Role            string `gorm:"default:user"` // user | moderator
	Bio             string
	AvatarURL       string
	ReputationScore float64 `gorm:"default:0"`

	Listings []Listing `gorm:"foreignKey:UserID"`
}
