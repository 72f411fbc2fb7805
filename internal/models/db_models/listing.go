package db_models

import "github.com/google/uuid"

type ListingStatus string

const (
	ListingStatusActive    ListingStatus = "ACTIVE"
	ListingStatusPending   ListingStatus = "PENDING"
	ListingStatusSold      ListingStatus = "SOLD"
	ListingStatusInactive  ListingStatus = "INACTIVE"
	ListingStatusCancelled ListingStatus = "CANCELLED"
)

type Listing struct {
	BaseModel
	Title       string `gorm:"size:200"`
	Description string
	Price       float64
	Currency    string        `gorm:"size:3;default:USD"`
	Quantity    int           `gorm:"default:1"`
	Status      ListingStatus `gorm:"size:20;index;default:ACTIVE"`

	UserID        uuid.UUID `gorm:"index"`
	GameID        uuid.UUID `gorm:"index"`
	ServiceTypeID uuid.UUID `gorm:"index"`

	User        User        `gorm:"foreignKey:UserID"`
	Game        Game        `gorm:"foreignKey:GameID"`
	ServiceType ServiceType `gorm:"foreignKey:ServiceTypeID"`
	Images      []ListingImage
}

type ListingImage struct {
	BaseModel
	ListingID uuid.UUID `gorm:"index"`
	ImageURL  string
	ImageID   string
}

// ModerationLog is the audit trail of moderator overrides on listing
// status. One row per override, written in the same transaction as the
// status change.
type ModerationLog struct {
	BaseModel
	ModeratorID uuid.UUID     `gorm:"index"`
	ListingID   uuid.UUID     `gorm:"index"`
	Action      ListingStatus `gorm:"size:20"`
	Reason      string
}
