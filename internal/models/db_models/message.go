package db_models

import "github.com/google/uuid"

type Message struct {
	BaseModel
	SenderID   uuid.UUID  `gorm:"index"`
	ReceiverID uuid.UUID  `gorm:"index"`
	ListingID  *uuid.UUID `gorm:"index"` // nullable, messages may reference a listing
	Content    string
	ReadAt     *int64

	Sender   User     `gorm:"foreignKey:SenderID"`
	Receiver User     `gorm:"foreignKey:ReceiverID"`
	Listing  *Listing `gorm:"foreignKey:ListingID"`
}
