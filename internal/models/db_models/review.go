package db_models

import "github.com/google/uuid"

type Review struct {
	BaseModel
	TransactionID uuid.UUID `gorm:"index"`
	ReviewerID    uuid.UUID `gorm:"index"`
	RevieweeID    uuid.UUID `gorm:"index"`
	Rating        int
	Comment       string

	Transaction Transaction `gorm:"foreignKey:TransactionID"`
	Reviewer    User        `gorm:"foreignKey:ReviewerID"`
	Reviewee    User        `gorm:"foreignKey:RevieweeID"`
}
