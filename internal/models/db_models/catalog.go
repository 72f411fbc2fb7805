package db_models

import "github.com/google/uuid"

// Category groups games (MMO, shooter, mobile, ...).
type Category struct {
	BaseModel
	Name        string `gorm:"uniqueIndex;size:100"`
	Description string
	Games       []Game `gorm:"foreignKey:CategoryID"`
}

// Game is one axis of the listing catalog (which title the goods belong to).
type Game struct {
	BaseModel
	Name       string `gorm:"uniqueIndex;size:100"`
	Slug       string `gorm:"uniqueIndex;size:100"`
	ImageURL   string
	CategoryID *uuid.UUID `gorm:"index"`
}

// ServiceType is the other axis (accounts, items, boosting, ...).
type ServiceType struct {
	BaseModel
	Name string `gorm:"uniqueIndex;size:100"`
}
