package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TransactionStatus string

const (
	TxnStatusPending   TransactionStatus = "PENDING"
	TxnStatusCompleted TransactionStatus = "COMPLETED"
	TxnStatusCancelled TransactionStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusCancelled PaymentStatus = "cancelled"
	PaymentStatusFailed    PaymentStatus = "failed"
)

type Transaction struct {
	BaseModel
	Amount   float64 // listing price x quantity, frozen at creation
	Quantity int     `gorm:"default:1"`
	Currency string  `gorm:"size:3;default:USD"`

	Status        TransactionStatus `gorm:"size:20;index;default:PENDING"`
	PaymentStatus PaymentStatus     `gorm:"size:20;default:pending"`

	BuyerID   uuid.UUID `gorm:"index"`
	SellerID  uuid.UUID `gorm:"index"`
	ListingID uuid.UUID `gorm:"index"`

	// Gateway correlation. Nullable until the intent create call returns.
	StripePaymentIntentID *string `gorm:"uniqueIndex"`

	// Unix seconds, set exactly once on the COMPLETED transition.
	CompletedAt *int64

	// Raw intent snapshot for traceability.
	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Buyer   User    `gorm:"foreignKey:BuyerID"`
	Seller  User    `gorm:"foreignKey:SellerID"`
	Listing Listing `gorm:"foreignKey:ListingID"`
}

// Terminal reports whether the transaction reached a final state. Terminal
// transactions never transition again.
func (t *Transaction) Terminal() bool {
	return t.Status == TxnStatusCompleted || t.Status == TxnStatusCancelled
}
