package model

import (
	"time"

	"github.com/google/uuid"
)

type PaymentMode string

const (
	PayCash     PaymentMode = "cash"
	PayMomo     PaymentMode = "momo"
	PayCheque   PaymentMode = "cheque"
	PayTransfer PaymentMode = "transfer"
)

// Sale records a stock decrement with price snapshots taken at
// transaction time, decoupled from later product price changes.
type Sale struct {
	BaseModel
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id" validate:"uuid_required"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty" validate:"-"`

	ProductName string `gorm:"type:varchar(255)" json:"product_name"`
	BuyerName   string `gorm:"type:varchar(255)" json:"buyer_name"`

	Quantity     int   `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	ProductPrice int64 `gorm:"not null" json:"product_price"` // Snapshot of product price
	SellingPrice int64 `gorm:"not null" json:"selling_price"`
	TotalPrice   int64 `gorm:"not null" json:"total_price"` // ProductPrice * Quantity

	Date        time.Time   `gorm:"not null;index" json:"date"`
	PaymentMode PaymentMode `gorm:"type:varchar(20)" json:"payment_mode" validate:"omitempty,oneof=cash momo cheque transfer"`
}
