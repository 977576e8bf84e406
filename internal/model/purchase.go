package model

import (
	"time"

	"github.com/google/uuid"
)

// Purchase records a stock replenishment paired with an increment
type Purchase struct {
	BaseModel
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	SellerID  uuid.UUID `gorm:"type:uuid;not null;index" json:"seller_id" validate:"uuid_required"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id" validate:"uuid_required"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty" validate:"-"`

	SellerName  string `gorm:"type:varchar(255)" json:"seller_name"`
	ProductName string `gorm:"type:varchar(255)" json:"product_name"`

	Quantity   int   `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	UnitPrice  int64 `gorm:"not null" json:"unit_price" validate:"gte=0"`
	TotalPrice int64 `gorm:"not null" json:"total_price"` // UnitPrice * Quantity

	Measurement *Measurement `gorm:"embedded;embeddedPrefix:measurement_" json:"measurement,omitempty"`
	Date        time.Time    `gorm:"not null" json:"date"`
}
