package model

import (
	"time"

	"github.com/google/uuid"
)

type ProformaStatus string

const (
	ProformaDraft     ProformaStatus = "draft"
	ProformaSent      ProformaStatus = "sent"
	ProformaPaid      ProformaStatus = "paid"
	ProformaCancelled ProformaStatus = "cancelled"
)

// BillInfo is a point-in-time snapshot of a billing party
type BillInfo struct {
	Name          string `gorm:"type:varchar(255)" json:"name" validate:"required"`
	CompanyName   string `gorm:"type:varchar(255)" json:"company_name" validate:"required"`
	StreetAddress string `gorm:"type:varchar(255)" json:"street_address" validate:"required"`
	CityStateZip  string `gorm:"type:varchar(255)" json:"city_state_zip" validate:"required"`
	Phone         string `gorm:"type:varchar(50)" json:"phone" validate:"required"`
}

type ProformaTerms struct {
	PaymentDays       int `gorm:"not null;default:30" json:"payment_days"`
	LateFeePercentage int `gorm:"not null;default:5" json:"late_fee_percentage"`
}

// ProformaTotals in minor currency units
type ProformaTotals struct {
	Subtotal int64 `gorm:"not null" json:"subtotal"`
	SalesTax int64 `gorm:"not null" json:"sales_tax"`
	Other    int64 `gorm:"not null;default:0" json:"other"`
	Total    int64 `gorm:"not null" json:"total"`
}

// ProformaItem reserves Quantity against the referenced product's stock
// for as long as it belongs to an invoice.
type ProformaItem struct {
	BaseModel
	ProformaID uuid.UUID `gorm:"type:uuid;not null;index" json:"proforma_id"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id" validate:"uuid_required"`
	Product    *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty" validate:"-"`

	Description string `gorm:"type:varchar(255);not null" json:"description" validate:"required"`
	Quantity    int    `gorm:"not null" json:"quantity" validate:"required,gte=1"`
	Price       int64  `gorm:"not null" json:"price" validate:"gte=0"`
	Total       int64  `gorm:"not null" json:"total"` // Price * Quantity
}

type Proforma struct {
	BaseModel
	BillFrom BillInfo `gorm:"embedded;embeddedPrefix:bill_from_" json:"bill_from"`
	BillTo   BillInfo `gorm:"embedded;embeddedPrefix:bill_to_" json:"bill_to"`

	Date    time.Time `gorm:"not null" json:"date"`
	DueDate time.Time `gorm:"not null" json:"due_date"` // Date + PaymentDays days

	// Immutable once assigned
	InvoiceNumber string `gorm:"type:varchar(50);uniqueIndex;not null" json:"invoice_number"`

	Terms  ProformaTerms  `gorm:"embedded;embeddedPrefix:terms_" json:"terms"`
	Totals ProformaTotals `gorm:"embedded;embeddedPrefix:totals_" json:"totals"`

	Status ProformaStatus `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`

	Items []ProformaItem `gorm:"foreignKey:ProformaID" json:"items"`
}
