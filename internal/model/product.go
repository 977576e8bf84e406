package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"go-pos-backend/pkg/apperror"

	"github.com/google/uuid"
)

type MeasurementType string

const (
	MeasureWeight MeasurementType = "weight"
	MeasureLength MeasurementType = "length"
	MeasureVolume MeasurementType = "volume"
	MeasureSize   MeasurementType = "size"
	MeasurePieces MeasurementType = "pieces"
)

// Allowed units per measurement type
var measurementUnits = map[MeasurementType][]string{
	MeasureWeight: {"g", "kg", "lb"},
	MeasureLength: {"cm", "m", "inch"},
	MeasureVolume: {"ml", "l", "oz"},
	MeasurePieces: {"pc", "dozen", "set"},
	MeasureSize: {"EXTRA_SMALL", "SMALL", "MEDIUM", "LARGE", "EXTRA_LARGE", "XXL", "XXXL",
		"EU_36", "EU_37", "EU_38", "EU_39", "EU_40", "EU_41", "EU_42",
		"EU_43", "EU_44", "EU_45", "EU_46", "EU_47"},
}

// Measurement is a typed unit attached to a product.
// Value is required unless Type is "size".
type Measurement struct {
	Type  MeasurementType `gorm:"type:varchar(20)" json:"type"`
	Unit  string          `gorm:"type:varchar(20)" json:"unit"`
	Value float64         `json:"value"`
}

// Validate checks that the unit belongs to the set defined by the type.
func (m *Measurement) Validate() error {
	units, ok := measurementUnits[m.Type]
	if !ok {
		return apperror.InvalidMeasurement("Invalid measurement type")
	}
	for _, u := range units {
		if u == m.Unit {
			if m.Type != MeasureSize && m.Value <= 0 {
				return apperror.InvalidMeasurement("Measurement value is required")
			}
			return nil
		}
	}
	return apperror.InvalidMeasurement("Invalid unit for the selected measurement type")
}

// ImageList stores up to 5 image URLs as a JSON column
type ImageList []string

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		l = ImageList{}
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *ImageList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = ImageList{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.New("unsupported image list column type")
}

type Product struct {
	BaseModel
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	SellerID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"seller_id" validate:"uuid_required"`
	CategoryID uuid.UUID  `gorm:"type:uuid;not null;index;index:idx_products_category_price,priority:1" json:"category_id" validate:"uuid_required"`
	BrandID    *uuid.UUID `gorm:"type:uuid;index" json:"brand_id,omitempty"`

	Name        string `gorm:"type:varchar(255);not null;index" json:"name" validate:"required"`
	Description string `gorm:"type:text" json:"description"`

	// Price in minor currency units
	Price int64 `gorm:"not null;index;index:idx_products_category_price,priority:2" json:"price" validate:"gte=0"`
	Stock int   `gorm:"not null;default:0" json:"stock" validate:"gte=0"`

	Measurement *Measurement `gorm:"embedded;embeddedPrefix:measurement_" json:"measurement,omitempty"`
	Images      ImageList    `gorm:"type:text" json:"images" validate:"max=5"`

	// Relations
	Seller   *Seller   `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Brand    *Brand    `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
}

func (Product) TableName() string { return "products" }
