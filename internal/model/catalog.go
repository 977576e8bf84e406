package model

import "github.com/google/uuid"

// Seller supplies products and receives low-stock alerts
type Seller struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Email       string    `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
	PhoneNumber string    `gorm:"type:varchar(20)" json:"phone_number"`
}

type Category struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name   string    `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
}

type Brand struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name   string    `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
}
