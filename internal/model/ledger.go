package model

import (
	"time"

	"github.com/google/uuid"
)

// Expense, Credit and Debit are independent ledger entities with status
// enums and aggregate-by-status summaries. None of them touch stock.

type ExpenseStatus string

const (
	ExpenseActive   ExpenseStatus = "ACTIVE"
	ExpenseInactive ExpenseStatus = "INACTIVE"
)

type Expense struct {
	BaseModel
	UserID uuid.UUID     `gorm:"type:uuid;not null;index" json:"user_id"`
	Name   string        `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Amount int64         `gorm:"not null" json:"amount" validate:"gt=0"`
	Date   time.Time     `gorm:"not null" json:"date"`
	Status ExpenseStatus `gorm:"type:varchar(20);not null;default:'ACTIVE'" json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

type CreditStatus string

const (
	CreditPending   CreditStatus = "PENDING"
	CreditCompleted CreditStatus = "COMPLETED"
	CreditRejected  CreditStatus = "REJECTED"
)

type Credit struct {
	BaseModel
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id" validate:"uuid_required"`

	TotalAmount  int64 `gorm:"not null" json:"total_amount" validate:"gt=0"`
	DownPayment  int64 `gorm:"not null" json:"down_payment" validate:"gte=0"`
	CreditAmount int64 `gorm:"not null" json:"credit_amount" validate:"gte=0"`

	CustomerName  string `gorm:"type:varchar(255)" json:"customer_name" validate:"required"`
	CustomerPhone string `gorm:"type:varchar(50)" json:"customer_phone"`
	CustomerEmail string `gorm:"type:varchar(255)" json:"customer_email" validate:"omitempty,email"`

	PaymentDueDate time.Time    `gorm:"not null" json:"payment_due_date"`
	Status         CreditStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status" validate:"omitempty,oneof=PENDING COMPLETED REJECTED"`
}

type DebitStatus string

const (
	DebitPending DebitStatus = "PENDING"
	DebitPaid    DebitStatus = "PAID"
	DebitOverdue DebitStatus = "OVERDUE"
)

type Debit struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	BuyerName   string `gorm:"type:varchar(255);not null" json:"buyer_name" validate:"required"`
	ProductName string `gorm:"type:varchar(255)" json:"product_name"`
	Amount      int64  `gorm:"not null" json:"amount" validate:"gt=0"`

	DueDate time.Time   `gorm:"not null" json:"due_date"`
	Status  DebitStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status" validate:"omitempty,oneof=PENDING PAID OVERDUE"`
}
