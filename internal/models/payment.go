package models

import "time"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

const DefaultCurrency = "USD"

type Payment struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	UserID        uint          `json:"user_id" gorm:"not null;index"`
	Amount        float64       `json:"amount" gorm:"not null"`
	Currency      string        `json:"currency" gorm:"not null;size:3;default:USD"`
	Status        PaymentStatus `json:"status" gorm:"not null;size:20"`
	TransactionID string        `json:"transaction_id" gorm:"uniqueIndex;not null;size:64"`
	CreatedAt     time.Time     `json:"created_at"`
}

func (Payment) TableName() string {
	return "payments"
}
