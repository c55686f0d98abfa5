package model

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// Payment records a promotion purchase. Actual capture happens at an
// external processor; only the bookkeeping lives here. Pending rows older
// than a week are purged by the housekeeping job.
type Payment struct {
	ID                uuid.UUID     `gorm:"type:uuid;primarykey" json:"id"`
	UserID            uuid.UUID     `gorm:"type:uuid;not null;index" json:"user_id"`
	ListingID         uuid.UUID     `gorm:"type:uuid;not null;index" json:"listing_id"`
	AmountWithoutVAT  float64       `json:"amount_without_vat"`
	VATAmount         float64       `json:"vat_amount"`
	AmountWithVAT     float64       `gorm:"not null" json:"amount_with_vat"`
	Currency          string        `gorm:"size:3;default:'RON'" json:"currency"`
	VATRate           float64       `gorm:"default:19" json:"vat_rate"`
	PromotedDays      int           `gorm:"default:0" json:"promoted_days"`
	ExternalPaymentID *string       `gorm:"uniqueIndex" json:"external_payment_id,omitempty"`
	Status            PaymentStatus `gorm:"type:varchar(10);default:'pending';index" json:"status"`
	CreatedAt         time.Time     `json:"created_at"`

	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Listing *Listing `gorm:"foreignKey:ListingID" json:"listing,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}

// PromotionHistory keeps a record of each promotion window even after the
// listing or payment goes away; Title is denormalized for that reason.
type PromotionHistory struct {
	ID        uint       `gorm:"primarykey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	ListingID uuid.UUID  `gorm:"type:uuid;not null;index" json:"listing_id"`
	PaymentID *uuid.UUID `gorm:"type:uuid" json:"payment_id,omitempty"`
	Title     string     `gorm:"not null" json:"title"`
	TotalDays int        `gorm:"not null" json:"total_days"`
	StartDate time.Time  `gorm:"not null" json:"start_date"`
	EndDate   time.Time  `gorm:"not null" json:"end_date"`
	CreatedAt time.Time  `json:"created_at"`
}

func (PromotionHistory) TableName() string {
	return "promotion_history"
}
