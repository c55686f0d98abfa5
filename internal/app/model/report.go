package model

import (
	"time"

	"github.com/google/uuid"
)

type ReportStatus string

const (
	ReportPending   ReportStatus = "pending"
	ReportReviewed  ReportStatus = "reviewed"
	ReportDismissed ReportStatus = "dismissed"
)

// Report is an anonymous abuse report on an active listing. The reporter's
// IP throttles repeat reports on the same listing inside 24 hours.
type Report struct {
	ID            uint         `gorm:"primarykey" json:"id"`
	ListingID     uuid.UUID    `gorm:"type:uuid;not null;index" json:"listing_id"`
	ReporterName  string       `gorm:"not null" json:"reporter_name"`
	ReporterEmail string       `gorm:"not null" json:"reporter_email"`
	Reason        string       `gorm:"type:text;not null" json:"reason"`
	IPAddress     string       `gorm:"size:45;index" json:"-"`
	Status        ReportStatus `gorm:"type:varchar(10);default:'pending'" json:"status"`
	CreatedAt     time.Time    `json:"created_at"`

	Listing *Listing `gorm:"foreignKey:ListingID" json:"listing,omitempty"`
}

func (Report) TableName() string {
	return "reports"
}
