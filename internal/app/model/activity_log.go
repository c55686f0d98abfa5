package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ActivityEvent string

const (
	EventCreate ActivityEvent = "create"
	EventUpdate ActivityEvent = "update"
	EventDelete ActivityEvent = "delete"
)

// ListingActivityLog records create/update/delete events on listings.
// ChangedFields names the attributes touched by an update.
type ListingActivityLog struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	ListingID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"listing_id"`
	UserID        uuid.UUID      `gorm:"type:uuid;index" json:"user_id"`
	EventType     ActivityEvent  `gorm:"type:varchar(20);not null" json:"event_type"`
	Description   string         `gorm:"type:text" json:"description"`
	ChangedFields pq.StringArray `gorm:"type:text[]" json:"changed_fields,omitempty"`
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`
}

func (ListingActivityLog) TableName() string {
	return "listing_activity_logs"
}
