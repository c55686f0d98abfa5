package model

import (
	"time"

	"github.com/google/uuid"
)

// ImageHash is the content-address of an uploaded photo: md5 over the raw
// bytes. A hash registered to one listing blocks the same photo on any
// other listing. On update, a listing's hashes are replaced wholesale.
type ImageHash struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	HashValue   string    `gorm:"size:64;uniqueIndex;not null" json:"hash_value"`
	ListingUUID uuid.UUID `gorm:"type:uuid;index" json:"listing_uuid"`
	PhotoName   string    `gorm:"size:100" json:"photo_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (ImageHash) TableName() string {
	return "image_hashes"
}
