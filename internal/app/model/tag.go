package model

import (
	"time"

	"gorm.io/gorm"

	"github.com/imocasa/imocasa-backend/pkg/util"
)

type TagStatus int16

const (
	TagDisapproved TagStatus = 0
	TagActive      TagStatus = 1
	TagPending     TagStatus = 2
)

// Tag is a feature keyword ("Centrală proprie", "Parcare"...). New tags
// start pending until approved; only active tags surface publicly.
type Tag struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	Name            string    `gorm:"size:30;uniqueIndex;not null" json:"name"`
	IconName        string    `gorm:"size:50" json:"icon_name,omitempty"`
	Slug            string    `gorm:"uniqueIndex;size:80" json:"slug"`
	Status          TagStatus `gorm:"default:2;index" json:"status"`
	MetaTitle       string    `gorm:"size:90" json:"meta_title"`
	MetaDescription string    `gorm:"size:255" json:"meta_description"`
	Description     string    `gorm:"size:255" json:"description,omitempty"`
	CreatedAt       time.Time `json:"created_at"`

	Categories []Category `gorm:"many2many:category_tags" json:"categories,omitempty"`
}

func (Tag) TableName() string {
	return "tags"
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.Slug == "" {
		t.Slug = util.Slugify(t.Name)
	}
	return nil
}
