package model

import (
	"time"

	"gorm.io/gorm"

	"github.com/imocasa/imocasa-backend/pkg/util"
)

// County is the top level of the geography hierarchy. Every listing points
// at exactly one county, one of its cities and optionally one of that
// city's neighborhoods.
type County struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	Name            string    `gorm:"not null;index" json:"name"`
	Slug            string    `gorm:"uniqueIndex;size:80" json:"slug"`
	MetaTitle       string    `gorm:"size:90" json:"meta_title"`
	MetaDescription string    `gorm:"size:255" json:"meta_description"`
	Description     string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt       time.Time `json:"created_at"`

	Cities []City `gorm:"foreignKey:CountyID" json:"cities,omitempty"`
}

func (County) TableName() string {
	return "counties"
}

func (c *County) BeforeCreate(tx *gorm.DB) error {
	if c.Slug == "" {
		c.Slug = util.Slugify(c.Name)
	}
	return nil
}

type City struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	CountyID        uint      `gorm:"not null;index" json:"county_id"`
	Name            string    `gorm:"not null;index" json:"name"`
	Slug            string    `gorm:"index;size:80" json:"slug"`
	MetaTitle       string    `gorm:"size:90" json:"meta_title"`
	MetaDescription string    `gorm:"size:255" json:"meta_description"`
	Description     string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt       time.Time `json:"created_at"`

	County        *County        `gorm:"foreignKey:CountyID" json:"county,omitempty"`
	Neighborhoods []Neighborhood `gorm:"foreignKey:CityID" json:"neighborhoods,omitempty"`
}

func (City) TableName() string {
	return "cities"
}

func (c *City) BeforeCreate(tx *gorm.DB) error {
	if c.Slug == "" {
		c.Slug = util.Slugify(c.Name)
	}
	return nil
}

type Neighborhood struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	CityID          uint      `gorm:"not null;index" json:"city_id"`
	Name            string    `gorm:"not null;index" json:"name"`
	Slug            string    `gorm:"index;size:80" json:"slug"`
	MetaTitle       string    `gorm:"size:90" json:"meta_title"`
	MetaDescription string    `gorm:"size:255" json:"meta_description"`
	Description     string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt       time.Time `json:"created_at"`

	City *City `gorm:"foreignKey:CityID" json:"city,omitempty"`
}

func (Neighborhood) TableName() string {
	return "neighborhoods"
}

func (n *Neighborhood) BeforeCreate(tx *gorm.DB) error {
	if n.Slug == "" {
		n.Slug = util.Slugify(n.Name)
	}
	return nil
}
