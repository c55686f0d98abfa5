package model

import (
	"time"

	"gorm.io/gorm"

	"github.com/imocasa/imocasa-backend/pkg/util"
)

// CategoryGroup drives which property attributes a listing in that
// category may (and must) carry.
type CategoryGroup int16

const (
	GroupApartments  CategoryGroup = 0 // Apartamente
	GroupOffices     CategoryGroup = 1 // Birouri și Spații Comerciale
	GroupHouses      CategoryGroup = 2 // Case și Vile
	GroupLand        CategoryGroup = 3 // Terenuri
	GroupOther       CategoryGroup = 4 // Alte proprietăți
	GroupHospitality CategoryGroup = 5 // Spații turistice
)

var categoryGroupLabels = map[CategoryGroup]string{
	GroupApartments:  "Apartamente",
	GroupOffices:     "Birouri și Spații Comerciale",
	GroupHouses:      "Case și Vile",
	GroupLand:        "Terenuri",
	GroupOther:       "Alte proprietăți",
	GroupHospitality: "Spații turistice",
}

func (g CategoryGroup) Label() string {
	return categoryGroupLabels[g]
}

// Category is a tree node; Group is set on the nodes listings attach to
// and is nullable for purely structural nodes.
type Category struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	ParentID        *uint          `gorm:"index" json:"parent_id,omitempty"`
	Name            string         `gorm:"size:60;not null" json:"name"`
	ShortName       string         `gorm:"size:80" json:"short_name,omitempty"`
	Slug            string         `gorm:"uniqueIndex;size:80" json:"slug"`
	MetaTitle       string         `gorm:"size:90" json:"meta_title"`
	MetaDescription string         `gorm:"size:255" json:"meta_description"`
	Description     string         `gorm:"type:text" json:"description,omitempty"`
	IsActive        bool           `gorm:"default:true" json:"is_active"`
	Group           *CategoryGroup `gorm:"index" json:"group,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`

	Parent   *Category  `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
	Children []Category `gorm:"foreignKey:ParentID" json:"children,omitempty"`
	Tags     []Tag      `gorm:"many2many:category_tags" json:"tags,omitempty"`
}

func (Category) TableName() string {
	return "categories"
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.Slug == "" && c.Name != "" {
		c.Slug = util.Slugify(c.Name)
	}
	return nil
}

// Gated-field keys. These match the request/response JSON names so that
// validation errors point at the field the client actually sent.
const (
	FieldRooms           = "numar_camere"
	FieldBedrooms        = "number_of_bedrooms"
	FieldBathrooms       = "number_of_bathrooms"
	FieldBalconies       = "number_of_balconies"
	FieldBalconySurface  = "suprafata_balcoane"
	FieldUsableSurface   = "suprafata_utila"
	FieldBuiltSurface    = "suprafata_constructie"
	FieldLandSurface     = "suprafata_terenului"
	FieldYear            = "year_of_construction"
	FieldPartitioning    = "compartimentare"
	FieldZoning          = "zonare"
	FieldStructure       = "structura"
	FieldFloor           = "floor"
	FieldFoundation      = "foundation_type"
	FieldFloorCount      = "number_of_floors"
	FieldHasAttic        = "has_attic"
	FieldEnergyClass     = "clasa_energetica"
)

// GroupRule lists which gated fields a category group accepts and which
// of those are mandatory.
type GroupRule struct {
	Permitted []string
	Required  []string
}

// GroupRules is the full gating table. A gated field present on a listing
// whose group does not permit it is a validation error; a required field
// left empty likewise. Fields outside the gated universe are never checked
// here.
var GroupRules = map[CategoryGroup]GroupRule{
	GroupApartments: {
		Permitted: []string{
			FieldRooms, FieldBedrooms, FieldBathrooms, FieldBalconies,
			FieldBalconySurface, FieldUsableSurface, FieldBuiltSurface,
			FieldYear, FieldPartitioning, FieldStructure, FieldFloor,
			FieldEnergyClass,
		},
		Required: []string{FieldRooms, FieldUsableSurface},
	},
	GroupOffices: {
		Permitted: []string{
			FieldRooms, FieldBathrooms, FieldUsableSurface, FieldBuiltSurface,
			FieldYear, FieldStructure, FieldFloor, FieldFloorCount,
			FieldEnergyClass,
		},
		Required: []string{FieldUsableSurface},
	},
	GroupHouses: {
		Permitted: []string{
			FieldRooms, FieldBedrooms, FieldBathrooms, FieldBalconies,
			FieldBalconySurface, FieldUsableSurface, FieldBuiltSurface,
			FieldLandSurface, FieldYear, FieldStructure, FieldFoundation,
			FieldFloorCount, FieldHasAttic, FieldEnergyClass,
		},
		Required: []string{FieldRooms, FieldUsableSurface, FieldLandSurface},
	},
	GroupLand: {
		Permitted: []string{FieldZoning, FieldLandSurface},
		Required:  []string{FieldZoning, FieldLandSurface},
	},
	GroupOther: {
		Permitted: []string{
			FieldUsableSurface, FieldBuiltSurface, FieldLandSurface,
			FieldYear, FieldStructure, FieldFloorCount, FieldEnergyClass,
		},
		Required: nil,
	},
	GroupHospitality: {
		Permitted: []string{
			FieldRooms, FieldBedrooms, FieldBathrooms, FieldUsableSurface,
			FieldBuiltSurface, FieldLandSurface, FieldYear, FieldStructure,
			FieldFloor, FieldFloorCount, FieldEnergyClass,
		},
		Required: []string{FieldUsableSurface},
	},
}
