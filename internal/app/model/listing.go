package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListingStatus int16

const (
	StatusInactive ListingStatus = 0 // awaiting moderation
	StatusActive   ListingStatus = 1
	StatusRejected ListingStatus = 2
)

type Currency int16

const (
	CurrencyLei Currency = 0
	CurrencyEUR Currency = 1
)

var currencyLabels = map[Currency]string{
	CurrencyLei: "Lei",
	CurrencyEUR: "EUR",
}

func (c Currency) Label() string {
	return currencyLabels[c]
}

// Listing is a property advert. The nullable property attributes are
// gated by the category group (see GroupRules); absent means the pointer
// is nil, which is distinct from an explicit zero.
type Listing struct {
	ID          uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	Title       string    `gorm:"size:200;not null;index" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Price       uint      `gorm:"not null" json:"price"`
	Currency    Currency  `gorm:"default:1" json:"currency"`
	Negotiable  bool      `gorm:"default:false" json:"negociabil"`
	IsOwner     bool      `gorm:"default:false" json:"is_owner"`

	Status         ListingStatus `gorm:"default:0;index" json:"status"`
	IsActiveByUser bool          `gorm:"default:true" json:"is_active_by_user"`

	UserID         uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CountyID       uint      `gorm:"not null;index" json:"county_id"`
	CityID         uint      `gorm:"not null;index" json:"city_id"`
	NeighborhoodID *uint     `gorm:"index" json:"neighborhood_id,omitempty"`
	CategoryID     uint      `gorm:"not null;index" json:"category_id"`

	// Up to nine photos plus a thumbnail, stored as media URLs.
	Photo1    string `gorm:"size:500" json:"photo1,omitempty"`
	Photo2    string `gorm:"size:500" json:"photo2,omitempty"`
	Photo3    string `gorm:"size:500" json:"photo3,omitempty"`
	Photo4    string `gorm:"size:500" json:"photo4,omitempty"`
	Photo5    string `gorm:"size:500" json:"photo5,omitempty"`
	Photo6    string `gorm:"size:500" json:"photo6,omitempty"`
	Photo7    string `gorm:"size:500" json:"photo7,omitempty"`
	Photo8    string `gorm:"size:500" json:"photo8,omitempty"`
	Photo9    string `gorm:"size:500" json:"photo9,omitempty"`
	Thumbnail string `gorm:"size:500" json:"thumbnail,omitempty"`
	VideoURL  string `gorm:"size:500" json:"video_url,omitempty"`

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	IsPromoted           bool       `gorm:"default:false;index" json:"is_promoted"`
	ValabilityPromoteDate *time.Time `json:"valability_promote_date,omitempty"`
	ValabilityEndDate    *time.Time `json:"valability_end_date,omitempty"`

	ViewsCount int64 `gorm:"default:0" json:"views_count"`
	LikeCount  int   `gorm:"default:0" json:"like_count"`

	// Property attributes, category-group gated.
	Rooms            *int     `gorm:"index" json:"numar_camere,omitempty"`
	Bedrooms         *int     `json:"number_of_bedrooms,omitempty"`
	Bathrooms        *int     `json:"number_of_bathrooms,omitempty"`
	Balconies        *int     `json:"number_of_balconies,omitempty"`
	BalconySurface   *float64 `json:"suprafata_balcoane,omitempty"`
	UsableSurface    *float64 `json:"suprafata_utila,omitempty"`
	BuiltSurface     *float64 `json:"suprafata_constructie,omitempty"`
	LandSurface      *float64 `json:"suprafata_terenului,omitempty"`
	ConstructionYear *int     `json:"year_of_construction,omitempty"`
	Partitioning     *int16   `gorm:"index" json:"compartimentare,omitempty"`
	Zoning           *int16   `gorm:"index" json:"zonare,omitempty"`
	Structure        *int16   `gorm:"index" json:"structura,omitempty"`
	Floor            *int16   `gorm:"index" json:"floor,omitempty"`
	FoundationType   *int16   `json:"foundation_type,omitempty"`
	FloorCount       *int     `json:"number_of_floors,omitempty"`
	HasAttic         *bool    `json:"has_attic,omitempty"`
	EnergyClass      *int16   `json:"clasa_energetica,omitempty"`

	// SEO, synthesized by the service on create/update.
	Slug            string `gorm:"uniqueIndex;size:160" json:"slug"`
	MetaTitle       string `gorm:"size:140" json:"meta_title"`
	MetaDescription string `gorm:"size:255" json:"meta_description"`

	CreatedAt time.Time      `json:"created_date"`
	UpdatedAt time.Time      `json:"updated_date"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User         *User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	County       *County       `gorm:"foreignKey:CountyID" json:"county,omitempty"`
	City         *City         `gorm:"foreignKey:CityID" json:"city,omitempty"`
	Neighborhood *Neighborhood `gorm:"foreignKey:NeighborhoodID" json:"neighborhood,omitempty"`
	Category     *Category     `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Tags         []Tag         `gorm:"many2many:listing_tags" json:"tags,omitempty"`
}

func (Listing) TableName() string {
	return "listings"
}

func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.ValabilityEndDate == nil {
		end := time.Now().AddDate(0, 0, 30).Truncate(24 * time.Hour)
		l.ValabilityEndDate = &end
	}
	return nil
}

// Photos returns the non-empty photo URLs in slot order.
func (l *Listing) Photos() []string {
	all := []string{
		l.Photo1, l.Photo2, l.Photo3, l.Photo4, l.Photo5,
		l.Photo6, l.Photo7, l.Photo8, l.Photo9,
	}
	photos := make([]string, 0, len(all))
	for _, p := range all {
		if p != "" {
			photos = append(photos, p)
		}
	}
	return photos
}

// SetPhoto assigns a URL to a 1-based photo slot.
func (l *Listing) SetPhoto(slot int, url string) {
	switch slot {
	case 1:
		l.Photo1 = url
	case 2:
		l.Photo2 = url
	case 3:
		l.Photo3 = url
	case 4:
		l.Photo4 = url
	case 5:
		l.Photo5 = url
	case 6:
		l.Photo6 = url
	case 7:
		l.Photo7 = url
	case 8:
		l.Photo8 = url
	case 9:
		l.Photo9 = url
	}
}

// Like marks a listing as saved by a user; one row per (user, listing).
type Like struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_listing" json:"user_id"`
	ListingID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_listing" json:"listing_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Like) TableName() string {
	return "likes"
}
