package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/imocasa/imocasa-backend/pkg/util"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type AccountType string

const (
	AccountPerson  AccountType = "person"  // Persoană Fizică
	AccountCompany AccountType = "company" // Companie
	AccountAgent   AccountType = "agent"   // Agent Imobiliar
)

type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primarykey" json:"id"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	FirstName    string         `gorm:"size:60;not null" json:"first_name"`
	LastName     string         `gorm:"size:90;not null" json:"last_name"`
	Phone        string         `gorm:"size:20" json:"phone,omitempty"`
	AccountType  AccountType    `gorm:"type:varchar(10);default:'person'" json:"account_type"`
	Role         UserRole       `gorm:"type:varchar(20);default:'user'" json:"role"`
	// UsernameHash is the short public identifier shown instead of the
	// email; also embedded in listing slugs (first 6 chars).
	UsernameHash  string         `gorm:"size:8;uniqueIndex" json:"username_hash"`
	EmailVerified bool           `gorm:"default:false" json:"email_verified"`
	ReceiveEmail  bool           `gorm:"default:false" json:"receive_email"`
	CompanyID     *uint          `gorm:"index" json:"company_id,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	Company  *CompanyProfile `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Listings []Listing       `gorm:"foreignKey:UserID" json:"listings,omitempty"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.UsernameHash == "" {
		u.UsernameHash = util.ShortHash(u.Email, 8)
	}
	return nil
}

// SlugHash returns the 6-char owner hash embedded in listing slugs.
func (u *User) SlugHash() string {
	return util.ShortHash(u.ID.String(), 6)
}
