package model

import (
	"time"

	"github.com/google/uuid"
)

type CompanyType int16

const (
	CompanyDeveloper   CompanyType = 0 // Dezvoltator / Constructor
	CompanyAgency      CompanyType = 1 // Agenție Imobiliară
	CompanyBroker      CompanyType = 2 // Broker Ipotecar
	CompanyFinancial   CompanyType = 3 // Instituție Financiară
	CompanyOther       CompanyType = 4 // Alt Tip
)

// CompanyProfile belongs to exactly one company-type user. Agents link to
// it through ClaimRequest approval.
type CompanyProfile struct {
	ID                 uint         `gorm:"primarykey" json:"id"`
	UserID             uuid.UUID    `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	RegistrationNumber string       `gorm:"uniqueIndex;not null" json:"registration_number"`
	CompanyName        string       `gorm:"not null" json:"company_name"`
	Website            string       `json:"website,omitempty"`
	LinkedinURL        string       `json:"linkedin_url,omitempty"`
	FacebookURL        string       `json:"facebook_url,omitempty"`
	CompanyType        *CompanyType `json:"company_type,omitempty"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (CompanyProfile) TableName() string {
	return "company_profiles"
}

type ClaimStatus string

const (
	ClaimPending  ClaimStatus = "pending"
	ClaimApproved ClaimStatus = "approved"
	ClaimRejected ClaimStatus = "rejected"
)

// ClaimRequest is an agent asking to be attached to a company profile.
type ClaimRequest struct {
	ID        uint        `gorm:"primarykey" json:"id"`
	UserID    uuid.UUID   `gorm:"type:uuid;not null;index" json:"user_id"`
	CompanyID uint        `gorm:"not null;index" json:"company_id"`
	Status    ClaimStatus `gorm:"type:varchar(10);default:'pending'" json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`

	User    *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Company *CompanyProfile `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}

func (ClaimRequest) TableName() string {
	return "claim_requests"
}
