package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/imocasa/imocasa-backend/internal/app/model"
	"github.com/imocasa/imocasa-backend/pkg/logger"
)

type CompanyRepository interface {
	CreateProfile(profile *model.CompanyProfile) error
	FindProfileByID(id uint) (*model.CompanyProfile, error)
	FindProfileByUserID(userID uuid.UUID) (*model.CompanyProfile, error)
	CreateClaim(claim *model.ClaimRequest) error
	FindClaimByID(id uint) (*model.ClaimRequest, error)
	UpdateClaim(claim *model.ClaimRequest) error
}

type companyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) CreateProfile(profile *model.CompanyProfile) error {
	if err := r.db.Create(profile).Error; err != nil {
		logger.Error("Failed to create company profile", err, map[string]interface{}{
			"company_name": profile.CompanyName,
		})
		return err
	}
	return nil
}

func (r *companyRepository) FindProfileByID(id uint) (*model.CompanyProfile, error) {
	var profile model.CompanyProfile
	if err := r.db.First(&profile, id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *companyRepository) FindProfileByUserID(userID uuid.UUID) (*model.CompanyProfile, error) {
	var profile model.CompanyProfile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *companyRepository) CreateClaim(claim *model.ClaimRequest) error {
	if err := r.db.Create(claim).Error; err != nil {
		logger.Error("Failed to create claim request", err, map[string]interface{}{
			"user_id":    claim.UserID,
			"company_id": claim.CompanyID,
		})
		return err
	}
	return nil
}

func (r *companyRepository) FindClaimByID(id uint) (*model.ClaimRequest, error) {
	var claim model.ClaimRequest
	if err := r.db.Preload("Company").First(&claim, id).Error; err != nil {
		return nil, err
	}
	return &claim, nil
}

func (r *companyRepository) UpdateClaim(claim *model.ClaimRequest) error {
	if err := r.db.Save(claim).Error; err != nil {
		logger.Error("Failed to update claim request", err, map[string]interface{}{
			"claim_id": claim.ID,
		})
		return err
	}
	return nil
}
