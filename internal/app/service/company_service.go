package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/imocasa/imocasa-backend/internal/app/model"
	"github.com/imocasa/imocasa-backend/internal/app/repository"
	"github.com/imocasa/imocasa-backend/pkg/logger"
)

var (
	ErrCompanyNotFound     = errors.New("compania nu a fost găsită")
	ErrClaimNotFound       = errors.New("cererea de revendicare nu a fost găsită")
	ErrClaimAlreadyHandled = errors.New("cererea de revendicare a fost deja procesată")
	ErrAlreadyHasCompany   = errors.New("contul are deja un profil de companie")
)

type CompanyProfileInput struct {
	CompanyName        string             `json:"company_name" binding:"required,max=150"`
	RegistrationNumber string             `json:"registration_number" binding:"required,max=30"`
	CompanyType        *model.CompanyType `json:"company_type"`
	Website            string             `json:"website" binding:"max=200"`
	LinkedinURL        string             `json:"linkedin_url" binding:"max=200"`
	FacebookURL        string             `json:"facebook_url" binding:"max=200"`
}

type CompanyService interface {
	CreateProfile(userID uuid.UUID, input CompanyProfileInput) (*model.CompanyProfile, error)
	GetProfile(id uint) (*model.CompanyProfile, error)
	// SubmitClaim asks to attach the caller's account to an existing
	// company profile, pending admin approval.
	SubmitClaim(userID uuid.UUID, companyID uint) (*model.ClaimRequest, error)
	ResolveClaim(claimID uint, approve bool) (*model.ClaimRequest, error)
}

type companyService struct {
	companies repository.CompanyRepository
	users     repository.UserRepository
}

func NewCompanyService(companies repository.CompanyRepository, users repository.UserRepository) CompanyService {
	return &companyService{companies: companies, users: users}
}

func (s *companyService) CreateProfile(userID uuid.UUID, input CompanyProfileInput) (*model.CompanyProfile, error) {
	if _, err := s.companies.FindProfileByUserID(userID); err == nil {
		return nil, ErrAlreadyHasCompany
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	profile := &model.CompanyProfile{
		UserID:             userID,
		CompanyName:        input.CompanyName,
		RegistrationNumber: input.RegistrationNumber,
		CompanyType:        input.CompanyType,
		Website:            input.Website,
		LinkedinURL:        input.LinkedinURL,
		FacebookURL:        input.FacebookURL,
	}
	if err := s.companies.CreateProfile(profile); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(userID)
	if err == nil {
		user.CompanyID = &profile.ID
		if err := s.users.Update(user); err != nil {
			logger.Warn("Failed to link company to user", map[string]interface{}{
				"user_id":    userID,
				"company_id": profile.ID,
			})
		}
	}

	logger.Info("Company profile created", map[string]interface{}{
		"company_id": profile.ID,
		"user_id":    userID,
	})
	return profile, nil
}

func (s *companyService) GetProfile(id uint) (*model.CompanyProfile, error) {
	profile, err := s.companies.FindProfileByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (s *companyService) SubmitClaim(userID uuid.UUID, companyID uint) (*model.ClaimRequest, error) {
	if _, err := s.companies.FindProfileByID(companyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}

	claim := &model.ClaimRequest{
		UserID:    userID,
		CompanyID: companyID,
		Status:    model.ClaimPending,
	}
	if err := s.companies.CreateClaim(claim); err != nil {
		return nil, err
	}
	return claim, nil
}

func (s *companyService) ResolveClaim(claimID uint, approve bool) (*model.ClaimRequest, error) {
	claim, err := s.companies.FindClaimByID(claimID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClaimNotFound
		}
		return nil, err
	}
	if claim.Status != model.ClaimPending {
		return nil, ErrClaimAlreadyHandled
	}

	if approve {
		claim.Status = model.ClaimApproved
		user, err := s.users.FindByID(claim.UserID)
		if err == nil {
			user.CompanyID = &claim.CompanyID
			if err := s.users.Update(user); err != nil {
				return nil, err
			}
		}
	} else {
		claim.Status = model.ClaimRejected
	}
	if err := s.companies.UpdateClaim(claim); err != nil {
		return nil, err
	}

	logger.Info("Claim resolved", map[string]interface{}{
		"claim_id": claim.ID,
		"approved": approve,
	})
	return claim, nil
}
