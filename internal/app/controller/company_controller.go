package controller

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/imocasa/imocasa-backend/internal/app/service"
	"github.com/imocasa/imocasa-backend/internal/errors"
	"github.com/imocasa/imocasa-backend/internal/middleware"
)

type CompanyController struct {
	companyService service.CompanyService
}

func NewCompanyController(companyService service.CompanyService) *CompanyController {
	return &CompanyController{companyService: companyService}
}

// CreateProfile registers a company profile for the caller
// POST /api/v1/companies
func (ctrl *CompanyController) CreateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		errors.Unauthorized(c, "")
		return
	}

	var input service.CompanyProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Datele trimise nu sunt valide")
		return
	}

	profile, err := ctrl.companyService.CreateProfile(userID, input)
	if err != nil {
		if stderrors.Is(err, service.ErrAlreadyHasCompany) {
			errors.Conflict(c, errors.ResourceAlreadyExists, "Contul are deja un profil de companie")
			return
		}
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"company": profile,
	})
}

// GetProfile returns a company profile
// GET /api/v1/companies/:id
func (ctrl *CompanyController) GetProfile(c *gin.Context) {
	companyID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		errors.BadRequest(c, errors.ValidationInvalidID, "Identificatorul companiei nu este valid")
		return
	}

	profile, err := ctrl.companyService.GetProfile(uint(companyID))
	if err != nil {
		if stderrors.Is(err, service.ErrCompanyNotFound) {
			errors.NotFound(c, errors.ResourceNotFound, "Compania nu a fost găsită")
			return
		}
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"company": profile,
	})
}

// SubmitClaim asks to join an existing company profile
// POST /api/v1/companies/:id/claim
func (ctrl *CompanyController) SubmitClaim(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		errors.Unauthorized(c, "")
		return
	}

	companyID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		errors.BadRequest(c, errors.ValidationInvalidID, "Identificatorul companiei nu este valid")
		return
	}

	claim, err := ctrl.companyService.SubmitClaim(userID, uint(companyID))
	if err != nil {
		if stderrors.Is(err, service.ErrCompanyNotFound) {
			errors.NotFound(c, errors.ResourceNotFound, "Compania nu a fost găsită")
			return
		}
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"claim": claim,
	})
}

type resolveClaimRequest struct {
	Approve bool `json:"approve"`
}

// ResolveClaim approves or rejects a claim (admin only)
// POST /api/v1/admin/claims/:id/resolve
func (ctrl *CompanyController) ResolveClaim(c *gin.Context) {
	claimID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		errors.BadRequest(c, errors.ValidationInvalidID, "Identificatorul cererii nu este valid")
		return
	}

	var req resolveClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Datele trimise nu sunt valide")
		return
	}

	claim, err := ctrl.companyService.ResolveClaim(uint(claimID), req.Approve)
	if err != nil {
		switch {
		case stderrors.Is(err, service.ErrClaimNotFound):
			errors.NotFound(c, errors.ResourceNotFound, "Cererea de revendicare nu a fost găsită")
		case stderrors.Is(err, service.ErrClaimAlreadyHandled):
			errors.Conflict(c, errors.ResourceConflict, "Cererea de revendicare a fost deja procesată")
		default:
			errors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"claim": claim,
	})
}
