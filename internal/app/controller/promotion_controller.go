package controller

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/imocasa/imocasa-backend/internal/app/service"
	"github.com/imocasa/imocasa-backend/internal/errors"
	"github.com/imocasa/imocasa-backend/internal/middleware"
)

type PromotionController struct {
	promotionService service.PromotionService
}

func NewPromotionController(promotionService service.PromotionService) *PromotionController {
	return &PromotionController{promotionService: promotionService}
}

type startPromotionRequest struct {
	Days int `json:"days" binding:"required,min=1,max=90"`
}

// StartPromotion opens a pending promotion payment
// POST /api/v1/listings/:id/promote
func (ctrl *PromotionController) StartPromotion(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		errors.Unauthorized(c, "")
		return
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errors.BadRequest(c, errors.ValidationInvalidID, "Identificatorul anunțului nu este valid")
		return
	}

	var req startPromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Datele trimise nu sunt valide")
		return
	}

	payment, err := ctrl.promotionService.StartPromotion(userID, listingID, req.Days)
	if err != nil {
		switch {
		case stderrors.Is(err, service.ErrListingNotFound):
			errors.NotFound(c, errors.ListingNotFound, "Anunțul nu a fost găsit")
		case stderrors.Is(err, service.ErrNotOwner):
			errors.RespondWithError(c, http.StatusForbidden, errors.AuthzOwnerOnly, "Doar proprietarul anunțului poate promova")
		case stderrors.Is(err, service.ErrInvalidPromoteDays):
			errors.BadRequest(c, errors.ValidationInvalidRange, "Numărul de zile de promovare nu este valid")
		default:
			errors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"payment": payment,
	})
}

type confirmPaymentRequest struct {
	ExternalPaymentID string `json:"external_payment_id"`
}

// ConfirmPayment marks the payment paid and applies the promotion window.
// Called by the payment processor callback.
// POST /api/v1/payments/:id/confirm
func (ctrl *PromotionController) ConfirmPayment(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errors.BadRequest(c, errors.ValidationInvalidID, "Identificatorul plății nu este valid")
		return
	}

	var req confirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Datele trimise nu sunt valide")
		return
	}

	payment, err := ctrl.promotionService.ConfirmPayment(paymentID, req.ExternalPaymentID)
	if err != nil {
		switch {
		case stderrors.Is(err, service.ErrPaymentNotFound):
			errors.NotFound(c, errors.ResourceNotFound, "Plata nu a fost găsită")
		case stderrors.Is(err, service.ErrPaymentNotPending):
			errors.Conflict(c, errors.ResourceConflict, "Plata a fost deja procesată")
		default:
			log.Error("Failed to confirm payment", err, map[string]interface{}{
				"payment_id": paymentID,
			})
			errors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"payment": payment,
	})
}

// PromotionHistory lists the caller's past promotions
// GET /api/v1/promotions/history
func (ctrl *PromotionController) PromotionHistory(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		errors.Unauthorized(c, "")
		return
	}

	history, err := ctrl.promotionService.History(userID)
	if err != nil {
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"history": history,
		"count":   len(history),
	})
}
