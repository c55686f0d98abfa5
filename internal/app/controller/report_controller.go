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

type ReportController struct {
	reportService service.ReportService
}

func NewReportController(reportService service.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// ReportListing files an anonymous abuse report
// POST /api/v1/listings/:id/report
func (ctrl *ReportController) ReportListing(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errors.BadRequest(c, errors.ValidationInvalidID, "Identificatorul anunțului nu este valid")
		return
	}

	var input service.ReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Datele trimise nu sunt valide")
		return
	}

	report, err := ctrl.reportService.Report(listingID, input, c.ClientIP())
	if err != nil {
		switch {
		case stderrors.Is(err, service.ErrListingNotFound):
			errors.NotFound(c, errors.ListingNotFound, "Anunțul nu a fost găsit")
		case stderrors.Is(err, service.ErrListingNotActive):
			errors.BadRequest(c, errors.ListingNotActive, "Doar anunțurile active pot fi raportate")
		case stderrors.Is(err, service.ErrReportThrottled):
			errors.RespondWithError(c, http.StatusTooManyRequests, errors.ReportThrottled, "Ați raportat deja acest anunț în ultimele 24 de ore")
		default:
			log.Error("Failed to file report", err, map[string]interface{}{
				"listing_id": listingID,
			})
			errors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Raportul a fost înregistrat",
		"report":  report,
	})
}
