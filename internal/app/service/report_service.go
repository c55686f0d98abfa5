package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/imocasa/imocasa-backend/internal/app/model"
	"github.com/imocasa/imocasa-backend/internal/app/repository"
	"github.com/imocasa/imocasa-backend/pkg/logger"
)

var (
	ErrReportThrottled  = errors.New("ați raportat deja acest anunț în ultimele 24 de ore")
	ErrListingNotActive = errors.New("doar anunțurile active pot fi raportate")
)

const reportThrottleWindow = 24 * time.Hour

type ReportInput struct {
	ReporterName  string `json:"reporter_name" binding:"required,max=100"`
	ReporterEmail string `json:"reporter_email" binding:"required,email"`
	Reason        string `json:"reason" binding:"required"`
}

type ReportService interface {
	Report(listingID uuid.UUID, input ReportInput, ipAddress string) (*model.Report, error)
}

type reportService struct {
	reports  repository.ReportRepository
	listings repository.ListingRepository
}

func NewReportService(reports repository.ReportRepository, listings repository.ListingRepository) ReportService {
	return &reportService{reports: reports, listings: listings}
}

// Report files an abuse report. Only active listings are reportable and a
// given IP may report a listing once per 24 hours.
func (s *reportService) Report(listingID uuid.UUID, input ReportInput, ipAddress string) (*model.Report, error) {
	listing, err := s.listings.FindByID(listingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	if listing.Status != model.StatusActive {
		return nil, ErrListingNotActive
	}

	since := time.Now().Add(-reportThrottleWindow)
	throttled, err := s.reports.ExistsSince(listingID, ipAddress, since)
	if err != nil {
		return nil, err
	}
	if throttled {
		logger.Warn("Report throttled", map[string]interface{}{
			"listing_id": listingID,
			"ip":         ipAddress,
		})
		return nil, ErrReportThrottled
	}

	report := &model.Report{
		ListingID:     listingID,
		ReporterName:  input.ReporterName,
		ReporterEmail: input.ReporterEmail,
		Reason:        input.Reason,
		IPAddress:     ipAddress,
		Status:        model.ReportPending,
	}
	if err := s.reports.Create(report); err != nil {
		return nil, err
	}

	logger.Info("Listing reported", map[string]interface{}{
		"listing_id": listingID,
		"report_id":  report.ID,
	})
	return report, nil
}
