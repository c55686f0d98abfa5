package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/imocasa/imocasa-backend/internal/app/model"
	"github.com/imocasa/imocasa-backend/pkg/logger"
)

type ReportRepository interface {
	Create(report *model.Report) error
	ExistsSince(listingID uuid.UUID, ipAddress string, since time.Time) (bool, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(report *model.Report) error {
	if err := r.db.Create(report).Error; err != nil {
		logger.Error("Failed to create report", err, map[string]interface{}{
			"listing_id": report.ListingID,
		})
		return err
	}
	return nil
}

// ExistsSince reports whether the IP already reported the listing after
// the given moment; drives the 24h throttle.
func (r *reportRepository) ExistsSince(listingID uuid.UUID, ipAddress string, since time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&model.Report{}).
		Where("listing_id = ? AND ip_address = ? AND created_at >= ?", listingID, ipAddress, since).
		Count(&count).Error
	if err != nil {
		logger.Error("Failed to check recent reports", err, map[string]interface{}{
			"listing_id": listingID,
		})
		return false, err
	}
	return count > 0, nil
}
