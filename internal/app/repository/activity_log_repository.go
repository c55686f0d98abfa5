package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/imocasa/imocasa-backend/internal/app/model"
	"github.com/imocasa/imocasa-backend/pkg/logger"
)

type ActivityLogRepository interface {
	Create(entry *model.ListingActivityLog) error
	FindByListing(listingID uuid.UUID) ([]model.ListingActivityLog, error)
}

type activityLogRepository struct {
	db *gorm.DB
}

func NewActivityLogRepository(db *gorm.DB) ActivityLogRepository {
	return &activityLogRepository{db: db}
}

func (r *activityLogRepository) Create(entry *model.ListingActivityLog) error {
	if err := r.db.Create(entry).Error; err != nil {
		// logging failures must not break the main operation; callers
		// treat this as best effort
		logger.Error("Failed to write listing activity log", err, map[string]interface{}{
			"listing_id": entry.ListingID,
			"event_type": entry.EventType,
		})
		return err
	}
	return nil
}

func (r *activityLogRepository) FindByListing(listingID uuid.UUID) ([]model.ListingActivityLog, error) {
	var entries []model.ListingActivityLog
	err := r.db.Where("listing_id = ?", listingID).Order("created_at DESC").Find(&entries).Error
	if err != nil {
		logger.Error("Failed to list activity log entries", err, map[string]interface{}{
			"listing_id": listingID,
		})
		return nil, err
	}
	return entries, nil
}
