package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/imocasa/imocasa-backend/internal/app/model"
	"github.com/imocasa/imocasa-backend/pkg/logger"
)

type ImageHashRepository interface {
	ExistsForOtherListing(hashValue string, listingID uuid.UUID) (bool, error)
	ReplaceForListing(listingID uuid.UUID, hashes []model.ImageHash) error
	DeleteForListing(listingID uuid.UUID) error
}

type imageHashRepository struct {
	db *gorm.DB
}

func NewImageHashRepository(db *gorm.DB) ImageHashRepository {
	return &imageHashRepository{db: db}
}

// ExistsForOtherListing reports whether the hash is registered to a
// listing other than the given one. Pass uuid.Nil on create so any
// existing registration counts.
func (r *imageHashRepository) ExistsForOtherListing(hashValue string, listingID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.Model(&model.ImageHash{}).Where("hash_value = ?", hashValue)
	if listingID != uuid.Nil {
		query = query.Where("listing_uuid <> ?", listingID)
	}
	if err := query.Count(&count).Error; err != nil {
		logger.Error("Failed to check image hash existence", err, map[string]interface{}{
			"hash_value": hashValue,
		})
		return false, err
	}
	return count > 0, nil
}

// ReplaceForListing drops the listing's registered hashes and writes the
// new set in one transaction.
func (r *imageHashRepository) ReplaceForListing(listingID uuid.UUID, hashes []model.ImageHash) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("listing_uuid = ?", listingID).Delete(&model.ImageHash{}).Error; err != nil {
			logger.Error("Failed to drop image hashes for listing", err, map[string]interface{}{
				"listing_id": listingID,
			})
			return err
		}
		if len(hashes) == 0 {
			return nil
		}
		if err := tx.Create(&hashes).Error; err != nil {
			logger.Error("Failed to register image hashes for listing", err, map[string]interface{}{
				"listing_id": listingID,
				"count":      len(hashes),
			})
			return err
		}
		return nil
	})
}

func (r *imageHashRepository) DeleteForListing(listingID uuid.UUID) error {
	if err := r.db.Where("listing_uuid = ?", listingID).Delete(&model.ImageHash{}).Error; err != nil {
		logger.Error("Failed to delete image hashes for listing", err, map[string]interface{}{
			"listing_id": listingID,
		})
		return err
	}
	return nil
}
