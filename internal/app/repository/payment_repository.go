package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/imocasa/imocasa-backend/internal/app/model"
	"github.com/imocasa/imocasa-backend/pkg/logger"
)

type PaymentRepository interface {
	Create(payment *model.Payment) error
	FindByID(id uuid.UUID) (*model.Payment, error)
	FindByUser(userID uuid.UUID) ([]model.Payment, error)
	Update(payment *model.Payment) error
	DeleteStalePending(before time.Time) (int64, error)
	CreatePromotionHistory(history *model.PromotionHistory) error
	FindPromotionHistoryByUser(userID uuid.UUID) ([]model.PromotionHistory, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(payment *model.Payment) error {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	if err := r.db.Create(payment).Error; err != nil {
		logger.Error("Failed to create payment", err, map[string]interface{}{
			"listing_id": payment.ListingID,
			"user_id":    payment.UserID,
		})
		return err
	}
	return nil
}

func (r *paymentRepository) FindByID(id uuid.UUID) (*model.Payment, error) {
	var payment model.Payment
	if err := r.db.First(&payment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) FindByUser(userID uuid.UUID) ([]model.Payment, error) {
	var payments []model.Payment
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&payments).Error
	if err != nil {
		logger.Error("Failed to list payments for user", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) Update(payment *model.Payment) error {
	if err := r.db.Save(payment).Error; err != nil {
		logger.Error("Failed to update payment", err, map[string]interface{}{
			"payment_id": payment.ID,
		})
		return err
	}
	return nil
}

// DeleteStalePending purges pending payments created before the cutoff.
// The housekeeping job runs this daily with a 7-day cutoff.
func (r *paymentRepository) DeleteStalePending(before time.Time) (int64, error) {
	result := r.db.Where("status = ? AND created_at < ?", model.PaymentPending, before).
		Delete(&model.Payment{})
	if result.Error != nil {
		logger.Error("Failed to delete stale pending payments", result.Error, nil)
		return 0, result.Error
	}

	logger.Debug("Stale pending payments deleted", map[string]interface{}{
		"count": result.RowsAffected,
	})
	return result.RowsAffected, nil
}

func (r *paymentRepository) CreatePromotionHistory(history *model.PromotionHistory) error {
	if err := r.db.Create(history).Error; err != nil {
		logger.Error("Failed to create promotion history", err, map[string]interface{}{
			"listing_id": history.ListingID,
		})
		return err
	}
	return nil
}

func (r *paymentRepository) FindPromotionHistoryByUser(userID uuid.UUID) ([]model.PromotionHistory, error) {
	var history []model.PromotionHistory
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&history).Error
	if err != nil {
		logger.Error("Failed to list promotion history", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}
	return history, nil
}
