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
	ErrPaymentNotFound    = errors.New("plata nu a fost găsită")
	ErrPaymentNotPending  = errors.New("plata a fost deja procesată")
	ErrInvalidPromoteDays = errors.New("numărul de zile de promovare nu este valid")
)

// pricePerDayRON is the promotion rate before VAT.
const (
	pricePerDayRON = 5.0
	vatRate        = 19.0
)

type PromotionService interface {
	// StartPromotion opens a pending payment for promoting the listing.
	StartPromotion(userID, listingID uuid.UUID, days int) (*model.Payment, error)
	// ConfirmPayment marks the payment paid and applies the promotion
	// window to the listing.
	ConfirmPayment(paymentID uuid.UUID, externalPaymentID string) (*model.Payment, error)
	History(userID uuid.UUID) ([]model.PromotionHistory, error)
}

type promotionService struct {
	payments repository.PaymentRepository
	listings repository.ListingRepository
}

func NewPromotionService(payments repository.PaymentRepository, listings repository.ListingRepository) PromotionService {
	return &promotionService{payments: payments, listings: listings}
}

func (s *promotionService) StartPromotion(userID, listingID uuid.UUID, days int) (*model.Payment, error) {
	if days < 1 || days > 90 {
		return nil, ErrInvalidPromoteDays
	}

	listing, err := s.listings.FindByID(listingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	if listing.UserID != userID {
		return nil, ErrNotOwner
	}

	net := pricePerDayRON * float64(days)
	vat := net * vatRate / 100

	payment := &model.Payment{
		UserID:           userID,
		ListingID:        listingID,
		AmountWithoutVAT: net,
		VATAmount:        vat,
		AmountWithVAT:    net + vat,
		Currency:         "RON",
		VATRate:          vatRate,
		PromotedDays:     days,
		Status:           model.PaymentPending,
	}
	if err := s.payments.Create(payment); err != nil {
		return nil, err
	}

	logger.Info("Promotion payment opened", map[string]interface{}{
		"payment_id": payment.ID,
		"listing_id": listingID,
		"days":       days,
	})
	return payment, nil
}

func (s *promotionService) ConfirmPayment(paymentID uuid.UUID, externalPaymentID string) (*model.Payment, error) {
	payment, err := s.payments.FindByID(paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	if payment.Status != model.PaymentPending {
		return nil, ErrPaymentNotPending
	}

	listing, err := s.listings.FindByID(payment.ListingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}

	payment.Status = model.PaymentPaid
	if externalPaymentID != "" {
		payment.ExternalPaymentID = &externalPaymentID
	}
	if err := s.payments.Update(payment); err != nil {
		return nil, err
	}

	// extend an active window rather than restarting it
	start := time.Now()
	base := start
	if listing.IsPromoted && listing.ValabilityPromoteDate != nil && listing.ValabilityPromoteDate.After(base) {
		base = *listing.ValabilityPromoteDate
	}
	end := base.AddDate(0, 0, payment.PromotedDays)

	listing.IsPromoted = true
	listing.ValabilityPromoteDate = &end
	if err := s.listings.Update(listing); err != nil {
		return nil, err
	}

	history := &model.PromotionHistory{
		UserID:    payment.UserID,
		ListingID: payment.ListingID,
		PaymentID: &payment.ID,
		Title:     listing.Title,
		TotalDays: payment.PromotedDays,
		StartDate: start,
		EndDate:   end,
	}
	if err := s.payments.CreatePromotionHistory(history); err != nil {
		logger.Warn("Failed to record promotion history", map[string]interface{}{
			"payment_id": payment.ID,
		})
	}

	logger.Info("Promotion confirmed", map[string]interface{}{
		"payment_id": payment.ID,
		"listing_id": payment.ListingID,
		"until":      end,
	})
	return payment, nil
}

func (s *promotionService) History(userID uuid.UUID) ([]model.PromotionHistory, error) {
	return s.payments.FindPromotionHistoryByUser(userID)
}
