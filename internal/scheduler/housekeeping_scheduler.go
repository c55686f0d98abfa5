package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/imocasa/imocasa-backend/internal/app/repository"
	"github.com/imocasa/imocasa-backend/pkg/logger"
)

const stalePaymentAge = 7 * 24 * time.Hour

// HousekeepingScheduler runs the daily maintenance pass: expired
// promotion flags are cleared and abandoned pending payments purged.
type HousekeepingScheduler struct {
	cron     *cron.Cron
	listings repository.ListingRepository
	payments repository.PaymentRepository
}

func NewHousekeepingScheduler(listings repository.ListingRepository, payments repository.PaymentRepository) *HousekeepingScheduler {
	return &HousekeepingScheduler{
		cron:     cron.New(),
		listings: listings,
		payments: payments,
	}
}

func (s *HousekeepingScheduler) Start() error {
	// daily at 03:00, off the traffic peak
	_, err := s.cron.AddFunc("0 3 * * *", s.run)
	if err != nil {
		logger.Error("Failed to register housekeeping cron job", err)
		return err
	}

	s.cron.Start()
	logger.Info("Housekeeping scheduler started (daily at 3:00 AM)", nil)
	return nil
}

func (s *HousekeepingScheduler) Stop() {
	logger.Info("Stopping housekeeping scheduler...", nil)
	s.cron.Stop()
}

func (s *HousekeepingScheduler) run() {
	logger.Info("Starting housekeeping pass", nil)

	cleared, err := s.listings.ClearExpiredPromotions(time.Now())
	if err != nil {
		logger.Error("Failed to clear expired promotions", err)
	} else {
		logger.Info("Expired promotions cleared", map[string]interface{}{
			"count": cleared,
		})
	}

	purged, err := s.payments.DeleteStalePending(time.Now().Add(-stalePaymentAge))
	if err != nil {
		logger.Error("Failed to purge stale pending payments", err)
	} else {
		logger.Info("Stale pending payments purged", map[string]interface{}{
			"count": purged,
		})
	}
}
