package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imocasa/imocasa-backend/internal/app/model"
	"github.com/imocasa/imocasa-backend/internal/app/repository"
)

func TestPromotionService_StartAndConfirm(t *testing.T) {
	env := setupListingTest(t)
	paymentRepo := repository.NewPaymentRepository(env.db)
	svc := NewPromotionService(paymentRepo, env.listings)

	listing := env.seedListing(t, "Anunț de promovat", 80000, nil, f64Ptr(50), nil)

	payment, err := svc.StartPromotion(env.user.ID, listing.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentPending, payment.Status)
	assert.InDelta(t, 35.0, payment.AmountWithoutVAT, 0.001)
	assert.InDelta(t, 41.65, payment.AmountWithVAT, 0.001)

	confirmed, err := svc.ConfirmPayment(payment.ID, "ext-123")
	require.NoError(t, err)
	assert.Equal(t, model.PaymentPaid, confirmed.Status)

	promoted, err := env.listings.FindByID(listing.ID)
	require.NoError(t, err)
	assert.True(t, promoted.IsPromoted)
	require.NotNil(t, promoted.ValabilityPromoteDate)
	assert.True(t, promoted.ValabilityPromoteDate.After(time.Now().AddDate(0, 0, 6)))

	history, err := svc.History(env.user.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 7, history[0].TotalDays)
	assert.Equal(t, listing.Title, history[0].Title)

	// double confirmation is rejected
	_, err = svc.ConfirmPayment(payment.ID, "ext-123")
	assert.ErrorIs(t, err, ErrPaymentNotPending)
}

func TestPromotionService_ExtendsActiveWindow(t *testing.T) {
	env := setupListingTest(t)
	paymentRepo := repository.NewPaymentRepository(env.db)
	svc := NewPromotionService(paymentRepo, env.listings)

	listing := env.seedListing(t, "Anunț deja promovat", 80000, nil, f64Ptr(50), nil)

	first, err := svc.StartPromotion(env.user.ID, listing.ID, 5)
	require.NoError(t, err)
	_, err = svc.ConfirmPayment(first.ID, "ext-1")
	require.NoError(t, err)

	second, err := svc.StartPromotion(env.user.ID, listing.ID, 5)
	require.NoError(t, err)
	_, err = svc.ConfirmPayment(second.ID, "ext-2")
	require.NoError(t, err)

	promoted, err := env.listings.FindByID(listing.ID)
	require.NoError(t, err)
	require.NotNil(t, promoted.ValabilityPromoteDate)
	assert.True(t, promoted.ValabilityPromoteDate.After(time.Now().AddDate(0, 0, 9)))
}

func TestPromotionService_Guards(t *testing.T) {
	env := setupListingTest(t)
	paymentRepo := repository.NewPaymentRepository(env.db)
	svc := NewPromotionService(paymentRepo, env.listings)

	listing := env.seedListing(t, "Anunțul Anei", 80000, nil, f64Ptr(50), nil)

	_, err := svc.StartPromotion(env.other.ID, listing.ID, 7)
	assert.ErrorIs(t, err, ErrNotOwner)

	_, err = svc.StartPromotion(env.user.ID, listing.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidPromoteDays)

	_, err = svc.StartPromotion(env.user.ID, uuid.New(), 7)
	assert.ErrorIs(t, err, ErrListingNotFound)

	_, err = svc.ConfirmPayment(uuid.New(), "ext-x")
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}
