package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imocasa/imocasa-backend/internal/app/model"
	"github.com/imocasa/imocasa-backend/internal/app/repository"
)

func TestReportService_Report(t *testing.T) {
	env := setupListingTest(t)
	reportRepo := repository.NewReportRepository(env.db)
	svc := NewReportService(reportRepo, env.listings)

	listing := env.seedListing(t, "Anunț suspect", 50000, nil, f64Ptr(40), nil)

	input := ReportInput{
		ReporterName:  "Maria",
		ReporterEmail: "maria@example.com",
		Reason:        "Preț nerealist, posibil înșelătorie.",
	}

	report, err := svc.Report(listing.ID, input, "203.0.113.7")
	require.NoError(t, err)
	assert.Equal(t, model.ReportPending, report.Status)
	assert.Equal(t, listing.ID, report.ListingID)
}

func TestReportService_ThrottlesSameIPWithin24h(t *testing.T) {
	env := setupListingTest(t)
	reportRepo := repository.NewReportRepository(env.db)
	svc := NewReportService(reportRepo, env.listings)

	listing := env.seedListing(t, "Anunț raportat", 50000, nil, f64Ptr(40), nil)
	other := env.seedListing(t, "Alt anunț", 60000, nil, f64Ptr(45), nil)

	input := ReportInput{
		ReporterName:  "Maria",
		ReporterEmail: "maria@example.com",
		Reason:        "Fotografii false.",
	}

	_, err := svc.Report(listing.ID, input, "203.0.113.7")
	require.NoError(t, err)

	// same IP, same listing: throttled
	_, err = svc.Report(listing.ID, input, "203.0.113.7")
	assert.ErrorIs(t, err, ErrReportThrottled)

	// different IP on the same listing passes
	_, err = svc.Report(listing.ID, input, "203.0.113.8")
	assert.NoError(t, err)

	// same IP on a different listing passes
	_, err = svc.Report(other.ID, input, "203.0.113.7")
	assert.NoError(t, err)
}

func TestReportService_ThrottleExpiresAfterWindow(t *testing.T) {
	env := setupListingTest(t)
	reportRepo := repository.NewReportRepository(env.db)
	svc := NewReportService(reportRepo, env.listings)

	listing := env.seedListing(t, "Anunț vechi", 50000, nil, f64Ptr(40), nil)

	stale := &model.Report{
		ListingID:     listing.ID,
		ReporterName:  "Maria",
		ReporterEmail: "maria@example.com",
		Reason:        "Spam.",
		IPAddress:     "203.0.113.7",
	}
	require.NoError(t, env.db.Create(stale).Error)
	require.NoError(t, env.db.Model(stale).
		Update("created_at", time.Now().Add(-25*time.Hour)).Error)

	_, err := svc.Report(listing.ID, ReportInput{
		ReporterName:  "Maria",
		ReporterEmail: "maria@example.com",
		Reason:        "Tot spam.",
	}, "203.0.113.7")
	assert.NoError(t, err)
}

func TestReportService_OnlyActiveListingsReportable(t *testing.T) {
	env := setupListingTest(t)
	reportRepo := repository.NewReportRepository(env.db)
	svc := NewReportService(reportRepo, env.listings)

	listing := env.seedListing(t, "Anunț în moderare", 50000, nil, f64Ptr(40), nil)
	require.NoError(t, env.db.Model(listing).Update("status", model.StatusInactive).Error)

	_, err := svc.Report(listing.ID, ReportInput{
		ReporterName:  "Maria",
		ReporterEmail: "maria@example.com",
		Reason:        "Orice.",
	}, "203.0.113.7")
	assert.ErrorIs(t, err, ErrListingNotActive)
}
