package db

import (
	"github.com/imocasa/imocasa-backend/internal/app/model"
	"github.com/imocasa/imocasa-backend/pkg/logger"
)

// Migrate runs the schema migrations.
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.User{},
		&model.CompanyProfile{},
		&model.ClaimRequest{},
		&model.County{},
		&model.City{},
		&model.Neighborhood{},
		&model.Category{},
		&model.Tag{},
		&model.Listing{},
		&model.Like{},
		&model.ImageHash{},
		&model.Report{},
		&model.Payment{},
		&model.PromotionHistory{},
		&model.ListingActivityLog{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}
