package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/imocasa/imocasa-backend/config"
	"github.com/imocasa/imocasa-backend/internal/app/controller"
	"github.com/imocasa/imocasa-backend/internal/app/repository"
	"github.com/imocasa/imocasa-backend/internal/app/service"
	"github.com/imocasa/imocasa-backend/internal/db"
	"github.com/imocasa/imocasa-backend/internal/middleware"
	"github.com/imocasa/imocasa-backend/internal/router"
	"github.com/imocasa/imocasa-backend/internal/scheduler"
	"github.com/imocasa/imocasa-backend/internal/storage"
	"github.com/imocasa/imocasa-backend/pkg/logger"
	"github.com/imocasa/imocasa-backend/pkg/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting IMOCASA Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// the cache is optional; read endpoints fall through to the database
	if err := redis.Init(&cfg.Redis); err != nil {
		logger.Warn("Redis unavailable, response caching disabled", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer redis.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	listingRepo := repository.NewListingRepository(db.GetDB())
	geoRepo := repository.NewGeoRepository(db.GetDB())
	categoryRepo := repository.NewCategoryRepository(db.GetDB())
	tagRepo := repository.NewTagRepository(db.GetDB())
	imageHashRepo := repository.NewImageHashRepository(db.GetDB())
	activityLogRepo := repository.NewActivityLogRepository(db.GetDB())
	reportRepo := repository.NewReportRepository(db.GetDB())
	paymentRepo := repository.NewPaymentRepository(db.GetDB())
	companyRepo := repository.NewCompanyRepository(db.GetDB())

	mediaStorage := storage.NewS3Storage(
		cfg.S3.Region,
		cfg.S3.Bucket,
		cfg.S3.AccessKeyID,
		cfg.S3.SecretAccessKey,
		cfg.S3.BaseURL,
	)

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.JWT)
	listingService := service.NewListingService(
		listingRepo,
		geoRepo,
		categoryRepo,
		tagRepo,
		userRepo,
		imageHashRepo,
		activityLogRepo,
		mediaStorage,
	)
	similarService := service.NewSimilarService(listingRepo)
	geoService := service.NewGeoService(geoRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	tagService := service.NewTagService(tagRepo)
	reportService := service.NewReportService(reportRepo, listingRepo)
	promotionService := service.NewPromotionService(paymentRepo, listingRepo)
	companyService := service.NewCompanyService(companyRepo, userRepo)

	// Initialize controllers
	authController := controller.NewAuthController(authService)
	listingController := controller.NewListingController(listingService, similarService, cfg.Cache.TTL)
	geoController := controller.NewGeoController(geoService)
	categoryController := controller.NewCategoryController(categoryService)
	tagController := controller.NewTagController(tagService)
	reportController := controller.NewReportController(reportService)
	promotionController := controller.NewPromotionController(promotionService)
	companyController := controller.NewCompanyController(companyService)

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	r := router.NewRouter(
		authController,
		listingController,
		geoController,
		categoryController,
		tagController,
		reportController,
		promotionController,
		companyController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	housekeeping := scheduler.NewHousekeepingScheduler(listingRepo, paymentRepo)
	if err := housekeeping.Start(); err != nil {
		logger.Error("Failed to start housekeeping scheduler", err)
	}
	defer housekeeping.Stop()

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
