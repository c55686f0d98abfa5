package router

import (
	"github.com/gin-gonic/gin"

	"github.com/imocasa/imocasa-backend/config"
	"github.com/imocasa/imocasa-backend/internal/app/controller"
	"github.com/imocasa/imocasa-backend/internal/middleware"
)

type Router struct {
	authController      *controller.AuthController
	listingController   *controller.ListingController
	geoController       *controller.GeoController
	categoryController  *controller.CategoryController
	tagController       *controller.TagController
	reportController    *controller.ReportController
	promotionController *controller.PromotionController
	companyController   *controller.CompanyController
	authMiddleware      *middleware.AuthMiddleware
	config              *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	listingController *controller.ListingController,
	geoController *controller.GeoController,
	categoryController *controller.CategoryController,
	tagController *controller.TagController,
	reportController *controller.ReportController,
	promotionController *controller.PromotionController,
	companyController *controller.CompanyController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:      authController,
		listingController:   listingController,
		geoController:       geoController,
		categoryController:  categoryController,
		tagController:       tagController,
		reportController:    reportController,
		promotionController: promotionController,
		companyController:   companyController,
		authMiddleware:      authMiddleware,
		config:              cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "IMOCASA API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.authController.Login)
			auth.POST("/refresh", r.authController.Refresh)
			auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.Me)
		}

		v1.GET("/home", r.listingController.HomeDigest)

		listings := v1.Group("/listings")
		{
			listings.GET("", r.listingController.ListListings)
			listings.GET("/mine",
				r.authMiddleware.Authenticate(),
				r.listingController.MyListings,
			)
			listings.GET("/:id", r.listingController.GetListing)
			listings.GET("/:id/similar", r.listingController.GetSimilarListings)

			listings.POST("",
				r.authMiddleware.Authenticate(),
				r.listingController.CreateListing,
			)
			listings.PUT("/:id",
				r.authMiddleware.Authenticate(),
				r.listingController.UpdateListing,
			)
			listings.DELETE("/:id",
				r.authMiddleware.Authenticate(),
				r.listingController.DeleteListing,
			)

			listings.POST("/:id/like",
				r.authMiddleware.Authenticate(),
				r.listingController.ToggleLike,
			)
			listings.POST("/:id/toggle-active",
				r.authMiddleware.Authenticate(),
				r.listingController.ToggleActive,
			)

			listings.POST("/:id/report", r.reportController.ReportListing)

			listings.POST("/:id/promote",
				r.authMiddleware.Authenticate(),
				r.promotionController.StartPromotion,
			)
		}

		geo := v1.Group("/geo")
		{
			geo.GET("/counties", r.geoController.ListCounties)
			geo.GET("/counties/:id/cities", r.geoController.ListCities)
			geo.GET("/cities/:id/neighborhoods", r.geoController.ListNeighborhoods)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", r.categoryController.ListCategories)
			categories.GET("/tree", r.categoryController.ListTree)
			categories.GET("/:id/fields", r.categoryController.FieldRules)
			categories.GET("/slug/:slug", r.categoryController.GetBySlug)
		}

		tags := v1.Group("/tags")
		{
			tags.GET("", r.tagController.ListTags)
			tags.POST("", r.authMiddleware.Authenticate(), r.tagController.ProposeTag)
		}

		companies := v1.Group("/companies")
		{
			companies.GET("/:id", r.companyController.GetProfile)
			companies.POST("",
				r.authMiddleware.Authenticate(),
				r.companyController.CreateProfile,
			)
			companies.POST("/:id/claim",
				r.authMiddleware.Authenticate(),
				r.companyController.SubmitClaim,
			)
		}

		payments := v1.Group("/payments")
		{
			payments.POST("/:id/confirm", r.promotionController.ConfirmPayment)
		}

		promotions := v1.Group("/promotions")
		promotions.Use(r.authMiddleware.Authenticate())
		{
			promotions.GET("/history", r.promotionController.PromotionHistory)
		}

		admin := v1.Group("/admin")
		admin.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireRole("admin"))
		{
			admin.POST("/claims/:id/resolve", r.companyController.ResolveClaim)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
