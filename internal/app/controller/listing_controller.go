package controller

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/imocasa/imocasa-backend/internal/app/model"
	"github.com/imocasa/imocasa-backend/internal/app/repository"
	"github.com/imocasa/imocasa-backend/internal/app/service"
	"github.com/imocasa/imocasa-backend/internal/errors"
	"github.com/imocasa/imocasa-backend/internal/middleware"
	"github.com/imocasa/imocasa-backend/pkg/redis"
)

const maxPhotoBytes = 10 << 20 // 10 MiB per photo

type ListingController struct {
	listingService service.ListingService
	similarService service.SimilarService
	cacheTTL       time.Duration
}

func NewListingController(listingService service.ListingService, similarService service.SimilarService, cacheTTL time.Duration) *ListingController {
	return &ListingController{
		listingService: listingService,
		similarService: similarService,
		cacheTTL:       cacheTTL,
	}
}

// parseListingPayload reads the listing input either as plain JSON or as a
// multipart form with a "data" JSON part plus photo1..photo9 files.
func parseListingPayload(c *gin.Context) (service.ListingInput, []service.PhotoUpload, error) {
	var input service.ListingInput

	contentType := c.ContentType()
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		if err := c.ShouldBindJSON(&input); err != nil {
			return input, nil, err
		}
		return input, nil, nil
	}

	data := c.PostForm("data")
	if data == "" {
		return input, nil, stderrors.New("missing data field")
	}
	if err := json.Unmarshal([]byte(data), &input); err != nil {
		return input, nil, err
	}

	form, err := c.MultipartForm()
	if err != nil {
		return input, nil, err
	}

	var photos []service.PhotoUpload
	for slot := 1; slot <= 9; slot++ {
		files := form.File[fmt.Sprintf("photo%d", slot)]
		if len(files) == 0 {
			continue
		}
		header := files[0]
		if header.Size > maxPhotoBytes {
			return input, nil, fmt.Errorf("photo%d exceeds the size limit", slot)
		}
		file, err := header.Open()
		if err != nil {
			return input, nil, err
		}
		content, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return input, nil, err
		}
		photos = append(photos, service.PhotoUpload{
			Slot:        slot,
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        content,
		})
	}
	return input, photos, nil
}

// respondListingError maps service errors onto the standard payloads.
func respondListingError(c *gin.Context, err error) {
	if fieldErrs := service.AsFieldErrors(err); fieldErrs != nil {
		errors.RespondWithValidationError(c, fieldErrs)
		return
	}
	switch {
	case stderrors.Is(err, service.ErrListingNotFound):
		errors.NotFound(c, errors.ListingNotFound, "Anunțul nu a fost găsit")
	case stderrors.Is(err, service.ErrNotOwner):
		errors.RespondWithError(c, http.StatusForbidden, errors.AuthzOwnerOnly, "Doar proprietarul anunțului poate face această operație")
	case stderrors.Is(err, service.ErrUserNotFound):
		errors.Unauthorized(c, "")
	default:
		info := errors.ParseError(err, "listing")
		status := http.StatusInternalServerError
		switch info.Code {
		case errors.ListingSlugExists, errors.ListingDuplicateImage, errors.ResourceAlreadyExists:
			status = http.StatusConflict
		case errors.ResourceNotFound:
			status = http.StatusNotFound
		}
		errors.RespondWithError(c, status, info.Code, info.Message)
	}
}

// CreateListing creates a listing for the authenticated user
// POST /api/v1/listings
func (ctrl *ListingController) CreateListing(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		errors.Unauthorized(c, "")
		return
	}

	input, photos, err := parseListingPayload(c)
	if err != nil {
		log.Warn("Invalid listing payload", map[string]interface{}{
			"error": err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, "Datele trimise nu sunt valide")
		return
	}

	listing, err := ctrl.listingService.Create(userID, input, photos)
	if err != nil {
		respondListingError(c, err)
		return
	}

	log.Info("Listing created", map[string]interface{}{
		"listing_id": listing.ID,
		"user_id":    userID,
	})
	c.JSON(http.StatusCreated, gin.H{
		"message": "Anunțul a fost creat și așteaptă moderarea",
		"listing": listing,
	})
}

// UpdateListing replaces a listing wholesale
// PUT /api/v1/listings/:id
func (ctrl *ListingController) UpdateListing(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		errors.Unauthorized(c, "")
		return
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errors.BadRequest(c, errors.ValidationInvalidID, "Identificatorul anunțului nu este valid")
		return
	}

	input, photos, err := parseListingPayload(c)
	if err != nil {
		log.Warn("Invalid listing payload", map[string]interface{}{
			"listing_id": listingID,
			"error":      err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, "Datele trimise nu sunt valide")
		return
	}

	listing, err := ctrl.listingService.Update(userID, listingID, input, photos, middleware.IsAdmin(c))
	if err != nil {
		respondListingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Anunțul a fost actualizat",
		"listing": listing,
	})
}

// DeleteListing removes a listing
// DELETE /api/v1/listings/:id
func (ctrl *ListingController) DeleteListing(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		errors.Unauthorized(c, "")
		return
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errors.BadRequest(c, errors.ValidationInvalidID, "Identificatorul anunțului nu este valid")
		return
	}

	if err := ctrl.listingService.Delete(userID, listingID, middleware.IsAdmin(c)); err != nil {
		respondListingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Anunțul a fost șters",
	})
}

// GetListing returns one listing and bumps its view counter
// GET /api/v1/listings/:id
func (ctrl *ListingController) GetListing(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errors.BadRequest(c, errors.ValidationInvalidID, "Identificatorul anunțului nu este valid")
		return
	}

	listing, err := ctrl.listingService.GetByID(listingID, true)
	if err != nil {
		respondListingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"listing": listing,
	})
}

// ListListings returns the filtered public listing feed
// GET /api/v1/listings
func (ctrl *ListingController) ListListings(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	filter := repository.ListingFilter{ActiveOnly: true}

	if v := c.Query("county_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			countyID := uint(id)
			filter.CountyID = &countyID
		}
	}
	if v := c.Query("city_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			cityID := uint(id)
			filter.CityID = &cityID
		}
	}
	if v := c.Query("neighborhood_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			hoodID := uint(id)
			filter.NeighborhoodID = &hoodID
		}
	}
	if v := c.Query("category_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			categoryID := uint(id)
			filter.CategoryID = &categoryID
		}
	}
	if v := c.Query("min_price"); v != "" {
		if price, err := strconv.ParseUint(v, 10, 32); err == nil {
			minPrice := uint(price)
			filter.MinPrice = &minPrice
		}
	}
	if v := c.Query("max_price"); v != "" {
		if price, err := strconv.ParseUint(v, 10, 32); err == nil {
			maxPrice := uint(price)
			filter.MaxPrice = &maxPrice
		}
	}
	filter.Search = c.Query("search")
	filter.SortBy = repository.ListingSort(c.DefaultQuery("sort", string(repository.ListingSortCreatedAt)))
	filter.SortAscending = c.Query("order") == "asc"

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}
	filter.Limit = limit
	filter.Offset = (page - 1) * limit

	listings, err := ctrl.listingService.List(filter)
	if err != nil {
		log.Error("Failed to list listings", err, nil)
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"listings": listings,
		"count":    len(listings),
		"page":     page,
		"limit":    limit,
	})
}

// MyListings returns the caller's own listings regardless of status
// GET /api/v1/listings/mine
func (ctrl *ListingController) MyListings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		errors.Unauthorized(c, "")
		return
	}

	listings, err := ctrl.listingService.List(repository.ListingFilter{UserID: &userID})
	if err != nil {
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"listings": listings,
		"count":    len(listings),
	})
}

// GetSimilarListings returns up to four listings closest to the reference
// GET /api/v1/listings/:id/similar
func (ctrl *ListingController) GetSimilarListings(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errors.BadRequest(c, errors.ValidationInvalidID, "Identificatorul anunțului nu este valid")
		return
	}

	cacheKey := "similar:" + listingID.String()
	var cached []model.Listing
	if err := redis.GetCached(c.Request.Context(), cacheKey, &cached); err == nil {
		c.JSON(http.StatusOK, gin.H{
			"listings": cached,
			"count":    len(cached),
		})
		return
	}

	similar, err := ctrl.similarService.GetSimilarListings(listingID)
	if err != nil {
		log.Error("Failed to compute similar listings", err, map[string]interface{}{
			"listing_id": listingID,
		})
		errors.InternalError(c, "")
		return
	}

	if err := redis.SetCached(c.Request.Context(), cacheKey, similar, ctrl.cacheTTL); err != nil {
		log.Debug("Similar listings cache write skipped", map[string]interface{}{
			"listing_id": listingID,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"listings": similar,
		"count":    len(similar),
	})
}

// HomeDigest returns the landing page payload
// GET /api/v1/home
func (ctrl *ListingController) HomeDigest(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	const cacheKey = "home:digest"
	var cached service.HomeDigest
	if err := redis.GetCached(c.Request.Context(), cacheKey, &cached); err == nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	digest, err := ctrl.listingService.HomeDigest()
	if err != nil {
		log.Error("Failed to build home digest", err, nil)
		errors.InternalError(c, "")
		return
	}

	if err := redis.SetCached(c.Request.Context(), cacheKey, digest, ctrl.cacheTTL); err != nil {
		log.Debug("Home digest cache write skipped", nil)
	}

	c.JSON(http.StatusOK, digest)
}

// ToggleLike flips the caller's like on a listing
// POST /api/v1/listings/:id/like
func (ctrl *ListingController) ToggleLike(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		errors.Unauthorized(c, "")
		return
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errors.BadRequest(c, errors.ValidationInvalidID, "Identificatorul anunțului nu este valid")
		return
	}

	liked, err := ctrl.listingService.ToggleLike(userID, listingID)
	if err != nil {
		respondListingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"liked": liked,
	})
}

// ToggleActive flips the owner's visibility switch
// POST /api/v1/listings/:id/toggle-active
func (ctrl *ListingController) ToggleActive(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		errors.Unauthorized(c, "")
		return
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errors.BadRequest(c, errors.ValidationInvalidID, "Identificatorul anunțului nu este valid")
		return
	}

	listing, err := ctrl.listingService.ToggleActive(userID, listingID)
	if err != nil {
		respondListingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"is_active_by_user": listing.IsActiveByUser,
	})
}
