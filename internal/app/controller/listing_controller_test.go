package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/imocasa/imocasa-backend/internal/app/model"
	"github.com/imocasa/imocasa-backend/internal/app/repository"
	"github.com/imocasa/imocasa-backend/internal/app/service"
	"github.com/imocasa/imocasa-backend/internal/db"
	"github.com/imocasa/imocasa-backend/internal/middleware"
)

type noopStorage struct{}

func (noopStorage) Upload(key string, data []byte, contentType string) (string, error) {
	return "https://cdn.test/" + key, nil
}

type listingControllerEnv struct {
	db         *gorm.DB
	controller *ListingController
	router     *gin.Engine
	user       *model.User
	county     *model.County
	city       *model.City
	apartments *model.Category
}

func setupListingControllerTest(t *testing.T) *listingControllerEnv {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	env := &listingControllerEnv{db: testDB}

	env.county = &model.County{Name: "Timiș"}
	require.NoError(t, testDB.Create(env.county).Error)
	env.city = &model.City{Name: "Timișoara", CountyID: env.county.ID}
	require.NoError(t, testDB.Create(env.city).Error)

	group := model.GroupApartments
	env.apartments = &model.Category{Name: "Apartamente de închiriat", Group: &group}
	require.NoError(t, testDB.Create(env.apartments).Error)

	env.user = &model.User{Email: "test@example.com", PasswordHash: "x", FirstName: "Test", LastName: "User"}
	require.NoError(t, testDB.Create(env.user).Error)

	listingRepo := repository.NewListingRepository(testDB)
	listingService := service.NewListingService(
		listingRepo,
		repository.NewGeoRepository(testDB),
		repository.NewCategoryRepository(testDB),
		repository.NewTagRepository(testDB),
		repository.NewUserRepository(testDB),
		repository.NewImageHashRepository(testDB),
		repository.NewActivityLogRepository(testDB),
		noopStorage{},
	)
	similarService := service.NewSimilarService(listingRepo)
	env.controller = NewListingController(listingService, similarService, time.Minute)

	gin.SetMode(gin.TestMode)
	env.router = gin.New()
	env.router.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, env.user.ID)
		c.Set(middleware.UserRoleKey, model.RoleUser)
		c.Next()
	})

	return env
}

func (env *listingControllerEnv) createPayload() map[string]interface{} {
	return map[string]interface{}{
		"title":           "Apartament 2 camere Timișoara",
		"description":     "Etaj intermediar, mobilat.",
		"price":           78000,
		"county_id":       env.county.ID,
		"city_id":         env.city.ID,
		"category_id":     env.apartments.ID,
		"numar_camere":    2,
		"suprafata_utila": 54.0,
	}
}

func TestListingController_CreateListing(t *testing.T) {
	env := setupListingControllerTest(t)
	env.router.POST("/listings", env.controller.CreateListing)

	body, _ := json.Marshal(env.createPayload())
	req := httptest.NewRequest(http.MethodPost, "/listings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	listing := response["listing"].(map[string]interface{})
	assert.NotEmpty(t, listing["slug"])
	assert.NotEmpty(t, listing["meta_title"])
}

func TestListingController_CreateListing_ValidationErrors(t *testing.T) {
	env := setupListingControllerTest(t)
	env.router.POST("/listings", env.controller.CreateListing)

	payload := env.createPayload()
	delete(payload, "numar_camere")
	payload["suprafata_terenului"] = 500.0

	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/listings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "VALIDATION_INVALID_INPUT", response["error"])

	fields := response["fields"].(map[string]interface{})
	assert.Contains(t, fields, "numar_camere")
	assert.Contains(t, fields, "suprafata_terenului")
}

func TestListingController_GetListing(t *testing.T) {
	env := setupListingControllerTest(t)
	env.router.POST("/listings", env.controller.CreateListing)
	env.router.GET("/listings/:id", env.controller.GetListing)

	body, _ := json.Marshal(env.createPayload())
	req := httptest.NewRequest(http.MethodPost, "/listings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	listingID := created["listing"].(map[string]interface{})["id"].(string)

	req = httptest.NewRequest(http.MethodGet, "/listings/"+listingID, nil)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// unknown id
	req = httptest.NewRequest(http.MethodGet, "/listings/00000000-0000-0000-0000-000000000001", nil)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// malformed id
	req = httptest.NewRequest(http.MethodGet, "/listings/not-a-uuid", nil)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListingController_SimilarListings(t *testing.T) {
	env := setupListingControllerTest(t)
	env.router.GET("/listings/:id/similar", env.controller.GetSimilarListings)

	reference := &model.Listing{
		Title: "Referință", Description: "x", Price: 80000,
		UserID: env.user.ID, CountyID: env.county.ID, CityID: env.city.ID,
		CategoryID: env.apartments.ID, Status: model.StatusActive,
		IsActiveByUser: true, Slug: "referinta-slug",
	}
	require.NoError(t, env.db.Create(reference).Error)

	candidate := &model.Listing{
		Title: "Candidat", Description: "x", Price: 81000,
		UserID: env.user.ID, CountyID: env.county.ID, CityID: env.city.ID,
		CategoryID: env.apartments.ID, Status: model.StatusActive,
		IsActiveByUser: true, Slug: "candidat-slug",
	}
	require.NoError(t, env.db.Create(candidate).Error)

	req := httptest.NewRequest(http.MethodGet, "/listings/"+reference.ID.String()+"/similar", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, float64(1), response["count"])
}

func TestListingController_ListListings_Filters(t *testing.T) {
	env := setupListingControllerTest(t)
	env.router.GET("/listings", env.controller.ListListings)

	for _, price := range []uint{50000, 90000} {
		listing := &model.Listing{
			Title: "Anunț", Description: "x", Price: price,
			UserID: env.user.ID, CountyID: env.county.ID, CityID: env.city.ID,
			CategoryID: env.apartments.ID, Status: model.StatusActive,
			IsActiveByUser: true, Slug: "anunt-" + time.Now().Format("150405.000000") + "-" + string(rune('a'+price%26)),
		}
		require.NoError(t, env.db.Create(listing).Error)
	}

	req := httptest.NewRequest(http.MethodGet, "/listings?min_price=60000", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, float64(1), response["count"])
}
