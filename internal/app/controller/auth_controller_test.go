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

	"github.com/imocasa/imocasa-backend/config"
	"github.com/imocasa/imocasa-backend/internal/app/repository"
	"github.com/imocasa/imocasa-backend/internal/app/service"
	"github.com/imocasa/imocasa-backend/internal/db"
)

func setupAuthControllerTest(t *testing.T) (*AuthController, *gin.Engine) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	authService := service.NewAuthService(repository.NewUserRepository(testDB), config.JWTConfig{
		Secret:             "controller-test-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 168 * time.Hour,
	})
	ctrl := NewAuthController(authService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auth/register", ctrl.Register)
	router.POST("/auth/login", ctrl.Login)
	router.POST("/auth/refresh", ctrl.Refresh)

	return ctrl, router
}

func postJSON(router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthController_Register(t *testing.T) {
	_, router := setupAuthControllerTest(t)

	w := postJSON(router, "/auth/register", map[string]interface{}{
		"email":      "maria@example.com",
		"password":   "parola-sigura",
		"first_name": "Maria",
		"last_name":  "Ionescu",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	tokens := response["tokens"].(map[string]interface{})
	assert.NotEmpty(t, tokens["access_token"])
	assert.NotEmpty(t, tokens["refresh_token"])

	user := response["user"].(map[string]interface{})
	assert.Equal(t, "maria@example.com", user["email"])
	assert.NotContains(t, user, "password_hash")

	// duplicate email
	w = postJSON(router, "/auth/register", map[string]interface{}{
		"email":      "maria@example.com",
		"password":   "alta-parola-123",
		"first_name": "Alt",
		"last_name":  "Cont",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "AUTH_EMAIL_EXISTS", response["error"])
}

func TestAuthController_Register_InvalidInput(t *testing.T) {
	_, router := setupAuthControllerTest(t)

	w := postJSON(router, "/auth/register", map[string]interface{}{
		"email":      "not-an-email",
		"password":   "short",
		"first_name": "Maria",
		"last_name":  "Ionescu",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "VALIDATION_INVALID_INPUT", response["error"])
}

func TestAuthController_Login(t *testing.T) {
	_, router := setupAuthControllerTest(t)

	w := postJSON(router, "/auth/register", map[string]interface{}{
		"email":      "dan@example.com",
		"password":   "parola-lui-dan",
		"first_name": "Dan",
		"last_name":  "Popa",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(router, "/auth/login", map[string]interface{}{
		"email":    "dan@example.com",
		"password": "parola-lui-dan",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response["tokens"].(map[string]interface{})["access_token"])

	// wrong password
	w = postJSON(router, "/auth/login", map[string]interface{}{
		"email":    "dan@example.com",
		"password": "parola-gresita",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "AUTH_INVALID_CREDENTIALS", response["error"])
}

func TestAuthController_Refresh(t *testing.T) {
	_, router := setupAuthControllerTest(t)

	w := postJSON(router, "/auth/register", map[string]interface{}{
		"email":      "ioana@example.com",
		"password":   "parola-ioanei",
		"first_name": "Ioana",
		"last_name":  "Marin",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var registered map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registered))
	refreshToken := registered["tokens"].(map[string]interface{})["refresh_token"].(string)

	w = postJSON(router, "/auth/refresh", map[string]interface{}{
		"refresh_token": refreshToken,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response["tokens"].(map[string]interface{})["access_token"])

	w = postJSON(router, "/auth/refresh", map[string]interface{}{
		"refresh_token": "not-a-real-token",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
