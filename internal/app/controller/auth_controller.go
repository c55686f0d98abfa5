package controller

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/imocasa/imocasa-backend/internal/app/service"
	"github.com/imocasa/imocasa-backend/internal/errors"
	"github.com/imocasa/imocasa-backend/internal/middleware"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register creates an account and signs the user in
// POST /api/v1/auth/register
func (ctrl *AuthController) Register(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var input service.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		log.Warn("Invalid register request", map[string]interface{}{
			"error": err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, "Datele trimise nu sunt valide")
		return
	}

	result, err := ctrl.authService.Register(input)
	if err != nil {
		if stderrors.Is(err, service.ErrEmailAlreadyExists) {
			errors.Conflict(c, errors.AuthEmailAlreadyExists, "Adresa de email este deja folosită")
			return
		}
		log.Error("Registration failed", err, map[string]interface{}{
			"email": input.Email,
		})
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":   result.User,
		"tokens": result.Tokens,
	})
}

// Login authenticates with email and password
// POST /api/v1/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var input service.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Datele trimise nu sunt valide")
		return
	}

	result, err := ctrl.authService.Login(input)
	if err != nil {
		if stderrors.Is(err, service.ErrInvalidCredentials) {
			errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthInvalidCredentials, "Email sau parolă incorecte")
			return
		}
		log.Error("Login failed", err, nil)
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":   result.User,
		"tokens": result.Tokens,
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Refresh exchanges a refresh token for a new token pair
// POST /api/v1/auth/refresh
func (ctrl *AuthController) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Datele trimise nu sunt valide")
		return
	}

	tokens, err := ctrl.authService.Refresh(req.RefreshToken)
	if err != nil {
		errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenInvalid, "Token de reîmprospătare invalid")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tokens": tokens,
	})
}

// Me returns the authenticated user's profile
// GET /api/v1/auth/me
func (ctrl *AuthController) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		errors.Unauthorized(c, "")
		return
	}

	user, err := ctrl.authService.GetUser(userID)
	if err != nil {
		if stderrors.Is(err, service.ErrUserNotFound) {
			errors.NotFound(c, errors.ResourceNotFound, "Utilizatorul nu a fost găsit")
			return
		}
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": user,
	})
}
