package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imocasa/imocasa-backend/config"
	"github.com/imocasa/imocasa-backend/internal/app/model"
	"github.com/imocasa/imocasa-backend/internal/app/repository"
	"github.com/imocasa/imocasa-backend/internal/db"
	"github.com/imocasa/imocasa-backend/pkg/util"
)

func setupAuthServiceTest(t *testing.T) AuthService {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	jwtConfig := config.JWTConfig{
		Secret:             "test-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 168 * time.Hour,
	}
	return NewAuthService(repository.NewUserRepository(testDB), jwtConfig)
}

func TestAuthService_Register(t *testing.T) {
	authService := setupAuthServiceTest(t)

	result, err := authService.Register(RegisterInput{
		Email:     "ana@example.com",
		Password:  "parola123",
		FirstName: "Ana",
		LastName:  "Pop",
	})
	require.NoError(t, err)
	assert.Equal(t, model.AccountPerson, result.User.AccountType)
	assert.NotEmpty(t, result.User.UsernameHash)
	assert.NotEmpty(t, result.Tokens.AccessToken)

	claims, err := util.ValidateToken(result.Tokens.AccessToken, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, claims.UserID)

	// duplicate email
	_, err = authService.Register(RegisterInput{
		Email:     "ana@example.com",
		Password:  "parola123",
		FirstName: "Ana",
		LastName:  "Pop",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	authService := setupAuthServiceTest(t)

	_, err := authService.Register(RegisterInput{
		Email:     "dan@example.com",
		Password:  "parola123",
		FirstName: "Dan",
		LastName:  "Ionescu",
	})
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "Valid credentials", email: "dan@example.com", password: "parola123"},
		{name: "Wrong password", email: "dan@example.com", password: "gresit", wantErr: ErrInvalidCredentials},
		{name: "Unknown email", email: "nimeni@example.com", password: "parola123", wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := authService.Login(LoginInput{Email: tt.email, Password: tt.password})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, result.Tokens.AccessToken)
			}
		})
	}
}

func TestAuthService_Refresh(t *testing.T) {
	authService := setupAuthServiceTest(t)

	result, err := authService.Register(RegisterInput{
		Email:     "ioana@example.com",
		Password:  "parola123",
		FirstName: "Ioana",
		LastName:  "Marin",
	})
	require.NoError(t, err)

	tokens, err := authService.Refresh(result.Tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)

	_, err = authService.Refresh("not-a-token")
	assert.Error(t, err)
}
