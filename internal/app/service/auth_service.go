package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/imocasa/imocasa-backend/config"
	"github.com/imocasa/imocasa-backend/internal/app/model"
	"github.com/imocasa/imocasa-backend/internal/app/repository"
	"github.com/imocasa/imocasa-backend/pkg/logger"
	"github.com/imocasa/imocasa-backend/pkg/util"
)

var (
	ErrEmailAlreadyExists = errors.New("există deja un cont cu acest email")
	ErrInvalidCredentials = errors.New("email sau parolă incorecte")
)

type RegisterInput struct {
	Email       string            `json:"email" binding:"required,email"`
	Password    string            `json:"password" binding:"required,min=8"`
	FirstName   string            `json:"first_name" binding:"required,max=60"`
	LastName    string            `json:"last_name" binding:"required,max=90"`
	Phone       string            `json:"phone" binding:"max=20"`
	AccountType model.AccountType `json:"account_type"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResult struct {
	User   *model.User     `json:"user"`
	Tokens *util.TokenPair `json:"tokens"`
}

type AuthService interface {
	Register(input RegisterInput) (*AuthResult, error)
	Login(input LoginInput) (*AuthResult, error)
	Refresh(refreshToken string) (*util.TokenPair, error)
	GetUser(id uuid.UUID) (*model.User, error)
}

type authService struct {
	users repository.UserRepository
	jwt   config.JWTConfig
}

func NewAuthService(users repository.UserRepository, jwt config.JWTConfig) AuthService {
	return &authService{users: users, jwt: jwt}
}

func (s *authService) Register(input RegisterInput) (*AuthResult, error) {
	if _, err := s.users.FindByEmail(input.Email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := util.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	accountType := input.AccountType
	if accountType == "" {
		accountType = model.AccountPerson
	}

	user := &model.User{
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		AccountType:  accountType,
		Role:         model.RoleUser,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}

	logger.Info("User registered", map[string]interface{}{
		"user_id":      user.ID,
		"account_type": user.AccountType,
	})
	return &AuthResult{User: user, Tokens: tokens}, nil
}

func (s *authService) Login(input LoginInput) (*AuthResult, error) {
	user, err := s.users.FindByEmail(input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !util.VerifyPassword(user.PasswordHash, input.Password) {
		logger.Warn("Login failed", map[string]interface{}{
			"email": input.Email,
		})
		return nil, ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Tokens: tokens}, nil
}

func (s *authService) Refresh(refreshToken string) (*util.TokenPair, error) {
	claims, err := util.ValidateToken(refreshToken, s.jwt.Secret)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.issueTokens(user)
}

func (s *authService) GetUser(id uuid.UUID) (*model.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) issueTokens(user *model.User) (*util.TokenPair, error) {
	return util.GenerateTokenPair(
		user.ID, user.Email, string(user.Role),
		s.jwt.Secret, s.jwt.AccessTokenExpiry, s.jwt.RefreshTokenExpiry,
	)
}
