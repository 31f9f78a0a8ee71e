package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/repositories"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/auth"
)

// TokenIssuer signs access tokens. *auth.JWTService implements it.
type TokenIssuer interface {
	GenerateAccessToken(user *models.User) (string, int, error)
}

// AuthService handles account registration and login
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authServiceImpl struct {
	userRepo repositories.UserStore
	tokens   TokenIssuer
	logger   zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.UserStore, tokens TokenIssuer, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register creates an account and signs a token for it
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, apperrors.NewValidationError("username", "This field may not be blank.")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username: username,
		Password: hash,
	}
	if email := strings.TrimSpace(req.Email); email != "" {
		user.Email = &email
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUsernameTaken) {
			return nil, &apperrors.CustomError{
				Err:     apperrors.ErrUsernameAlreadyTaken,
				Message: "A user with that username already exists.",
				Field:   "username",
			}
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Str("username", user.Username).Msg("User registered")
	return s.authResponse(user)
}

// Login verifies credentials and signs a token
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		s.logger.Warn().Str("username", req.Username).Msg("Failed login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.authResponse(user)
}

func (s *authServiceImpl) authResponse(user *models.User) (*dto.AuthResponse, error) {
	token, expiresIn, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   int64(expiresIn),
		},
		User: dto.NewUserResponse(user),
	}, nil
}
