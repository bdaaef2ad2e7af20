package services

import (
	"context"
	"errors"
	"strings"

	"github.com/peerapat/gradlink/internal/app/models"
	"github.com/peerapat/gradlink/internal/app/models/dto"
	"github.com/peerapat/gradlink/internal/app/repositories"
	"github.com/peerapat/gradlink/internal/pkg/apperrors"
	"github.com/peerapat/gradlink/internal/pkg/auth"
	"github.com/peerapat/gradlink/internal/pkg/logger"
)

const minPasswordLength = 6

// AuthService handles registration and login
type AuthService struct {
	accountRepo repositories.IAccountRepository
	jwtService  *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(accountRepo repositories.IAccountRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		jwtService:  jwtService,
	}
}

// NormalizeEmail lower-cases and trims an email address. Every email entering
// the system passes through here so lookups never miss on casing.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account with the unassigned role.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	email := NormalizeEmail(req.Email)
	if email == "" {
		return nil, apperrors.ErrInvalidEmail
	}
	if len(req.Password) < minPasswordLength {
		return nil, apperrors.ErrInvalidPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleUnassigned,
		IsActive:     true,
	}

	id, err := s.accountRepo.Create(ctx, account)
	if err != nil {
		if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			logger.Error().Err(err).Msg("Failed to create account")
		}
		return nil, err
	}

	logger.Info().Int64("accountId", id).Msg("Account registered")

	return &dto.RegisterResponse{
		AccountID: id,
		Email:     email,
		Role:      string(models.RoleUnassigned),
	}, nil
}

// Login verifies credentials and issues an access token. The token carries
// only the account id; the current role is reported alongside it but is
// re-read from the store on every authenticated request.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	email := NormalizeEmail(req.Email)

	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !account.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if !auth.CheckPassword(account.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(account.ID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to generate access token")
		return nil, err
	}

	if err := s.accountRepo.UpdateLastLogin(ctx, account.ID); err != nil {
		// Login still succeeds; the timestamp is informational.
		logger.Warn().Err(err).Int64("accountId", account.ID).Msg("Failed to update last login time")
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		AccountID:   account.ID,
		Role:        string(account.Role),
	}, nil
}
