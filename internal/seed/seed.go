// Package seed creates the default operator account on startup.
package seed

import (
	"context"
	"errors"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/peerapat/gradlink/internal/app/models"
	"github.com/peerapat/gradlink/internal/app/repositories"
	"github.com/peerapat/gradlink/internal/pkg/apperrors"
	"github.com/peerapat/gradlink/internal/pkg/auth"
	"github.com/peerapat/gradlink/internal/pkg/logger"
)

const defaultAdminEmail = "admin@gradlink.local"

// CreateDefaultData seeds the admin account if it does not exist. The
// password comes from ADMIN_PASSWORD; without it, seeding is skipped so no
// account ships with a known credential.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool) error {
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		logger.Info().Msg("ADMIN_PASSWORD not set, skipping admin account seed")
		return nil
	}

	accountRepo := repositories.NewAccountRepository(dbPool)

	exists, err := accountRepo.EmailExists(ctx, defaultAdminEmail)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	id, err := accountRepo.Create(ctx, &models.Account{
		Email:        defaultAdminEmail,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		IsActive:     true,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		return err
	}

	logger.Info().Int64("accountId", id).Str("email", defaultAdminEmail).Msg("Admin account seeded")
	return nil
}
