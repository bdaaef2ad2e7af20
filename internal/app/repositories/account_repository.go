package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/peerapat/gradlink/internal/app/models"
	"github.com/peerapat/gradlink/internal/pkg/apperrors"
)

// IAccountRepository defines the interface for account database operations
type IAccountRepository interface {
	Create(ctx context.Context, account *models.Account) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateRole(ctx context.Context, id int64, role models.Role) error
	UpdateLastLogin(ctx context.Context, id int64) error
}

// AccountRepository handles account database operations
type AccountRepository struct {
	db *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{
		db: db,
	}
}

// Create inserts a new account and returns its id
func (r *AccountRepository) Create(ctx context.Context, account *models.Account) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO accounts (email, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		account.Email, account.PasswordHash, account.Role, account.IsActive).Scan(&id)

	if err != nil {
		if isUniqueViolation(err) {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("error creating account: %w", err)
	}

	return id, nil
}

// GetByID retrieves an account by ID
func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	account := &models.Account{}
	err := r.db.QueryRow(ctx, `
		SELECT id, email, password_hash, role, created_at, last_login_at, is_active
		FROM accounts
		WHERE id = $1`,
		id).Scan(
		&account.ID, &account.Email, &account.PasswordHash, &account.Role,
		&account.CreatedAt, &account.LastLoginAt, &account.IsActive)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("error getting account by id: %w", err)
	}

	return account, nil
}

// GetByEmail retrieves an account by its normalized email
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	account := &models.Account{}
	err := r.db.QueryRow(ctx, `
		SELECT id, email, password_hash, role, created_at, last_login_at, is_active
		FROM accounts
		WHERE email = $1`,
		email).Scan(
		&account.ID, &account.Email, &account.PasswordHash, &account.Role,
		&account.CreatedAt, &account.LastLoginAt, &account.IsActive)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("error getting account by email: %w", err)
	}

	return account, nil
}

// EmailExists checks if an email is already registered
func (r *AccountRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM accounts WHERE email = $1)`,
		email).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}

	return exists, nil
}

// UpdateRole sets the account role
func (r *AccountRepository) UpdateRole(ctx context.Context, id int64, role models.Role) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE accounts
		SET role = $1
		WHERE id = $2`,
		role, id)

	if err != nil {
		return fmt.Errorf("failed to update account role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAccountNotFound
	}

	return nil
}

// UpdateLastLogin updates the last login time
func (r *AccountRepository) UpdateLastLogin(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `
		UPDATE accounts
		SET last_login_at = $1
		WHERE id = $2`,
		time.Now(), id)

	if err != nil {
		return fmt.Errorf("failed to update last login time: %w", err)
	}

	return nil
}
