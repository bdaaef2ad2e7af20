package models

import (
	"time"
)

// Account defines the account model based on the 'accounts' table
type Account struct {
	ID           int64      `json:"id" db:"id" example:"1"`                                                  // Unique identifier for the account
	Email        string     `json:"email" db:"email" example:"somchai@example.com"`                          // Normalized (lower-cased, trimmed) email address
	PasswordHash string     `json:"-" db:"password_hash"`                                                    // Bcrypt digest, never the plaintext (excluded from JSON)
	Role         Role       `json:"role" db:"role" example:"student"`                                        // Account role (unassigned, student, graduate, admin)
	CreatedAt    time.Time  `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`                // Timestamp when the account was created
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at" example:"2024-04-20T18:00:00Z"` // Timestamp of the last login (nullable)
	IsActive     bool       `json:"isActive" db:"is_active" example:"true"`                                  // Whether the account is active
}
