package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	AccountRepository         *AccountRepository
	StudentProfileRepository  *StudentProfileRepository
	GraduateProfileRepository *GraduateProfileRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AccountRepository:         NewAccountRepository(db),
		StudentProfileRepository:  NewStudentProfileRepository(db),
		GraduateProfileRepository: NewGraduateProfileRepository(db),
	}
}

// isUniqueViolation checks if the error is a PostgreSQL unique violation error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// isUniqueViolationOn checks for a unique violation on a specific constraint.
func isUniqueViolationOn(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == constraintName
}
