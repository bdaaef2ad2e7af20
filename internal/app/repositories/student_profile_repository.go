package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/peerapat/gradlink/internal/app/models"
	"github.com/peerapat/gradlink/internal/pkg/apperrors"
)

// IStudentProfileRepository defines the interface for student profile database operations
type IStudentProfileRepository interface {
	Create(ctx context.Context, profile *models.StudentProfile) (int64, error)
	GetByAccountID(ctx context.Context, accountID int64) (*models.StudentProfile, error)
	ExistsByAccountID(ctx context.Context, accountID int64) (bool, error)
	ListAll(ctx context.Context) ([]*models.StudentProfile, error)
}

// StudentProfileRepository handles student profile database operations
type StudentProfileRepository struct {
	db *pgxpool.Pool
}

// NewStudentProfileRepository creates a new StudentProfileRepository
func NewStudentProfileRepository(db *pgxpool.Pool) *StudentProfileRepository {
	return &StudentProfileRepository{
		db: db,
	}
}

const studentProfileColumns = `id, account_id, full_name, student_id, gender, date_of_birth, email,
	phone_number, faculty, major, enrollment_date, current_academic_year,
	extracurricular_activities, academic_projects, profile_image`

// Create inserts a new student profile and returns its id.
// A second submission for the same account or a reused student id
// trips the corresponding unique constraint.
func (r *StudentProfileRepository) Create(ctx context.Context, profile *models.StudentProfile) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO student_profiles (
			account_id, full_name, student_id, gender, date_of_birth, email,
			phone_number, faculty, major, enrollment_date, current_academic_year,
			extracurricular_activities, academic_projects, profile_image
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`,
		profile.AccountID, profile.FullName, profile.StudentID, profile.Gender,
		profile.DateOfBirth, profile.Email, profile.PhoneNumber, profile.Faculty,
		profile.Major, profile.EnrollmentDate, profile.CurrentAcademicYear,
		profile.ExtracurricularActivities, profile.AcademicProjects, profile.ProfileImage).Scan(&id)

	if err != nil {
		if isUniqueViolationOn(err, "student_profiles_account_id_key") {
			return 0, apperrors.ErrProfileAlreadyExists
		}
		if isUniqueViolation(err) {
			return 0, apperrors.ErrConflict
		}
		return 0, fmt.Errorf("error creating student profile: %w", err)
	}

	return id, nil
}

// GetByAccountID retrieves the student profile belonging to an account
func (r *StudentProfileRepository) GetByAccountID(ctx context.Context, accountID int64) (*models.StudentProfile, error) {
	profile := &models.StudentProfile{}
	err := r.db.QueryRow(ctx, `
		SELECT `+studentProfileColumns+`
		FROM student_profiles
		WHERE account_id = $1`,
		accountID).Scan(
		&profile.ID, &profile.AccountID, &profile.FullName, &profile.StudentID,
		&profile.Gender, &profile.DateOfBirth, &profile.Email, &profile.PhoneNumber,
		&profile.Faculty, &profile.Major, &profile.EnrollmentDate,
		&profile.CurrentAcademicYear, &profile.ExtracurricularActivities,
		&profile.AcademicProjects, &profile.ProfileImage)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error getting student profile: %w", err)
	}

	return profile, nil
}

// ExistsByAccountID checks whether an account already submitted a student profile
func (r *StudentProfileRepository) ExistsByAccountID(ctx context.Context, accountID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM student_profiles WHERE account_id = $1)`,
		accountID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking student profile: %w", err)
	}

	return exists, nil
}

// ListAll returns every student profile ordered by id
func (r *StudentProfileRepository) ListAll(ctx context.Context) ([]*models.StudentProfile, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+studentProfileColumns+`
		FROM student_profiles
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error listing student profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*models.StudentProfile
	for rows.Next() {
		profile := &models.StudentProfile{}
		err := rows.Scan(
			&profile.ID, &profile.AccountID, &profile.FullName, &profile.StudentID,
			&profile.Gender, &profile.DateOfBirth, &profile.Email, &profile.PhoneNumber,
			&profile.Faculty, &profile.Major, &profile.EnrollmentDate,
			&profile.CurrentAcademicYear, &profile.ExtracurricularActivities,
			&profile.AcademicProjects, &profile.ProfileImage)
		if err != nil {
			return nil, fmt.Errorf("error scanning student profile: %w", err)
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student profiles: %w", err)
	}

	return profiles, nil
}
