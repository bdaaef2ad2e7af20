package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/peerapat/gradlink/internal/app/models"
	"github.com/peerapat/gradlink/internal/pkg/apperrors"
)

// IGraduateProfileRepository defines the interface for graduate profile database operations
type IGraduateProfileRepository interface {
	Create(ctx context.Context, profile *models.GraduateProfile) (int64, error)
	GetByAccountID(ctx context.Context, accountID int64) (*models.GraduateProfile, error)
	ExistsByAccountID(ctx context.Context, accountID int64) (bool, error)
	ListAll(ctx context.Context) ([]*models.GraduateProfile, error)
	ListByFaculty(ctx context.Context, faculty string) ([]*models.GraduateProfile, error)
	ListByCompany(ctx context.Context, company string) ([]*models.GraduateProfile, error)
	ListByCareerPosition(ctx context.Context, position string) ([]*models.GraduateProfile, error)
	DistinctFaculties(ctx context.Context) ([]string, error)
	DistinctCompanies(ctx context.Context) ([]string, error)
	DistinctCareerPositions(ctx context.Context) ([]string, error)
}

// GraduateProfileRepository handles graduate profile database operations
type GraduateProfileRepository struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

// NewGraduateProfileRepository creates a new GraduateProfileRepository
func NewGraduateProfileRepository(db *pgxpool.Pool) *GraduateProfileRepository {
	return &GraduateProfileRepository{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var graduateProfileColumns = []string{
	"id", "account_id", "full_name", "student_id", "gender", "date_of_birth", "email",
	"phone_number", "faculty", "major", "enrollment_date", "current_academic_year",
	"extracurricular_activities", "academic_projects", "profile_image",
	"internship_status", "internship_company", "internship_position",
	"internship_duration", "internship_task", "internship_experience",
	"career_status", "career_company", "career_position", "date_of_employment",
	"career_task", "career_experience",
}

// Create inserts a new graduate profile and returns its id.
// Internship and career detail columns stay NULL unless the
// corresponding status carries details.
func (r *GraduateProfileRepository) Create(ctx context.Context, profile *models.GraduateProfile) (int64, error) {
	var (
		internCompany, internPosition, internDuration *string
		internTask, internExperience                  *string
		careerCompany, careerPosition                 *string
		dateOfEmployment                              *time.Time
		careerTask, careerExperience                  *string
	)
	if d := profile.Internship.Details; d != nil {
		internCompany, internPosition = &d.Company, &d.Position
		internDuration, internTask, internExperience = &d.Duration, &d.Task, &d.Experience
	}
	if d := profile.Career.Details; d != nil {
		careerCompany, careerPosition = &d.Company, &d.Position
		dateOfEmployment = d.EmploymentDate
		careerTask, careerExperience = &d.Task, &d.Experience
	}

	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO graduate_profiles (
			account_id, full_name, student_id, gender, date_of_birth, email,
			phone_number, faculty, major, enrollment_date, current_academic_year,
			extracurricular_activities, academic_projects, profile_image,
			internship_status, internship_company, internship_position,
			internship_duration, internship_task, internship_experience,
			career_status, career_company, career_position, date_of_employment,
			career_task, career_experience
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)
		RETURNING id`,
		profile.AccountID, profile.FullName, profile.StudentID, profile.Gender,
		profile.DateOfBirth, profile.Email, profile.PhoneNumber, profile.Faculty,
		profile.Major, profile.EnrollmentDate, profile.CurrentAcademicYear,
		profile.ExtracurricularActivities, profile.AcademicProjects, profile.ProfileImage,
		profile.Internship.Status, internCompany, internPosition,
		internDuration, internTask, internExperience,
		profile.Career.Status, careerCompany, careerPosition, dateOfEmployment,
		careerTask, careerExperience).Scan(&id)

	if err != nil {
		if isUniqueViolationOn(err, "graduate_profiles_account_id_key") {
			return 0, apperrors.ErrProfileAlreadyExists
		}
		if isUniqueViolation(err) {
			return 0, apperrors.ErrConflict
		}
		return 0, fmt.Errorf("error creating graduate profile: %w", err)
	}

	return id, nil
}

// GetByAccountID retrieves the graduate profile belonging to an account
func (r *GraduateProfileRepository) GetByAccountID(ctx context.Context, accountID int64) (*models.GraduateProfile, error) {
	query, args, err := r.sb.
		Select(graduateProfileColumns...).
		From("graduate_profiles").
		Where(sq.Eq{"account_id": accountID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	profile, err := scanGraduateProfile(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error getting graduate profile: %w", err)
	}

	return profile, nil
}

// ExistsByAccountID checks whether an account already submitted a graduate profile
func (r *GraduateProfileRepository) ExistsByAccountID(ctx context.Context, accountID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM graduate_profiles WHERE account_id = $1)`,
		accountID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking graduate profile: %w", err)
	}

	return exists, nil
}

// ListAll returns every graduate profile ordered by id
func (r *GraduateProfileRepository) ListAll(ctx context.Context) ([]*models.GraduateProfile, error) {
	return r.list(ctx, nil)
}

// ListByFaculty returns graduate profiles with an exact faculty match
func (r *GraduateProfileRepository) ListByFaculty(ctx context.Context, faculty string) ([]*models.GraduateProfile, error) {
	return r.list(ctx, sq.Eq{"faculty": faculty})
}

// ListByCompany returns graduate profiles employed at the given company
func (r *GraduateProfileRepository) ListByCompany(ctx context.Context, company string) ([]*models.GraduateProfile, error) {
	return r.list(ctx, sq.Eq{"career_company": company})
}

// ListByCareerPosition returns graduate profiles holding the given position
func (r *GraduateProfileRepository) ListByCareerPosition(ctx context.Context, position string) ([]*models.GraduateProfile, error) {
	return r.list(ctx, sq.Eq{"career_position": position})
}

func (r *GraduateProfileRepository) list(ctx context.Context, pred interface{}) ([]*models.GraduateProfile, error) {
	builder := r.sb.
		Select(graduateProfileColumns...).
		From("graduate_profiles").
		OrderBy("id")
	if pred != nil {
		builder = builder.Where(pred)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing graduate profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*models.GraduateProfile
	for rows.Next() {
		profile, err := scanGraduateProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning graduate profile: %w", err)
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating graduate profiles: %w", err)
	}

	return profiles, nil
}

// DistinctFaculties returns the distinct non-null faculties across graduate profiles
func (r *GraduateProfileRepository) DistinctFaculties(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "faculty")
}

// DistinctCompanies returns the distinct non-null employers across graduate profiles
func (r *GraduateProfileRepository) DistinctCompanies(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "career_company")
}

// DistinctCareerPositions returns the distinct non-null career positions across graduate profiles
func (r *GraduateProfileRepository) DistinctCareerPositions(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "career_position")
}

func (r *GraduateProfileRepository) distinct(ctx context.Context, column string) ([]string, error) {
	query, args, err := r.sb.
		Select("DISTINCT " + column).
		From("graduate_profiles").
		Where(sq.NotEq{column: nil}).
		OrderBy(column).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying distinct %s: %w", column, err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("error scanning %s: %w", column, err)
		}
		values = append(values, value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s values: %w", column, err)
	}

	return values, nil
}

// scanGraduateProfile reads one row and folds the flat internship and
// career columns back into their detail structs.
func scanGraduateProfile(row pgx.Row) (*models.GraduateProfile, error) {
	profile := &models.GraduateProfile{}
	var (
		internCompany, internPosition, internDuration *string
		internTask, internExperience                  *string
		careerCompany, careerPosition                 *string
		dateOfEmployment                              *time.Time
		careerTask, careerExperience                  *string
	)

	err := row.Scan(
		&profile.ID, &profile.AccountID, &profile.FullName, &profile.StudentID,
		&profile.Gender, &profile.DateOfBirth, &profile.Email, &profile.PhoneNumber,
		&profile.Faculty, &profile.Major, &profile.EnrollmentDate,
		&profile.CurrentAcademicYear, &profile.ExtracurricularActivities,
		&profile.AcademicProjects, &profile.ProfileImage,
		&profile.Internship.Status, &internCompany, &internPosition,
		&internDuration, &internTask, &internExperience,
		&profile.Career.Status, &careerCompany, &careerPosition, &dateOfEmployment,
		&careerTask, &careerExperience)
	if err != nil {
		return nil, err
	}

	if internCompany != nil {
		profile.Internship.Details = &models.InternshipDetails{
			Company:    *internCompany,
			Position:   derefString(internPosition),
			Duration:   derefString(internDuration),
			Task:       derefString(internTask),
			Experience: derefString(internExperience),
		}
	}
	if careerCompany != nil {
		profile.Career.Details = &models.CareerDetails{
			Company:        *careerCompany,
			Position:       derefString(careerPosition),
			EmploymentDate: dateOfEmployment,
			Task:           derefString(careerTask),
			Experience:     derefString(careerExperience),
		}
	}

	return profile, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
