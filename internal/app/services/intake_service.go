package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/peerapat/gradlink/internal/app/models"
	"github.com/peerapat/gradlink/internal/app/models/dto"
	"github.com/peerapat/gradlink/internal/app/repositories"
	"github.com/peerapat/gradlink/internal/pkg/apperrors"
	"github.com/peerapat/gradlink/internal/pkg/blobstore"
	"github.com/peerapat/gradlink/internal/pkg/logger"
)

// dateLayout is the only accepted wire format for form dates.
const dateLayout = "2006-01-02"

// ImageUpload is an optional profile picture attached to an intake form.
type ImageUpload struct {
	File     io.Reader
	Filename string
}

// IntakeService handles the one-time profile form submissions.
type IntakeService struct {
	accountRepo  repositories.IAccountRepository
	studentRepo  repositories.IStudentProfileRepository
	graduateRepo repositories.IGraduateProfileRepository
	blobStore    blobstore.Store
}

// NewIntakeService creates a new IntakeService
func NewIntakeService(
	accountRepo repositories.IAccountRepository,
	studentRepo repositories.IStudentProfileRepository,
	graduateRepo repositories.IGraduateProfileRepository,
	blobStore blobstore.Store,
) *IntakeService {
	return &IntakeService{
		accountRepo:  accountRepo,
		studentRepo:  studentRepo,
		graduateRepo: graduateRepo,
		blobStore:    blobStore,
	}
}

// SubmitStudentProfile validates and stores the student intake form.
func (s *IntakeService) SubmitStudentProfile(ctx context.Context, accountID int64, req *dto.StudentIntakeRequest, image *ImageUpload) (*dto.IntakeResponse, error) {
	account, err := s.requireRole(ctx, accountID, models.RoleStudent)
	if err != nil {
		return nil, err
	}

	dateOfBirth, err := parseOptionalDate(req.DateOfBirth, "dateOfBirth")
	if err != nil {
		return nil, err
	}
	enrollmentDate, err := parseOptionalDate(req.YearOfEnrollment, "yearOfEnrollment")
	if err != nil {
		return nil, err
	}

	imageURL, err := s.storeImage(ctx, image)
	if err != nil {
		return nil, err
	}

	profile := &models.StudentProfile{
		ProfileBase: models.ProfileBase{
			AccountID:                 accountID,
			FullName:                  req.FullName,
			StudentID:                 req.StudentID,
			Gender:                    optionalString(req.Gender),
			DateOfBirth:               dateOfBirth,
			Email:                     account.Email,
			PhoneNumber:               optionalString(req.PhoneNumber),
			Faculty:                   optionalString(req.Faculty),
			Major:                     optionalString(req.Major),
			EnrollmentDate:            enrollmentDate,
			CurrentAcademicYear:       optionalString(req.CurrentAcademicYear),
			ExtracurricularActivities: optionalString(req.ExtracurricularActivities),
			AcademicProjects:          optionalString(req.AcademicProjects),
			ProfileImage:              imageURL,
		},
	}

	id, err := s.studentRepo.Create(ctx, profile)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("accountId", accountID).Int64("profileId", id).Msg("Student profile created")

	return &dto.IntakeResponse{
		ProfileID:    id,
		NextStep:     string(models.StepDashboard),
		ProfileImage: imageURL,
	}, nil
}

// SubmitGraduateProfile validates and stores the graduate intake form.
// Internship and career detail fields are kept only under their status
// sentinels; any other status drops them without complaint.
func (s *IntakeService) SubmitGraduateProfile(ctx context.Context, accountID int64, req *dto.GraduateIntakeRequest, image *ImageUpload) (*dto.IntakeResponse, error) {
	account, err := s.requireRole(ctx, accountID, models.RoleGraduate)
	if err != nil {
		return nil, err
	}

	dateOfBirth, err := parseOptionalDate(req.DateOfBirth, "dateOfBirth")
	if err != nil {
		return nil, err
	}
	enrollmentDate, err := parseOptionalDate(req.YearOfEnrollment, "yearOfEnrollment")
	if err != nil {
		return nil, err
	}

	career := models.NewCareer(req.CareerStatus, models.CareerDetails{
		Company:    req.CareerCompany,
		Position:   req.CareerPosition,
		Task:       req.CareerTask,
		Experience: req.CareerExperience,
	})
	if career.Employed() {
		employmentDate, err := parseOptionalDate(req.DateOfEmployment, "dateOfEmployment")
		if err != nil {
			return nil, err
		}
		career.Details.EmploymentDate = employmentDate
	}

	imageURL, err := s.storeImage(ctx, image)
	if err != nil {
		return nil, err
	}

	profile := &models.GraduateProfile{
		ProfileBase: models.ProfileBase{
			AccountID:                 accountID,
			FullName:                  req.FullName,
			StudentID:                 req.StudentID,
			Gender:                    optionalString(req.Gender),
			DateOfBirth:               dateOfBirth,
			Email:                     account.Email,
			PhoneNumber:               optionalString(req.PhoneNumber),
			Faculty:                   optionalString(req.Faculty),
			Major:                     optionalString(req.Major),
			EnrollmentDate:            enrollmentDate,
			CurrentAcademicYear:       optionalString(req.CurrentAcademicYear),
			ExtracurricularActivities: optionalString(req.ExtracurricularActivities),
			AcademicProjects:          optionalString(req.AcademicProjects),
			ProfileImage:              imageURL,
		},
		Internship: models.NewInternship(req.InternshipStatus, models.InternshipDetails{
			Company:    req.InternshipCompany,
			Position:   req.InternshipPosition,
			Duration:   req.InternshipDuration,
			Task:       req.InternshipTask,
			Experience: req.InternshipExperience,
		}),
		Career: career,
	}

	id, err := s.graduateRepo.Create(ctx, profile)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("accountId", accountID).Int64("profileId", id).Msg("Graduate profile created")

	return &dto.IntakeResponse{
		ProfileID:    id,
		NextStep:     string(models.StepDashboard),
		ProfileImage: imageURL,
	}, nil
}

// CurrentUser returns the profile summary backing the account menu.
func (s *IntakeService) CurrentUser(ctx context.Context, accountID int64) (*dto.CurrentUserResponse, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	resp := &dto.CurrentUserResponse{Email: account.Email}

	switch account.Role {
	case models.RoleStudent:
		profile, err := s.studentRepo.GetByAccountID(ctx, accountID)
		if err != nil {
			return nil, err
		}
		fillCurrentUser(resp, &profile.ProfileBase)
	case models.RoleGraduate:
		profile, err := s.graduateRepo.GetByAccountID(ctx, accountID)
		if err != nil {
			return nil, err
		}
		fillCurrentUser(resp, &profile.ProfileBase)
	case models.RoleUnassigned:
		return nil, apperrors.ErrRoleNotAssigned
	default:
		return nil, apperrors.ErrProfileNotFound
	}

	return resp, nil
}

// requireRole loads the account and checks that its assigned role matches
// the submitted form variant.
func (s *IntakeService) requireRole(ctx context.Context, accountID int64, role models.Role) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !account.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}
	if account.Role == models.RoleUnassigned {
		return nil, apperrors.ErrRoleNotAssigned
	}
	if account.Role != role {
		return nil, fmt.Errorf("%w: form does not match assigned role %s", apperrors.ErrInvalidRole, account.Role)
	}
	return account, nil
}

// storeImage validates and uploads an optional profile picture, returning
// the stored object URL. A storage failure aborts the submission.
func (s *IntakeService) storeImage(ctx context.Context, image *ImageUpload) (*string, error) {
	if image == nil {
		return nil, nil
	}
	if !blobstore.AllowedFile(image.Filename) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidFileType, image.Filename)
	}

	url, err := s.blobStore.Put(ctx, image.File, image.Filename)
	if err != nil {
		logger.Error().Err(err).Str("filename", image.Filename).Msg("Blob upload failed")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorageUnavailable, err)
	}

	return &url, nil
}

func fillCurrentUser(resp *dto.CurrentUserResponse, base *models.ProfileBase) {
	resp.FullName = base.FullName
	resp.ProfileImage = base.ProfileImage
	resp.Faculty = base.Faculty
	resp.Major = base.Major
}

// parseOptionalDate parses a strict YYYY-MM-DD date, treating the empty
// string as absent.
func parseOptionalDate(value, field string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, apperrors.NewInvalidDateError(field)
	}
	return &t, nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
