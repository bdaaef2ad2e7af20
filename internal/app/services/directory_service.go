package services

import (
	"context"
	"strings"
	"time"

	"github.com/peerapat/gradlink/internal/app/models"
	"github.com/peerapat/gradlink/internal/app/models/dto"
	"github.com/peerapat/gradlink/internal/app/repositories"
	"github.com/peerapat/gradlink/internal/pkg/apperrors"
)

// DirectoryService serves the read-only listing and aggregation queries.
// Empty result sets are ordinary successes, not errors.
type DirectoryService struct {
	studentRepo  repositories.IStudentProfileRepository
	graduateRepo repositories.IGraduateProfileRepository
}

// NewDirectoryService creates a new DirectoryService
func NewDirectoryService(
	studentRepo repositories.IStudentProfileRepository,
	graduateRepo repositories.IGraduateProfileRepository,
) *DirectoryService {
	return &DirectoryService{
		studentRepo:  studentRepo,
		graduateRepo: graduateRepo,
	}
}

// ListStudents returns all student profiles as public summaries.
func (s *DirectoryService) ListStudents(ctx context.Context) ([]dto.StudentSummary, error) {
	profiles, err := s.studentRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.StudentSummary, 0, len(profiles))
	for _, p := range profiles {
		summaries = append(summaries, dto.StudentSummary{
			FullName:                  p.FullName,
			Faculty:                   p.Faculty,
			Major:                     p.Major,
			ProfileImage:              p.ProfileImage,
			ExtracurricularActivities: p.ExtracurricularActivities,
			AcademicProjects:          p.AcademicProjects,
		})
	}

	return summaries, nil
}

// ListGraduates returns all graduate profiles as public summaries.
func (s *DirectoryService) ListGraduates(ctx context.Context) ([]dto.GraduateSummary, error) {
	profiles, err := s.graduateRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return graduateSummaries(profiles), nil
}

// ListGraduatesByFaculty filters graduates by exact faculty match. The
// filter value is mandatory.
func (s *DirectoryService) ListGraduatesByFaculty(ctx context.Context, faculty string) ([]dto.GraduateSummary, error) {
	if strings.TrimSpace(faculty) == "" {
		return nil, apperrors.NewMissingParameterError("faculty")
	}

	profiles, err := s.graduateRepo.ListByFaculty(ctx, faculty)
	if err != nil {
		return nil, err
	}
	return graduateSummaries(profiles), nil
}

// ListGraduatesByCompany filters graduates by their employer. The filter
// value is mandatory.
func (s *DirectoryService) ListGraduatesByCompany(ctx context.Context, company string) ([]dto.GraduateSummary, error) {
	if strings.TrimSpace(company) == "" {
		return nil, apperrors.NewMissingParameterError("company")
	}

	profiles, err := s.graduateRepo.ListByCompany(ctx, company)
	if err != nil {
		return nil, err
	}
	return graduateSummaries(profiles), nil
}

// ListGraduatesByCareer filters graduates by career position. The filter
// value is mandatory.
func (s *DirectoryService) ListGraduatesByCareer(ctx context.Context, position string) ([]dto.GraduateSummary, error) {
	if strings.TrimSpace(position) == "" {
		return nil, apperrors.NewMissingParameterError("career")
	}

	profiles, err := s.graduateRepo.ListByCareerPosition(ctx, position)
	if err != nil {
		return nil, err
	}
	return graduateSummaries(profiles), nil
}

// ListFaculties returns the distinct faculties found on graduate profiles.
func (s *DirectoryService) ListFaculties(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, s.graduateRepo.DistinctFaculties)
}

// ListCompanies returns the distinct employers found on graduate profiles.
func (s *DirectoryService) ListCompanies(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, s.graduateRepo.DistinctCompanies)
}

// ListCareers returns the distinct career positions found on graduate
// profiles.
func (s *DirectoryService) ListCareers(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, s.graduateRepo.DistinctCareerPositions)
}

func (s *DirectoryService) distinct(ctx context.Context, fetch func(context.Context) ([]string, error)) ([]string, error) {
	values, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}

func graduateSummaries(profiles []*models.GraduateProfile) []dto.GraduateSummary {
	summaries := make([]dto.GraduateSummary, 0, len(profiles))
	for _, p := range profiles {
		summary := dto.GraduateSummary{
			FullName:                  p.FullName,
			Faculty:                   p.Faculty,
			Major:                     p.Major,
			ProfileImage:              p.ProfileImage,
			ExtracurricularActivities: p.ExtracurricularActivities,
			AcademicProjects:          p.AcademicProjects,
			InternshipStatus:          optionalString(p.Internship.Status),
			CareerStatus:              optionalString(p.Career.Status),
		}
		if d := p.Internship.Details; d != nil {
			summary.InternshipCompany = &d.Company
			summary.InternshipPosition = &d.Position
			summary.InternshipDuration = &d.Duration
			summary.InternshipTask = &d.Task
			summary.InternshipExperience = &d.Experience
		}
		if d := p.Career.Details; d != nil {
			summary.CareerCompany = &d.Company
			summary.CareerPosition = &d.Position
			summary.CareerTask = &d.Task
			summary.CareerExperience = &d.Experience
			if d.EmploymentDate != nil {
				date := d.EmploymentDate.Format(time.DateOnly)
				summary.DateOfEmployment = &date
			}
		}
		summaries = append(summaries, summary)
	}

	return summaries
}
