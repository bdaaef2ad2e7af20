package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peerapat/gradlink/internal/app/models"
	"github.com/peerapat/gradlink/internal/app/services"
	"github.com/peerapat/gradlink/internal/pkg/apperrors"
)

func newDirectoryFixture() (*services.DirectoryService, *MockStudentProfileRepository, *MockGraduateProfileRepository) {
	studentRepo := new(MockStudentProfileRepository)
	graduateRepo := new(MockGraduateProfileRepository)
	svc := services.NewDirectoryService(studentRepo, graduateRepo)
	return svc, studentRepo, graduateRepo
}

func TestListStudents_EmptyIsSuccess(t *testing.T) {
	ctx := context.Background()
	svc, studentRepo, _ := newDirectoryFixture()

	studentRepo.On("ListAll", ctx).Return([]*models.StudentProfile{}, nil)

	summaries, err := svc.ListStudents(ctx)

	require.NoError(t, err)
	assert.NotNil(t, summaries)
	assert.Empty(t, summaries)
}

func TestListGraduates_FlattensVariants(t *testing.T) {
	ctx := context.Background()
	svc, _, graduateRepo := newDirectoryFixture()

	employmentDate := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	graduateRepo.On("ListAll", ctx).Return([]*models.GraduateProfile{
		{
			ProfileBase: models.ProfileBase{FullName: "Pranee Suksai"},
			Internship:  models.Internship{Status: "not_completed"},
			Career: models.Career{
				Status: "employed",
				Details: &models.CareerDetails{
					Company:        "DataWorks",
					Position:       "Backend Engineer",
					EmploymentDate: &employmentDate,
				},
			},
		},
	}, nil)

	summaries, err := svc.ListGraduates(ctx)

	require.NoError(t, err)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, "Pranee Suksai", s.FullName)
	require.NotNil(t, s.InternshipStatus)
	assert.Equal(t, "not_completed", *s.InternshipStatus)
	assert.Nil(t, s.InternshipCompany)
	require.NotNil(t, s.CareerCompany)
	assert.Equal(t, "DataWorks", *s.CareerCompany)
	require.NotNil(t, s.DateOfEmployment)
	assert.Equal(t, "2023-06-01", *s.DateOfEmployment)
}

func TestListGraduatesByFaculty_MissingParameter(t *testing.T) {
	ctx := context.Background()
	svc, _, graduateRepo := newDirectoryFixture()

	_, err := svc.ListGraduatesByFaculty(ctx, "  ")

	require.ErrorIs(t, err, apperrors.ErrMissingParameter)
	assert.Contains(t, err.Error(), "faculty")
	graduateRepo.AssertNotCalled(t, "ListByFaculty")
}

func TestListGraduatesByCompany_MissingParameter(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newDirectoryFixture()

	_, err := svc.ListGraduatesByCompany(ctx, "")

	require.ErrorIs(t, err, apperrors.ErrMissingParameter)
	assert.Contains(t, err.Error(), "company")
}

func TestListGraduatesByCareer_Filters(t *testing.T) {
	ctx := context.Background()
	svc, _, graduateRepo := newDirectoryFixture()

	graduateRepo.On("ListByCareerPosition", ctx, "Backend Engineer").Return([]*models.GraduateProfile{}, nil)

	summaries, err := svc.ListGraduatesByCareer(ctx, "Backend Engineer")

	require.NoError(t, err)
	assert.Empty(t, summaries)
	graduateRepo.AssertExpectations(t)
}

func TestListFaculties_NilBecomesEmptySlice(t *testing.T) {
	ctx := context.Background()
	svc, _, graduateRepo := newDirectoryFixture()

	graduateRepo.On("DistinctFaculties", ctx).Return(nil, nil)

	values, err := svc.ListFaculties(ctx)

	require.NoError(t, err)
	assert.NotNil(t, values)
	assert.Empty(t, values)
}

func TestListCompanies(t *testing.T) {
	ctx := context.Background()
	svc, _, graduateRepo := newDirectoryFixture()

	graduateRepo.On("DistinctCompanies", ctx).Return([]string{"DataWorks", "TechCorp"}, nil)

	values, err := svc.ListCompanies(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"DataWorks", "TechCorp"}, values)
}
