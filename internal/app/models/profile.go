package models

import (
	"time"
)

// ProfileBase holds the fields shared by both profile variants.
type ProfileBase struct {
	ID                        int64      `json:"id" db:"id"`
	AccountID                 int64      `json:"accountId" db:"account_id"`
	FullName                  string     `json:"fullName" db:"full_name"`
	StudentID                 string     `json:"studentId" db:"student_id"` // Institution-assigned identifier, unique
	Gender                    *string    `json:"gender,omitempty" db:"gender"`
	DateOfBirth               *time.Time `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	Email                     string     `json:"email" db:"email"` // Mirrored from the owning account
	PhoneNumber               *string    `json:"phoneNumber,omitempty" db:"phone_number"`
	Faculty                   *string    `json:"faculty,omitempty" db:"faculty"`
	Major                     *string    `json:"major,omitempty" db:"major"`
	EnrollmentDate            *time.Time `json:"enrollmentDate,omitempty" db:"enrollment_date"`
	CurrentAcademicYear       *string    `json:"currentAcademicYear,omitempty" db:"current_academic_year"`
	ExtracurricularActivities *string    `json:"extracurricularActivities,omitempty" db:"extracurricular_activities"`
	AcademicProjects          *string    `json:"academicProjects,omitempty" db:"academic_projects"`
	ProfileImage              *string    `json:"profileImage,omitempty" db:"profile_image"` // Blob storage URL (nullable)
}

// StudentProfile defines the student variant based on the 'student_profiles' table
type StudentProfile struct {
	ProfileBase
}

// GraduateProfile defines the graduate variant based on the 'graduate_profiles'
// table. Internship and career details exist only while their status carries
// the matching sentinel; the constructors below enforce that.
type GraduateProfile struct {
	ProfileBase
	Internship Internship `json:"internship"`
	Career     Career     `json:"career"`
}

// InternshipDetails carries the fields that are only meaningful for a
// completed internship.
type InternshipDetails struct {
	Company    string `json:"company" db:"internship_company"`
	Position   string `json:"position" db:"internship_position"`
	Duration   string `json:"duration" db:"internship_duration"`
	Task       string `json:"task" db:"internship_task"`
	Experience string `json:"experience" db:"internship_experience"`
}

// Internship is a tagged variant: Details is nil unless Status is
// InternshipStatusCompleted.
type Internship struct {
	Status  string             `json:"status" db:"internship_status"`
	Details *InternshipDetails `json:"details,omitempty"`
}

// NewInternship builds an Internship, dropping details for any status other
// than the completed sentinel.
func NewInternship(status string, details InternshipDetails) Internship {
	if status != InternshipStatusCompleted {
		return Internship{Status: status}
	}
	return Internship{Status: status, Details: &details}
}

// Completed reports whether internship details are present.
func (i Internship) Completed() bool {
	return i.Details != nil
}

// CareerDetails carries the fields that are only meaningful for an employed
// graduate.
type CareerDetails struct {
	Company        string     `json:"company" db:"career_company"`
	Position       string     `json:"position" db:"career_position"`
	EmploymentDate *time.Time `json:"employmentDate,omitempty" db:"date_of_employment"`
	Task           string     `json:"task" db:"career_task"`
	Experience     string     `json:"experience" db:"career_experience"`
}

// Career is a tagged variant: Details is nil unless Status is
// CareerStatusEmployed.
type Career struct {
	Status  string         `json:"status" db:"career_status"`
	Details *CareerDetails `json:"details,omitempty"`
}

// NewCareer builds a Career, dropping details for any status other than the
// employed sentinel.
func NewCareer(status string, details CareerDetails) Career {
	if status != CareerStatusEmployed {
		return Career{Status: status}
	}
	return Career{Status: status, Details: &details}
}

// Employed reports whether career details are present.
func (c Career) Employed() bool {
	return c.Details != nil
}
