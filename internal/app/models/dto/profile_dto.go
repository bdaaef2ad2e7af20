package dto

// StudentIntakeRequest represents the student profile form. Field names match
// the frontend form keys; dates are strict YYYY-MM-DD strings, empty means
// absent.
type StudentIntakeRequest struct {
	FullName                  string `form:"full_name" binding:"required"`
	StudentID                 string `form:"studentId" binding:"required"`
	Gender                    string `form:"gender"`
	DateOfBirth               string `form:"dateOfBirth"`
	PhoneNumber               string `form:"phoneNumber"`
	Faculty                   string `form:"faculty"`
	Major                     string `form:"major"`
	YearOfEnrollment          string `form:"yearOfEnrollment"`
	CurrentAcademicYear       string `form:"currentAcademicYear"`
	ExtracurricularActivities string `form:"extracurricularActivities"`
	AcademicProjects          string `form:"academicProjects"`
}

// GraduateIntakeRequest represents the graduate profile form. Internship and
// career detail fields are persisted only under their status sentinels; any
// other status silently drops them.
type GraduateIntakeRequest struct {
	FullName                  string `form:"full_name" binding:"required"`
	StudentID                 string `form:"studentId" binding:"required"`
	Gender                    string `form:"gender"`
	DateOfBirth               string `form:"dateOfBirth"`
	PhoneNumber               string `form:"phoneNumber"`
	Faculty                   string `form:"faculty"`
	Major                     string `form:"major"`
	YearOfEnrollment          string `form:"yearOfEnrollment"`
	CurrentAcademicYear       string `form:"currentAcademicYear"`
	ExtracurricularActivities string `form:"extracurricularActivities"`
	AcademicProjects          string `form:"academicProjects"`

	InternshipStatus     string `form:"internshipStatus"`
	InternshipCompany    string `form:"internshipCompany"`
	InternshipPosition   string `form:"internshipPosition"`
	InternshipDuration   string `form:"internshipDuration"`
	InternshipTask       string `form:"internshipTask"`
	InternshipExperience string `form:"internshipExperience"`

	CareerStatus     string `form:"careerStatus"`
	CareerCompany    string `form:"careerCompany"`
	CareerPosition   string `form:"careerPosition"`
	DateOfEmployment string `form:"dateOfEmployment"`
	CareerTask       string `form:"careerTask"`
	CareerExperience string `form:"careerExperience"`
}

// IntakeResponse is returned after a profile form submission
type IntakeResponse struct {
	ProfileID    int64   `json:"profileId" example:"1"`
	NextStep     string  `json:"nextStep" example:"dashboard"`
	ProfileImage *string `json:"profileImage,omitempty"`
}
