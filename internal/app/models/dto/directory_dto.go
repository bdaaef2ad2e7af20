package dto

// StudentSummary is the public projection of a student profile
type StudentSummary struct {
	FullName                  string  `json:"fullName"`
	Faculty                   *string `json:"faculty"`
	Major                     *string `json:"major"`
	ProfileImage              *string `json:"profileImage"`
	ExtracurricularActivities *string `json:"extracurricularActivities"`
	AcademicProjects          *string `json:"academicProjects"`
}

// GraduateSummary is the public projection of a graduate profile, including
// internship and career information
type GraduateSummary struct {
	FullName                  string  `json:"fullName"`
	Faculty                   *string `json:"faculty"`
	Major                     *string `json:"major"`
	ProfileImage              *string `json:"profileImage"`
	ExtracurricularActivities *string `json:"extracurricularActivities"`
	AcademicProjects          *string `json:"academicProjects"`

	InternshipStatus     *string `json:"internshipStatus"`
	InternshipCompany    *string `json:"internshipCompany"`
	InternshipPosition   *string `json:"internshipPosition"`
	InternshipDuration   *string `json:"internshipDuration"`
	InternshipTask       *string `json:"internshipTask"`
	InternshipExperience *string `json:"internshipExperience"`

	CareerStatus     *string `json:"careerStatus"`
	CareerCompany    *string `json:"careerCompany"`
	CareerPosition   *string `json:"careerPosition"`
	DateOfEmployment *string `json:"dateOfEmployment"` // ISO date or null
	CareerTask       *string `json:"careerTask"`
	CareerExperience *string `json:"careerExperience"`
}
