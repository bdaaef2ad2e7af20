package models

// Role defines the account role type. The set is closed: accounts start as
// RoleUnassigned and move exactly once to RoleStudent or RoleGraduate.
// RoleAdmin exists for seeded operator accounts and is never self-assignable.
type Role string

const (
	RoleUnassigned Role = "unassigned"
	RoleStudent    Role = "student"
	RoleGraduate   Role = "graduate"
	RoleAdmin      Role = "admin"
)

// Assignable reports whether the role may be chosen during onboarding.
func (r Role) Assignable() bool {
	return r == RoleStudent || r == RoleGraduate
}

// NextStep is the routing decision returned by the lifecycle controller.
type NextStep string

const (
	StepSelectRole   NextStep = "select-role"
	StepStudentForm  NextStep = "student-form"
	StepGraduateForm NextStep = "graduate-form"
	StepDashboard    NextStep = "dashboard"
)

// InternshipStatusCompleted is the only internship status under which
// internship detail fields are persisted.
const InternshipStatusCompleted = "completed"

// CareerStatusEmployed is the only career status under which career detail
// fields are persisted.
const CareerStatusEmployed = "employed"
