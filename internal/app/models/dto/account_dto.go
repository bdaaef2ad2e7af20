package dto

// AssignRoleRequest represents the role selection submitted after signup.
// AcceptPolicy has no binding tag on purpose: a literal false must reach the
// service so it can answer with the policy error rather than a generic 400.
type AssignRoleRequest struct {
	AccountType  string `json:"accountType" binding:"required"`
	AcceptPolicy bool   `json:"acceptPolicy"`
}

// AssignRoleResponse is returned after a successful role assignment
type AssignRoleResponse struct {
	Role     string `json:"role" example:"student"`
	NextStep string `json:"nextStep" example:"student-form"`
}

// LifecycleResponse describes the account's onboarding stage
type LifecycleResponse struct {
	RoleAssigned bool   `json:"roleAssigned" example:"true"`
	Role         string `json:"role,omitempty" example:"graduate"`
	NextStep     string `json:"nextStep" example:"dashboard"`
}

// CurrentUserResponse is the profile summary for the authenticated account
type CurrentUserResponse struct {
	FullName     string  `json:"fullName"`
	Email        string  `json:"email"`
	ProfileImage *string `json:"profileImage"`
	Faculty      *string `json:"faculty"`
	Major        *string `json:"major"`
}
