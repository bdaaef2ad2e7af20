package dto

// RegisterRequest represents a new account registration
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// RegisterResponse is returned after a successful registration
type RegisterResponse struct {
	AccountID int64  `json:"accountId" example:"1"`
	Email     string `json:"email" example:"somchai@example.com"`
	Role      string `json:"role" example:"unassigned"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents session token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn" example:"3600"`
	AccountID   int64  `json:"accountId" example:"1"`
	Role        string `json:"role" example:"student"`
}
