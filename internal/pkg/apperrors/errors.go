package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrMissingParameter = errors.New("missing parameter")
	ErrBadRequest       = errors.New("bad request")
)

// Account errors
var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Lifecycle errors
var (
	ErrInvalidRole       = errors.New("invalid account role")
	ErrPolicyNotAccepted = errors.New("privacy policy not accepted")
	ErrRoleNotAssigned   = errors.New("account role not assigned")
)

// Profile errors
var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists for this account")
	ErrInvalidDate          = errors.New("invalid date format")
)

// Storage errors
var (
	ErrInvalidFileType    = errors.New("invalid file type")
	ErrStorageUnavailable = errors.New("blob storage unavailable")
)

// NewInvalidDateError wraps ErrInvalidDate with the offending field name so
// callers can tell which date input was malformed.
func NewInvalidDateError(field string) error {
	return fmt.Errorf("%w for %s", ErrInvalidDate, field)
}

// NewMissingParameterError wraps ErrMissingParameter with the parameter name.
func NewMissingParameterError(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingParameter, name)
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
