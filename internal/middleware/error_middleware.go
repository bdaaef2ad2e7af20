package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/peerapat/gradlink/internal/app/models/dto"
	"github.com/peerapat/gradlink/internal/pkg/apperrors"
	"github.com/peerapat/gradlink/internal/pkg/logger"
)

// HandleAPIError maps application errors to their HTTP status and error
// code. Controllers funnel every service error through here so status
// mapping lives in exactly one place.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrAccountNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Account not found")
	case errors.Is(err, apperrors.ErrProfileNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Profile not found")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found")

	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already exists")
	case errors.Is(err, apperrors.ErrProfileAlreadyExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Profile already exists for this account")
	case errors.Is(err, apperrors.ErrConflict):
		respondError(c, http.StatusConflict, dto.ErrorCodeConflict, err.Error())

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrAccountDisabled):
		respondError(c, http.StatusForbidden, dto.ErrorCodeAccountDisabled, "Account is disabled")

	case errors.Is(err, apperrors.ErrInvalidRole):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeInvalidRole, err.Error())
	case errors.Is(err, apperrors.ErrPolicyNotAccepted):
		respondError(c, http.StatusBadRequest, dto.ErrorCodePolicyNotAccepted, "Privacy policy must be accepted")
	case errors.Is(err, apperrors.ErrRoleNotAssigned):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeRoleNotAssigned, "Account role not assigned yet")

	case errors.Is(err, apperrors.ErrInvalidDate):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeInvalidDate, err.Error())
	case errors.Is(err, apperrors.ErrMissingParameter):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeMissingParameter, err.Error())
	case errors.Is(err, apperrors.ErrInvalidEmail):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeInvalidEmail, "Invalid email address")
	case errors.Is(err, apperrors.ErrInvalidPassword):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeInvalidPassword, "Password does not meet requirements")
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, err.Error())

	case errors.Is(err, apperrors.ErrInvalidFileType):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeInvalidFileType, "File type not allowed")
	case errors.Is(err, apperrors.ErrStorageUnavailable):
		respondError(c, http.StatusBadGateway, dto.ErrorCodeStorageUnavailable, "Image storage is unavailable")

	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		respondError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

// HandleValidationError maps gin binding failures to a 400 envelope.
func HandleValidationError(c *gin.Context, err error) {
	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").WithDetails(err.Error())
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
}

func respondError(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
