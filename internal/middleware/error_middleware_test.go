package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peerapat/gradlink/internal/app/models/dto"
	"github.com/peerapat/gradlink/internal/pkg/apperrors"
)

func runHandler(t *testing.T, err error) (int, dto.APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, err)

	var body dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestHandleAPIError_StatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"account not found", apperrors.ErrAccountNotFound, 404, dto.ErrorCodeResourceNotFound},
		{"profile not found", apperrors.ErrProfileNotFound, 404, dto.ErrorCodeResourceNotFound},
		{"email exists", apperrors.ErrEmailAlreadyExists, 409, dto.ErrorCodeResourceAlreadyExists},
		{"profile exists", apperrors.ErrProfileAlreadyExists, 409, dto.ErrorCodeResourceAlreadyExists},
		{"conflict", apperrors.ErrConflict, 409, dto.ErrorCodeConflict},
		{"bad credentials", apperrors.ErrInvalidCredentials, 401, dto.ErrorCodeInvalidCredentials},
		{"expired token", apperrors.ErrTokenExpired, 401, dto.ErrorCodeExpiredToken},
		{"disabled account", apperrors.ErrAccountDisabled, 403, dto.ErrorCodeAccountDisabled},
		{"invalid role", apperrors.ErrInvalidRole, 400, dto.ErrorCodeInvalidRole},
		{"policy declined", apperrors.ErrPolicyNotAccepted, 400, dto.ErrorCodePolicyNotAccepted},
		{"role not assigned", apperrors.ErrRoleNotAssigned, 400, dto.ErrorCodeRoleNotAssigned},
		{"invalid date", apperrors.NewInvalidDateError("dateOfBirth"), 400, dto.ErrorCodeInvalidDate},
		{"missing parameter", apperrors.NewMissingParameterError("faculty"), 400, dto.ErrorCodeMissingParameter},
		{"bad file type", apperrors.ErrInvalidFileType, 400, dto.ErrorCodeInvalidFileType},
		{"storage down", apperrors.ErrStorageUnavailable, 502, dto.ErrorCodeStorageUnavailable},
		{"unknown", assert.AnError, 500, dto.ErrorCodeInternalServer},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := runHandler(t, tc.err)

			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, dto.StatusError, body.Status)
			require.NotNil(t, body.Error)
			assert.Equal(t, tc.wantCode, body.Error.Code)
		})
	}
}

func TestHandleAPIError_WrappedErrorsKeepField(t *testing.T) {
	status, body := runHandler(t, apperrors.NewInvalidDateError("yearOfEnrollment"))

	assert.Equal(t, 400, status)
	assert.Contains(t, body.Error.Message, "yearOfEnrollment")
}
