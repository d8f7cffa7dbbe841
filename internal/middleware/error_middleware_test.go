package middleware

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayotunde25/bsf/internal/app/models/dto"
	"github.com/dayotunde25/bsf/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func respondWith(err error) (*httptest.ResponseRecorder, dto.APIResponse) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	HandleAPIError(c, err)

	var body dto.APIResponse
	if unmarshalErr := json.Unmarshal(recorder.Body.Bytes(), &body); unmarshalErr != nil {
		panic(unmarshalErr)
	}
	return recorder, body
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"invalid credentials", apperrors.ErrInvalidCredentials, 401, dto.ErrorCodeInvalidCredentials},
		{"expired token", apperrors.ErrTokenExpired, 401, dto.ErrorCodeExpiredToken},
		{"invalid token", apperrors.ErrTokenInvalid, 401, dto.ErrorCodeInvalidToken},
		{"permission denied", apperrors.ErrPermissionDenied, 403, dto.ErrorCodeForbidden},
		{"admin required", apperrors.ErrAdminRequired, 403, dto.ErrorCodeForbidden},
		{"validation failed", apperrors.ErrValidationFailed, 400, dto.ErrorCodeValidationFailed},
		{"empty message", apperrors.ErrEmptyMessage, 400, dto.ErrorCodeValidationFailed},
		{"user not found", apperrors.ErrUserNotFound, 404, dto.ErrorCodeResourceNotFound},
		{"resource not found", apperrors.ErrResourceNotFound, 404, dto.ErrorCodeResourceNotFound},
		{"email already exists", apperrors.ErrEmailAlreadyExists, 409, dto.ErrorCodeResourceAlreadyExists},
		{"already approved", apperrors.ErrAlreadyApproved, 409, dto.ErrorCodeResourceConflict},
		{"duplicate support", apperrors.ErrDuplicateSupport, 409, dto.ErrorCodeResourceConflict},
		{"duplicate application", apperrors.ErrDuplicateApplication, 409, dto.ErrorCodeResourceConflict},
		{"duplicate rsvp", apperrors.ErrDuplicateRsvp, 409, dto.ErrorCodeResourceConflict},
		{"unclassified error", fmt.Errorf("pool exhausted"), 500, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder, body := respondWith(tt.err)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.NotEmpty(t, body.Error.Message)
		})
	}
}

func TestHandleAPIErrorWrappedErrors(t *testing.T) {
	// Services wrap sentinels with context; the mapping must still hold
	wrapped := fmt.Errorf("%w: cannot message yourself", apperrors.ErrValidationFailed)
	recorder, body := respondWith(wrapped)

	assert.Equal(t, 400, recorder.Code)
	assert.Equal(t, dto.ErrorCodeValidationFailed, body.Error.Code)
}

func TestHandleAPIErrorCustomError(t *testing.T) {
	err := apperrors.NewValidationError("postTitle", "postTitle is required for executive posts")
	recorder, body := respondWith(err)

	assert.Equal(t, 400, recorder.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, dto.ErrorCodeValidationFailed, body.Error.Code)
	assert.Equal(t, "postTitle is required for executive posts", body.Error.Message)

	details, ok := body.Error.Details.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "postTitle", details["field"])
}
