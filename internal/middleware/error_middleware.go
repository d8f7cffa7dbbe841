package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/dayotunde25/bsf/internal/app/models/dto"
	"github.com/dayotunde25/bsf/internal/pkg/apperrors"
)

// HandleAPIError maps application errors to HTTP responses. Controllers call
// this for every service error so the status mapping lives in one place.
func HandleAPIError(c *gin.Context, err error) {
	errorDetail := buildErrorDetail(err)

	// Carry CustomError message and details through to the response
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) {
		if customErr.Message != "" {
			errorDetail.Message = customErr.Message
		}
		if customErr.Details != nil {
			errorDetail = errorDetail.WithDetails(customErr.Details)
		}
	}

	c.JSON(statusForError(err), dto.APIResponse{
		Error: errorDetail,
	})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrInvalidFormat):
		return 401
	case errors.Is(err, apperrors.ErrPermissionDenied),
		errors.Is(err, apperrors.ErrAdminRequired):
		return 403
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrInvalidEmail),
		errors.Is(err, apperrors.ErrInvalidPassword),
		errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrEmptyMessage):
		return 400
	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrUserNotFound):
		return 404
	case errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrResourceAlreadyExists),
		errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrAlreadyApproved),
		errors.Is(err, apperrors.ErrDuplicateSupport),
		errors.Is(err, apperrors.ErrDuplicateApplication),
		errors.Is(err, apperrors.ErrDuplicateRsvp):
		return 409
	default:
		return 500
	}
}

func buildErrorDetail(err error) *dto.ErrorDetail {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrTokenExpired):
		return dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidFormat):
		return dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrAdminRequired):
		return dto.NewErrorDetail(dto.ErrorCodeForbidden, "Admin access required")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")
	case errors.Is(err, apperrors.ErrEmptyMessage):
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Message content cannot be empty")
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrInvalidEmail),
		errors.Is(err, apperrors.ErrInvalidPassword):
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
	case errors.Is(err, apperrors.ErrBadRequest):
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Bad request")
	case errors.Is(err, apperrors.ErrUserNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "User not found")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found")
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists")
	case errors.Is(err, apperrors.ErrAlreadyApproved):
		return dto.NewErrorDetail(dto.ErrorCodeResourceConflict, "Content already approved")
	case errors.Is(err, apperrors.ErrDuplicateSupport):
		return dto.NewErrorDetail(dto.ErrorCodeResourceConflict, "Prayer already supported")
	case errors.Is(err, apperrors.ErrDuplicateApplication):
		return dto.NewErrorDetail(dto.ErrorCodeResourceConflict, "Job already applied to")
	case errors.Is(err, apperrors.ErrDuplicateRsvp):
		return dto.NewErrorDetail(dto.ErrorCodeResourceConflict, "Announcement already responded to")
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrResourceAlreadyExists):
		return dto.NewErrorDetail(dto.ErrorCodeResourceConflict, "Conflict")
	default:
		return dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}
