package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dayotunde25/bsf/internal/app/models/dto"
)

// getUserIDFromContext reads the authenticated user's ID set by the JWT
// middleware. Writes a 401 response and returns false if it is missing.
func getUserIDFromContext(ctx *gin.Context) (int64, bool) {
	userIDInterface, exists := ctx.Get("userID")
	if !exists {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		errorDetail = errorDetail.WithDetails("User ID not found in request context")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return 0, false
	}

	userID, ok := userIDInterface.(int64)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
		errorDetail = errorDetail.WithDetails("Invalid user ID format")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
		return 0, false
	}

	return userID, true
}

// parseIDParam parses an int64 path parameter. Writes a 400 response and
// returns false if the value is not a positive integer.
func parseIDParam(ctx *gin.Context, name, label string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid "+label)))
		return 0, false
	}
	return id, true
}
