package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dayotunde25/bsf/internal/app/models/dto"
	"github.com/dayotunde25/bsf/internal/app/services"
	"github.com/dayotunde25/bsf/internal/middleware"
)

// TimelineController handles the fellowship timeline
type TimelineController struct {
	timelineService services.TimelineService
}

// NewTimelineController creates a new TimelineController
func NewTimelineController(timelineService services.TimelineService) *TimelineController {
	return &TimelineController{
		timelineService: timelineService,
	}
}

// List godoc
// @Summary List fellowship timeline entries
// @Description Retrieve the fellowship history timeline
// @Tags timeline
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.TimelineEntryResponse}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /timeline [get]
func (c *TimelineController) List(ctx *gin.Context) {
	entries, err := c.timelineService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToTimelineEntryResponses(entries), ""))
}

// Create godoc
// @Summary Add a timeline entry
// @Description Record a new fellowship timeline entry. Admin only.
// @Tags timeline
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTimelineEntryRequest true "Entry details"
// @Success 201 {object} dto.APIResponse{data=dto.TimelineEntryResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail} "Admin access required"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /timeline [post]
func (c *TimelineController) Create(ctx *gin.Context) {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}

	var req dto.CreateTimelineEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request format").WithDetails(err.Error())))
		return
	}

	entry, err := c.timelineService.Create(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.TimelineEntryResponse{
		ID:          entry.ID,
		Year:        entry.Year,
		Title:       entry.Title,
		Description: entry.Description,
		Type:        string(entry.Type),
		CreatedAt:   entry.CreatedAt,
	}, ""))
}
