package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dayotunde25/bsf/internal/app/models/dto"
	"github.com/dayotunde25/bsf/internal/app/services"
	"github.com/dayotunde25/bsf/internal/middleware"
)

// AnnouncementController handles announcements and event RSVPs
type AnnouncementController struct {
	announcementService services.AnnouncementService
}

// NewAnnouncementController creates a new AnnouncementController
func NewAnnouncementController(announcementService services.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{
		announcementService: announcementService,
	}
}

// List godoc
// @Summary List announcements
// @Description Retrieve all announcements, newest first
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.AnnouncementResponse}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /announcements [get]
func (c *AnnouncementController) List(ctx *gin.Context) {
	items, err := c.announcementService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToAnnouncementResponses(items), ""))
}

// Create godoc
// @Summary Post an announcement
// @Description Post a new announcement. Restricted to admins and members granted posting rights.
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAnnouncementRequest true "Announcement details"
// @Success 201 {object} dto.APIResponse{data=dto.AnnouncementResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail} "Posting rights required"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /announcements [post]
func (c *AnnouncementController) Create(ctx *gin.Context) {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}

	var req dto.CreateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request format").WithDetails(err.Error())))
		return
	}

	announcement, err := c.announcementService.Create(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.ToAnnouncementResponse(announcement), ""))
}

// Rsvp godoc
// @Summary RSVP to an announcement
// @Description Record the caller's RSVP. Each member may respond to an announcement once.
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement ID"
// @Param request body dto.RsvpRequest true "RSVP response (yes, no or maybe)"
// @Success 200 {object} dto.APIResponse{data=dto.AnnouncementResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Announcement not found"
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail} "Already responded"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /announcements/{id}/rsvp [post]
func (c *AnnouncementController) Rsvp(ctx *gin.Context) {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id", "announcement ID")
	if !ok {
		return
	}

	var req dto.RsvpRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request format").WithDetails(err.Error())))
		return
	}

	announcement, err := c.announcementService.Rsvp(ctx, userID, id, req.Response)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToAnnouncementResponse(announcement), ""))
}

// GetRsvp godoc
// @Summary Get the caller's RSVP
// @Description Retrieve the caller's own RSVP for an announcement, if any
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement ID"
// @Success 200 {object} dto.APIResponse{data=dto.RsvpResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "No RSVP recorded"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /announcements/{id}/rsvp [get]
func (c *AnnouncementController) GetRsvp(ctx *gin.Context) {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id", "announcement ID")
	if !ok {
		return
	}

	rsvp, err := c.announcementService.GetRsvp(ctx, userID, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.RsvpResponse{
		ID:             rsvp.ID,
		AnnouncementID: rsvp.AnnouncementID,
		Response:       rsvp.Response,
		CreatedAt:      rsvp.CreatedAt,
	}, ""))
}
