package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dayotunde25/bsf/internal/app/models/dto"
	"github.com/dayotunde25/bsf/internal/app/services"
	"github.com/dayotunde25/bsf/internal/middleware"
)

// MentorshipController handles the mentorship registry
type MentorshipController struct {
	mentorshipService services.MentorshipService
}

// NewMentorshipController creates a new MentorshipController
func NewMentorshipController(mentorshipService services.MentorshipService) *MentorshipController {
	return &MentorshipController{
		mentorshipService: mentorshipService,
	}
}

// Register godoc
// @Summary Register for mentorship
// @Description Register the caller as a mentor or mentee
// @Tags mentorship
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateMentorshipRequest true "Registration details"
// @Success 201 {object} dto.APIResponse{data=dto.MentorshipResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /mentorship [post]
func (c *MentorshipController) Register(ctx *gin.Context) {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}

	var req dto.CreateMentorshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request format").WithDetails(err.Error())))
		return
	}

	mentorship, err := c.mentorshipService.Register(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.ToMentorshipResponse(mentorship), ""))
}

// ListMentors godoc
// @Summary List available mentors
// @Tags mentorship
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.MentorshipResponse}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /mentorship/mentors [get]
func (c *MentorshipController) ListMentors(ctx *gin.Context) {
	items, err := c.mentorshipService.ListMentors(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToMentorshipResponses(items), ""))
}

// ListMentees godoc
// @Summary List members seeking mentoring
// @Tags mentorship
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.MentorshipResponse}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /mentorship/mentees [get]
func (c *MentorshipController) ListMentees(ctx *gin.Context) {
	items, err := c.mentorshipService.ListMentees(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToMentorshipResponses(items), ""))
}

// ListMatches godoc
// @Summary List matched mentor-mentee pairs
// @Description Retrieve matched pairs with both participants' profiles
// @Tags mentorship
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.MentorshipResponse}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /mentorship/matches [get]
func (c *MentorshipController) ListMatches(ctx *gin.Context) {
	items, err := c.mentorshipService.ListMatches(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToMentorshipResponses(items), ""))
}
