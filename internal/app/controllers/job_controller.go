package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dayotunde25/bsf/internal/app/models/dto"
	"github.com/dayotunde25/bsf/internal/app/services"
	"github.com/dayotunde25/bsf/internal/middleware"
)

// JobController handles the job board
type JobController struct {
	jobService services.JobService
}

// NewJobController creates a new JobController
func NewJobController(jobService services.JobService) *JobController {
	return &JobController{
		jobService: jobService,
	}
}

// Create godoc
// @Summary Post a job
// @Description Submit a job posting. The posting stays hidden until an admin approves it.
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateJobPostRequest true "Job details"
// @Success 201 {object} dto.APIResponse{data=dto.JobPostResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /jobs [post]
func (c *JobController) Create(ctx *gin.Context) {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}

	var req dto.CreateJobPostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request format").WithDetails(err.Error())))
		return
	}

	job, err := c.jobService.Create(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.ToJobPostResponse(job), ""))
}

// List godoc
// @Summary List approved job postings
// @Description Retrieve approved job postings, newest first
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.JobPostResponse}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /jobs [get]
func (c *JobController) List(ctx *gin.Context) {
	items, err := c.jobService.ListApproved(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToJobPostResponses(items), ""))
}

// Apply godoc
// @Summary Apply to a job
// @Description Submit an application for a job posting. Each member may apply to a posting once.
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job post ID"
// @Param request body dto.ApplyJobRequest false "Application details"
// @Success 200 {object} dto.APIResponse{data=dto.JobPostResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Job post not found"
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail} "Already applied"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /jobs/{id}/apply [post]
func (c *JobController) Apply(ctx *gin.Context) {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id", "job post ID")
	if !ok {
		return
	}

	// Cover letter is optional, an empty body is fine
	var req dto.ApplyJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request format").WithDetails(err.Error())))
		return
	}

	job, err := c.jobService.Apply(ctx, userID, id, req.CoverLetter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToJobPostResponse(job), ""))
}

// GetApplication godoc
// @Summary Get the caller's application for a job
// @Description Retrieve the caller's own application for a job posting, if any
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job post ID"
// @Success 200 {object} dto.APIResponse{data=dto.JobApplicationResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "No application found"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /jobs/{id}/application [get]
func (c *JobController) GetApplication(ctx *gin.Context) {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id", "job post ID")
	if !ok {
		return
	}

	application, err := c.jobService.GetApplication(ctx, userID, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.JobApplicationResponse{
		ID:          application.ID,
		JobPostID:   application.JobPostID,
		CoverLetter: application.CoverLetter,
		CreatedAt:   application.CreatedAt,
	}, ""))
}
