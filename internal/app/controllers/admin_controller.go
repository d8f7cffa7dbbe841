package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dayotunde25/bsf/internal/app/auth"
	"github.com/dayotunde25/bsf/internal/app/models/dto"
	"github.com/dayotunde25/bsf/internal/app/services"
	"github.com/dayotunde25/bsf/internal/middleware"
)

// AdminController handles the admin console: content approval, role
// management, post assignment, audit views and user filtering. Every
// handler re-resolves the caller's user row before acting.
type AdminController struct {
	adminService    services.AdminService
	galleryService  services.GalleryService
	resourceService services.ResourceService
	prayerService   services.PrayerService
	jobService      services.JobService
	authzService    *auth.AuthorizationService
}

// NewAdminController creates a new AdminController
func NewAdminController(
	adminService services.AdminService,
	galleryService services.GalleryService,
	resourceService services.ResourceService,
	prayerService services.PrayerService,
	jobService services.JobService,
	authzService *auth.AuthorizationService,
) *AdminController {
	return &AdminController{
		adminService:    adminService,
		galleryService:  galleryService,
		resourceService: resourceService,
		prayerService:   prayerService,
		jobService:      jobService,
		authzService:    authzService,
	}
}

// requireAdmin resolves the caller and verifies admin access. Writes the
// error response and returns false on failure.
func (c *AdminController) requireAdmin(ctx *gin.Context) (int64, bool) {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return 0, false
	}

	if _, err := c.authzService.RequireAdmin(ctx, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return 0, false
	}

	return userID, true
}

// ListPendingMedia godoc
// @Summary List gallery items awaiting approval
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.MediaResponse}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail} "Admin access required"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /admin/pending-media [get]
func (c *AdminController) ListPendingMedia(ctx *gin.Context) {
	if _, ok := c.requireAdmin(ctx); !ok {
		return
	}

	items, err := c.galleryService.ListPending(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToMediaResponses(items), ""))
}

// ListPendingResources godoc
// @Summary List resource documents awaiting approval
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ResourceResponse}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail} "Admin access required"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /admin/pending-resources [get]
func (c *AdminController) ListPendingResources(ctx *gin.Context) {
	if _, ok := c.requireAdmin(ctx); !ok {
		return
	}

	items, err := c.resourceService.ListPending(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToResourceResponses(items), ""))
}

// ListPendingPrayers godoc
// @Summary List prayer wall entries awaiting approval
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.PrayerResponse}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail} "Admin access required"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /admin/pending-prayers [get]
func (c *AdminController) ListPendingPrayers(ctx *gin.Context) {
	if _, ok := c.requireAdmin(ctx); !ok {
		return
	}

	items, err := c.prayerService.ListPending(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToPrayerResponses(items), ""))
}

// ListPendingJobs godoc
// @Summary List job postings awaiting approval
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.JobPostResponse}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail} "Admin access required"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /admin/pending-jobs [get]
func (c *AdminController) ListPendingJobs(ctx *gin.Context) {
	if _, ok := c.requireAdmin(ctx); !ok {
		return
	}

	items, err := c.jobService.ListPending(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToJobPostResponses(items), ""))
}

// ApproveMedia godoc
// @Summary Approve a gallery item
// @Description Approve a pending gallery item. Approving twice returns a conflict.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Media ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail} "Admin access required"
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Media not found"
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail} "Already approved"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /admin/approve-media/{id} [put]
func (c *AdminController) ApproveMedia(ctx *gin.Context) {
	adminID, ok := c.requireAdmin(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id", "media ID")
	if !ok {
		return
	}

	if err := c.galleryService.Approve(ctx, id, adminID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(
		dto.SuccessResponse{Message: "Media approved"}, ""))
}

// ApproveResource godoc
// @Summary Approve a resource document
// @Description Approve a pending resource. Approving twice returns a conflict.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resource ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail} "Admin access required"
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Resource not found"
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail} "Already approved"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /admin/approve-resource/{id} [put]
func (c *AdminController) ApproveResource(ctx *gin.Context) {
	adminID, ok := c.requireAdmin(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id", "resource ID")
	if !ok {
		return
	}

	if err := c.resourceService.Approve(ctx, id, adminID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(
		dto.SuccessResponse{Message: "Resource approved"}, ""))
}

// ApprovePrayer godoc
// @Summary Approve a prayer wall entry
// @Description Approve a pending prayer entry. Approving twice returns a conflict.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Prayer entry ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail} "Admin access required"
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Entry not found"
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail} "Already approved"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /admin/approve-prayer/{id} [put]
func (c *AdminController) ApprovePrayer(ctx *gin.Context) {
	adminID, ok := c.requireAdmin(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id", "prayer entry ID")
	if !ok {
		return
	}

	if err := c.prayerService.Approve(ctx, id, adminID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(
		dto.SuccessResponse{Message: "Prayer entry approved"}, ""))
}

// ApproveJob godoc
// @Summary Approve a job posting
// @Description Approve a pending job posting. Approving twice returns a conflict.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job post ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail} "Admin access required"
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Job post not found"
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail} "Already approved"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /admin/approve-job/{id} [put]
func (c *AdminController) ApproveJob(ctx *gin.Context) {
	adminID, ok := c.requireAdmin(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id", "job post ID")
	if !ok {
		return
	}

	if err := c.jobService.Approve(ctx, id, adminID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(
		dto.SuccessResponse{Message: "Job posting approved"}, ""))
}

// UpdateUserRole godoc
// @Summary Update a user's role
// @Description Change a user's role and record the change in the role history
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Param request body dto.UpdateUserRoleRequest true "Role change"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail} "Admin access required"
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "User not found"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /admin/update-user-role/{userId} [put]
func (c *AdminController) UpdateUserRole(ctx *gin.Context) {
	adminID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}

	userID, ok := parseIDParam(ctx, "userId", "user ID")
	if !ok {
		return
	}

	var req dto.UpdateUserRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request format").WithDetails(err.Error())))
		return
	}

	if err := c.adminService.UpdateUserRole(ctx, adminID, userID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(
		dto.SuccessResponse{Message: "User role updated"}, ""))
}

// BulkUpdateRoles godoc
// @Summary Update roles in bulk
// @Description Apply role changes for several users. Each entry is attempted independently and failures are reported in the summary.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BulkUpdateRolesRequest true "Role changes"
// @Success 200 {object} dto.APIResponse{data=dto.BulkUpdateResult}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail} "Admin access required"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /admin/bulk-update-roles [put]
func (c *AdminController) BulkUpdateRoles(ctx *gin.Context) {
	adminID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}

	var req dto.BulkUpdateRolesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request format").WithDetails(err.Error())))
		return
	}

	result, err := c.adminService.BulkUpdateRoles(ctx, adminID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result, ""))
}

// AssignPost godoc
// @Summary Assign a fellowship post
// @Description Record an executive, family head, worker unit or other post for a user
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Param request body dto.AssignPostRequest true "Post assignment"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail} "Admin access required"
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "User not found"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /admin/assign-post/{userId} [post]
func (c *AdminController) AssignPost(ctx *gin.Context) {
	adminID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}

	userID, ok := parseIDParam(ctx, "userId", "user ID")
	if !ok {
		return
	}

	var req dto.AssignPostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request format").WithDetails(err.Error())))
		return
	}

	if err := c.adminService.AssignPost(ctx, adminID, userID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(
		dto.SuccessResponse{Message: "Post assigned"}, ""))
}

// GetUserHistory godoc
// @Summary Get a user's audit history
// @Description Retrieve a user's role history and activity log, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.UserHistoryResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail} "Admin access required"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /admin/users/{userId}/history [get]
func (c *AdminController) GetUserHistory(ctx *gin.Context) {
	adminID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}

	userID, ok := parseIDParam(ctx, "userId", "user ID")
	if !ok {
		return
	}

	history, err := c.adminService.GetUserHistory(ctx, adminID, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(history, ""))
}

// FilterUsers godoc
// @Summary Filter users
// @Description Retrieve users by role, by members without posts, or by executive post session
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param role query string false "Role filter (ALUMNI, MENTOR, ADMIN)"
// @Param withoutPosts query bool false "Only members without any post"
// @Param session query string false "Executive post session filter (e.g. 2023/2024)"
// @Success 200 {object} dto.APIResponse{data=[]dto.UserResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail} "Admin access required"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /admin/users/filter [get]
func (c *AdminController) FilterUsers(ctx *gin.Context) {
	adminID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}

	var filter dto.UserFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid filter parameters").WithDetails(err.Error())))
		return
	}

	users, err := c.adminService.FilterUsers(ctx, adminID, &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToUserResponses(users), ""))
}
