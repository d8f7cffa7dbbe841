package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dayotunde25/bsf/internal/app/models/dto"
	"github.com/dayotunde25/bsf/internal/app/services"
	"github.com/dayotunde25/bsf/internal/middleware"
)

// UserController handles the member directory and dashboard
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// GetDirectory godoc
// @Summary List members
// @Description Retrieve the member directory, optionally filtered by a search over names and emails
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search term"
// @Success 200 {object} dto.APIResponse{data=[]dto.UserResponse}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /users [get]
func (c *UserController) GetDirectory(ctx *gin.Context) {
	users, err := c.userService.GetDirectory(ctx, ctx.Query("search"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToUserResponses(users), ""))
}

// GetUser godoc
// @Summary Get a member profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "User not found"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /users/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "user ID")
	if !ok {
		return
	}

	user, err := c.userService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToUserResponse(user), ""))
}

// GetUserPosts godoc
// @Summary Get a member's executive posts
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.ExecutivePostResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /users/{id}/posts [get]
func (c *UserController) GetUserPosts(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "user ID")
	if !ok {
		return
	}

	posts, err := c.userService.GetExecutivePosts(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToExecutivePostResponses(posts), ""))
}

// GetUserUnits godoc
// @Summary Get a member's worker units
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.WorkerUnitResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /users/{id}/units [get]
func (c *UserController) GetUserUnits(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "user ID")
	if !ok {
		return
	}

	units, err := c.userService.GetWorkerUnits(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToWorkerUnitResponses(units), ""))
}

// GetDashboardStats godoc
// @Summary Get dashboard statistics
// @Description Retrieve community-wide counters for the dashboard
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardStats}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /dashboard/stats [get]
func (c *UserController) GetDashboardStats(ctx *gin.Context) {
	stats, err := c.userService.GetDashboardStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats, ""))
}

// GetUpcomingBirthdays godoc
// @Summary List upcoming birthdays
// @Description Retrieve members with a birthday in the next 30 days
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.BirthdayResponse}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /dashboard/birthdays [get]
func (c *UserController) GetUpcomingBirthdays(ctx *gin.Context) {
	users, err := c.userService.GetUpcomingBirthdays(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToBirthdayResponses(users), ""))
}
