package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dayotunde25/bsf/internal/app/models/dto"
	"github.com/dayotunde25/bsf/internal/app/services"
	"github.com/dayotunde25/bsf/internal/middleware"
)

// PrayerController handles the prayer wall
type PrayerController struct {
	prayerService services.PrayerService
}

// NewPrayerController creates a new PrayerController
func NewPrayerController(prayerService services.PrayerService) *PrayerController {
	return &PrayerController{
		prayerService: prayerService,
	}
}

// Create godoc
// @Summary Submit a prayer request or testimony
// @Description Post a prayer wall entry. The entry stays hidden until an admin approves it.
// @Tags prayers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePrayerRequest true "Entry details"
// @Success 201 {object} dto.APIResponse{data=dto.PrayerResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /prayers [post]
func (c *PrayerController) Create(ctx *gin.Context) {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}

	var req dto.CreatePrayerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request format").WithDetails(err.Error())))
		return
	}

	entry, err := c.prayerService.Create(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.ToPrayerResponse(entry), ""))
}

// List godoc
// @Summary List approved prayer wall entries
// @Description Retrieve approved prayer requests and testimonies, newest first. Anonymous entries carry no author name.
// @Tags prayers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.PrayerResponse}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /prayers [get]
func (c *PrayerController) List(ctx *gin.Context) {
	items, err := c.prayerService.ListApproved(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToPrayerResponses(items), ""))
}

// Support godoc
// @Summary Support a prayer entry
// @Description Record that the caller is praying for an entry. Each member may support an entry once.
// @Tags prayers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Prayer entry ID"
// @Success 200 {object} dto.APIResponse{data=dto.PrayerResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Entry not found"
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail} "Already supported"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /prayers/{id}/support [post]
func (c *PrayerController) Support(ctx *gin.Context) {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id", "prayer entry ID")
	if !ok {
		return
	}

	entry, err := c.prayerService.Support(ctx, userID, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToPrayerResponse(entry), ""))
}

// GetSupport godoc
// @Summary Get the caller's support for an entry
// @Description Retrieve the caller's own support record for a prayer entry, if any
// @Tags prayers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Prayer entry ID"
// @Success 200 {object} dto.APIResponse{data=dto.PrayerSupportResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "No support recorded"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /prayers/{id}/support [get]
func (c *PrayerController) GetSupport(ctx *gin.Context) {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id", "prayer entry ID")
	if !ok {
		return
	}

	support, err := c.prayerService.GetSupport(ctx, userID, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.PrayerSupportResponse{
		ID:           support.ID,
		PrayerWallID: support.PrayerWallID,
		CreatedAt:    support.CreatedAt,
	}, ""))
}
