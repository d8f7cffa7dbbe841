package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dayotunde25/bsf/internal/app/models/dto"
	"github.com/dayotunde25/bsf/internal/app/services"
	"github.com/dayotunde25/bsf/internal/middleware"
)

// GalleryController handles the media gallery
type GalleryController struct {
	galleryService services.GalleryService
}

// NewGalleryController creates a new GalleryController
func NewGalleryController(galleryService services.GalleryService) *GalleryController {
	return &GalleryController{
		galleryService: galleryService,
	}
}

// Upload godoc
// @Summary Upload a gallery item
// @Description Upload a photo or video. The item stays hidden until an admin approves it.
// @Tags gallery
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Media file"
// @Param eventType formData string true "Event type tag"
// @Param session formData string true "Fellowship session (e.g. 2023/2024)"
// @Param description formData string false "Description"
// @Success 201 {object} dto.APIResponse{data=dto.MediaResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /gallery [post]
func (c *GalleryController) Upload(ctx *gin.Context) {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "No file provided").WithDetails(err.Error())))
		return
	}

	req := &dto.UploadMediaRequest{}
	if err := ctx.ShouldBind(req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "eventType and session are required").WithDetails(err.Error())))
		return
	}

	media, err := c.galleryService.Upload(ctx, userID, file, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.ToMediaResponse(media), ""))
}

// List godoc
// @Summary List approved gallery items
// @Description Retrieve approved gallery items, optionally filtered by event type and session
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Param eventType query string false "Event type filter"
// @Param session query string false "Session filter"
// @Success 200 {object} dto.APIResponse{data=[]dto.MediaResponse}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /gallery [get]
func (c *GalleryController) List(ctx *gin.Context) {
	items, err := c.galleryService.ListApproved(ctx, ctx.Query("eventType"), ctx.Query("session"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToMediaResponses(items), ""))
}
