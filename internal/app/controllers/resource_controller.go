package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dayotunde25/bsf/internal/app/models/dto"
	"github.com/dayotunde25/bsf/internal/app/services"
	"github.com/dayotunde25/bsf/internal/middleware"
	"github.com/dayotunde25/bsf/internal/pkg/filestorage"
)

// ResourceController handles the resource library
type ResourceController struct {
	resourceService services.ResourceService
	storage         filestorage.FileStorage
}

// NewResourceController creates a new ResourceController
func NewResourceController(resourceService services.ResourceService, storage filestorage.FileStorage) *ResourceController {
	return &ResourceController{
		resourceService: resourceService,
		storage:         storage,
	}
}

// Upload godoc
// @Summary Upload a resource document
// @Description Upload a document to the resource library. The document stays hidden until an admin approves it.
// @Tags resources
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Document file"
// @Param title formData string true "Document title"
// @Param category formData string false "Category"
// @Param description formData string false "Description"
// @Success 201 {object} dto.APIResponse{data=dto.ResourceResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /resources [post]
func (c *ResourceController) Upload(ctx *gin.Context) {
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

	req := &dto.UploadResourceRequest{
		Title:       ctx.PostForm("title"),
		Category:    ctx.PostForm("category"),
		Description: ctx.PostForm("description"),
	}
	if req.Title == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Title is required").WithField("title")))
		return
	}

	resource, err := c.resourceService.Upload(ctx, userID, file, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.ToResourceResponse(resource), ""))
}

// List godoc
// @Summary List approved resources
// @Description Retrieve approved resource library documents, optionally filtered by category
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param category query string false "Category filter"
// @Success 200 {object} dto.APIResponse{data=[]dto.ResourceResponse}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /resources [get]
func (c *ResourceController) List(ctx *gin.Context) {
	items, err := c.resourceService.ListApproved(ctx, ctx.Query("category"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToResourceResponses(items), ""))
}

// Download godoc
// @Summary Download a resource
// @Description Serve a resource document and increment its download counter
// @Tags resources
// @Produce octet-stream
// @Param id path int true "Resource ID"
// @Success 200 {file} binary
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Resource not found"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /resources/{id}/download [get]
func (c *ResourceController) Download(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "resource ID")
	if !ok {
		return
	}

	resource, err := c.resourceService.Download(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.FileAttachment(c.storage.GetFullPath(resource.FileName), resource.OriginalName)
}
