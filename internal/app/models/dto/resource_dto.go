package dto

import (
	"time"

	"github.com/dayotunde25/bsf/internal/app/models"
)

// UploadResourceRequest represents the form fields accompanying a resource upload
type UploadResourceRequest struct {
	Title       string `form:"title" binding:"required"`
	Category    string `form:"category"`
	Description string `form:"description"`
}

// ResourceFilterRequest represents resource library filter parameters
type ResourceFilterRequest struct {
	Category string `form:"category"`
}

// ResourceResponse represents a resource library document
type ResourceResponse struct {
	ID            int64     `json:"id"`
	UploaderID    int64     `json:"uploaderId"`
	Title         string    `json:"title"`
	Category      *string   `json:"category,omitempty"`
	FileName      string    `json:"fileName"`
	OriginalName  string    `json:"originalName"`
	MimeType      string    `json:"mimeType"`
	FileSize      int64     `json:"fileSize"`
	Description   *string   `json:"description,omitempty"`
	DownloadCount int       `json:"downloadCount"`
	IsApproved    bool      `json:"isApproved"`
	CreatedAt     time.Time `json:"createdAt"`

	UploaderName string `json:"uploaderName,omitempty"`
}

// ToResourceResponse maps a resource model to its API representation
func ToResourceResponse(resource *models.Resource) ResourceResponse {
	response := ResourceResponse{
		ID:            resource.ID,
		UploaderID:    resource.UploaderID,
		Title:         resource.Title,
		Category:      resource.Category,
		FileName:      resource.FileName,
		OriginalName:  resource.OriginalName,
		MimeType:      resource.MimeType,
		FileSize:      resource.FileSize,
		Description:   resource.Description,
		DownloadCount: resource.DownloadCount,
		IsApproved:    resource.IsApproved,
		CreatedAt:     resource.CreatedAt,
	}

	if resource.Uploader != nil {
		response.UploaderName = resource.Uploader.FullName()
	}

	return response
}

// ToResourceResponses maps a slice of resource models
func ToResourceResponses(items []*models.Resource) []ResourceResponse {
	responses := make([]ResourceResponse, 0, len(items))
	for _, r := range items {
		responses = append(responses, ToResourceResponse(r))
	}
	return responses
}
