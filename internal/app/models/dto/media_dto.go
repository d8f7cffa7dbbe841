package dto

import (
	"time"

	"github.com/dayotunde25/bsf/internal/app/models"
)

// UploadMediaRequest represents the form fields accompanying a media upload.
// Every gallery item is tagged with the event it belongs to and the session
// it was taken in.
type UploadMediaRequest struct {
	EventType   string `form:"eventType" binding:"required"`
	Session     string `form:"session" binding:"required"`
	Description string `form:"description"`
}

// MediaFilterRequest represents gallery filter parameters
type MediaFilterRequest struct {
	EventType string `form:"eventType"`
	Session   string `form:"session"`
}

// MediaResponse represents a gallery item
type MediaResponse struct {
	ID           int64     `json:"id"`
	UploaderID   int64     `json:"uploaderId"`
	FileName     string    `json:"fileName"`
	OriginalName string    `json:"originalName"`
	MimeType     string    `json:"mimeType"`
	FileSize     int64     `json:"fileSize"`
	EventType    *string   `json:"eventType,omitempty"`
	Session      *string   `json:"session,omitempty"`
	Description  *string   `json:"description,omitempty"`
	IsApproved   bool      `json:"isApproved"`
	CreatedAt    time.Time `json:"createdAt"`

	UploaderName string `json:"uploaderName,omitempty"`
}

// ToMediaResponse maps a media model to its API representation
func ToMediaResponse(media *models.Media) MediaResponse {
	response := MediaResponse{
		ID:           media.ID,
		UploaderID:   media.UploaderID,
		FileName:     media.FileName,
		OriginalName: media.OriginalName,
		MimeType:     media.MimeType,
		FileSize:     media.FileSize,
		EventType:    media.EventType,
		Session:      media.Session,
		Description:  media.Description,
		IsApproved:   media.IsApproved,
		CreatedAt:    media.CreatedAt,
	}

	if media.Uploader != nil {
		response.UploaderName = media.Uploader.FullName()
	}

	return response
}

// ToMediaResponses maps a slice of media models
func ToMediaResponses(items []*models.Media) []MediaResponse {
	responses := make([]MediaResponse, 0, len(items))
	for _, m := range items {
		responses = append(responses, ToMediaResponse(m))
	}
	return responses
}
