package dto

import (
	"time"

	"github.com/dayotunde25/bsf/internal/app/models"
)

// CreateTimelineEntryRequest represents a fellowship timeline entry submission
type CreateTimelineEntryRequest struct {
	Year        string `json:"year" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Type        string `json:"type" binding:"required,oneof=leadership event milestone"`
}

// TimelineEntryResponse represents a fellowship timeline entry
type TimelineEntryResponse struct {
	ID          int64     `json:"id"`
	Year        string    `json:"year"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToTimelineEntryResponses maps fellowship history models
func ToTimelineEntryResponses(items []*models.FellowshipHistory) []TimelineEntryResponse {
	responses := make([]TimelineEntryResponse, 0, len(items))
	for _, e := range items {
		responses = append(responses, TimelineEntryResponse{
			ID:          e.ID,
			Year:        e.Year,
			Title:       e.Title,
			Description: e.Description,
			Type:        string(e.Type),
			CreatedAt:   e.CreatedAt,
		})
	}
	return responses
}
