package dto

import (
	"time"

	"github.com/dayotunde25/bsf/internal/app/models"
)

// CreatePrayerRequest represents data for submitting a prayer wall entry
type CreatePrayerRequest struct {
	Content     string `json:"content" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=prayer testimony"`
	IsAnonymous bool   `json:"isAnonymous"`
}

// PrayerResponse represents a prayer wall entry.
// Anonymous entries do not reveal the author's name.
type PrayerResponse struct {
	ID           int64     `json:"id"`
	Content      string    `json:"content"`
	Type         string    `json:"type"`
	IsAnonymous  bool      `json:"isAnonymous"`
	PrayingCount int       `json:"prayingCount"`
	IsApproved   bool      `json:"isApproved"`
	CreatedAt    time.Time `json:"createdAt"`

	AuthorName string `json:"authorName,omitempty"`
}

// PrayerSupportResponse represents the caller's own support row
type PrayerSupportResponse struct {
	ID           int64     `json:"id"`
	PrayerWallID int64     `json:"prayerWallId"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToPrayerResponse maps a prayer entry model to its API representation
func ToPrayerResponse(entry *models.PrayerEntry) PrayerResponse {
	response := PrayerResponse{
		ID:           entry.ID,
		Content:      entry.Content,
		Type:         string(entry.Type),
		IsAnonymous:  entry.IsAnonymous,
		PrayingCount: entry.PrayingCount,
		IsApproved:   entry.IsApproved,
		CreatedAt:    entry.CreatedAt,
	}

	if !entry.IsAnonymous && entry.Author != nil {
		response.AuthorName = entry.Author.FullName()
	}

	return response
}

// ToPrayerResponses maps a slice of prayer entry models
func ToPrayerResponses(items []*models.PrayerEntry) []PrayerResponse {
	responses := make([]PrayerResponse, 0, len(items))
	for _, p := range items {
		responses = append(responses, ToPrayerResponse(p))
	}
	return responses
}
