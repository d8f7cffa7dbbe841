package dto

import (
	"time"

	"github.com/dayotunde25/bsf/internal/app/models"
)

// CreateAnnouncementRequest represents data for posting an announcement
type CreateAnnouncementRequest struct {
	Title     string     `json:"title" binding:"required"`
	Content   string     `json:"content" binding:"required"`
	EventDate *time.Time `json:"eventDate"`
	Location  string     `json:"location"`
}

// RsvpRequest represents an RSVP submission
type RsvpRequest struct {
	Response string `json:"response" binding:"required,oneof=yes no maybe"`
}

// AnnouncementResponse represents an announcement
type AnnouncementResponse struct {
	ID        int64      `json:"id"`
	AuthorID  int64      `json:"authorId"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	EventDate *time.Time `json:"eventDate,omitempty"`
	Location  *string    `json:"location,omitempty"`
	RsvpCount int        `json:"rsvpCount"`
	CreatedAt time.Time  `json:"createdAt"`

	AuthorName string `json:"authorName,omitempty"`
}

// RsvpResponse represents the caller's own RSVP row
type RsvpResponse struct {
	ID             int64     `json:"id"`
	AnnouncementID int64     `json:"announcementId"`
	Response       string    `json:"response"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToAnnouncementResponse maps an announcement model to its API representation
func ToAnnouncementResponse(a *models.Announcement) AnnouncementResponse {
	response := AnnouncementResponse{
		ID:        a.ID,
		AuthorID:  a.AuthorID,
		Title:     a.Title,
		Content:   a.Content,
		EventDate: a.EventDate,
		Location:  a.Location,
		RsvpCount: a.RsvpCount,
		CreatedAt: a.CreatedAt,
	}

	if a.Author != nil {
		response.AuthorName = a.Author.FullName()
	}

	return response
}

// ToAnnouncementResponses maps a slice of announcement models
func ToAnnouncementResponses(items []*models.Announcement) []AnnouncementResponse {
	responses := make([]AnnouncementResponse, 0, len(items))
	for _, a := range items {
		responses = append(responses, ToAnnouncementResponse(a))
	}
	return responses
}
