package dto

import (
	"time"

	"github.com/dayotunde25/bsf/internal/app/models"
)

// CreateMentorshipRequest represents a mentorship registration
type CreateMentorshipRequest struct {
	Interests  string `json:"interests"`
	Department string `json:"department"`
	IsMentor   bool   `json:"isMentor"`
}

// MentorshipResponse represents a mentorship registration or match
type MentorshipResponse struct {
	ID         int64     `json:"id"`
	MentorID   int64     `json:"mentorId"`
	MenteeID   *int64    `json:"menteeId,omitempty"`
	Interests  *string   `json:"interests,omitempty"`
	Department *string   `json:"department,omitempty"`
	Status     string    `json:"status"`
	IsMentor   bool      `json:"isMentor"`
	CreatedAt  time.Time `json:"createdAt"`

	Mentor *UserResponse `json:"mentor,omitempty"`
	Mentee *UserResponse `json:"mentee,omitempty"`
}

// ToMentorshipResponse maps a mentorship model to its API representation
func ToMentorshipResponse(m *models.Mentorship) MentorshipResponse {
	response := MentorshipResponse{
		ID:         m.ID,
		MentorID:   m.MentorID,
		MenteeID:   m.MenteeID,
		Interests:  m.Interests,
		Department: m.Department,
		Status:     string(m.Status),
		IsMentor:   m.IsMentor,
		CreatedAt:  m.CreatedAt,
	}

	if m.Mentor != nil {
		mentor := ToUserResponse(m.Mentor)
		response.Mentor = &mentor
	}
	if m.Mentee != nil {
		mentee := ToUserResponse(m.Mentee)
		response.Mentee = &mentee
	}

	return response
}

// ToMentorshipResponses maps a slice of mentorship models
func ToMentorshipResponses(items []*models.Mentorship) []MentorshipResponse {
	responses := make([]MentorshipResponse, 0, len(items))
	for _, m := range items {
		responses = append(responses, ToMentorshipResponse(m))
	}
	return responses
}
