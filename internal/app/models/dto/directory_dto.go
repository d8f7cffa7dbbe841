package dto

import (
	"time"

	"github.com/dayotunde25/bsf/internal/app/models"
)

// DashboardStats aggregates community-wide counters for the dashboard
type DashboardStats struct {
	TotalAlumni   int64 `json:"totalAlumni"`
	ActiveMembers int64 `json:"activeMembers"`
	TotalEvents   int64 `json:"totalEvents"`
	TotalJobs     int64 `json:"totalJobs"`
}

// BirthdayResponse represents a member with an upcoming birthday
type BirthdayResponse struct {
	ID              int64      `json:"id"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	Birthday        *time.Time `json:"birthday,omitempty"`
	ProfileImageURL *string    `json:"profileImageUrl,omitempty"`
}

// ExecutivePostResponse represents an executive post held by a user
type ExecutivePostResponse struct {
	ID        int64     `json:"id"`
	PostTitle string    `json:"postTitle"`
	Session   string    `json:"session"`
	CreatedAt time.Time `json:"createdAt"`
}

// WorkerUnitResponse represents a worker unit membership of a user
type WorkerUnitResponse struct {
	ID        int64     `json:"id"`
	UnitName  string    `json:"unitName"`
	Session   string    `json:"session"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponses maps a slice of user models
func ToUserResponses(users []*models.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, ToUserResponse(u))
	}
	return responses
}

// ToBirthdayResponses maps user models to birthday rows
func ToBirthdayResponses(users []*models.User) []BirthdayResponse {
	responses := make([]BirthdayResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, BirthdayResponse{
			ID:              u.ID,
			FirstName:       u.FirstName,
			LastName:        u.LastName,
			Birthday:        u.Birthday,
			ProfileImageURL: u.ProfileImageURL,
		})
	}
	return responses
}

// ToExecutivePostResponses maps executive post models
func ToExecutivePostResponses(items []*models.ExecutivePost) []ExecutivePostResponse {
	responses := make([]ExecutivePostResponse, 0, len(items))
	for _, p := range items {
		responses = append(responses, ExecutivePostResponse{
			ID:        p.ID,
			PostTitle: p.PostTitle,
			Session:   p.Session,
			CreatedAt: p.CreatedAt,
		})
	}
	return responses
}

// ToWorkerUnitResponses maps worker unit models
func ToWorkerUnitResponses(items []*models.WorkerUnit) []WorkerUnitResponse {
	responses := make([]WorkerUnitResponse, 0, len(items))
	for _, w := range items {
		responses = append(responses, WorkerUnitResponse{
			ID:        w.ID,
			UnitName:  w.UnitName,
			Session:   w.Session,
			CreatedAt: w.CreatedAt,
		})
	}
	return responses
}
