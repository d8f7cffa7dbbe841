package dto

import (
	"time"

	"github.com/dayotunde25/bsf/internal/app/models"
)

// UpdateUserRoleRequest represents a single role change
type UpdateUserRoleRequest struct {
	Role                 string  `json:"role" binding:"required,oneof=ALUMNI MENTOR ADMIN"`
	CanPostAnnouncements *bool   `json:"canPostAnnouncements"`
	Reason               *string `json:"reason"`
}

// BulkRoleUpdateItem represents one entry of a bulk role update
type BulkRoleUpdateItem struct {
	UserID               int64  `json:"userId" binding:"required,min=1"`
	Role                 string `json:"role" binding:"required,oneof=ALUMNI MENTOR ADMIN"`
	CanPostAnnouncements *bool  `json:"canPostAnnouncements"`
}

// BulkUpdateRolesRequest represents a bulk role update
type BulkUpdateRolesRequest struct {
	Updates []BulkRoleUpdateItem `json:"updates" binding:"required,min=1,dive"`
	Reason  *string              `json:"reason"`
}

// BulkUpdateFailure records a single failed entry of a bulk update
type BulkUpdateFailure struct {
	UserID int64  `json:"userId"`
	Error  string `json:"error"`
}

// BulkUpdateResult summarizes a bulk role update: every entry is
// attempted and every failure is reported, never silently dropped.
type BulkUpdateResult struct {
	Updated  int                 `json:"updated"`
	Failed   int                 `json:"failed"`
	Failures []BulkUpdateFailure `json:"failures,omitempty"`
}

// AssignPostRequest represents a post assignment. Exactly one of the
// type-specific title fields is required depending on postType.
type AssignPostRequest struct {
	PostType   string `json:"postType" binding:"required,oneof=executive family_head worker_unit other"`
	PostTitle  string `json:"postTitle"`
	FamilyName string `json:"familyName"`
	UnitName   string `json:"unitName"`
	Session    string `json:"session" binding:"required"`

	// Optional academic info update applied alongside the assignment
	Department    string `json:"department"`
	AcademicLevel string `json:"academicLevel"`
}

// RoleHistoryResponse represents one audited role change
type RoleHistoryResponse struct {
	ID           int64     `json:"id"`
	PreviousRole string    `json:"previousRole"`
	NewRole      string    `json:"newRole"`
	Reason       *string   `json:"reason,omitempty"`
	ChangedBy    int64     `json:"changedBy"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ActivityLogResponse represents one activity log row
type ActivityLogResponse struct {
	ID           int64                  `json:"id"`
	ActivityType string                 `json:"activityType"`
	Description  string                 `json:"description"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt    time.Time              `json:"createdAt"`
}

// UserHistoryResponse combines role history and activity log for a user
type UserHistoryResponse struct {
	RoleHistory []RoleHistoryResponse `json:"roleHistory"`
	ActivityLog []ActivityLogResponse `json:"activityLog"`
}

// UserFilterRequest represents admin user filter parameters.
// Exactly one filter is applied: role, withoutPosts or session.
type UserFilterRequest struct {
	Role         string `form:"role"`
	WithoutPosts bool   `form:"withoutPosts"`
	Session      string `form:"session"`
}

// ToRoleHistoryResponses maps role history models
func ToRoleHistoryResponses(items []*models.RoleHistory) []RoleHistoryResponse {
	responses := make([]RoleHistoryResponse, 0, len(items))
	for _, h := range items {
		responses = append(responses, RoleHistoryResponse{
			ID:           h.ID,
			PreviousRole: string(h.PreviousRole),
			NewRole:      string(h.NewRole),
			Reason:       h.Reason,
			ChangedBy:    h.ChangedBy,
			CreatedAt:    h.CreatedAt,
		})
	}
	return responses
}

// ToActivityLogResponses maps activity log models
func ToActivityLogResponses(items []*models.UserActivityLog) []ActivityLogResponse {
	responses := make([]ActivityLogResponse, 0, len(items))
	for _, a := range items {
		responses = append(responses, ActivityLogResponse{
			ID:           a.ID,
			ActivityType: a.ActivityType,
			Description:  a.Description,
			Metadata:     a.Metadata,
			CreatedAt:    a.CreatedAt,
		})
	}
	return responses
}
