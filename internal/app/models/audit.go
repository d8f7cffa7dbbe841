package models

import (
	"time"
)

// RoleHistory defines a row in the 'role_history' table.
// A row is written in the same transaction as the role change itself.
type RoleHistory struct {
	ID           int64     `json:"id" db:"id"`
	UserID       int64     `json:"userId" db:"user_id"`
	PreviousRole Role      `json:"previousRole" db:"previous_role"`
	NewRole      Role      `json:"newRole" db:"new_role"`
	Reason       *string   `json:"reason,omitempty" db:"reason"`
	ChangedBy    int64     `json:"changedBy" db:"changed_by"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`

	ChangedByUser *User `json:"changedByUser,omitempty"` // Relation, no db tag
}

// UserActivityLog defines a row in the 'user_activity_log' table
type UserActivityLog struct {
	ID           int64                  `json:"id" db:"id"`
	UserID       int64                  `json:"userId" db:"user_id"`
	ActivityType string                 `json:"activityType" db:"activity_type" example:"post_assignment"`
	Description  string                 `json:"description" db:"description"`
	Metadata     map[string]interface{} `json:"metadata,omitempty" db:"metadata"`
	CreatedAt    time.Time              `json:"createdAt" db:"created_at"`
}
