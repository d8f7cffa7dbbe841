package models

import (
	"time"
)

// PostAssignment describes one admin post assignment: the post row, an
// optional academic-info update and the activity log entry, applied as a
// single unit of work.
type PostAssignment struct {
	UserID        int64
	Type          PostType
	Title         string
	Session       string
	Department    *string
	AcademicLevel *string
	Description   string
	AssignedBy    int64
}

// ExecutivePost defines a row in the 'executive_posts' table
type ExecutivePost struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	PostTitle string    `json:"postTitle" db:"post_title" example:"President"`
	Session   string    `json:"session" db:"session" example:"2023/2024"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	User *User `json:"user,omitempty"` // Relation, no db tag
}

// FamilyHead defines a row in the 'family_heads' table
type FamilyHead struct {
	ID         int64     `json:"id" db:"id"`
	UserID     int64     `json:"userId" db:"user_id"`
	FamilyName string    `json:"familyName" db:"family_name"`
	Session    string    `json:"session" db:"session"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`

	User *User `json:"user,omitempty"` // Relation, no db tag
}

// WorkerUnit defines a row in the 'worker_units' table
type WorkerUnit struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	UnitName  string    `json:"unitName" db:"unit_name" example:"Choir"`
	Session   string    `json:"session" db:"session"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	User *User `json:"user,omitempty"` // Relation, no db tag
}

// OtherPost defines a row in the 'other_posts' table
type OtherPost struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	PostTitle string    `json:"postTitle" db:"post_title"`
	Session   string    `json:"session" db:"session"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	User *User `json:"user,omitempty"` // Relation, no db tag
}
