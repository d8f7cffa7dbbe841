package models

import (
	"time"
)

// FellowshipHistory defines a timeline entry based on the 'fellowship_history' table
type FellowshipHistory struct {
	ID          int64             `json:"id" db:"id"`
	Year        string            `json:"year" db:"year" example:"2019"`
	Title       string            `json:"title" db:"title"`
	Description *string           `json:"description,omitempty" db:"description"`
	Type        TimelineEntryType `json:"type" db:"type" example:"milestone"`
	CreatedAt   time.Time         `json:"createdAt" db:"created_at"`
}
