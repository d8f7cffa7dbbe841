package models

import (
	"time"
)

// Media defines a gallery item based on the 'media' table.
// Items start unapproved and become publicly visible only after
// an admin approves them.
type Media struct {
	ID           int64     `json:"id" db:"id"`
	UploaderID   int64     `json:"uploaderId" db:"uploader_id"`
	FileName     string    `json:"fileName" db:"file_name"`
	OriginalName string    `json:"originalName" db:"original_name"`
	MimeType     string    `json:"mimeType" db:"mime_type"`
	FileSize     int64     `json:"fileSize" db:"file_size"`
	EventType    *string   `json:"eventType,omitempty" db:"event_type"`
	Session      *string   `json:"session,omitempty" db:"session" example:"2023/2024"`
	Description  *string   `json:"description,omitempty" db:"description"`
	IsApproved   bool      `json:"isApproved" db:"is_approved"`
	ApprovedBy   *int64    `json:"approvedBy,omitempty" db:"approved_by"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`

	Uploader *User `json:"uploader,omitempty"` // Relation, no db tag
}
