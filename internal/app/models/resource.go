package models

import (
	"time"
)

// Resource defines a library document based on the 'resources' table
type Resource struct {
	ID            int64     `json:"id" db:"id"`
	UploaderID    int64     `json:"uploaderId" db:"uploader_id"`
	Title         string    `json:"title" db:"title"`
	Category      *string   `json:"category,omitempty" db:"category"`
	FileName      string    `json:"fileName" db:"file_name"`
	OriginalName  string    `json:"originalName" db:"original_name"`
	MimeType      string    `json:"mimeType" db:"mime_type"`
	FileSize      int64     `json:"fileSize" db:"file_size"`
	Description   *string   `json:"description,omitempty" db:"description"`
	DownloadCount int       `json:"downloadCount" db:"download_count"`
	IsApproved    bool      `json:"isApproved" db:"is_approved"`
	ApprovedBy    *int64    `json:"approvedBy,omitempty" db:"approved_by"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`

	Uploader *User `json:"uploader,omitempty"` // Relation, no db tag
}
