package models

import (
	"time"
)

// PrayerEntry defines a prayer wall item based on the 'prayer_wall' table.
// PrayingCount is derived state, recomputed from prayer_support rows
// whenever support changes.
type PrayerEntry struct {
	ID           int64           `json:"id" db:"id"`
	AuthorID     int64           `json:"authorId" db:"author_id"`
	Content      string          `json:"content" db:"content"`
	Type         PrayerEntryType `json:"type" db:"type" example:"prayer"`
	IsAnonymous  bool            `json:"isAnonymous" db:"is_anonymous"`
	PrayingCount int             `json:"prayingCount" db:"praying_count"`
	IsApproved   bool            `json:"isApproved" db:"is_approved"`
	ApprovedBy   *int64          `json:"approvedBy,omitempty" db:"approved_by"`
	CreatedAt    time.Time       `json:"createdAt" db:"created_at"`

	Author *User `json:"author,omitempty"` // Relation, no db tag
}

// PrayerSupport defines a support row based on the 'prayer_support' table.
// The (user_id, prayer_wall_id) pair is unique.
type PrayerSupport struct {
	ID           int64     `json:"id" db:"id"`
	UserID       int64     `json:"userId" db:"user_id"`
	PrayerWallID int64     `json:"prayerWallId" db:"prayer_wall_id"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
