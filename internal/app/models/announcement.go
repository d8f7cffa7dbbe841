package models

import (
	"time"
)

// Announcement defines an announcement based on the 'announcements' table.
// RsvpCount is derived state counting only "yes" responses.
type Announcement struct {
	ID        int64      `json:"id" db:"id"`
	AuthorID  int64      `json:"authorId" db:"author_id"`
	Title     string     `json:"title" db:"title"`
	Content   string     `json:"content" db:"content"`
	EventDate *time.Time `json:"eventDate,omitempty" db:"event_date"`
	Location  *string    `json:"location,omitempty" db:"location"`
	RsvpCount int        `json:"rsvpCount" db:"rsvp_count"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`

	Author *User `json:"author,omitempty"` // Relation, no db tag
}

// Rsvp defines an RSVP row based on the 'rsvps' table.
// The (user_id, announcement_id) pair is unique; Response is
// "yes", "no" or "maybe".
type Rsvp struct {
	ID             int64     `json:"id" db:"id"`
	UserID         int64     `json:"userId" db:"user_id"`
	AnnouncementID int64     `json:"announcementId" db:"announcement_id"`
	Response       string    `json:"response" db:"response" example:"yes"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}
