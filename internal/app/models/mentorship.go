package models

import (
	"time"
)

// Mentorship defines a mentorship registration based on the 'mentorships' table.
// Matching is recorded externally; this service only stores registrations
// and existing matches.
type Mentorship struct {
	ID         int64            `json:"id" db:"id"`
	MentorID   int64            `json:"mentorId" db:"mentor_id"`
	MenteeID   *int64           `json:"menteeId,omitempty" db:"mentee_id"`
	Interests  *string          `json:"interests,omitempty" db:"interests"`
	Department *string          `json:"department,omitempty" db:"department"`
	Status     MentorshipStatus `json:"status" db:"status" example:"available"`
	IsMentor   bool             `json:"isMentor" db:"is_mentor"`
	CreatedAt  time.Time        `json:"createdAt" db:"created_at"`

	Mentor *User `json:"mentor,omitempty"` // Relation, no db tag
	Mentee *User `json:"mentee,omitempty"` // Relation, no db tag
}
