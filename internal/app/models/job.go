package models

import (
	"time"
)

// JobPost defines a job board entry based on the 'job_posts' table.
// ApplicationCount is derived state, recomputed from job_applications rows.
type JobPost struct {
	ID               int64      `json:"id" db:"id"`
	PosterID         int64      `json:"posterId" db:"poster_id"`
	Title            string     `json:"title" db:"title"`
	Description      string     `json:"description" db:"description"`
	Company          string     `json:"company" db:"company"`
	Location         *string    `json:"location,omitempty" db:"location"`
	JobType          *string    `json:"jobType,omitempty" db:"job_type" example:"full-time"`
	Salary           *string    `json:"salary,omitempty" db:"salary"`
	Deadline         *time.Time `json:"deadline,omitempty" db:"deadline"`
	ApplicationCount int        `json:"applicationCount" db:"application_count"`
	IsApproved       bool       `json:"isApproved" db:"is_approved"`
	ApprovedBy       *int64     `json:"approvedBy,omitempty" db:"approved_by"`
	CreatedAt        time.Time  `json:"createdAt" db:"created_at"`

	Poster *User `json:"poster,omitempty"` // Relation, no db tag
}

// JobApplication defines an application row based on the 'job_applications' table.
// The (applicant_id, job_post_id) pair is unique.
type JobApplication struct {
	ID          int64     `json:"id" db:"id"`
	ApplicantID int64     `json:"applicantId" db:"applicant_id"`
	JobPostID   int64     `json:"jobPostId" db:"job_post_id"`
	CoverLetter *string   `json:"coverLetter,omitempty" db:"cover_letter"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	Applicant *User `json:"applicant,omitempty"` // Relation, no db tag
}
