package dto

import (
	"time"

	"github.com/dayotunde25/bsf/internal/app/models"
)

// CreateJobPostRequest represents data for submitting a job posting
type CreateJobPostRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description" binding:"required"`
	Company     string     `json:"company" binding:"required"`
	Location    string     `json:"location"`
	JobType     string     `json:"jobType"`
	Salary      string     `json:"salary"`
	Deadline    *time.Time `json:"deadline"`
}

// ApplyJobRequest represents a job application submission
type ApplyJobRequest struct {
	CoverLetter string `json:"coverLetter"`
}

// JobPostResponse represents a job board entry
type JobPostResponse struct {
	ID               int64      `json:"id"`
	PosterID         int64      `json:"posterId"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Company          string     `json:"company"`
	Location         *string    `json:"location,omitempty"`
	JobType          *string    `json:"jobType,omitempty"`
	Salary           *string    `json:"salary,omitempty"`
	Deadline         *time.Time `json:"deadline,omitempty"`
	ApplicationCount int        `json:"applicationCount"`
	IsApproved       bool       `json:"isApproved"`
	CreatedAt        time.Time  `json:"createdAt"`

	PosterName string `json:"posterName,omitempty"`
}

// JobApplicationResponse represents the caller's own application row
type JobApplicationResponse struct {
	ID          int64     `json:"id"`
	JobPostID   int64     `json:"jobPostId"`
	CoverLetter *string   `json:"coverLetter,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToJobPostResponse maps a job post model to its API representation
func ToJobPostResponse(job *models.JobPost) JobPostResponse {
	response := JobPostResponse{
		ID:               job.ID,
		PosterID:         job.PosterID,
		Title:            job.Title,
		Description:      job.Description,
		Company:          job.Company,
		Location:         job.Location,
		JobType:          job.JobType,
		Salary:           job.Salary,
		Deadline:         job.Deadline,
		ApplicationCount: job.ApplicationCount,
		IsApproved:       job.IsApproved,
		CreatedAt:        job.CreatedAt,
	}

	if job.Poster != nil {
		response.PosterName = job.Poster.FullName()
	}

	return response
}

// ToJobPostResponses maps a slice of job post models
func ToJobPostResponses(items []*models.JobPost) []JobPostResponse {
	responses := make([]JobPostResponse, 0, len(items))
	for _, j := range items {
		responses = append(responses, ToJobPostResponse(j))
	}
	return responses
}
