package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dayotunde25/bsf/internal/app/models"
	"github.com/dayotunde25/bsf/internal/app/models/dto"
	"github.com/dayotunde25/bsf/internal/app/repositories"
	"github.com/dayotunde25/bsf/internal/pkg/apperrors"
	"github.com/dayotunde25/bsf/internal/pkg/helpers"
	"github.com/dayotunde25/bsf/internal/pkg/logger"
)

// JobService defines the interface for job board operations
type JobService interface {
	Create(ctx context.Context, posterID int64, req *dto.CreateJobPostRequest) (*models.JobPost, error)
	ListApproved(ctx context.Context) ([]*models.JobPost, error)
	ListPending(ctx context.Context) ([]*models.JobPost, error)
	Approve(ctx context.Context, id, approvedBy int64) error
	Apply(ctx context.Context, applicantID, jobID int64, coverLetter string) (*models.JobPost, error)
	GetApplication(ctx context.Context, applicantID, jobID int64) (*models.JobApplication, error)
}

// jobServiceImpl implements the JobService interface
type jobServiceImpl struct {
	jobRepo repositories.IJobRepository
}

// NewJobService creates a new job service instance
func NewJobService(jobRepo repositories.IJobRepository) JobService {
	return &jobServiceImpl{
		jobRepo: jobRepo,
	}
}

// Create persists a pending job post
func (s *jobServiceImpl) Create(ctx context.Context, posterID int64, req *dto.CreateJobPostRequest) (*models.JobPost, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Company) == "" {
		return nil, fmt.Errorf("%w: title and company are required", apperrors.ErrValidationFailed)
	}

	job := &models.JobPost{
		PosterID:    posterID,
		Title:       req.Title,
		Description: req.Description,
		Company:     req.Company,
		Location:    helpers.StringPtr(req.Location),
		JobType:     helpers.StringPtr(req.JobType),
		Salary:      helpers.StringPtr(req.Salary),
		Deadline:    req.Deadline,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	logger.Info().Int64("jobID", job.ID).Int64("posterID", posterID).Msg("Job post submitted, pending approval")
	return job, nil
}

// ListApproved retrieves the public job board
func (s *jobServiceImpl) ListApproved(ctx context.Context) ([]*models.JobPost, error) {
	return s.jobRepo.ListApproved(ctx)
}

// ListPending retrieves job posts awaiting approval
func (s *jobServiceImpl) ListPending(ctx context.Context) ([]*models.JobPost, error) {
	return s.jobRepo.ListPending(ctx)
}

// Approve marks a job post as approved
func (s *jobServiceImpl) Approve(ctx context.Context, id, approvedBy int64) error {
	if err := s.jobRepo.Approve(ctx, id, approvedBy); err != nil {
		return err
	}
	logger.Info().Int64("jobID", id).Int64("approvedBy", approvedBy).Msg("Job post approved")
	return nil
}

// Apply records an application and returns the job post with its refreshed
// application count. Applying twice to the same job is a conflict.
func (s *jobServiceImpl) Apply(ctx context.Context, applicantID, jobID int64, coverLetter string) (*models.JobPost, error) {
	if err := s.jobRepo.Apply(ctx, applicantID, jobID, helpers.StringPtr(coverLetter)); err != nil {
		return nil, err
	}
	return s.jobRepo.GetByID(ctx, jobID)
}

// GetApplication retrieves the caller's own application row for a job
func (s *jobServiceImpl) GetApplication(ctx context.Context, applicantID, jobID int64) (*models.JobApplication, error) {
	return s.jobRepo.GetApplication(ctx, applicantID, jobID)
}
