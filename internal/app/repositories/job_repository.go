package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dayotunde25/bsf/internal/app/models"
	"github.com/dayotunde25/bsf/internal/db"
	"github.com/dayotunde25/bsf/internal/pkg/apperrors"
	"github.com/dayotunde25/bsf/internal/pkg/dberrors"
)

const jobColumns = `id, poster_id, title, description, company, location, job_type,
	salary, deadline, application_count, is_approved, approved_by, created_at`

// IJobRepository defines the interface for job board persistence
type IJobRepository interface {
	Create(ctx context.Context, job *models.JobPost) error
	GetByID(ctx context.Context, id int64) (*models.JobPost, error)
	ListApproved(ctx context.Context) ([]*models.JobPost, error)
	ListPending(ctx context.Context) ([]*models.JobPost, error)
	Approve(ctx context.Context, id, approvedBy int64) error
	Apply(ctx context.Context, applicantID, jobID int64, coverLetter *string) error
	GetApplication(ctx context.Context, applicantID, jobID int64) (*models.JobApplication, error)
	CountApplications(ctx context.Context, jobID int64) (int, error)
	CountAll(ctx context.Context) (int64, error)
}

// JobRepository handles job board persistence
type JobRepository struct {
	db *db.PostgresDB
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(database *db.PostgresDB) *JobRepository {
	return &JobRepository{db: database}
}

func scanJob(row pgx.Row) (*models.JobPost, error) {
	j := &models.JobPost{}
	err := row.Scan(&j.ID, &j.PosterID, &j.Title, &j.Description, &j.Company,
		&j.Location, &j.JobType, &j.Salary, &j.Deadline, &j.ApplicationCount,
		&j.IsApproved, &j.ApprovedBy, &j.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error scanning job post: %w", err)
	}
	return j, nil
}

func collectJobs(rows pgx.Rows) ([]*models.JobPost, error) {
	defer rows.Close()

	var items []*models.JobPost
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, j)
	}
	return items, rows.Err()
}

// Create inserts a new job post. New posts always start unapproved.
func (r *JobRepository) Create(ctx context.Context, job *models.JobPost) error {
	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO job_posts (poster_id, title, description, company, location,
			job_type, salary, deadline)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, application_count, is_approved, created_at`,
		job.PosterID, job.Title, job.Description, job.Company, job.Location,
		job.JobType, job.Salary, job.Deadline).
		Scan(&job.ID, &job.ApplicationCount, &job.IsApproved, &job.CreatedAt)

	if err != nil {
		return fmt.Errorf("error creating job post: %w", err)
	}
	return nil
}

// GetByID retrieves a job post by ID
func (r *JobRepository) GetByID(ctx context.Context, id int64) (*models.JobPost, error) {
	row := r.db.Pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM job_posts WHERE id = $1`, id)
	return scanJob(row)
}

// ListApproved retrieves approved job posts, newest first
func (r *JobRepository) ListApproved(ctx context.Context) ([]*models.JobPost, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT `+jobColumns+` FROM job_posts WHERE is_approved = TRUE ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing job posts: %w", err)
	}
	return collectJobs(rows)
}

// ListPending retrieves unapproved job posts, newest first
func (r *JobRepository) ListPending(ctx context.Context) ([]*models.JobPost, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT `+jobColumns+` FROM job_posts WHERE is_approved = FALSE ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing pending job posts: %w", err)
	}
	return collectJobs(rows)
}

// Approve marks a job post as approved by the given admin.
// Approving an already-approved post returns ErrAlreadyApproved.
func (r *JobRepository) Approve(ctx context.Context, id, approvedBy int64) error {
	tag, err := r.db.Pool.Exec(ctx, `
		UPDATE job_posts SET is_approved = TRUE, approved_by = $2
		WHERE id = $1 AND is_approved = FALSE`,
		id, approvedBy)
	if err != nil {
		return fmt.Errorf("error approving job post: %w", err)
	}

	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.db.Pool.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM job_posts WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("error checking job post: %w", err)
		}
		if exists {
			return apperrors.ErrAlreadyApproved
		}
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// Apply inserts an application row and recomputes application_count from the
// live application rows, all within one transaction. A second application
// from the same user hits the unique pair constraint and returns
// ErrDuplicateApplication.
func (r *JobRepository) Apply(ctx context.Context, applicantID, jobID int64, coverLetter *string) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO job_applications (applicant_id, job_post_id, cover_letter)
			VALUES ($1, $2, $3)`,
			applicantID, jobID, coverLetter)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrDuplicateApplication
			}
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrResourceNotFound
			}
			return fmt.Errorf("error creating job application: %w", err)
		}

		// Recount from scratch rather than incrementing
		tag, err := tx.Exec(ctx, `
			UPDATE job_posts SET application_count = (
				SELECT COUNT(*) FROM job_applications WHERE job_post_id = $1
			) WHERE id = $1`,
			jobID)
		if err != nil {
			return fmt.Errorf("error updating application count: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrResourceNotFound
		}

		return nil
	})
}

// GetApplication retrieves the caller's own application row, if any
func (r *JobRepository) GetApplication(ctx context.Context, applicantID, jobID int64) (*models.JobApplication, error) {
	a := &models.JobApplication{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id, applicant_id, job_post_id, cover_letter, created_at
		FROM job_applications
		WHERE applicant_id = $1 AND job_post_id = $2`,
		applicantID, jobID).Scan(&a.ID, &a.ApplicantID, &a.JobPostID, &a.CoverLetter, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error loading job application: %w", err)
	}
	return a, nil
}

// CountApplications returns the live number of applications for a job post
func (r *JobRepository) CountApplications(ctx context.Context, jobID int64) (int, error) {
	var count int
	err := r.db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM job_applications WHERE job_post_id = $1`, jobID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting job applications: %w", err)
	}
	return count, nil
}

// CountAll returns the total number of job posts
func (r *JobRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM job_posts`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting job posts: %w", err)
	}
	return count, nil
}
