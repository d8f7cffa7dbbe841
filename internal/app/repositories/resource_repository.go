package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/dayotunde25/bsf/internal/app/models"
	"github.com/dayotunde25/bsf/internal/db"
	"github.com/dayotunde25/bsf/internal/pkg/apperrors"
)

const resourceColumns = `id, uploader_id, title, category, file_name, original_name, mime_type,
	file_size, description, download_count, is_approved, approved_by, created_at`

// IResourceRepository defines the interface for resource library persistence
type IResourceRepository interface {
	Create(ctx context.Context, resource *models.Resource) error
	GetByID(ctx context.Context, id int64) (*models.Resource, error)
	ListApproved(ctx context.Context, category string) ([]*models.Resource, error)
	ListPending(ctx context.Context) ([]*models.Resource, error)
	Approve(ctx context.Context, id, approvedBy int64) error
	IncrementDownloadCount(ctx context.Context, id int64) error
}

// ResourceRepository handles resource library persistence
type ResourceRepository struct {
	db *db.PostgresDB
}

// NewResourceRepository creates a new ResourceRepository
func NewResourceRepository(database *db.PostgresDB) *ResourceRepository {
	return &ResourceRepository{db: database}
}

func scanResource(row pgx.Row) (*models.Resource, error) {
	res := &models.Resource{}
	err := row.Scan(&res.ID, &res.UploaderID, &res.Title, &res.Category, &res.FileName,
		&res.OriginalName, &res.MimeType, &res.FileSize, &res.Description,
		&res.DownloadCount, &res.IsApproved, &res.ApprovedBy, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error scanning resource: %w", err)
	}
	return res, nil
}

func collectResources(rows pgx.Rows) ([]*models.Resource, error) {
	defer rows.Close()

	var items []*models.Resource
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, res)
	}
	return items, rows.Err()
}

// Create inserts a new resource. New resources always start unapproved.
func (r *ResourceRepository) Create(ctx context.Context, resource *models.Resource) error {
	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO resources (uploader_id, title, category, file_name, original_name,
			mime_type, file_size, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, download_count, is_approved, created_at`,
		resource.UploaderID, resource.Title, resource.Category, resource.FileName,
		resource.OriginalName, resource.MimeType, resource.FileSize, resource.Description).
		Scan(&resource.ID, &resource.DownloadCount, &resource.IsApproved, &resource.CreatedAt)

	if err != nil {
		return fmt.Errorf("error creating resource: %w", err)
	}
	return nil
}

// GetByID retrieves a resource by ID
func (r *ResourceRepository) GetByID(ctx context.Context, id int64) (*models.Resource, error) {
	row := r.db.Pool.QueryRow(ctx,
		`SELECT `+resourceColumns+` FROM resources WHERE id = $1`, id)
	return scanResource(row)
}

// ListApproved retrieves approved resources, newest first, optionally
// filtered by category.
func (r *ResourceRepository) ListApproved(ctx context.Context, category string) ([]*models.Resource, error) {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(resourceColumns).
		From("resources").
		Where(sq.Eq{"is_approved": true}).
		OrderBy("created_at DESC")

	if category != "" {
		builder = builder.Where(sq.Eq{"category": category})
	}

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building resource query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing resources: %w", err)
	}
	return collectResources(rows)
}

// ListPending retrieves unapproved resources, newest first
func (r *ResourceRepository) ListPending(ctx context.Context) ([]*models.Resource, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT `+resourceColumns+` FROM resources WHERE is_approved = FALSE ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing pending resources: %w", err)
	}
	return collectResources(rows)
}

// Approve marks a resource as approved by the given admin.
// Approving an already-approved resource returns ErrAlreadyApproved.
func (r *ResourceRepository) Approve(ctx context.Context, id, approvedBy int64) error {
	tag, err := r.db.Pool.Exec(ctx, `
		UPDATE resources SET is_approved = TRUE, approved_by = $2
		WHERE id = $1 AND is_approved = FALSE`,
		id, approvedBy)
	if err != nil {
		return fmt.Errorf("error approving resource: %w", err)
	}

	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.db.Pool.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM resources WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("error checking resource: %w", err)
		}
		if exists {
			return apperrors.ErrAlreadyApproved
		}
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// IncrementDownloadCount increments the download counter by one.
// The counter is monotonic; it is never recomputed or decremented.
func (r *ResourceRepository) IncrementDownloadCount(ctx context.Context, id int64) error {
	tag, err := r.db.Pool.Exec(ctx,
		`UPDATE resources SET download_count = download_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error incrementing download count: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}
