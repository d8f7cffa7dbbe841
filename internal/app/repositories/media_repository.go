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

const mediaColumns = `id, uploader_id, file_name, original_name, mime_type, file_size,
	event_type, session, description, is_approved, approved_by, created_at`

// IMediaRepository defines the interface for gallery persistence
type IMediaRepository interface {
	Create(ctx context.Context, media *models.Media) error
	GetByID(ctx context.Context, id int64) (*models.Media, error)
	ListApproved(ctx context.Context, eventType, session string) ([]*models.Media, error)
	ListPending(ctx context.Context) ([]*models.Media, error)
	Approve(ctx context.Context, id, approvedBy int64) error
}

// MediaRepository handles gallery persistence
type MediaRepository struct {
	db *db.PostgresDB
}

// NewMediaRepository creates a new MediaRepository
func NewMediaRepository(database *db.PostgresDB) *MediaRepository {
	return &MediaRepository{db: database}
}

func collectMedia(rows pgx.Rows) ([]*models.Media, error) {
	defer rows.Close()

	var items []*models.Media
	for rows.Next() {
		m := &models.Media{}
		err := rows.Scan(&m.ID, &m.UploaderID, &m.FileName, &m.OriginalName, &m.MimeType,
			&m.FileSize, &m.EventType, &m.Session, &m.Description, &m.IsApproved,
			&m.ApprovedBy, &m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning media: %w", err)
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

// Create inserts a new media item. New items always start unapproved.
func (r *MediaRepository) Create(ctx context.Context, media *models.Media) error {
	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO media (uploader_id, file_name, original_name, mime_type, file_size,
			event_type, session, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, is_approved, created_at`,
		media.UploaderID, media.FileName, media.OriginalName, media.MimeType,
		media.FileSize, media.EventType, media.Session, media.Description).
		Scan(&media.ID, &media.IsApproved, &media.CreatedAt)

	if err != nil {
		return fmt.Errorf("error creating media: %w", err)
	}
	return nil
}

// GetByID retrieves a media item by ID
func (r *MediaRepository) GetByID(ctx context.Context, id int64) (*models.Media, error) {
	m := &models.Media{}
	err := r.db.Pool.QueryRow(ctx,
		`SELECT `+mediaColumns+` FROM media WHERE id = $1`, id).
		Scan(&m.ID, &m.UploaderID, &m.FileName, &m.OriginalName, &m.MimeType,
			&m.FileSize, &m.EventType, &m.Session, &m.Description, &m.IsApproved,
			&m.ApprovedBy, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error loading media: %w", err)
	}
	return m, nil
}

// ListApproved retrieves approved gallery items, newest first, optionally
// filtered by event type and session.
func (r *MediaRepository) ListApproved(ctx context.Context, eventType, session string) ([]*models.Media, error) {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(mediaColumns).
		From("media").
		Where(sq.Eq{"is_approved": true}).
		OrderBy("created_at DESC")

	if eventType != "" {
		builder = builder.Where(sq.Eq{"event_type": eventType})
	}
	if session != "" {
		builder = builder.Where(sq.Eq{"session": session})
	}

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building media query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing media: %w", err)
	}
	return collectMedia(rows)
}

// ListPending retrieves unapproved gallery items, newest first
func (r *MediaRepository) ListPending(ctx context.Context) ([]*models.Media, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT `+mediaColumns+` FROM media WHERE is_approved = FALSE ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing pending media: %w", err)
	}
	return collectMedia(rows)
}

// Approve marks a media item as approved by the given admin.
// Approving an already-approved item returns ErrAlreadyApproved.
func (r *MediaRepository) Approve(ctx context.Context, id, approvedBy int64) error {
	tag, err := r.db.Pool.Exec(ctx, `
		UPDATE media SET is_approved = TRUE, approved_by = $2
		WHERE id = $1 AND is_approved = FALSE`,
		id, approvedBy)
	if err != nil {
		return fmt.Errorf("error approving media: %w", err)
	}

	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.db.Pool.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM media WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("error checking media: %w", err)
		}
		if exists {
			return apperrors.ErrAlreadyApproved
		}
		return apperrors.ErrResourceNotFound
	}

	return nil
}
