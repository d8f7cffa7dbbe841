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

const prayerColumns = `id, author_id, content, type, is_anonymous, praying_count,
	is_approved, approved_by, created_at`

// IPrayerRepository defines the interface for prayer wall persistence
type IPrayerRepository interface {
	Create(ctx context.Context, entry *models.PrayerEntry) error
	GetByID(ctx context.Context, id int64) (*models.PrayerEntry, error)
	ListApproved(ctx context.Context) ([]*models.PrayerEntry, error)
	ListPending(ctx context.Context) ([]*models.PrayerEntry, error)
	Approve(ctx context.Context, id, approvedBy int64) error
	AddSupport(ctx context.Context, userID, prayerID int64) error
	GetSupport(ctx context.Context, userID, prayerID int64) (*models.PrayerSupport, error)
	CountSupport(ctx context.Context, prayerID int64) (int, error)
}

// PrayerRepository handles prayer wall persistence
type PrayerRepository struct {
	db *db.PostgresDB
}

// NewPrayerRepository creates a new PrayerRepository
func NewPrayerRepository(database *db.PostgresDB) *PrayerRepository {
	return &PrayerRepository{db: database}
}

func scanPrayer(row pgx.Row) (*models.PrayerEntry, error) {
	p := &models.PrayerEntry{}
	err := row.Scan(&p.ID, &p.AuthorID, &p.Content, &p.Type, &p.IsAnonymous,
		&p.PrayingCount, &p.IsApproved, &p.ApprovedBy, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error scanning prayer entry: %w", err)
	}
	return p, nil
}

func collectPrayers(rows pgx.Rows) ([]*models.PrayerEntry, error) {
	defer rows.Close()

	var items []*models.PrayerEntry
	for rows.Next() {
		p, err := scanPrayer(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

// Create inserts a new prayer wall entry. New entries always start unapproved.
func (r *PrayerRepository) Create(ctx context.Context, entry *models.PrayerEntry) error {
	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO prayer_wall (author_id, content, type, is_anonymous)
		VALUES ($1, $2, $3, $4)
		RETURNING id, praying_count, is_approved, created_at`,
		entry.AuthorID, entry.Content, entry.Type, entry.IsAnonymous).
		Scan(&entry.ID, &entry.PrayingCount, &entry.IsApproved, &entry.CreatedAt)

	if err != nil {
		return fmt.Errorf("error creating prayer entry: %w", err)
	}
	return nil
}

// GetByID retrieves a prayer wall entry by ID
func (r *PrayerRepository) GetByID(ctx context.Context, id int64) (*models.PrayerEntry, error) {
	row := r.db.Pool.QueryRow(ctx,
		`SELECT `+prayerColumns+` FROM prayer_wall WHERE id = $1`, id)
	return scanPrayer(row)
}

// ListApproved retrieves approved prayer wall entries, newest first
func (r *PrayerRepository) ListApproved(ctx context.Context) ([]*models.PrayerEntry, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT `+prayerColumns+` FROM prayer_wall WHERE is_approved = TRUE ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing prayer entries: %w", err)
	}
	return collectPrayers(rows)
}

// ListPending retrieves unapproved prayer wall entries, newest first
func (r *PrayerRepository) ListPending(ctx context.Context) ([]*models.PrayerEntry, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT `+prayerColumns+` FROM prayer_wall WHERE is_approved = FALSE ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing pending prayer entries: %w", err)
	}
	return collectPrayers(rows)
}

// Approve marks a prayer wall entry as approved by the given admin.
// Approving an already-approved entry returns ErrAlreadyApproved.
func (r *PrayerRepository) Approve(ctx context.Context, id, approvedBy int64) error {
	tag, err := r.db.Pool.Exec(ctx, `
		UPDATE prayer_wall SET is_approved = TRUE, approved_by = $2
		WHERE id = $1 AND is_approved = FALSE`,
		id, approvedBy)
	if err != nil {
		return fmt.Errorf("error approving prayer entry: %w", err)
	}

	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.db.Pool.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM prayer_wall WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("error checking prayer entry: %w", err)
		}
		if exists {
			return apperrors.ErrAlreadyApproved
		}
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// AddSupport inserts a support row and recomputes praying_count from the
// live support rows, all within one transaction. A second support from the
// same user hits the unique pair constraint and returns ErrDuplicateSupport.
func (r *PrayerRepository) AddSupport(ctx context.Context, userID, prayerID int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO prayer_support (user_id, prayer_wall_id)
			VALUES ($1, $2)`,
			userID, prayerID)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrDuplicateSupport
			}
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrResourceNotFound
			}
			return fmt.Errorf("error adding prayer support: %w", err)
		}

		// Recount from scratch rather than incrementing
		tag, err := tx.Exec(ctx, `
			UPDATE prayer_wall SET praying_count = (
				SELECT COUNT(*) FROM prayer_support WHERE prayer_wall_id = $1
			) WHERE id = $1`,
			prayerID)
		if err != nil {
			return fmt.Errorf("error updating praying count: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrResourceNotFound
		}

		return nil
	})
}

// GetSupport retrieves the caller's own support row, if any
func (r *PrayerRepository) GetSupport(ctx context.Context, userID, prayerID int64) (*models.PrayerSupport, error) {
	s := &models.PrayerSupport{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id, user_id, prayer_wall_id, created_at
		FROM prayer_support
		WHERE user_id = $1 AND prayer_wall_id = $2`,
		userID, prayerID).Scan(&s.ID, &s.UserID, &s.PrayerWallID, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error loading prayer support: %w", err)
	}
	return s, nil
}

// CountSupport returns the live number of support rows for an entry
func (r *PrayerRepository) CountSupport(ctx context.Context, prayerID int64) (int, error) {
	var count int
	err := r.db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM prayer_support WHERE prayer_wall_id = $1`, prayerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting prayer support: %w", err)
	}
	return count, nil
}
