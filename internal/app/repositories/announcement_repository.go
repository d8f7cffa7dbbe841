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

const announcementColumns = `id, author_id, title, content, event_date, location, rsvp_count, created_at`

// IAnnouncementRepository defines the interface for announcement persistence
type IAnnouncementRepository interface {
	Create(ctx context.Context, announcement *models.Announcement) error
	GetByID(ctx context.Context, id int64) (*models.Announcement, error)
	List(ctx context.Context) ([]*models.Announcement, error)
	Rsvp(ctx context.Context, userID, announcementID int64, response string) error
	GetRsvp(ctx context.Context, userID, announcementID int64) (*models.Rsvp, error)
	CountAll(ctx context.Context) (int64, error)
}

// AnnouncementRepository handles announcement persistence
type AnnouncementRepository struct {
	db *db.PostgresDB
}

// NewAnnouncementRepository creates a new AnnouncementRepository
func NewAnnouncementRepository(database *db.PostgresDB) *AnnouncementRepository {
	return &AnnouncementRepository{db: database}
}

func scanAnnouncement(row pgx.Row) (*models.Announcement, error) {
	a := &models.Announcement{}
	err := row.Scan(&a.ID, &a.AuthorID, &a.Title, &a.Content, &a.EventDate,
		&a.Location, &a.RsvpCount, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error scanning announcement: %w", err)
	}
	return a, nil
}

// Create inserts a new announcement
func (r *AnnouncementRepository) Create(ctx context.Context, announcement *models.Announcement) error {
	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO announcements (author_id, title, content, event_date, location)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, rsvp_count, created_at`,
		announcement.AuthorID, announcement.Title, announcement.Content,
		announcement.EventDate, announcement.Location).
		Scan(&announcement.ID, &announcement.RsvpCount, &announcement.CreatedAt)

	if err != nil {
		return fmt.Errorf("error creating announcement: %w", err)
	}
	return nil
}

// GetByID retrieves an announcement by ID
func (r *AnnouncementRepository) GetByID(ctx context.Context, id int64) (*models.Announcement, error) {
	row := r.db.Pool.QueryRow(ctx,
		`SELECT `+announcementColumns+` FROM announcements WHERE id = $1`, id)
	return scanAnnouncement(row)
}

// List retrieves all announcements, newest first
func (r *AnnouncementRepository) List(ctx context.Context) ([]*models.Announcement, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT `+announcementColumns+` FROM announcements ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing announcements: %w", err)
	}
	defer rows.Close()

	var items []*models.Announcement
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

// Rsvp inserts an RSVP row and recomputes rsvp_count from the live "yes"
// responses, all within one transaction. A second RSVP from the same user
// hits the unique pair constraint and returns ErrDuplicateRsvp.
func (r *AnnouncementRepository) Rsvp(ctx context.Context, userID, announcementID int64, response string) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO rsvps (user_id, announcement_id, response)
			VALUES ($1, $2, $3)`,
			userID, announcementID, response)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrDuplicateRsvp
			}
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrResourceNotFound
			}
			return fmt.Errorf("error creating rsvp: %w", err)
		}

		// Only "yes" responses count toward the total
		tag, err := tx.Exec(ctx, `
			UPDATE announcements SET rsvp_count = (
				SELECT COUNT(*) FROM rsvps WHERE announcement_id = $1 AND response = 'yes'
			) WHERE id = $1`,
			announcementID)
		if err != nil {
			return fmt.Errorf("error updating rsvp count: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrResourceNotFound
		}

		return nil
	})
}

// GetRsvp retrieves the caller's own RSVP row, if any
func (r *AnnouncementRepository) GetRsvp(ctx context.Context, userID, announcementID int64) (*models.Rsvp, error) {
	rsvp := &models.Rsvp{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id, user_id, announcement_id, response, created_at
		FROM rsvps
		WHERE user_id = $1 AND announcement_id = $2`,
		userID, announcementID).
		Scan(&rsvp.ID, &rsvp.UserID, &rsvp.AnnouncementID, &rsvp.Response, &rsvp.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error loading rsvp: %w", err)
	}
	return rsvp, nil
}

// CountAll returns the total number of announcements
func (r *AnnouncementRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM announcements`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting announcements: %w", err)
	}
	return count, nil
}
