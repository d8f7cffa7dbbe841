package repositories

import (
	"context"
	"fmt"

	"github.com/dayotunde25/bsf/internal/app/models"
	"github.com/dayotunde25/bsf/internal/db"
)

// IFellowshipRepository defines the interface for timeline persistence
type IFellowshipRepository interface {
	Create(ctx context.Context, entry *models.FellowshipHistory) error
	List(ctx context.Context) ([]*models.FellowshipHistory, error)
}

// FellowshipRepository handles fellowship timeline persistence
type FellowshipRepository struct {
	db *db.PostgresDB
}

// NewFellowshipRepository creates a new FellowshipRepository
func NewFellowshipRepository(database *db.PostgresDB) *FellowshipRepository {
	return &FellowshipRepository{db: database}
}

// Create inserts a new timeline entry
func (r *FellowshipRepository) Create(ctx context.Context, entry *models.FellowshipHistory) error {
	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO fellowship_history (year, title, description, type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		entry.Year, entry.Title, entry.Description, entry.Type).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating timeline entry: %w", err)
	}
	return nil
}

// List retrieves all timeline entries, most recent year first
func (r *FellowshipRepository) List(ctx context.Context) ([]*models.FellowshipHistory, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT id, year, title, description, type, created_at
		FROM fellowship_history
		ORDER BY year DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing timeline: %w", err)
	}
	defer rows.Close()

	var entries []*models.FellowshipHistory
	for rows.Next() {
		e := &models.FellowshipHistory{}
		if err := rows.Scan(&e.ID, &e.Year, &e.Title, &e.Description, &e.Type, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning timeline entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
