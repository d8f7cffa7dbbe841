package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dayotunde25/bsf/internal/app/models"
	"github.com/dayotunde25/bsf/internal/db"
	"github.com/dayotunde25/bsf/internal/pkg/apperrors"
	"github.com/dayotunde25/bsf/internal/pkg/dberrors"
)

// IPostRepository defines the interface for fellowship post assignments.
// Each post kind lives in its own table.
type IPostRepository interface {
	AssignPost(ctx context.Context, assignment *models.PostAssignment) error
	GetExecutivePostsByUser(ctx context.Context, userID int64) ([]*models.ExecutivePost, error)
	GetWorkerUnitsByUser(ctx context.Context, userID int64) ([]*models.WorkerUnit, error)
}

// PostRepository handles post assignment persistence
type PostRepository struct {
	db *db.PostgresDB
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(database *db.PostgresDB) *PostRepository {
	return &PostRepository{db: database}
}

// AssignPost writes a post assignment in one transaction: the academic-info
// update (when present), the post row and the activity log entry commit or
// roll back together, so a failure never leaves a partial assignment behind.
func (r *PostRepository) AssignPost(ctx context.Context, assignment *models.PostAssignment) error {
	var table, titleColumn string
	switch assignment.Type {
	case models.PostTypeExecutive:
		table, titleColumn = "executive_posts", "post_title"
	case models.PostTypeFamilyHead:
		table, titleColumn = "family_heads", "family_name"
	case models.PostTypeWorkerUnit:
		table, titleColumn = "worker_units", "unit_name"
	case models.PostTypeOther:
		table, titleColumn = "other_posts", "post_title"
	default:
		return fmt.Errorf("%w: unknown post type %q", apperrors.ErrValidationFailed, assignment.Type)
	}

	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if assignment.Department != nil || assignment.AcademicLevel != nil {
			tag, err := tx.Exec(ctx, `
				UPDATE users SET
					department = COALESCE($1, department),
					academic_level = COALESCE($2, academic_level),
					updated_at = CURRENT_TIMESTAMP
				WHERE id = $3`,
				assignment.Department, assignment.AcademicLevel, assignment.UserID)
			if err != nil {
				return fmt.Errorf("error updating academic info: %w", err)
			}
			if tag.RowsAffected() == 0 {
				return apperrors.ErrUserNotFound
			}
		}

		insert := fmt.Sprintf(
			`INSERT INTO %s (user_id, %s, session) VALUES ($1, $2, $3)`, table, titleColumn)
		if _, err := tx.Exec(ctx, insert, assignment.UserID, assignment.Title, assignment.Session); err != nil {
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrUserNotFound
			}
			return fmt.Errorf("error creating %s assignment: %w", assignment.Type, err)
		}

		metadata, err := json.Marshal(map[string]interface{}{
			"postType":   string(assignment.Type),
			"session":    assignment.Session,
			"assignedBy": assignment.AssignedBy,
		})
		if err != nil {
			return fmt.Errorf("error encoding activity metadata: %w", err)
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO user_activity_log (user_id, activity_type, description, metadata)
			VALUES ($1, 'post_assignment', $2, $3)`,
			assignment.UserID, assignment.Description, metadata)
		if err != nil {
			return fmt.Errorf("error logging activity: %w", err)
		}
		return nil
	})
}

// GetExecutivePostsByUser retrieves the executive posts held by a user
func (r *PostRepository) GetExecutivePostsByUser(ctx context.Context, userID int64) ([]*models.ExecutivePost, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT id, user_id, post_title, session, created_at
		FROM executive_posts
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing executive posts: %w", err)
	}
	defer rows.Close()

	var posts []*models.ExecutivePost
	for rows.Next() {
		p := &models.ExecutivePost{}
		if err := rows.Scan(&p.ID, &p.UserID, &p.PostTitle, &p.Session, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning executive post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// GetWorkerUnitsByUser retrieves the worker units a user belongs to
func (r *PostRepository) GetWorkerUnitsByUser(ctx context.Context, userID int64) ([]*models.WorkerUnit, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT id, user_id, unit_name, session, created_at
		FROM worker_units
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing worker units: %w", err)
	}
	defer rows.Close()

	var units []*models.WorkerUnit
	for rows.Next() {
		w := &models.WorkerUnit{}
		if err := rows.Scan(&w.ID, &w.UserID, &w.UnitName, &w.Session, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning worker unit: %w", err)
		}
		units = append(units, w)
	}
	return units, rows.Err()
}
