package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dayotunde25/bsf/internal/app/models"
	"github.com/dayotunde25/bsf/internal/db"
)

// IAuditRepository defines the interface for role history and activity log persistence
type IAuditRepository interface {
	LogActivity(ctx context.Context, userID int64, activityType, description string, metadata map[string]interface{}) error
	GetRoleHistoryByUser(ctx context.Context, userID int64) ([]*models.RoleHistory, error)
	GetActivityLogByUser(ctx context.Context, userID int64) ([]*models.UserActivityLog, error)
}

// AuditRepository handles audit trail persistence
type AuditRepository struct {
	db *db.PostgresDB
}

// NewAuditRepository creates a new AuditRepository
func NewAuditRepository(database *db.PostgresDB) *AuditRepository {
	return &AuditRepository{db: database}
}

// LogActivity appends a row to the user activity log
func (r *AuditRepository) LogActivity(ctx context.Context, userID int64, activityType, description string, metadata map[string]interface{}) error {
	var metadataJSON []byte
	if metadata != nil {
		var err error
		metadataJSON, err = json.Marshal(metadata)
		if err != nil {
			return fmt.Errorf("error encoding activity metadata: %w", err)
		}
	}

	_, err := r.db.Pool.Exec(ctx, `
		INSERT INTO user_activity_log (user_id, activity_type, description, metadata)
		VALUES ($1, $2, $3, $4)`,
		userID, activityType, description, metadataJSON)
	if err != nil {
		return fmt.Errorf("error logging activity: %w", err)
	}
	return nil
}

// GetRoleHistoryByUser retrieves the role changes of a user, newest first
func (r *AuditRepository) GetRoleHistoryByUser(ctx context.Context, userID int64) ([]*models.RoleHistory, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT id, user_id, previous_role, new_role, reason, changed_by, created_at
		FROM role_history
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing role history: %w", err)
	}
	defer rows.Close()

	var history []*models.RoleHistory
	for rows.Next() {
		h := &models.RoleHistory{}
		err := rows.Scan(&h.ID, &h.UserID, &h.PreviousRole, &h.NewRole, &h.Reason,
			&h.ChangedBy, &h.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning role history: %w", err)
		}
		history = append(history, h)
	}
	return history, rows.Err()
}

// GetActivityLogByUser retrieves the activity log of a user, newest first
func (r *AuditRepository) GetActivityLogByUser(ctx context.Context, userID int64) ([]*models.UserActivityLog, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT id, user_id, activity_type, description, metadata, created_at
		FROM user_activity_log
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing activity log: %w", err)
	}
	defer rows.Close()

	var entries []*models.UserActivityLog
	for rows.Next() {
		e := &models.UserActivityLog{}
		var metadataJSON []byte
		err := rows.Scan(&e.ID, &e.UserID, &e.ActivityType, &e.Description,
			&metadataJSON, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning activity log: %w", err)
		}
		if len(metadataJSON) > 0 {
			if err := json.Unmarshal(metadataJSON, &e.Metadata); err != nil {
				return nil, fmt.Errorf("error decoding activity metadata: %w", err)
			}
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
