package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dayotunde25/bsf/internal/app/models"
	"github.com/dayotunde25/bsf/internal/db"
	"github.com/dayotunde25/bsf/internal/pkg/apperrors"
	"github.com/dayotunde25/bsf/internal/pkg/dberrors"
)

// IMessageRepository defines the interface for direct message persistence
type IMessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	GetConversation(ctx context.Context, userID, otherUserID int64) ([]*models.Message, error)
	GetAllInvolving(ctx context.Context, userID int64) ([]*models.Message, error)
	MarkAsRead(ctx context.Context, receiverID, senderID int64) error
}

// MessageRepository handles message persistence
type MessageRepository struct {
	db *db.PostgresDB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(database *db.PostgresDB) *MessageRepository {
	return &MessageRepository{db: database}
}

func collectMessages(rows pgx.Rows) ([]*models.Message, error) {
	defer rows.Close()

	var messages []*models.Message
	for rows.Next() {
		m := &models.Message{}
		err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &m.IsRead, &m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// Create inserts a new message and sets its generated ID.
// A receiver that does not exist surfaces as a foreign key violation,
// mapped to user-not-found.
func (r *MessageRepository) Create(ctx context.Context, message *models.Message) error {
	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO messages (sender_id, receiver_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, is_read, created_at`,
		message.SenderID, message.ReceiverID, message.Content).
		Scan(&message.ID, &message.IsRead, &message.CreatedAt)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error creating message: %w", err)
	}

	return nil
}

// GetConversation retrieves the full message history between two users,
// oldest first.
func (r *MessageRepository) GetConversation(ctx context.Context, userID, otherUserID int64) ([]*models.Message, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT id, sender_id, receiver_id, content, is_read, created_at
		FROM messages
		WHERE (sender_id = $1 AND receiver_id = $2)
		   OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY created_at ASC, id ASC`,
		userID, otherUserID)
	if err != nil {
		return nil, fmt.Errorf("error loading conversation: %w", err)
	}
	return collectMessages(rows)
}

// GetAllInvolving retrieves every message sent or received by a user,
// newest first. The conversation list is aggregated from this single scan.
func (r *MessageRepository) GetAllInvolving(ctx context.Context, userID int64) ([]*models.Message, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT id, sender_id, receiver_id, content, is_read, created_at
		FROM messages
		WHERE sender_id = $1 OR receiver_id = $1
		ORDER BY created_at DESC, id DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("error loading messages: %w", err)
	}
	return collectMessages(rows)
}

// MarkAsRead marks every message from senderID to receiverID as read.
// The operation is idempotent and direction-exact: messages flowing the
// other way are never touched.
func (r *MessageRepository) MarkAsRead(ctx context.Context, receiverID, senderID int64) error {
	_, err := r.db.Pool.Exec(ctx, `
		UPDATE messages SET is_read = TRUE
		WHERE receiver_id = $1 AND sender_id = $2 AND is_read = FALSE`,
		receiverID, senderID)
	if err != nil {
		return fmt.Errorf("error marking messages as read: %w", err)
	}
	return nil
}
