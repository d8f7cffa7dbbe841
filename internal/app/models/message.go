package models

import (
	"time"
)

// Message defines a direct message based on the 'messages' table.
// Rows are immutable once written except for the is_read flag,
// which only ever transitions false -> true.
type Message struct {
	ID         int64     `json:"id" db:"id"`
	SenderID   int64     `json:"senderId" db:"sender_id"`
	ReceiverID int64     `json:"receiverId" db:"receiver_id"`
	Content    string    `json:"content" db:"content"`
	IsRead     bool      `json:"isRead" db:"is_read"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`

	Sender   *User `json:"sender,omitempty"`   // Relation, no db tag
	Receiver *User `json:"receiver,omitempty"` // Relation, no db tag
}
