package dto

import (
	"time"

	"github.com/dayotunde25/bsf/internal/app/models"
)

// --- Request DTOs ---

// SendMessageRequest represents data for sending a direct message
type SendMessageRequest struct {
	ReceiverID int64  `json:"receiverId" binding:"required,min=1"`
	Content    string `json:"content" binding:"required"`
}

// MarkReadRequest represents a request to mark messages from a sender as read
type MarkReadRequest struct {
	SenderID int64 `json:"senderId" binding:"required,min=1"`
}

// --- Response DTOs ---

// MessageResponse represents a direct message with sender information
type MessageResponse struct {
	ID         int64     `json:"id"`
	SenderID   int64     `json:"senderId"`
	ReceiverID int64     `json:"receiverId"`
	Content    string    `json:"content"`
	IsRead     bool      `json:"isRead"`
	CreatedAt  time.Time `json:"createdAt"`

	SenderName string `json:"senderName,omitempty"`
}

// ConversationSummary represents one row of the conversation list:
// the counterparty, the most recent message exchanged with them, and
// how many of their messages the caller has not read yet.
type ConversationSummary struct {
	User        UserResponse    `json:"user"`
	LastMessage MessageResponse `json:"lastMessage"`
	UnreadCount int             `json:"unreadCount"`
}

// ToMessageResponse maps a message model to its API representation
func ToMessageResponse(message *models.Message) MessageResponse {
	response := MessageResponse{
		ID:         message.ID,
		SenderID:   message.SenderID,
		ReceiverID: message.ReceiverID,
		Content:    message.Content,
		IsRead:     message.IsRead,
		CreatedAt:  message.CreatedAt,
	}

	if message.Sender != nil {
		response.SenderName = message.Sender.FullName()
	}

	return response
}

// ToMessageResponses maps a slice of message models
func ToMessageResponses(messages []*models.Message) []MessageResponse {
	responses := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		responses = append(responses, ToMessageResponse(m))
	}
	return responses
}
