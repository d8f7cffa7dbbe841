package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/dayotunde25/bsf/internal/app/models"
	"github.com/dayotunde25/bsf/internal/app/models/dto"
	"github.com/dayotunde25/bsf/internal/app/repositories"
	"github.com/dayotunde25/bsf/internal/pkg/apperrors"
	"github.com/dayotunde25/bsf/internal/pkg/logger"
)

// ChatService defines the interface for direct messaging operations
type ChatService interface {
	GetConversations(ctx context.Context, userID int64) ([]dto.ConversationSummary, error)
	GetMessages(ctx context.Context, userID, otherUserID int64) ([]*models.Message, error)
	SendMessage(ctx context.Context, senderID, receiverID int64, content string) (*models.Message, error)
	MarkMessagesAsRead(ctx context.Context, receiverID, senderID int64) error
}

// chatServiceImpl implements the ChatService interface
type chatServiceImpl struct {
	messageRepo repositories.IMessageRepository
	userRepo    repositories.IUserRepository
}

// NewChatService creates a new chat service instance
func NewChatService(messageRepo repositories.IMessageRepository, userRepo repositories.IUserRepository) ChatService {
	return &chatServiceImpl{
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

// GetConversations builds the conversation list from a single newest-first
// scan of the user's messages. The first message seen for a counterparty is
// the most recent one; unread counts consider only messages flowing from the
// counterparty to the caller.
func (s *chatServiceImpl) GetConversations(ctx context.Context, userID int64) ([]dto.ConversationSummary, error) {
	messages, err := s.messageRepo.GetAllInvolving(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error loading messages: %w", err)
	}

	type conversation struct {
		lastMessage *models.Message
		unreadCount int
		order       int
	}
	conversations := make(map[int64]*conversation)

	for _, m := range messages {
		counterparty := m.SenderID
		if counterparty == userID {
			counterparty = m.ReceiverID
		}

		c, ok := conversations[counterparty]
		if !ok {
			// Newest-first scan: the first row per counterparty is the
			// last message of that conversation
			c = &conversation{lastMessage: m, order: len(conversations)}
			conversations[counterparty] = c
		}

		if m.SenderID == counterparty && m.ReceiverID == userID && !m.IsRead {
			c.unreadCount++
		}
	}

	summaries := make([]dto.ConversationSummary, 0, len(conversations))
	for counterparty, c := range conversations {
		user, err := s.userRepo.GetByID(ctx, counterparty)
		if err != nil {
			logger.Warn().Err(err).Int64("userID", counterparty).Msg("Skipping conversation with unknown user")
			continue
		}

		summaries = append(summaries, dto.ConversationSummary{
			User:        dto.ToUserResponse(user),
			LastMessage: dto.ToMessageResponse(c.lastMessage),
			UnreadCount: c.unreadCount,
		})
	}

	// Most recently active conversation first
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].LastMessage.CreatedAt.After(summaries[j].LastMessage.CreatedAt)
	})

	return summaries, nil
}

// GetMessages retrieves the full history between the caller and another user,
// oldest first.
func (s *chatServiceImpl) GetMessages(ctx context.Context, userID, otherUserID int64) ([]*models.Message, error) {
	return s.messageRepo.GetConversation(ctx, userID, otherUserID)
}

// SendMessage persists a new direct message
func (s *chatServiceImpl) SendMessage(ctx context.Context, senderID, receiverID int64, content string) (*models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.ErrEmptyMessage
	}
	if senderID == receiverID {
		return nil, fmt.Errorf("%w: cannot message yourself", apperrors.ErrValidationFailed)
	}

	message := &models.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	logger.Debug().Int64("messageID", message.ID).Int64("senderID", senderID).
		Int64("receiverID", receiverID).Msg("Message sent")

	return message, nil
}

// MarkMessagesAsRead marks every message from senderID to the caller as read.
// Calling it again, or when there is nothing to mark, is a no-op.
func (s *chatServiceImpl) MarkMessagesAsRead(ctx context.Context, receiverID, senderID int64) error {
	return s.messageRepo.MarkAsRead(ctx, receiverID, senderID)
}
