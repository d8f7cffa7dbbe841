package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayotunde25/bsf/internal/app/models"
	"github.com/dayotunde25/bsf/internal/pkg/apperrors"
)

func seedMessages(repo *fakeMessageRepo, msgs ...*models.Message) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	for i, m := range msgs {
		m.ID = int64(i + 1)
		m.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		repo.messages = append(repo.messages, m)
	}
}

func TestGetConversations(t *testing.T) {
	ctx := context.Background()

	t.Run("groups messages by counterparty", func(t *testing.T) {
		msgRepo := &fakeMessageRepo{}
		userRepo := newFakeUserRepo(
			testUser(1, models.RoleAlumni),
			testUser(2, models.RoleAlumni),
			testUser(3, models.RoleAlumni),
		)
		seedMessages(msgRepo,
			&models.Message{SenderID: 1, ReceiverID: 2, Content: "hello", IsRead: true},
			&models.Message{SenderID: 2, ReceiverID: 1, Content: "hi back"},
			&models.Message{SenderID: 3, ReceiverID: 1, Content: "are you coming?"},
			&models.Message{SenderID: 1, ReceiverID: 3, Content: "yes!", IsRead: true},
		)
		service := NewChatService(msgRepo, userRepo)

		conversations, err := service.GetConversations(ctx, 1)
		require.NoError(t, err)
		require.Len(t, conversations, 2)

		// Conversation with user 3 is more recent
		assert.Equal(t, int64(3), conversations[0].User.ID)
		assert.Equal(t, "yes!", conversations[0].LastMessage.Content)
		assert.Equal(t, int64(2), conversations[1].User.ID)
		assert.Equal(t, "hi back", conversations[1].LastMessage.Content)
	})

	t.Run("counts only unread messages from the counterparty", func(t *testing.T) {
		msgRepo := &fakeMessageRepo{}
		userRepo := newFakeUserRepo(
			testUser(1, models.RoleAlumni),
			testUser(2, models.RoleAlumni),
		)
		seedMessages(msgRepo,
			&models.Message{SenderID: 2, ReceiverID: 1, Content: "one"},
			&models.Message{SenderID: 2, ReceiverID: 1, Content: "two"},
			&models.Message{SenderID: 2, ReceiverID: 1, Content: "read already", IsRead: true},
			// The caller's own unread messages never count
			&models.Message{SenderID: 1, ReceiverID: 2, Content: "mine"},
		)
		service := NewChatService(msgRepo, userRepo)

		conversations, err := service.GetConversations(ctx, 1)
		require.NoError(t, err)
		require.Len(t, conversations, 1)
		assert.Equal(t, 2, conversations[0].UnreadCount)
	})

	t.Run("skips conversations with unknown users", func(t *testing.T) {
		msgRepo := &fakeMessageRepo{}
		userRepo := newFakeUserRepo(
			testUser(1, models.RoleAlumni),
			testUser(2, models.RoleAlumni),
		)
		seedMessages(msgRepo,
			&models.Message{SenderID: 2, ReceiverID: 1, Content: "kept"},
			&models.Message{SenderID: 99, ReceiverID: 1, Content: "from deleted account"},
		)
		service := NewChatService(msgRepo, userRepo)

		conversations, err := service.GetConversations(ctx, 1)
		require.NoError(t, err)
		require.Len(t, conversations, 1)
		assert.Equal(t, int64(2), conversations[0].User.ID)
	})

	t.Run("returns empty list for a user with no messages", func(t *testing.T) {
		msgRepo := &fakeMessageRepo{}
		userRepo := newFakeUserRepo(testUser(1, models.RoleAlumni))
		service := NewChatService(msgRepo, userRepo)

		conversations, err := service.GetConversations(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, conversations)
	})
}

func TestSendMessage(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		senderID   int64
		receiverID int64
		content    string
		wantErr    error
	}{
		{
			name:       "valid message",
			senderID:   1,
			receiverID: 2,
			content:    "see you on Sunday",
		},
		{
			name:       "empty content",
			senderID:   1,
			receiverID: 2,
			content:    "",
			wantErr:    apperrors.ErrEmptyMessage,
		},
		{
			name:       "whitespace only content",
			senderID:   1,
			receiverID: 2,
			content:    "   \t\n",
			wantErr:    apperrors.ErrEmptyMessage,
		},
		{
			name:       "message to self",
			senderID:   1,
			receiverID: 1,
			content:    "note to self",
			wantErr:    apperrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msgRepo := &fakeMessageRepo{}
			userRepo := newFakeUserRepo(testUser(1, models.RoleAlumni), testUser(2, models.RoleAlumni))
			service := NewChatService(msgRepo, userRepo)

			message, err := service.SendMessage(ctx, tt.senderID, tt.receiverID, tt.content)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Nil(t, message)
				assert.Empty(t, msgRepo.messages)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, message)
			assert.Equal(t, tt.senderID, message.SenderID)
			assert.Equal(t, tt.receiverID, message.ReceiverID)
			assert.Equal(t, tt.content, message.Content)
			assert.False(t, message.IsRead)
			require.Len(t, msgRepo.messages, 1)
		})
	}
}

func TestMarkMessagesAsRead(t *testing.T) {
	ctx := context.Background()

	msgRepo := &fakeMessageRepo{}
	userRepo := newFakeUserRepo(testUser(1, models.RoleAlumni), testUser(2, models.RoleAlumni))
	seedMessages(msgRepo,
		&models.Message{SenderID: 2, ReceiverID: 1, Content: "one"},
		&models.Message{SenderID: 2, ReceiverID: 1, Content: "two"},
		&models.Message{SenderID: 1, ReceiverID: 2, Content: "outgoing stays untouched"},
	)
	service := NewChatService(msgRepo, userRepo)

	err := service.MarkMessagesAsRead(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, msgRepo.markCalls, 1)
	assert.Equal(t, [2]int64{1, 2}, msgRepo.markCalls[0])

	assert.True(t, msgRepo.messages[0].IsRead)
	assert.True(t, msgRepo.messages[1].IsRead)
	assert.False(t, msgRepo.messages[2].IsRead)

	// Marking again is a no-op
	err = service.MarkMessagesAsRead(ctx, 1, 2)
	require.NoError(t, err)
}
