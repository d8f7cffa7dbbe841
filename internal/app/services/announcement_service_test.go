package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayotunde25/bsf/internal/app/auth"
	"github.com/dayotunde25/bsf/internal/app/models"
	"github.com/dayotunde25/bsf/internal/app/models/dto"
	"github.com/dayotunde25/bsf/internal/pkg/apperrors"
)

func newAnnouncementService(repo *fakeAnnouncementRepo, users ...*models.User) AnnouncementService {
	return NewAnnouncementService(repo, auth.NewAuthorizationService(newFakeUserRepo(users...)))
}

func TestCreateAnnouncement(t *testing.T) {
	ctx := context.Background()

	req := &dto.CreateAnnouncementRequest{
		Title:    "Annual Reunion",
		Content:  "Join us at the fellowship hall.",
		Location: "Fellowship Hall",
	}

	t.Run("admin can always post", func(t *testing.T) {
		repo := newFakeAnnouncementRepo()
		service := newAnnouncementService(repo, testUser(1, models.RoleAdmin))

		announcement, err := service.Create(ctx, 1, req)
		require.NoError(t, err)
		assert.Equal(t, "Annual Reunion", announcement.Title)
		require.NotNil(t, announcement.Location)
		assert.Equal(t, "Fellowship Hall", *announcement.Location)
		assert.Len(t, repo.announcements, 1)
	})

	t.Run("user with the posting flag can post", func(t *testing.T) {
		poster := testUser(1, models.RoleAlumni)
		poster.CanPostAnnouncements = true
		service := newAnnouncementService(newFakeAnnouncementRepo(), poster)

		_, err := service.Create(ctx, 1, req)
		require.NoError(t, err)
	})

	t.Run("regular member is denied", func(t *testing.T) {
		repo := newFakeAnnouncementRepo()
		service := newAnnouncementService(repo, testUser(1, models.RoleAlumni))

		_, err := service.Create(ctx, 1, req)
		assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))
		assert.Empty(t, repo.announcements)
	})
}

func TestRsvp(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the announcement with a refreshed count of yes responses", func(t *testing.T) {
		repo := newFakeAnnouncementRepo(&models.Announcement{ID: 1, AuthorID: 1, Title: "Reunion"})
		service := newAnnouncementService(repo, testUser(1, models.RoleAdmin))

		announcement, err := service.Rsvp(ctx, 2, 1, "yes")
		require.NoError(t, err)
		assert.Equal(t, 1, announcement.RsvpCount)

		// "maybe" responses do not count towards attendance
		announcement, err = service.Rsvp(ctx, 3, 1, "maybe")
		require.NoError(t, err)
		assert.Equal(t, 1, announcement.RsvpCount)
	})

	t.Run("responding twice is a conflict", func(t *testing.T) {
		repo := newFakeAnnouncementRepo(&models.Announcement{ID: 1, AuthorID: 1, Title: "Reunion"})
		service := newAnnouncementService(repo, testUser(1, models.RoleAdmin))

		_, err := service.Rsvp(ctx, 2, 1, "yes")
		require.NoError(t, err)

		_, err = service.Rsvp(ctx, 2, 1, "no")
		assert.True(t, errors.Is(err, apperrors.ErrDuplicateRsvp))
	})

	t.Run("unknown announcement", func(t *testing.T) {
		service := newAnnouncementService(newFakeAnnouncementRepo(), testUser(1, models.RoleAdmin))

		_, err := service.Rsvp(ctx, 2, 404, "yes")
		assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
	})
}

func TestGetRsvp(t *testing.T) {
	ctx := context.Background()

	repo := newFakeAnnouncementRepo(&models.Announcement{ID: 1, AuthorID: 1, Title: "Reunion"})
	service := newAnnouncementService(repo, testUser(1, models.RoleAdmin))

	_, err := service.Rsvp(ctx, 2, 1, "yes")
	require.NoError(t, err)

	rsvp, err := service.GetRsvp(ctx, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, "yes", rsvp.Response)

	// Another member's RSVP is not visible as the caller's own
	_, err = service.GetRsvp(ctx, 3, 1)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}
