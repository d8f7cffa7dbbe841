package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayotunde25/bsf/internal/app/models"
	"github.com/dayotunde25/bsf/internal/app/models/dto"
	"github.com/dayotunde25/bsf/internal/pkg/apperrors"
)

func TestCreatePrayer(t *testing.T) {
	ctx := context.Background()

	t.Run("new entries start unapproved", func(t *testing.T) {
		repo := newFakePrayerRepo()
		service := NewPrayerService(repo)

		entry, err := service.Create(ctx, 1, &dto.CreatePrayerRequest{
			Content:     "Please pray for my exams",
			Type:        "prayer",
			IsAnonymous: true,
		})
		require.NoError(t, err)
		assert.False(t, entry.IsApproved)
		assert.True(t, entry.IsAnonymous)
		assert.Equal(t, models.PrayerTypeRequest, entry.Type)
	})

	t.Run("empty content is rejected", func(t *testing.T) {
		repo := newFakePrayerRepo()
		service := NewPrayerService(repo)

		_, err := service.Create(ctx, 1, &dto.CreatePrayerRequest{Content: "   ", Type: "prayer"})
		assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
		assert.Empty(t, repo.entries)
	})
}

func TestPrayerApproval(t *testing.T) {
	ctx := context.Background()

	repo := newFakePrayerRepo(
		&models.PrayerEntry{ID: 1, AuthorID: 1, Content: "pending", Type: models.PrayerTypeRequest},
		&models.PrayerEntry{ID: 2, AuthorID: 1, Content: "visible", Type: models.PrayerTypeTestimony, IsApproved: true},
	)
	service := NewPrayerService(repo)

	pending, err := service.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, int64(1), pending[0].ID)

	approved, err := service.ListApproved(ctx)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, int64(2), approved[0].ID)

	require.NoError(t, service.Approve(ctx, 1, 9))

	approved, err = service.ListApproved(ctx)
	require.NoError(t, err)
	assert.Len(t, approved, 2)

	// Approving twice is a conflict
	err = service.Approve(ctx, 1, 9)
	assert.True(t, errors.Is(err, apperrors.ErrAlreadyApproved))
}

func TestPrayerSupport(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the entry with a refreshed count", func(t *testing.T) {
		repo := newFakePrayerRepo(&models.PrayerEntry{ID: 1, AuthorID: 1, Content: "entry", IsApproved: true})
		service := NewPrayerService(repo)

		entry, err := service.Support(ctx, 2, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, entry.PrayingCount)

		entry, err = service.Support(ctx, 3, 1)
		require.NoError(t, err)
		assert.Equal(t, 2, entry.PrayingCount)
	})

	t.Run("supporting twice is a conflict", func(t *testing.T) {
		repo := newFakePrayerRepo(&models.PrayerEntry{ID: 1, AuthorID: 1, Content: "entry", IsApproved: true})
		service := NewPrayerService(repo)

		_, err := service.Support(ctx, 2, 1)
		require.NoError(t, err)

		_, err = service.Support(ctx, 2, 1)
		assert.True(t, errors.Is(err, apperrors.ErrDuplicateSupport))
	})

	t.Run("unknown entry", func(t *testing.T) {
		service := NewPrayerService(newFakePrayerRepo())

		_, err := service.Support(ctx, 2, 404)
		assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
	})

	t.Run("caller can fetch their own support row", func(t *testing.T) {
		repo := newFakePrayerRepo(&models.PrayerEntry{ID: 1, AuthorID: 1, Content: "entry", IsApproved: true})
		service := NewPrayerService(repo)

		_, err := service.Support(ctx, 2, 1)
		require.NoError(t, err)

		support, err := service.GetSupport(ctx, 2, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), support.PrayerWallID)

		_, err = service.GetSupport(ctx, 3, 1)
		assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
	})
}
