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

type fakeFellowshipRepo struct {
	entries []*models.FellowshipHistory
}

func (r *fakeFellowshipRepo) Create(ctx context.Context, entry *models.FellowshipHistory) error {
	entry.ID = int64(len(r.entries) + 1)
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeFellowshipRepo) List(ctx context.Context) ([]*models.FellowshipHistory, error) {
	return r.entries, nil
}

func TestTimeline(t *testing.T) {
	ctx := context.Background()

	newService := func(users ...*models.User) (TimelineService, *fakeFellowshipRepo) {
		repo := &fakeFellowshipRepo{}
		userRepo := newFakeUserRepo(users...)
		return NewTimelineService(repo, auth.NewAuthorizationService(userRepo)), repo
	}

	t.Run("admin records an entry", func(t *testing.T) {
		service, repo := newService(testUser(1, models.RoleAdmin))

		entry, err := service.Create(ctx, 1, &dto.CreateTimelineEntryRequest{
			Year:        "2019",
			Title:       "First alumni convention",
			Description: "Held at the main campus",
			Type:        "milestone",
		})
		require.NoError(t, err)
		assert.Equal(t, models.TimelineMilestone, entry.Type)
		require.NotNil(t, entry.Description)

		require.Len(t, repo.entries, 1)
		entries, err := service.List(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "First alumni convention", entries[0].Title)
	})

	t.Run("non-admin caller is rejected", func(t *testing.T) {
		service, repo := newService(testUser(1, models.RoleAlumni))

		_, err := service.Create(ctx, 1, &dto.CreateTimelineEntryRequest{
			Year: "2019", Title: "First alumni convention", Type: "event",
		})
		assert.True(t, errors.Is(err, apperrors.ErrAdminRequired))
		assert.Empty(t, repo.entries)
	})
}
