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

func TestCreateJobPost(t *testing.T) {
	ctx := context.Background()

	t.Run("new posts start unapproved", func(t *testing.T) {
		repo := newFakeJobRepo()
		service := NewJobService(repo)

		job, err := service.Create(ctx, 1, &dto.CreateJobPostRequest{
			Title:       "Backend Engineer",
			Company:     "Acme Corp",
			Description: "Go and Postgres",
			Location:    "Lagos",
		})
		require.NoError(t, err)
		assert.False(t, job.IsApproved)
		require.NotNil(t, job.Location)
		assert.Equal(t, "Lagos", *job.Location)
	})

	t.Run("title and company are required", func(t *testing.T) {
		service := NewJobService(newFakeJobRepo())

		_, err := service.Create(ctx, 1, &dto.CreateJobPostRequest{Title: "Backend Engineer"})
		assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))

		_, err = service.Create(ctx, 1, &dto.CreateJobPostRequest{Company: "Acme Corp"})
		assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
	})
}

func TestApply(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the post with a refreshed application count", func(t *testing.T) {
		repo := newFakeJobRepo(&models.JobPost{ID: 1, PosterID: 1, Title: "Backend Engineer", Company: "Acme Corp", IsApproved: true})
		service := NewJobService(repo)

		job, err := service.Apply(ctx, 2, 1, "I have three years of Go experience.")
		require.NoError(t, err)
		assert.Equal(t, 1, job.ApplicationCount)

		job, err = service.Apply(ctx, 3, 1, "")
		require.NoError(t, err)
		assert.Equal(t, 2, job.ApplicationCount)
	})

	t.Run("applying twice is a conflict", func(t *testing.T) {
		repo := newFakeJobRepo(&models.JobPost{ID: 1, PosterID: 1, Title: "Backend Engineer", Company: "Acme Corp", IsApproved: true})
		service := NewJobService(repo)

		_, err := service.Apply(ctx, 2, 1, "")
		require.NoError(t, err)

		_, err = service.Apply(ctx, 2, 1, "second attempt")
		assert.True(t, errors.Is(err, apperrors.ErrDuplicateApplication))
	})

	t.Run("caller can fetch their own application", func(t *testing.T) {
		repo := newFakeJobRepo(&models.JobPost{ID: 1, PosterID: 1, Title: "Backend Engineer", Company: "Acme Corp", IsApproved: true})
		service := NewJobService(repo)

		_, err := service.Apply(ctx, 2, 1, "cover letter")
		require.NoError(t, err)

		application, err := service.GetApplication(ctx, 2, 1)
		require.NoError(t, err)
		require.NotNil(t, application.CoverLetter)
		assert.Equal(t, "cover letter", *application.CoverLetter)

		_, err = service.GetApplication(ctx, 3, 1)
		assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
	})
}

func TestJobApproval(t *testing.T) {
	ctx := context.Background()

	repo := newFakeJobRepo(
		&models.JobPost{ID: 1, PosterID: 1, Title: "Pending", Company: "Acme Corp"},
		&models.JobPost{ID: 2, PosterID: 1, Title: "Visible", Company: "Acme Corp", IsApproved: true},
	)
	service := NewJobService(repo)

	pending, err := service.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, int64(1), pending[0].ID)

	require.NoError(t, service.Approve(ctx, 1, 9))

	approved, err := service.ListApproved(ctx)
	require.NoError(t, err)
	assert.Len(t, approved, 2)

	err = service.Approve(ctx, 1, 9)
	assert.True(t, errors.Is(err, apperrors.ErrAlreadyApproved))
}
