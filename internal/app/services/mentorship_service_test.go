package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayotunde25/bsf/internal/app/models"
	"github.com/dayotunde25/bsf/internal/app/models/dto"
)

type fakeMentorshipRepo struct {
	registrations []*models.Mentorship
}

func (r *fakeMentorshipRepo) Create(ctx context.Context, mentorship *models.Mentorship) error {
	mentorship.ID = int64(len(r.registrations) + 1)
	r.registrations = append(r.registrations, mentorship)
	return nil
}

func (r *fakeMentorshipRepo) ListMentors(ctx context.Context) ([]*models.Mentorship, error) {
	var out []*models.Mentorship
	for _, m := range r.registrations {
		if m.IsMentor && m.Status == models.MentorshipAvailable {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMentorshipRepo) ListMentees(ctx context.Context) ([]*models.Mentorship, error) {
	var out []*models.Mentorship
	for _, m := range r.registrations {
		if !m.IsMentor && m.Status == models.MentorshipAvailable {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMentorshipRepo) ListMatches(ctx context.Context) ([]*models.Mentorship, error) {
	var out []*models.Mentorship
	for _, m := range r.registrations {
		if m.Status == models.MentorshipMatched {
			out = append(out, m)
		}
	}
	return out, nil
}

func TestMentorshipRegistry(t *testing.T) {
	ctx := context.Background()

	repo := &fakeMentorshipRepo{}
	service := NewMentorshipService(repo)

	mentor, err := service.Register(ctx, 1, &dto.CreateMentorshipRequest{
		Interests:  "software engineering",
		Department: "Computer Science",
		IsMentor:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, models.MentorshipAvailable, mentor.Status)
	assert.True(t, mentor.IsMentor)
	require.NotNil(t, mentor.Interests)
	assert.Equal(t, "software engineering", *mentor.Interests)

	mentee, err := service.Register(ctx, 2, &dto.CreateMentorshipRequest{IsMentor: false})
	require.NoError(t, err)
	assert.Nil(t, mentee.Interests)

	mentors, err := service.ListMentors(ctx)
	require.NoError(t, err)
	require.Len(t, mentors, 1)
	assert.Equal(t, int64(1), mentors[0].MentorID)

	mentees, err := service.ListMentees(ctx)
	require.NoError(t, err)
	require.Len(t, mentees, 1)
	assert.Equal(t, int64(2), mentees[0].MentorID)

	// Registrations start unmatched; matching is recorded externally.
	matches, err := service.ListMatches(ctx)
	require.NoError(t, err)
	assert.Empty(t, matches)

	repo.registrations[0].Status = models.MentorshipMatched
	matches, err = service.ListMatches(ctx)
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}
