package services

import (
	"context"

	"github.com/dayotunde25/bsf/internal/app/models"
	"github.com/dayotunde25/bsf/internal/app/models/dto"
	"github.com/dayotunde25/bsf/internal/app/repositories"
	"github.com/dayotunde25/bsf/internal/pkg/helpers"
	"github.com/dayotunde25/bsf/internal/pkg/logger"
)

// MentorshipService defines the interface for mentorship registry operations.
// This is a registry only: pairing mentors with mentees happens outside the
// system and arrives as already-matched rows.
type MentorshipService interface {
	Register(ctx context.Context, userID int64, req *dto.CreateMentorshipRequest) (*models.Mentorship, error)
	ListMentors(ctx context.Context) ([]*models.Mentorship, error)
	ListMentees(ctx context.Context) ([]*models.Mentorship, error)
	ListMatches(ctx context.Context) ([]*models.Mentorship, error)
}

// mentorshipServiceImpl implements the MentorshipService interface
type mentorshipServiceImpl struct {
	mentorshipRepo repositories.IMentorshipRepository
}

// NewMentorshipService creates a new mentorship service instance
func NewMentorshipService(mentorshipRepo repositories.IMentorshipRepository) MentorshipService {
	return &mentorshipServiceImpl{
		mentorshipRepo: mentorshipRepo,
	}
}

// Register creates a mentorship registration for the caller
func (s *mentorshipServiceImpl) Register(ctx context.Context, userID int64, req *dto.CreateMentorshipRequest) (*models.Mentorship, error) {
	mentorship := &models.Mentorship{
		MentorID:   userID,
		Interests:  helpers.StringPtr(req.Interests),
		Department: helpers.StringPtr(req.Department),
		Status:     models.MentorshipAvailable,
		IsMentor:   req.IsMentor,
	}

	if err := s.mentorshipRepo.Create(ctx, mentorship); err != nil {
		return nil, err
	}

	logger.Info().Int64("mentorshipID", mentorship.ID).Int64("userID", userID).
		Bool("isMentor", req.IsMentor).Msg("Mentorship registration created")
	return mentorship, nil
}

// ListMentors retrieves available mentors
func (s *mentorshipServiceImpl) ListMentors(ctx context.Context) ([]*models.Mentorship, error) {
	return s.mentorshipRepo.ListMentors(ctx)
}

// ListMentees retrieves members seeking mentoring
func (s *mentorshipServiceImpl) ListMentees(ctx context.Context) ([]*models.Mentorship, error) {
	return s.mentorshipRepo.ListMentees(ctx)
}

// ListMatches retrieves matched pairs with both participants hydrated
func (s *mentorshipServiceImpl) ListMatches(ctx context.Context) ([]*models.Mentorship, error) {
	return s.mentorshipRepo.ListMatches(ctx)
}
