package services

import (
	"context"

	"github.com/dayotunde25/bsf/internal/app/auth"
	"github.com/dayotunde25/bsf/internal/app/models"
	"github.com/dayotunde25/bsf/internal/app/models/dto"
	"github.com/dayotunde25/bsf/internal/app/repositories"
	"github.com/dayotunde25/bsf/internal/pkg/helpers"
	"github.com/dayotunde25/bsf/internal/pkg/logger"
)

// TimelineService defines the interface for the fellowship timeline
type TimelineService interface {
	List(ctx context.Context) ([]*models.FellowshipHistory, error)
	Create(ctx context.Context, adminID int64, req *dto.CreateTimelineEntryRequest) (*models.FellowshipHistory, error)
}

// timelineServiceImpl implements the TimelineService interface
type timelineServiceImpl struct {
	fellowshipRepo repositories.IFellowshipRepository
	authzService   *auth.AuthorizationService
}

// NewTimelineService creates a new timeline service instance
func NewTimelineService(fellowshipRepo repositories.IFellowshipRepository, authzService *auth.AuthorizationService) TimelineService {
	return &timelineServiceImpl{
		fellowshipRepo: fellowshipRepo,
		authzService:   authzService,
	}
}

// List retrieves the fellowship timeline
func (s *timelineServiceImpl) List(ctx context.Context) ([]*models.FellowshipHistory, error) {
	return s.fellowshipRepo.List(ctx)
}

// Create records a new timeline entry. Admin only.
func (s *timelineServiceImpl) Create(ctx context.Context, adminID int64, req *dto.CreateTimelineEntryRequest) (*models.FellowshipHistory, error) {
	admin, err := s.authzService.RequireAdmin(ctx, adminID)
	if err != nil {
		return nil, err
	}

	entry := &models.FellowshipHistory{
		Year:        req.Year,
		Title:       req.Title,
		Description: helpers.StringPtr(req.Description),
		Type:        models.TimelineEntryType(req.Type),
	}

	if err := s.fellowshipRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	logger.Info().Int64("entryID", entry.ID).Int64("createdBy", admin.ID).Msg("Timeline entry created")
	return entry, nil
}
