package services

import (
	"context"

	"github.com/dayotunde25/bsf/internal/app/auth"
	"github.com/dayotunde25/bsf/internal/app/models"
	"github.com/dayotunde25/bsf/internal/app/models/dto"
	"github.com/dayotunde25/bsf/internal/app/repositories"
	"github.com/dayotunde25/bsf/internal/pkg/apperrors"
	"github.com/dayotunde25/bsf/internal/pkg/helpers"
	"github.com/dayotunde25/bsf/internal/pkg/logger"
)

// AnnouncementService defines the interface for announcement operations
type AnnouncementService interface {
	List(ctx context.Context) ([]*models.Announcement, error)
	Create(ctx context.Context, authorID int64, req *dto.CreateAnnouncementRequest) (*models.Announcement, error)
	Rsvp(ctx context.Context, userID, announcementID int64, response string) (*models.Announcement, error)
	GetRsvp(ctx context.Context, userID, announcementID int64) (*models.Rsvp, error)
}

// announcementServiceImpl implements the AnnouncementService interface
type announcementServiceImpl struct {
	announcementRepo repositories.IAnnouncementRepository
	authzService     *auth.AuthorizationService
}

// NewAnnouncementService creates a new announcement service instance
func NewAnnouncementService(announcementRepo repositories.IAnnouncementRepository, authzService *auth.AuthorizationService) AnnouncementService {
	return &announcementServiceImpl{
		announcementRepo: announcementRepo,
		authzService:     authzService,
	}
}

// List retrieves all announcements, newest first
func (s *announcementServiceImpl) List(ctx context.Context) ([]*models.Announcement, error) {
	return s.announcementRepo.List(ctx)
}

// Create posts a new announcement. Only admins and users explicitly granted
// the posting flag may post.
func (s *announcementServiceImpl) Create(ctx context.Context, authorID int64, req *dto.CreateAnnouncementRequest) (*models.Announcement, error) {
	canPost, err := s.authzService.CanPostAnnouncements(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if !canPost {
		return nil, apperrors.ErrPermissionDenied
	}

	announcement := &models.Announcement{
		AuthorID:  authorID,
		Title:     req.Title,
		Content:   req.Content,
		EventDate: req.EventDate,
		Location:  helpers.StringPtr(req.Location),
	}

	if err := s.announcementRepo.Create(ctx, announcement); err != nil {
		return nil, err
	}

	logger.Info().Int64("announcementID", announcement.ID).Int64("authorID", authorID).Msg("Announcement posted")
	return announcement, nil
}

// Rsvp records the caller's response and returns the announcement with its
// refreshed count of "yes" responses.
func (s *announcementServiceImpl) Rsvp(ctx context.Context, userID, announcementID int64, response string) (*models.Announcement, error) {
	if err := s.announcementRepo.Rsvp(ctx, userID, announcementID, response); err != nil {
		return nil, err
	}
	return s.announcementRepo.GetByID(ctx, announcementID)
}

// GetRsvp retrieves the caller's own RSVP row for an announcement
func (s *announcementServiceImpl) GetRsvp(ctx context.Context, userID, announcementID int64) (*models.Rsvp, error) {
	return s.announcementRepo.GetRsvp(ctx, userID, announcementID)
}
