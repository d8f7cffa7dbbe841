package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dayotunde25/bsf/internal/app/models"
	"github.com/dayotunde25/bsf/internal/app/models/dto"
	"github.com/dayotunde25/bsf/internal/app/repositories"
	"github.com/dayotunde25/bsf/internal/pkg/apperrors"
	"github.com/dayotunde25/bsf/internal/pkg/logger"
)

// PrayerService defines the interface for prayer wall operations
type PrayerService interface {
	Create(ctx context.Context, authorID int64, req *dto.CreatePrayerRequest) (*models.PrayerEntry, error)
	ListApproved(ctx context.Context) ([]*models.PrayerEntry, error)
	ListPending(ctx context.Context) ([]*models.PrayerEntry, error)
	Approve(ctx context.Context, id, approvedBy int64) error
	Support(ctx context.Context, userID, prayerID int64) (*models.PrayerEntry, error)
	GetSupport(ctx context.Context, userID, prayerID int64) (*models.PrayerSupport, error)
}

// prayerServiceImpl implements the PrayerService interface
type prayerServiceImpl struct {
	prayerRepo repositories.IPrayerRepository
}

// NewPrayerService creates a new prayer service instance
func NewPrayerService(prayerRepo repositories.IPrayerRepository) PrayerService {
	return &prayerServiceImpl{
		prayerRepo: prayerRepo,
	}
}

// Create persists a pending prayer wall entry
func (s *prayerServiceImpl) Create(ctx context.Context, authorID int64, req *dto.CreatePrayerRequest) (*models.PrayerEntry, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, fmt.Errorf("%w: content cannot be empty", apperrors.ErrValidationFailed)
	}

	entry := &models.PrayerEntry{
		AuthorID:    authorID,
		Content:     req.Content,
		Type:        models.PrayerEntryType(req.Type),
		IsAnonymous: req.IsAnonymous,
	}

	if err := s.prayerRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	logger.Info().Int64("prayerID", entry.ID).Str("type", req.Type).Msg("Prayer entry submitted, pending approval")
	return entry, nil
}

// ListApproved retrieves the public prayer wall
func (s *prayerServiceImpl) ListApproved(ctx context.Context) ([]*models.PrayerEntry, error) {
	return s.prayerRepo.ListApproved(ctx)
}

// ListPending retrieves entries awaiting approval
func (s *prayerServiceImpl) ListPending(ctx context.Context) ([]*models.PrayerEntry, error) {
	return s.prayerRepo.ListPending(ctx)
}

// Approve marks a prayer wall entry as approved
func (s *prayerServiceImpl) Approve(ctx context.Context, id, approvedBy int64) error {
	if err := s.prayerRepo.Approve(ctx, id, approvedBy); err != nil {
		return err
	}
	logger.Info().Int64("prayerID", id).Int64("approvedBy", approvedBy).Msg("Prayer entry approved")
	return nil
}

// Support records that the user is praying for an entry and returns the entry
// with its refreshed count. Supporting the same entry twice is a conflict.
func (s *prayerServiceImpl) Support(ctx context.Context, userID, prayerID int64) (*models.PrayerEntry, error) {
	if err := s.prayerRepo.AddSupport(ctx, userID, prayerID); err != nil {
		return nil, err
	}
	return s.prayerRepo.GetByID(ctx, prayerID)
}

// GetSupport retrieves the caller's own support row for an entry
func (s *prayerServiceImpl) GetSupport(ctx context.Context, userID, prayerID int64) (*models.PrayerSupport, error) {
	return s.prayerRepo.GetSupport(ctx, userID, prayerID)
}
