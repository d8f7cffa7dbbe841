package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/dayotunde25/bsf/internal/app/models"
	"github.com/dayotunde25/bsf/internal/app/models/dto"
	"github.com/dayotunde25/bsf/internal/app/repositories"
	"github.com/dayotunde25/bsf/internal/pkg/apperrors"
	"github.com/dayotunde25/bsf/internal/pkg/filestorage"
	"github.com/dayotunde25/bsf/internal/pkg/helpers"
	"github.com/dayotunde25/bsf/internal/pkg/logger"
)

// GalleryService defines the interface for media gallery operations
type GalleryService interface {
	Upload(ctx context.Context, uploaderID int64, fileHeader *multipart.FileHeader, req *dto.UploadMediaRequest) (*models.Media, error)
	ListApproved(ctx context.Context, eventType, session string) ([]*models.Media, error)
	ListPending(ctx context.Context) ([]*models.Media, error)
	Approve(ctx context.Context, id, approvedBy int64) error
}

// galleryServiceImpl implements the GalleryService interface
type galleryServiceImpl struct {
	mediaRepo repositories.IMediaRepository
	storage   filestorage.FileStorage
}

// NewGalleryService creates a new gallery service instance
func NewGalleryService(mediaRepo repositories.IMediaRepository, storage filestorage.FileStorage) GalleryService {
	return &galleryServiceImpl{
		mediaRepo: mediaRepo,
		storage:   storage,
	}
}

// Upload stores the file and persists a pending gallery item. Every item
// carries its event type and session; the file is only written once the
// metadata is known to be complete.
func (s *galleryServiceImpl) Upload(ctx context.Context, uploaderID int64, fileHeader *multipart.FileHeader, req *dto.UploadMediaRequest) (*models.Media, error) {
	if strings.TrimSpace(req.EventType) == "" {
		return nil, apperrors.NewValidationError("eventType", "eventType is required")
	}
	if strings.TrimSpace(req.Session) == "" {
		return nil, apperrors.NewValidationError("session", "session is required")
	}

	savedPath, err := s.storage.SaveFileWithPath(fileHeader, "gallery")
	if err != nil {
		return nil, fmt.Errorf("error saving media file: %w", err)
	}

	media := &models.Media{
		UploaderID:   uploaderID,
		FileName:     savedPath,
		OriginalName: fileHeader.Filename,
		MimeType:     fileHeader.Header.Get("Content-Type"),
		FileSize:     fileHeader.Size,
		EventType:    helpers.StringPtr(req.EventType),
		Session:      helpers.StringPtr(req.Session),
		Description:  helpers.StringPtr(req.Description),
	}

	if err := s.mediaRepo.Create(ctx, media); err != nil {
		// Best effort cleanup of the orphaned file
		_ = s.storage.DeleteFile(savedPath)
		return nil, err
	}

	logger.Info().Int64("mediaID", media.ID).Int64("uploaderID", uploaderID).Msg("Media uploaded, pending approval")
	return media, nil
}

// ListApproved retrieves the public gallery, optionally filtered
func (s *galleryServiceImpl) ListApproved(ctx context.Context, eventType, session string) ([]*models.Media, error) {
	return s.mediaRepo.ListApproved(ctx, eventType, session)
}

// ListPending retrieves items awaiting approval
func (s *galleryServiceImpl) ListPending(ctx context.Context) ([]*models.Media, error) {
	return s.mediaRepo.ListPending(ctx)
}

// Approve marks a gallery item as approved
func (s *galleryServiceImpl) Approve(ctx context.Context, id, approvedBy int64) error {
	if err := s.mediaRepo.Approve(ctx, id, approvedBy); err != nil {
		return err
	}
	logger.Info().Int64("mediaID", id).Int64("approvedBy", approvedBy).Msg("Media approved")
	return nil
}
