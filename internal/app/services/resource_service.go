package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/dayotunde25/bsf/internal/app/models"
	"github.com/dayotunde25/bsf/internal/app/models/dto"
	"github.com/dayotunde25/bsf/internal/app/repositories"
	"github.com/dayotunde25/bsf/internal/pkg/filestorage"
	"github.com/dayotunde25/bsf/internal/pkg/helpers"
	"github.com/dayotunde25/bsf/internal/pkg/logger"
)

// ResourceService defines the interface for resource library operations
type ResourceService interface {
	Upload(ctx context.Context, uploaderID int64, fileHeader *multipart.FileHeader, req *dto.UploadResourceRequest) (*models.Resource, error)
	ListApproved(ctx context.Context, category string) ([]*models.Resource, error)
	ListPending(ctx context.Context) ([]*models.Resource, error)
	Approve(ctx context.Context, id, approvedBy int64) error
	Download(ctx context.Context, id int64) (*models.Resource, error)
}

// resourceServiceImpl implements the ResourceService interface
type resourceServiceImpl struct {
	resourceRepo repositories.IResourceRepository
	storage      filestorage.FileStorage
}

// NewResourceService creates a new resource service instance
func NewResourceService(resourceRepo repositories.IResourceRepository, storage filestorage.FileStorage) ResourceService {
	return &resourceServiceImpl{
		resourceRepo: resourceRepo,
		storage:      storage,
	}
}

// Upload stores the file and persists a pending resource
func (s *resourceServiceImpl) Upload(ctx context.Context, uploaderID int64, fileHeader *multipart.FileHeader, req *dto.UploadResourceRequest) (*models.Resource, error) {
	savedPath, err := s.storage.SaveFileWithPath(fileHeader, "resources")
	if err != nil {
		return nil, fmt.Errorf("error saving resource file: %w", err)
	}

	resource := &models.Resource{
		UploaderID:   uploaderID,
		Title:        req.Title,
		Category:     helpers.StringPtr(req.Category),
		FileName:     savedPath,
		OriginalName: fileHeader.Filename,
		MimeType:     fileHeader.Header.Get("Content-Type"),
		FileSize:     fileHeader.Size,
		Description:  helpers.StringPtr(req.Description),
	}

	if err := s.resourceRepo.Create(ctx, resource); err != nil {
		_ = s.storage.DeleteFile(savedPath)
		return nil, err
	}

	logger.Info().Int64("resourceID", resource.ID).Int64("uploaderID", uploaderID).Msg("Resource uploaded, pending approval")
	return resource, nil
}

// ListApproved retrieves the public resource library, optionally filtered by category
func (s *resourceServiceImpl) ListApproved(ctx context.Context, category string) ([]*models.Resource, error) {
	return s.resourceRepo.ListApproved(ctx, category)
}

// ListPending retrieves resources awaiting approval
func (s *resourceServiceImpl) ListPending(ctx context.Context) ([]*models.Resource, error) {
	return s.resourceRepo.ListPending(ctx)
}

// Approve marks a resource as approved
func (s *resourceServiceImpl) Approve(ctx context.Context, id, approvedBy int64) error {
	if err := s.resourceRepo.Approve(ctx, id, approvedBy); err != nil {
		return err
	}
	logger.Info().Int64("resourceID", id).Int64("approvedBy", approvedBy).Msg("Resource approved")
	return nil
}

// Download bumps the download counter and returns the resource so the
// controller can serve or link the file. The counter only ever grows.
func (s *resourceServiceImpl) Download(ctx context.Context, id int64) (*models.Resource, error) {
	if err := s.resourceRepo.IncrementDownloadCount(ctx, id); err != nil {
		return nil, err
	}
	return s.resourceRepo.GetByID(ctx, id)
}
