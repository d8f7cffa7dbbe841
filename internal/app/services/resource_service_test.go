package services

import (
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayotunde25/bsf/internal/app/models"
	"github.com/dayotunde25/bsf/internal/app/models/dto"
	"github.com/dayotunde25/bsf/internal/pkg/apperrors"
)

type fakeResourceRepo struct {
	resources map[int64]*models.Resource
	createErr error
}

func newFakeResourceRepo(resources ...*models.Resource) *fakeResourceRepo {
	r := &fakeResourceRepo{resources: make(map[int64]*models.Resource)}
	for _, res := range resources {
		r.resources[res.ID] = res
	}
	return r
}

func (r *fakeResourceRepo) Create(ctx context.Context, resource *models.Resource) error {
	if r.createErr != nil {
		return r.createErr
	}
	resource.ID = int64(len(r.resources) + 1)
	r.resources[resource.ID] = resource
	return nil
}

func (r *fakeResourceRepo) GetByID(ctx context.Context, id int64) (*models.Resource, error) {
	res, ok := r.resources[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	return res, nil
}

func (r *fakeResourceRepo) ListApproved(ctx context.Context, category string) ([]*models.Resource, error) {
	var out []*models.Resource
	for _, res := range r.resources {
		if !res.IsApproved {
			continue
		}
		if category != "" && (res.Category == nil || *res.Category != category) {
			continue
		}
		out = append(out, res)
	}
	return out, nil
}

func (r *fakeResourceRepo) ListPending(ctx context.Context) ([]*models.Resource, error) {
	var out []*models.Resource
	for _, res := range r.resources {
		if !res.IsApproved {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *fakeResourceRepo) Approve(ctx context.Context, id, approvedBy int64) error {
	res, ok := r.resources[id]
	if !ok {
		return apperrors.ErrResourceNotFound
	}
	if res.IsApproved {
		return apperrors.ErrAlreadyApproved
	}
	res.IsApproved = true
	res.ApprovedBy = &approvedBy
	return nil
}

func (r *fakeResourceRepo) IncrementDownloadCount(ctx context.Context, id int64) error {
	res, ok := r.resources[id]
	if !ok {
		return apperrors.ErrResourceNotFound
	}
	res.DownloadCount++
	return nil
}

type fakeStorage struct {
	saved   []string
	deleted []string
	saveErr error
}

func (s *fakeStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	return s.SaveFileWithPath(fileHeader, "")
}

func (s *fakeStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, path string) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	saved := path + "/stored-" + fileHeader.Filename
	s.saved = append(s.saved, saved)
	return saved, nil
}

func (s *fakeStorage) DeleteFile(filePath string) error {
	s.deleted = append(s.deleted, filePath)
	return nil
}

func (s *fakeStorage) GetFullPath(fileURL string) string {
	return "/data/" + fileURL
}

func pdfFileHeader(name string) *multipart.FileHeader {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", "application/pdf")
	return &multipart.FileHeader{
		Filename: name,
		Header:   header,
		Size:     2048,
	}
}

func TestUploadResource(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the file and creates a pending resource", func(t *testing.T) {
		repo := newFakeResourceRepo()
		storage := &fakeStorage{}
		service := NewResourceService(repo, storage)

		resource, err := service.Upload(ctx, 1, pdfFileHeader("sermon-notes.pdf"), &dto.UploadResourceRequest{
			Title:    "Sermon Notes",
			Category: "teaching",
		})
		require.NoError(t, err)

		assert.False(t, resource.IsApproved)
		assert.Equal(t, "Sermon Notes", resource.Title)
		assert.Equal(t, "sermon-notes.pdf", resource.OriginalName)
		assert.Equal(t, "application/pdf", resource.MimeType)
		assert.Equal(t, int64(2048), resource.FileSize)
		require.Len(t, storage.saved, 1)
		assert.Equal(t, storage.saved[0], resource.FileName)
	})

	t.Run("cleans up the stored file when persistence fails", func(t *testing.T) {
		repo := newFakeResourceRepo()
		repo.createErr = errors.New("insert failed")
		storage := &fakeStorage{}
		service := NewResourceService(repo, storage)

		_, err := service.Upload(ctx, 1, pdfFileHeader("sermon-notes.pdf"), &dto.UploadResourceRequest{Title: "Sermon Notes"})
		require.Error(t, err)
		require.Len(t, storage.deleted, 1)
		assert.Equal(t, storage.saved[0], storage.deleted[0])
	})

	t.Run("fails when storage rejects the file", func(t *testing.T) {
		storage := &fakeStorage{saveErr: errors.New("disk full")}
		service := NewResourceService(newFakeResourceRepo(), storage)

		_, err := service.Upload(ctx, 1, pdfFileHeader("sermon-notes.pdf"), &dto.UploadResourceRequest{Title: "Sermon Notes"})
		assert.Error(t, err)
	})
}

func TestDownloadResource(t *testing.T) {
	ctx := context.Background()

	t.Run("increments the counter on every download", func(t *testing.T) {
		repo := newFakeResourceRepo(&models.Resource{ID: 1, Title: "Handbook", IsApproved: true})
		service := NewResourceService(repo, &fakeStorage{})

		resource, err := service.Download(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, resource.DownloadCount)

		resource, err = service.Download(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 2, resource.DownloadCount)
	})

	t.Run("unknown resource", func(t *testing.T) {
		service := NewResourceService(newFakeResourceRepo(), &fakeStorage{})

		_, err := service.Download(ctx, 404)
		assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
	})
}

func TestResourceApproval(t *testing.T) {
	ctx := context.Background()

	teaching := "teaching"
	repo := newFakeResourceRepo(
		&models.Resource{ID: 1, Title: "Pending", Category: &teaching},
		&models.Resource{ID: 2, Title: "Visible", Category: &teaching, IsApproved: true},
	)
	service := NewResourceService(repo, &fakeStorage{})

	pending, err := service.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	require.NoError(t, service.Approve(ctx, 1, 9))

	approved, err := service.ListApproved(ctx, "teaching")
	require.NoError(t, err)
	assert.Len(t, approved, 2)

	none, err := service.ListApproved(ctx, "music")
	require.NoError(t, err)
	assert.Empty(t, none)

	err = service.Approve(ctx, 1, 9)
	assert.True(t, errors.Is(err, apperrors.ErrAlreadyApproved))
}
