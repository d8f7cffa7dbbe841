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

type fakeMediaRepo struct {
	items     map[int64]*models.Media
	createErr error
}

func newFakeMediaRepo(items ...*models.Media) *fakeMediaRepo {
	r := &fakeMediaRepo{items: make(map[int64]*models.Media)}
	for _, m := range items {
		r.items[m.ID] = m
	}
	return r
}

func (r *fakeMediaRepo) Create(ctx context.Context, media *models.Media) error {
	if r.createErr != nil {
		return r.createErr
	}
	media.ID = int64(len(r.items) + 1)
	r.items[media.ID] = media
	return nil
}

func (r *fakeMediaRepo) GetByID(ctx context.Context, id int64) (*models.Media, error) {
	m, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	return m, nil
}

func (r *fakeMediaRepo) ListApproved(ctx context.Context, eventType, session string) ([]*models.Media, error) {
	var out []*models.Media
	for _, m := range r.items {
		if !m.IsApproved {
			continue
		}
		if eventType != "" && (m.EventType == nil || *m.EventType != eventType) {
			continue
		}
		if session != "" && (m.Session == nil || *m.Session != session) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeMediaRepo) ListPending(ctx context.Context) ([]*models.Media, error) {
	var out []*models.Media
	for _, m := range r.items {
		if !m.IsApproved {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMediaRepo) Approve(ctx context.Context, id, approvedBy int64) error {
	m, ok := r.items[id]
	if !ok {
		return apperrors.ErrResourceNotFound
	}
	if m.IsApproved {
		return apperrors.ErrAlreadyApproved
	}
	m.IsApproved = true
	m.ApprovedBy = &approvedBy
	return nil
}

func jpegFileHeader(name string) *multipart.FileHeader {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", "image/jpeg")
	return &multipart.FileHeader{
		Filename: name,
		Header:   header,
		Size:     4096,
	}
}

func approvedMedia(id int64, eventType, session string) *models.Media {
	return &models.Media{ID: id, EventType: &eventType, Session: &session, IsApproved: true}
}

func TestUploadMedia(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the file and creates a pending item", func(t *testing.T) {
		repo := newFakeMediaRepo()
		storage := &fakeStorage{}
		service := NewGalleryService(repo, storage)

		media, err := service.Upload(ctx, 1, jpegFileHeader("choir.jpg"), &dto.UploadMediaRequest{
			EventType: "convention",
			Session:   "2023/2024",
		})
		require.NoError(t, err)

		assert.False(t, media.IsApproved)
		assert.Equal(t, "choir.jpg", media.OriginalName)
		assert.Equal(t, "image/jpeg", media.MimeType)
		assert.Equal(t, int64(4096), media.FileSize)
		require.NotNil(t, media.EventType)
		assert.Equal(t, "convention", *media.EventType)
		require.NotNil(t, media.Session)
		assert.Equal(t, "2023/2024", *media.Session)
		require.Len(t, storage.saved, 1)
		assert.Equal(t, storage.saved[0], media.FileName)
	})

	t.Run("rejects uploads missing the required tags", func(t *testing.T) {
		tests := []struct {
			name string
			req  dto.UploadMediaRequest
		}{
			{"no fields at all", dto.UploadMediaRequest{}},
			{"missing eventType", dto.UploadMediaRequest{Session: "2023/2024"}},
			{"missing session", dto.UploadMediaRequest{EventType: "convention"}},
			{"whitespace session", dto.UploadMediaRequest{EventType: "convention", Session: "   "}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repo := newFakeMediaRepo()
				storage := &fakeStorage{}
				service := NewGalleryService(repo, storage)

				_, err := service.Upload(ctx, 1, jpegFileHeader("choir.jpg"), &tt.req)
				assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
				assert.Empty(t, storage.saved)
				assert.Empty(t, repo.items)
			})
		}
	})

	t.Run("cleans up the stored file when persistence fails", func(t *testing.T) {
		repo := newFakeMediaRepo()
		repo.createErr = errors.New("insert failed")
		storage := &fakeStorage{}
		service := NewGalleryService(repo, storage)

		_, err := service.Upload(ctx, 1, jpegFileHeader("choir.jpg"), &dto.UploadMediaRequest{
			EventType: "convention",
			Session:   "2023/2024",
		})
		require.Error(t, err)
		require.Len(t, storage.deleted, 1)
		assert.Equal(t, storage.saved[0], storage.deleted[0])
	})

	t.Run("fails when storage rejects the file", func(t *testing.T) {
		storage := &fakeStorage{saveErr: errors.New("disk full")}
		service := NewGalleryService(newFakeMediaRepo(), storage)

		_, err := service.Upload(ctx, 1, jpegFileHeader("choir.jpg"), &dto.UploadMediaRequest{
			EventType: "convention",
			Session:   "2023/2024",
		})
		assert.Error(t, err)
	})
}

func TestMediaApproval(t *testing.T) {
	ctx := context.Background()

	convention := "convention"
	session := "2023/2024"
	repo := newFakeMediaRepo(
		&models.Media{ID: 1, EventType: &convention, Session: &session},
		approvedMedia(2, "convention", "2023/2024"),
		approvedMedia(3, "retreat", "2022/2023"),
	)
	service := NewGalleryService(repo, &fakeStorage{})

	pending, err := service.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, int64(1), pending[0].ID)

	require.NoError(t, service.Approve(ctx, 1, 9))
	require.NotNil(t, repo.items[1].ApprovedBy)
	assert.Equal(t, int64(9), *repo.items[1].ApprovedBy)

	all, err := service.ListApproved(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	conventions, err := service.ListApproved(ctx, "convention", "")
	require.NoError(t, err)
	assert.Len(t, conventions, 2)

	older, err := service.ListApproved(ctx, "retreat", "2022/2023")
	require.NoError(t, err)
	assert.Len(t, older, 1)

	err = service.Approve(ctx, 1, 9)
	assert.True(t, errors.Is(err, apperrors.ErrAlreadyApproved))

	err = service.Approve(ctx, 404, 9)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}
