package service

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/alhuda-academy/admissions-api/internal/models"
	"github.com/alhuda-academy/admissions-api/pkg/config"
	appErrors "github.com/alhuda-academy/admissions-api/pkg/errors"
)

type galleryRepository interface {
	Create(ctx context.Context, img *models.GalleryImage) error
	List(ctx context.Context, category string) ([]models.GalleryImage, error)
	FindByID(ctx context.Context, id string) (*models.GalleryImage, error)
	Delete(ctx context.Context, id string) error
}

type uploadStore interface {
	SaveStream(filename string, r io.Reader) (string, error)
	Delete(filename string) error
}

// GalleryService manages gallery images. Bytes land on disk under the
// uploads directory; only metadata is persisted.
type GalleryService struct {
	repo    galleryRepository
	uploads uploadStore
	cfg     config.UploadsConfig
	logger  *zap.Logger
}

// NewGalleryService constructs GalleryService.
func NewGalleryService(repo galleryRepository, uploads uploadStore, cfg config.UploadsConfig, logger *zap.Logger) *GalleryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GalleryService{repo: repo, uploads: uploads, cfg: cfg, logger: logger}
}

// ValidateUpload applies the upload gate: size ceiling, extension allow-list
// and an image content type. Rejections carry the UPLOAD_REJECTED code so
// clients can distinguish them from field validation.
func (s *GalleryService) ValidateUpload(header *multipart.FileHeader) error {
	if header.Size > s.cfg.MaxFileSizeBytes {
		return appErrors.Clone(appErrors.ErrUploadRejected,
			fmt.Sprintf("file exceeds the %d byte limit", s.cfg.MaxFileSizeBytes))
	}
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !extensionAllowed(ext, s.cfg.AllowedExtensions) {
		return appErrors.Clone(appErrors.ErrUploadRejected, "only image files are allowed")
	}
	if ct := header.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		return appErrors.Clone(appErrors.ErrUploadRejected, "only image files are allowed")
	}
	return nil
}

// SaveUpload writes the uploaded file under a collision-free name and
// returns the stored filename with its public URL path.
func (s *GalleryService) SaveUpload(header *multipart.FileHeader) (filename, url string, err error) {
	if err := s.ValidateUpload(header); err != nil {
		return "", "", err
	}
	src, err := header.Open()
	if err != nil {
		return "", "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read upload")
	}
	defer src.Close() //nolint:errcheck

	ext := strings.ToLower(filepath.Ext(header.Filename))
	filename = fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.NewString()[:8], ext)
	if _, err := s.uploads.SaveStream(filename, src); err != nil {
		return "", "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store upload")
	}
	return filename, "/uploads/" + filename, nil
}

func extensionAllowed(ext string, allowed []string) bool {
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}

// Upload validates and stores an image, then records its metadata.
func (s *GalleryService) Upload(ctx context.Context, title, category string, header *multipart.FileHeader) (*models.GalleryImage, error) {
	if title == "" || category == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "title and category are required")
	}
	filename, url, err := s.SaveUpload(header)
	if err != nil {
		return nil, err
	}
	img := &models.GalleryImage{
		Title:    title,
		Category: category,
		ImageURL: url,
		Filename: filename,
	}
	if err := s.repo.Create(ctx, img); err != nil {
		if delErr := s.uploads.Delete(filename); delErr != nil {
			s.logger.Warn("failed to remove orphaned upload", zap.String("filename", filename), zap.Error(delErr))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save image")
	}
	return img, nil
}

// List returns images, optionally filtered by category. "All" means no
// filter, matching the public site's tab labels.
func (s *GalleryService) List(ctx context.Context, category string) ([]models.GalleryImage, error) {
	if category == "All" {
		category = ""
	}
	imgs, err := s.repo.List(ctx, category)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list images")
	}
	return imgs, nil
}

// Delete removes both the metadata row and the file on disk.
func (s *GalleryService) Delete(ctx context.Context, id string) error {
	img, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "image not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load image")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "image not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete image")
	}
	if err := s.uploads.Delete(img.Filename); err != nil {
		s.logger.Warn("failed to remove image file", zap.String("filename", img.Filename), zap.Error(err))
	}
	return nil
}
