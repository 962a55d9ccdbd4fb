package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/alhuda-academy/admissions-api/internal/models"
)

// GalleryRepository persists gallery image metadata. The image bytes live on
// disk under the uploads directory.
type GalleryRepository struct {
	db *sqlx.DB
}

func NewGalleryRepository(db *sqlx.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

const galleryColumns = `id, title, category, image_url, filename, uploaded_at`

func (r *GalleryRepository) Create(ctx context.Context, img *models.GalleryImage) error {
	if img.ID == "" {
		img.ID = uuid.NewString()
	}
	if img.UploadedAt.IsZero() {
		img.UploadedAt = time.Now().UTC()
	}
	const query = `INSERT INTO gallery_images (` + galleryColumns + `)
	VALUES (:id, :title, :category, :image_url, :filename, :uploaded_at)`
	if _, err := r.db.NamedExecContext(ctx, query, img); err != nil {
		return fmt.Errorf("create gallery image: %w", err)
	}
	return nil
}

func (r *GalleryRepository) List(ctx context.Context, category string) ([]models.GalleryImage, error) {
	var imgs []models.GalleryImage
	if category != "" {
		query := `SELECT ` + galleryColumns + ` FROM gallery_images WHERE category = $1 ORDER BY uploaded_at DESC`
		if err := r.db.SelectContext(ctx, &imgs, query, category); err != nil {
			return nil, fmt.Errorf("list gallery images: %w", err)
		}
		return imgs, nil
	}
	query := `SELECT ` + galleryColumns + ` FROM gallery_images ORDER BY uploaded_at DESC`
	if err := r.db.SelectContext(ctx, &imgs, query); err != nil {
		return nil, fmt.Errorf("list gallery images: %w", err)
	}
	return imgs, nil
}

func (r *GalleryRepository) FindByID(ctx context.Context, id string) (*models.GalleryImage, error) {
	query := `SELECT ` + galleryColumns + ` FROM gallery_images WHERE id = $1`
	var img models.GalleryImage
	if err := r.db.GetContext(ctx, &img, query, id); err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *GalleryRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM gallery_images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete gallery image: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete gallery image: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
