package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/alhuda-academy/admissions-api/internal/models"
)

// ContentRepository persists editable page documents for the public site.
type ContentRepository struct {
	db *sqlx.DB
}

func NewContentRepository(db *sqlx.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

const contentColumns = `id, page, content, updated_at`

func (r *ContentRepository) FindByPage(ctx context.Context, page string) (*models.PageContent, error) {
	query := `SELECT ` + contentColumns + ` FROM site_content WHERE page = $1`
	var pc models.PageContent
	if err := r.db.GetContext(ctx, &pc, query, page); err != nil {
		return nil, err
	}
	return &pc, nil
}

// Upsert stores the document for a page, replacing any previous version.
func (r *ContentRepository) Upsert(ctx context.Context, pc *models.PageContent) error {
	if pc.ID == "" {
		pc.ID = uuid.NewString()
	}
	pc.UpdatedAt = time.Now().UTC()
	const query = `INSERT INTO site_content (` + contentColumns + `)
	VALUES (:id, :page, :content, :updated_at)
	ON CONFLICT (page) DO UPDATE SET content = EXCLUDED.content, updated_at = EXCLUDED.updated_at`
	if _, err := r.db.NamedExecContext(ctx, query, pc); err != nil {
		return fmt.Errorf("upsert site content: %w", err)
	}
	return nil
}
