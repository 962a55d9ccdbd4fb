package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/alhuda-academy/admissions-api/internal/models"
)

// PictureAuthorizationRepository persists picture authorization and
// discipline acknowledgment forms.
type PictureAuthorizationRepository struct {
	db *sqlx.DB
}

func NewPictureAuthorizationRepository(db *sqlx.DB) *PictureAuthorizationRepository {
	return &PictureAuthorizationRepository{db: db}
}

const pictureAuthColumns = `id, enrollment_id, picture_auth_signature, discipline_acknowledgment,
	signer_role, discipline_form_signature, submitted_at`

func (r *PictureAuthorizationRepository) Create(ctx context.Context, form *models.PictureAuthorization) error {
	if form.ID == "" {
		form.ID = uuid.NewString()
	}
	if form.SubmittedAt.IsZero() {
		form.SubmittedAt = time.Now().UTC()
	}
	const query = `INSERT INTO picture_authorizations (` + pictureAuthColumns + `)
	VALUES (:id, :enrollment_id, :picture_auth_signature, :discipline_acknowledgment,
	:signer_role, :discipline_form_signature, :submitted_at)`
	if _, err := r.db.NamedExecContext(ctx, query, form); err != nil {
		return fmt.Errorf("create picture authorization: %w", err)
	}
	return nil
}

func (r *PictureAuthorizationRepository) List(ctx context.Context) ([]models.PictureAuthorization, error) {
	query := `SELECT ` + pictureAuthColumns + ` FROM picture_authorizations ORDER BY submitted_at DESC`
	var forms []models.PictureAuthorization
	if err := r.db.SelectContext(ctx, &forms, query); err != nil {
		return nil, fmt.Errorf("list picture authorizations: %w", err)
	}
	return forms, nil
}

func (r *PictureAuthorizationRepository) FindByID(ctx context.Context, id string) (*models.PictureAuthorization, error) {
	query := `SELECT ` + pictureAuthColumns + ` FROM picture_authorizations WHERE id = $1`
	var form models.PictureAuthorization
	if err := r.db.GetContext(ctx, &form, query, id); err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *PictureAuthorizationRepository) FindByEnrollmentID(ctx context.Context, enrollmentID string) (*models.PictureAuthorization, error) {
	query := `SELECT ` + pictureAuthColumns + ` FROM picture_authorizations WHERE enrollment_id = $1 LIMIT 1`
	var form models.PictureAuthorization
	if err := r.db.GetContext(ctx, &form, query, enrollmentID); err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *PictureAuthorizationRepository) FindByEnrollmentIDs(ctx context.Context, enrollmentIDs []string) ([]models.PictureAuthorization, error) {
	query := `SELECT ` + pictureAuthColumns + ` FROM picture_authorizations WHERE enrollment_id = ANY($1)`
	var forms []models.PictureAuthorization
	if err := r.db.SelectContext(ctx, &forms, query, pq.Array(enrollmentIDs)); err != nil {
		return nil, fmt.Errorf("batch picture authorizations: %w", err)
	}
	return forms, nil
}

func (r *PictureAuthorizationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM picture_authorizations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete picture authorization: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete picture authorization: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
