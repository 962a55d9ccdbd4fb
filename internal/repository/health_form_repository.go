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

// HealthFormRepository persists health forms.
type HealthFormRepository struct {
	db *sqlx.DB
}

func NewHealthFormRepository(db *sqlx.DB) *HealthFormRepository {
	return &HealthFormRepository{db: db}
}

const healthFormColumns = `id, enrollment_id, insurance_company, physician_name, physician_number,
	has_disabilities, disability_explanation, medical_conditions, past_diseases, past_conditions,
	takes_regular_medication, medication_explanation, has_allergies, allergies_list,
	health_form_signature, submitted_at`

func (r *HealthFormRepository) Create(ctx context.Context, form *models.HealthForm) error {
	if form.ID == "" {
		form.ID = uuid.NewString()
	}
	if form.SubmittedAt.IsZero() {
		form.SubmittedAt = time.Now().UTC()
	}
	const query = `INSERT INTO health_forms (` + healthFormColumns + `)
	VALUES (:id, :enrollment_id, :insurance_company, :physician_name, :physician_number,
	:has_disabilities, :disability_explanation, :medical_conditions, :past_diseases, :past_conditions,
	:takes_regular_medication, :medication_explanation, :has_allergies, :allergies_list,
	:health_form_signature, :submitted_at)`
	if _, err := r.db.NamedExecContext(ctx, query, form); err != nil {
		return fmt.Errorf("create health form: %w", err)
	}
	return nil
}

func (r *HealthFormRepository) List(ctx context.Context) ([]models.HealthForm, error) {
	query := `SELECT ` + healthFormColumns + ` FROM health_forms ORDER BY submitted_at DESC`
	var forms []models.HealthForm
	if err := r.db.SelectContext(ctx, &forms, query); err != nil {
		return nil, fmt.Errorf("list health forms: %w", err)
	}
	return forms, nil
}

func (r *HealthFormRepository) FindByID(ctx context.Context, id string) (*models.HealthForm, error) {
	query := `SELECT ` + healthFormColumns + ` FROM health_forms WHERE id = $1`
	var form models.HealthForm
	if err := r.db.GetContext(ctx, &form, query, id); err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *HealthFormRepository) FindByEnrollmentID(ctx context.Context, enrollmentID string) (*models.HealthForm, error) {
	query := `SELECT ` + healthFormColumns + ` FROM health_forms WHERE enrollment_id = $1 LIMIT 1`
	var form models.HealthForm
	if err := r.db.GetContext(ctx, &form, query, enrollmentID); err != nil {
		return nil, err
	}
	return &form, nil
}

// FindByEnrollmentIDs fetches forms for a batch of enrollment keys in one
// round trip, used by the enrollment aggregator listing.
func (r *HealthFormRepository) FindByEnrollmentIDs(ctx context.Context, enrollmentIDs []string) ([]models.HealthForm, error) {
	query := `SELECT ` + healthFormColumns + ` FROM health_forms WHERE enrollment_id = ANY($1)`
	var forms []models.HealthForm
	if err := r.db.SelectContext(ctx, &forms, query, pq.Array(enrollmentIDs)); err != nil {
		return nil, fmt.Errorf("batch health forms: %w", err)
	}
	return forms, nil
}

func (r *HealthFormRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM health_forms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete health form: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete health form: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
