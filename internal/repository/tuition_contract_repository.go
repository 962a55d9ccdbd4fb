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

// TuitionContractRepository persists signed tuition contracts.
type TuitionContractRepository struct {
	db *sqlx.DB
}

func NewTuitionContractRepository(db *sqlx.DB) *TuitionContractRepository {
	return &TuitionContractRepository{db: db}
}

const tuitionContractColumns = `id, enrollment_id, guardian_first_name, guardian_last_name,
	guardian_phone, guardian_email, guardian_address_line1, guardian_address_line2,
	guardian_city, guardian_state, guardian_zip_code, tuition_acknowledgment,
	textbook_fee_acknowledgment, application_fee_acknowledgment,
	payment_option1, payment_option2, payment_option3, signature, submitted_at`

func (r *TuitionContractRepository) Create(ctx context.Context, form *models.TuitionContract) error {
	if form.ID == "" {
		form.ID = uuid.NewString()
	}
	if form.SubmittedAt.IsZero() {
		form.SubmittedAt = time.Now().UTC()
	}
	const query = `INSERT INTO tuition_contracts (` + tuitionContractColumns + `)
	VALUES (:id, :enrollment_id, :guardian_first_name, :guardian_last_name,
	:guardian_phone, :guardian_email, :guardian_address_line1, :guardian_address_line2,
	:guardian_city, :guardian_state, :guardian_zip_code, :tuition_acknowledgment,
	:textbook_fee_acknowledgment, :application_fee_acknowledgment,
	:payment_option1, :payment_option2, :payment_option3, :signature, :submitted_at)`
	if _, err := r.db.NamedExecContext(ctx, query, form); err != nil {
		return fmt.Errorf("create tuition contract: %w", err)
	}
	return nil
}

func (r *TuitionContractRepository) List(ctx context.Context) ([]models.TuitionContract, error) {
	query := `SELECT ` + tuitionContractColumns + ` FROM tuition_contracts ORDER BY submitted_at DESC`
	var forms []models.TuitionContract
	if err := r.db.SelectContext(ctx, &forms, query); err != nil {
		return nil, fmt.Errorf("list tuition contracts: %w", err)
	}
	return forms, nil
}

func (r *TuitionContractRepository) FindByID(ctx context.Context, id string) (*models.TuitionContract, error) {
	query := `SELECT ` + tuitionContractColumns + ` FROM tuition_contracts WHERE id = $1`
	var form models.TuitionContract
	if err := r.db.GetContext(ctx, &form, query, id); err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *TuitionContractRepository) FindByEnrollmentID(ctx context.Context, enrollmentID string) (*models.TuitionContract, error) {
	query := `SELECT ` + tuitionContractColumns + ` FROM tuition_contracts WHERE enrollment_id = $1 LIMIT 1`
	var form models.TuitionContract
	if err := r.db.GetContext(ctx, &form, query, enrollmentID); err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *TuitionContractRepository) FindByEnrollmentIDs(ctx context.Context, enrollmentIDs []string) ([]models.TuitionContract, error) {
	query := `SELECT ` + tuitionContractColumns + ` FROM tuition_contracts WHERE enrollment_id = ANY($1)`
	var forms []models.TuitionContract
	if err := r.db.SelectContext(ctx, &forms, query, pq.Array(enrollmentIDs)); err != nil {
		return nil, fmt.Errorf("batch tuition contracts: %w", err)
	}
	return forms, nil
}

func (r *TuitionContractRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tuition_contracts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tuition contract: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete tuition contract: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
