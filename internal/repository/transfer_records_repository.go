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

// TransferRecordsRepository persists record transfer requests.
type TransferRecordsRepository struct {
	db *sqlx.DB
}

func NewTransferRecordsRepository(db *sqlx.DB) *TransferRecordsRepository {
	return &TransferRecordsRepository{db: db}
}

const transferRecordsColumns = `id, enrollment_id, first_name, last_name, date_of_birth, grade,
	previous_school_name, previous_school_address, previous_school_city, previous_school_state,
	previous_school_zip, previous_school_phone, parent_guardian_name, parent_guardian_phone,
	parent_guardian_email, records_needed, urgency_level, signature, submitted_at`

func (r *TransferRecordsRepository) Create(ctx context.Context, form *models.TransferRecords) error {
	if form.ID == "" {
		form.ID = uuid.NewString()
	}
	if form.SubmittedAt.IsZero() {
		form.SubmittedAt = time.Now().UTC()
	}
	const query = `INSERT INTO transfer_records (` + transferRecordsColumns + `)
	VALUES (:id, :enrollment_id, :first_name, :last_name, :date_of_birth, :grade,
	:previous_school_name, :previous_school_address, :previous_school_city, :previous_school_state,
	:previous_school_zip, :previous_school_phone, :parent_guardian_name, :parent_guardian_phone,
	:parent_guardian_email, :records_needed, :urgency_level, :signature, :submitted_at)`
	if _, err := r.db.NamedExecContext(ctx, query, form); err != nil {
		return fmt.Errorf("create transfer records: %w", err)
	}
	return nil
}

func (r *TransferRecordsRepository) List(ctx context.Context) ([]models.TransferRecords, error) {
	query := `SELECT ` + transferRecordsColumns + ` FROM transfer_records ORDER BY submitted_at DESC`
	var forms []models.TransferRecords
	if err := r.db.SelectContext(ctx, &forms, query); err != nil {
		return nil, fmt.Errorf("list transfer records: %w", err)
	}
	return forms, nil
}

func (r *TransferRecordsRepository) FindByID(ctx context.Context, id string) (*models.TransferRecords, error) {
	query := `SELECT ` + transferRecordsColumns + ` FROM transfer_records WHERE id = $1`
	var form models.TransferRecords
	if err := r.db.GetContext(ctx, &form, query, id); err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *TransferRecordsRepository) FindByEnrollmentID(ctx context.Context, enrollmentID string) (*models.TransferRecords, error) {
	query := `SELECT ` + transferRecordsColumns + ` FROM transfer_records WHERE enrollment_id = $1 LIMIT 1`
	var form models.TransferRecords
	if err := r.db.GetContext(ctx, &form, query, enrollmentID); err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *TransferRecordsRepository) FindByEnrollmentIDs(ctx context.Context, enrollmentIDs []string) ([]models.TransferRecords, error) {
	query := `SELECT ` + transferRecordsColumns + ` FROM transfer_records WHERE enrollment_id = ANY($1)`
	var forms []models.TransferRecords
	if err := r.db.SelectContext(ctx, &forms, query, pq.Array(enrollmentIDs)); err != nil {
		return nil, fmt.Errorf("batch transfer records: %w", err)
	}
	return forms, nil
}

func (r *TransferRecordsRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM transfer_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transfer records: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete transfer records: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
