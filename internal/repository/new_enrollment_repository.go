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

// NewEnrollmentRepository persists direct admission submissions.
type NewEnrollmentRepository struct {
	db *sqlx.DB
}

func NewNewEnrollmentRepository(db *sqlx.DB) *NewEnrollmentRepository {
	return &NewEnrollmentRepository{db: db}
}

const newEnrollmentColumns = `id, enrollment_id, parent_full_name, relationship_to_student,
	marital_status, primary_phone, alternate_phone, email, alternate_email, street_address,
	city, state, zip_code, student_full_name, gender, date_of_birth, birth_certificate_nic,
	total_siblings, orphan_status, osc_status, identification_mark, registration_number,
	admission_date, class_grade, section, previous_school_name, previous_school_id,
	board_roll_number, student_email, student_phone, residential_address, student_photo,
	agreement_signature, status, submitted_at`

func (r *NewEnrollmentRepository) Create(ctx context.Context, enr *models.NewEnrollment) error {
	if enr.ID == "" {
		enr.ID = uuid.NewString()
	}
	if enr.SubmittedAt.IsZero() {
		enr.SubmittedAt = time.Now().UTC()
	}
	const query = `INSERT INTO new_enrollments (` + newEnrollmentColumns + `)
	VALUES (:id, :enrollment_id, :parent_full_name, :relationship_to_student,
	:marital_status, :primary_phone, :alternate_phone, :email, :alternate_email, :street_address,
	:city, :state, :zip_code, :student_full_name, :gender, :date_of_birth, :birth_certificate_nic,
	:total_siblings, :orphan_status, :osc_status, :identification_mark, :registration_number,
	:admission_date, :class_grade, :section, :previous_school_name, :previous_school_id,
	:board_roll_number, :student_email, :student_phone, :residential_address, :student_photo,
	:agreement_signature, :status, :submitted_at)`
	if _, err := r.db.NamedExecContext(ctx, query, enr); err != nil {
		return fmt.Errorf("create new enrollment: %w", err)
	}
	return nil
}

func (r *NewEnrollmentRepository) List(ctx context.Context) ([]models.NewEnrollment, error) {
	query := `SELECT ` + newEnrollmentColumns + ` FROM new_enrollments ORDER BY submitted_at DESC`
	var enrs []models.NewEnrollment
	if err := r.db.SelectContext(ctx, &enrs, query); err != nil {
		return nil, fmt.Errorf("list new enrollments: %w", err)
	}
	return enrs, nil
}

func (r *NewEnrollmentRepository) FindByID(ctx context.Context, id string) (*models.NewEnrollment, error) {
	query := `SELECT ` + newEnrollmentColumns + ` FROM new_enrollments WHERE id = $1`
	var enr models.NewEnrollment
	if err := r.db.GetContext(ctx, &enr, query, id); err != nil {
		return nil, err
	}
	return &enr, nil
}

// UpdateStatus moves a submission through the review pipeline.
func (r *NewEnrollmentRepository) UpdateStatus(ctx context.Context, id string, status models.NewEnrollmentStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE new_enrollments SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update new enrollment status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update new enrollment status: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *NewEnrollmentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM new_enrollments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete new enrollment: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete new enrollment: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
