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

// RegistrationRepository persists student registrations, the root documents
// of the enrollment aggregate.
type RegistrationRepository struct {
	db *sqlx.DB
}

// NewRegistrationRepository constructs the repository.
func NewRegistrationRepository(db *sqlx.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

const registrationColumns = `id, enrollment_id, first_name, last_name, gender, date_of_birth, grade_level,
	house_number, address_line1, address_line2, city, state, zip_code, citizenship, ethnicity,
	father_first_name, father_last_name, father_address1, father_address2, father_city, father_state,
	father_zip, father_phone, father_email, father_occupation, father_employment, father_work_phone,
	mother_first_name, mother_last_name, mother_address1, mother_address2, mother_city, mother_state,
	mother_zip, mother_phone, mother_email, mother_occupation, mother_employment,
	public_school_name, public_district, previous_school_name, previous_school_phone,
	previous_school_address, reason_for_leaving, repeated_grade, disciplinary_action,
	subjects_excel, subjects_struggle, extracurricular_activities, siblings, student_photo,
	print_name, submitted_at`

// Create inserts a new registration. One registration per enrollment key is
// enforced by a unique index on enrollment_id.
func (r *RegistrationRepository) Create(ctx context.Context, reg *models.StudentRegistration) error {
	if reg.ID == "" {
		reg.ID = uuid.NewString()
	}
	if reg.SubmittedAt.IsZero() {
		reg.SubmittedAt = time.Now().UTC()
	}
	const query = `INSERT INTO student_registrations (` + registrationColumns + `)
	VALUES (:id, :enrollment_id, :first_name, :last_name, :gender, :date_of_birth, :grade_level,
	:house_number, :address_line1, :address_line2, :city, :state, :zip_code, :citizenship, :ethnicity,
	:father_first_name, :father_last_name, :father_address1, :father_address2, :father_city, :father_state,
	:father_zip, :father_phone, :father_email, :father_occupation, :father_employment, :father_work_phone,
	:mother_first_name, :mother_last_name, :mother_address1, :mother_address2, :mother_city, :mother_state,
	:mother_zip, :mother_phone, :mother_email, :mother_occupation, :mother_employment,
	:public_school_name, :public_district, :previous_school_name, :previous_school_phone,
	:previous_school_address, :reason_for_leaving, :repeated_grade, :disciplinary_action,
	:subjects_excel, :subjects_struggle, :extracurricular_activities, :siblings, :student_photo,
	:print_name, :submitted_at)`
	if _, err := r.db.NamedExecContext(ctx, query, reg); err != nil {
		return fmt.Errorf("create registration: %w", err)
	}
	return nil
}

// List returns all registrations, newest submission first.
func (r *RegistrationRepository) List(ctx context.Context) ([]models.StudentRegistration, error) {
	query := `SELECT ` + registrationColumns + ` FROM student_registrations ORDER BY submitted_at DESC`
	var regs []models.StudentRegistration
	if err := r.db.SelectContext(ctx, &regs, query); err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return regs, nil
}

// FindByID returns a registration by its own identifier.
func (r *RegistrationRepository) FindByID(ctx context.Context, id string) (*models.StudentRegistration, error) {
	query := `SELECT ` + registrationColumns + ` FROM student_registrations WHERE id = $1`
	var reg models.StudentRegistration
	if err := r.db.GetContext(ctx, &reg, query, id); err != nil {
		return nil, err
	}
	return &reg, nil
}

// FindByEnrollmentID returns the registration correlated to the given key.
func (r *RegistrationRepository) FindByEnrollmentID(ctx context.Context, enrollmentID string) (*models.StudentRegistration, error) {
	query := `SELECT ` + registrationColumns + ` FROM student_registrations WHERE enrollment_id = $1 LIMIT 1`
	var reg models.StudentRegistration
	if err := r.db.GetContext(ctx, &reg, query, enrollmentID); err != nil {
		return nil, err
	}
	return &reg, nil
}

// Delete removes a registration, reporting sql.ErrNoRows when absent.
func (r *RegistrationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM student_registrations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
