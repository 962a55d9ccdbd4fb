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

// EmergencyContactRepository persists emergency contact forms.
type EmergencyContactRepository struct {
	db *sqlx.DB
}

func NewEmergencyContactRepository(db *sqlx.DB) *EmergencyContactRepository {
	return &EmergencyContactRepository{db: db}
}

const emergencyContactColumns = `id, enrollment_id,
	contact1_name, contact1_phone, contact1_relationship,
	contact2_name, contact2_phone, contact2_relationship,
	contact3_name, contact3_phone, contact3_relationship,
	pediatrician_name, pediatrician_phone, hospital_choice,
	authorized_pickup, signature, submitted_at`

func (r *EmergencyContactRepository) Create(ctx context.Context, form *models.EmergencyContact) error {
	if form.ID == "" {
		form.ID = uuid.NewString()
	}
	if form.SubmittedAt.IsZero() {
		form.SubmittedAt = time.Now().UTC()
	}
	const query = `INSERT INTO emergency_contacts (` + emergencyContactColumns + `)
	VALUES (:id, :enrollment_id,
	:contact1_name, :contact1_phone, :contact1_relationship,
	:contact2_name, :contact2_phone, :contact2_relationship,
	:contact3_name, :contact3_phone, :contact3_relationship,
	:pediatrician_name, :pediatrician_phone, :hospital_choice,
	:authorized_pickup, :signature, :submitted_at)`
	if _, err := r.db.NamedExecContext(ctx, query, form); err != nil {
		return fmt.Errorf("create emergency contact: %w", err)
	}
	return nil
}

func (r *EmergencyContactRepository) List(ctx context.Context) ([]models.EmergencyContact, error) {
	query := `SELECT ` + emergencyContactColumns + ` FROM emergency_contacts ORDER BY submitted_at DESC`
	var forms []models.EmergencyContact
	if err := r.db.SelectContext(ctx, &forms, query); err != nil {
		return nil, fmt.Errorf("list emergency contacts: %w", err)
	}
	return forms, nil
}

func (r *EmergencyContactRepository) FindByID(ctx context.Context, id string) (*models.EmergencyContact, error) {
	query := `SELECT ` + emergencyContactColumns + ` FROM emergency_contacts WHERE id = $1`
	var form models.EmergencyContact
	if err := r.db.GetContext(ctx, &form, query, id); err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *EmergencyContactRepository) FindByEnrollmentID(ctx context.Context, enrollmentID string) (*models.EmergencyContact, error) {
	query := `SELECT ` + emergencyContactColumns + ` FROM emergency_contacts WHERE enrollment_id = $1 LIMIT 1`
	var form models.EmergencyContact
	if err := r.db.GetContext(ctx, &form, query, enrollmentID); err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *EmergencyContactRepository) FindByEnrollmentIDs(ctx context.Context, enrollmentIDs []string) ([]models.EmergencyContact, error) {
	query := `SELECT ` + emergencyContactColumns + ` FROM emergency_contacts WHERE enrollment_id = ANY($1)`
	var forms []models.EmergencyContact
	if err := r.db.SelectContext(ctx, &forms, query, pq.Array(enrollmentIDs)); err != nil {
		return nil, fmt.Errorf("batch emergency contacts: %w", err)
	}
	return forms, nil
}

func (r *EmergencyContactRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM emergency_contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete emergency contact: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete emergency contact: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
