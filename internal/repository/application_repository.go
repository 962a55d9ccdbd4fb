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

// ApplicationRepository persists job and volunteer applications. Both kinds
// share a table with a kind discriminator.
type ApplicationRepository struct {
	db *sqlx.DB
}

func NewApplicationRepository(db *sqlx.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

const applicationColumns = `id, kind, first_name, last_name, gender, phone, email,
	address1, address2, city, state, zip_code, position, hourly_pay, start_date,
	work_auth, felony, schools, work_experience, reference_entries, resume, signature,
	emails, status, submitted_at, updated_at`

func (r *ApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if app.SubmittedAt.IsZero() {
		app.SubmittedAt = now
	}
	app.UpdatedAt = now
	if app.Status == "" {
		app.Status = models.ApplicationStatusPending
	}
	const query = `INSERT INTO applications (` + applicationColumns + `)
	VALUES (:id, :kind, :first_name, :last_name, :gender, :phone, :email,
	:address1, :address2, :city, :state, :zip_code, :position, :hourly_pay, :start_date,
	:work_auth, :felony, :schools, :work_experience, :reference_entries, :resume, :signature,
	:emails, :status, :submitted_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, app); err != nil {
		return fmt.Errorf("create application: %w", err)
	}
	return nil
}

func (r *ApplicationRepository) List(ctx context.Context, kind models.ApplicationKind) ([]models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE kind = $1 ORDER BY submitted_at DESC`
	var apps []models.Application
	if err := r.db.SelectContext(ctx, &apps, query, kind); err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`
	var app models.Application
	if err := r.db.GetContext(ctx, &app, query, id); err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) error {
	query := `UPDATE applications SET status = $1, updated_at = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("update application status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update application status: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// AppendEmail records an outbound email in the application's log.
func (r *ApplicationRepository) AppendEmail(ctx context.Context, id string, entry models.EmailLogEntry) error {
	app, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	app.Emails = append(app.Emails, entry)
	query := `UPDATE applications SET emails = $1, updated_at = $2 WHERE id = $3`
	if _, err := r.db.ExecContext(ctx, query, app.Emails, time.Now().UTC(), id); err != nil {
		return fmt.Errorf("append application email: %w", err)
	}
	return nil
}

func (r *ApplicationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete application: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete application: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
