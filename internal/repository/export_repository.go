package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/alhuda-academy/admissions-api/internal/models"
)

// ExportRepository tracks the lifecycle of asynchronous export jobs.
type ExportRepository struct {
	db *sqlx.DB
}

func NewExportRepository(db *sqlx.DB) *ExportRepository {
	return &ExportRepository{db: db}
}

const exportColumns = `id, format, status, file_path, error, requested_by, created_at, completed_at`

func (r *ExportRepository) Create(ctx context.Context, job *models.ExportJob) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now().UTC()
	}
	if job.Status == "" {
		job.Status = models.ExportJobQueued
	}
	const query = `INSERT INTO export_jobs (` + exportColumns + `)
	VALUES (:id, :format, :status, :file_path, :error, :requested_by, :created_at, :completed_at)`
	if _, err := r.db.NamedExecContext(ctx, query, job); err != nil {
		return fmt.Errorf("create export job: %w", err)
	}
	return nil
}

func (r *ExportRepository) FindByID(ctx context.Context, id string) (*models.ExportJob, error) {
	query := `SELECT ` + exportColumns + ` FROM export_jobs WHERE id = $1`
	var job models.ExportJob
	if err := r.db.GetContext(ctx, &job, query, id); err != nil {
		return nil, err
	}
	return &job, nil
}

// MarkRunning transitions a queued job to running.
func (r *ExportRepository) MarkRunning(ctx context.Context, id string) error {
	query := `UPDATE export_jobs SET status = $1 WHERE id = $2`
	if _, err := r.db.ExecContext(ctx, query, models.ExportJobRunning, id); err != nil {
		return fmt.Errorf("mark export running: %w", err)
	}
	return nil
}

// MarkCompleted records the produced file path.
func (r *ExportRepository) MarkCompleted(ctx context.Context, id, filePath string) error {
	query := `UPDATE export_jobs SET status = $1, file_path = $2, completed_at = $3 WHERE id = $4`
	if _, err := r.db.ExecContext(ctx, query, models.ExportJobCompleted, filePath, time.Now().UTC(), id); err != nil {
		return fmt.Errorf("mark export completed: %w", err)
	}
	return nil
}

// MarkFailed records the failure reason.
func (r *ExportRepository) MarkFailed(ctx context.Context, id, reason string) error {
	query := `UPDATE export_jobs SET status = $1, error = $2, completed_at = $3 WHERE id = $4`
	if _, err := r.db.ExecContext(ctx, query, models.ExportJobFailed, reason, time.Now().UTC(), id); err != nil {
		return fmt.Errorf("mark export failed: %w", err)
	}
	return nil
}
