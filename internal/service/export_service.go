package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/alhuda-academy/admissions-api/internal/models"
	appErrors "github.com/alhuda-academy/admissions-api/pkg/errors"
	"github.com/alhuda-academy/admissions-api/pkg/export"
	"github.com/alhuda-academy/admissions-api/pkg/jobs"
	"github.com/alhuda-academy/admissions-api/pkg/storage"
)

type exportJobStore interface {
	Create(ctx context.Context, job *models.ExportJob) error
	FindByID(ctx context.Context, id string) (*models.ExportJob, error)
	MarkRunning(ctx context.Context, id string) error
	MarkCompleted(ctx context.Context, id, filePath string) error
	MarkFailed(ctx context.Context, id, reason string) error
}

type rosterSource interface {
	List(ctx context.Context) ([]models.Enrollment, error)
}

type jobDispatcher interface {
	Enqueue(job jobs.Job) error
}

type exportFileStorage interface {
	Save(filename string, data []byte) (string, error)
	Open(relPath string) (*os.File, error)
	Delete(relPath string) error
	CleanupOlderThan(ttl time.Duration) ([]string, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportConfig tunes the roster export lifecycle.
type ExportConfig struct {
	APIPrefix       string
	ResultTTL       time.Duration
	CleanupInterval time.Duration
}

// ExportDownload aggregates resolved download data.
type ExportDownload struct {
	File      *os.File
	Filename  string
	Format    models.ExportFormat
	ExpiresAt time.Time
}

// ExportService queues, renders, and serves asynchronous enrollment roster
// exports. The worker side runs on the shared jobs queue; Handle is the
// queue handler.
type ExportService struct {
	repo    exportJobStore
	roster  rosterSource
	queue   jobDispatcher
	storage exportFileStorage
	signer  *storage.SignedURLSigner
	csv     csvRenderer
	pdf     pdfRenderer
	metrics *MetricsService
	logger  *zap.Logger
	cfg     ExportConfig
}

// NewExportService constructs an ExportService. The queue is attached later
// via SetQueue because the queue handler is this service's own Handle.
func NewExportService(repo exportJobStore, roster rosterSource, fileStore exportFileStorage, signer *storage.SignedURLSigner, cfg ExportConfig, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = 24 * time.Hour
	}
	if cfg.APIPrefix == "" {
		cfg.APIPrefix = "/api/v1"
	}
	return &ExportService{
		repo:    repo,
		roster:  roster,
		storage: fileStore,
		signer:  signer,
		csv:     export.NewCSVExporter(),
		pdf:     export.NewPDFExporter(),
		logger:  logger,
		cfg:     cfg,
	}
}

// SetQueue wires the dispatcher whose handler is this service's Handle.
func (s *ExportService) SetQueue(queue jobDispatcher) {
	s.queue = queue
}

// SetMetrics attaches the optional Prometheus instrumentation.
func (s *ExportService) SetMetrics(metrics *MetricsService) {
	s.metrics = metrics
}

// CreateJob validates the format, persists the job, and enqueues processing.
func (s *ExportService) CreateJob(ctx context.Context, format string, requestedBy string) (*models.ExportJob, error) {
	f := models.ExportFormat(strings.ToLower(format))
	if f != models.ExportFormatCSV && f != models.ExportFormatPDF {
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
	job := &models.ExportJob{
		Format:      f,
		Status:      models.ExportJobQueued,
		RequestedBy: requestedBy,
	}
	if err := s.repo.Create(ctx, job); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create export job")
	}
	if s.queue == nil {
		return nil, appErrors.Wrap(fmt.Errorf("queue not attached"), appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "export queue unavailable")
	}
	if err := s.queue.Enqueue(jobs.Job{ID: job.ID, Type: "roster-export"}); err != nil {
		if markErr := s.repo.MarkFailed(ctx, job.ID, "failed to enqueue job"); markErr != nil {
			s.logger.Warn("failed to mark export failed", zap.String("job_id", job.ID), zap.Error(markErr))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to enqueue export job")
	}
	return job, nil
}

// GetStatus returns job state, attaching a signed download URL once the file
// exists.
func (s *ExportService) GetStatus(ctx context.Context, id string) (*models.ExportJob, error) {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "export job not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load export job")
	}
	if job.Status == models.ExportJobCompleted && job.FilePath != nil {
		token, _, err := s.signer.Generate(job.ID, *job.FilePath)
		if err != nil {
			s.logger.Warn("failed to sign export download", zap.String("job_id", job.ID), zap.Error(err))
		} else {
			job.DownloadURL = fmt.Sprintf("%s/exports/download/%s", strings.TrimRight(s.cfg.APIPrefix, "/"), token)
		}
	}
	return job, nil
}

// ResolveDownload validates a token and opens the stored export file.
func (s *ExportService) ResolveDownload(ctx context.Context, token string) (*ExportDownload, error) {
	jobID, relPath, expiresAt, err := s.signer.Parse(token, false)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "invalid or expired download token")
	}
	job, err := s.repo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "export job not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load export job")
	}
	if job.Status != models.ExportJobCompleted || job.FilePath == nil || *job.FilePath != relPath {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "export not ready")
	}
	file, err := s.storage.Open(relPath)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open export file")
	}
	return &ExportDownload{
		File:      file,
		Filename:  filepath.Base(relPath),
		Format:    job.Format,
		ExpiresAt: expiresAt,
	}, nil
}

// Handle processes one queued export. Registered as the jobs queue handler.
func (s *ExportService) Handle(ctx context.Context, job jobs.Job) error {
	record, err := s.repo.FindByID(ctx, job.ID)
	if err != nil {
		return err
	}
	if err := s.repo.MarkRunning(ctx, record.ID); err != nil {
		return err
	}

	relPath, err := s.generate(ctx, record)
	if err != nil {
		if markErr := s.repo.MarkFailed(ctx, record.ID, err.Error()); markErr != nil {
			s.logger.Warn("failed to mark export failed", zap.String("job_id", record.ID), zap.Error(markErr))
		}
		s.metrics.RecordExportJob("failed")
		return err
	}
	if err := s.repo.MarkCompleted(ctx, record.ID, relPath); err != nil {
		s.logger.Warn("failed to mark export completed", zap.String("job_id", record.ID), zap.Error(err))
		return err
	}
	s.metrics.RecordExportJob("completed")
	return nil
}

func (s *ExportService) generate(ctx context.Context, job *models.ExportJob) (string, error) {
	enrollments, err := s.roster.List(ctx)
	if err != nil {
		return "", err
	}
	dataset := buildRosterDataset(enrollments)

	var payload []byte
	switch job.Format {
	case models.ExportFormatCSV:
		payload, err = s.csv.Render(dataset)
	case models.ExportFormatPDF:
		payload, err = s.pdf.Render(dataset, "Enrollment Roster")
	default:
		err = fmt.Errorf("unsupported format %s", job.Format)
	}
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("roster_%s.%s", time.Now().UTC().Format("20060102_150405"), job.Format)
	return s.storage.Save(filename, payload)
}

// StartCleanup boots a goroutine that purges expired export files.
func (s *ExportService) StartCleanup(ctx context.Context) {
	if s.cfg.CleanupInterval <= 0 {
		return
	}
	ticker := time.NewTicker(s.cfg.CleanupInterval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if removed, err := s.storage.CleanupOlderThan(s.cfg.ResultTTL); err != nil {
					s.logger.Warn("export cleanup failed", zap.Error(err))
				} else if len(removed) > 0 {
					s.logger.Info("expired exports removed", zap.Int("count", len(removed)))
				}
			}
		}
	}()
}

var rosterHeaders = []string{
	"Enrollment ID", "First Name", "Last Name", "Grade Level",
	"Date of Birth", "Forms Completed", "Status", "Submitted At",
}

func buildRosterDataset(enrollments []models.Enrollment) export.Dataset {
	rows := make([]map[string]string, 0, len(enrollments))
	for _, e := range enrollments {
		row := map[string]string{
			"Enrollment ID":   e.EnrollmentID,
			"Forms Completed": fmt.Sprintf("%d", e.FormsCompleted()),
			"Status":          string(e.Status),
			"Submitted At":    e.SubmittedAt.UTC().Format(time.RFC3339),
		}
		if reg := e.StudentRegistration; reg != nil {
			row["First Name"] = reg.FirstName
			row["Last Name"] = reg.LastName
			row["Grade Level"] = reg.GradeLevel
			row["Date of Birth"] = reg.DateOfBirth.UTC().Format("2006-01-02")
		}
		rows = append(rows, row)
	}
	return export.Dataset{Headers: rosterHeaders, Rows: rows}
}
