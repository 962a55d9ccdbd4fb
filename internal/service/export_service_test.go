package service

import (
	"context"
	"database/sql"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alhuda-academy/admissions-api/internal/models"
	appErrors "github.com/alhuda-academy/admissions-api/pkg/errors"
	"github.com/alhuda-academy/admissions-api/pkg/jobs"
	"github.com/alhuda-academy/admissions-api/pkg/storage"
)

type mockExportJobStore struct {
	jobs   map[string]*models.ExportJob
	nextID int
}

func (m *mockExportJobStore) Create(ctx context.Context, job *models.ExportJob) error {
	if m.jobs == nil {
		m.jobs = make(map[string]*models.ExportJob)
	}
	m.nextID++
	job.ID = "job-" + string(rune('0'+m.nextID))
	job.CreatedAt = time.Now().UTC()
	cp := *job
	m.jobs[job.ID] = &cp
	return nil
}

func (m *mockExportJobStore) FindByID(ctx context.Context, id string) (*models.ExportJob, error) {
	if job, ok := m.jobs[id]; ok {
		cp := *job
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockExportJobStore) MarkRunning(ctx context.Context, id string) error {
	m.jobs[id].Status = models.ExportJobRunning
	return nil
}

func (m *mockExportJobStore) MarkCompleted(ctx context.Context, id, filePath string) error {
	job := m.jobs[id]
	job.Status = models.ExportJobCompleted
	job.FilePath = &filePath
	now := time.Now().UTC()
	job.CompletedAt = &now
	return nil
}

func (m *mockExportJobStore) MarkFailed(ctx context.Context, id, reason string) error {
	job := m.jobs[id]
	job.Status = models.ExportJobFailed
	job.Error = &reason
	return nil
}

type mockRoster struct {
	enrollments []models.Enrollment
	err         error
}

func (m *mockRoster) List(ctx context.Context) ([]models.Enrollment, error) {
	return m.enrollments, m.err
}

type mockDispatcher struct {
	enqueued []jobs.Job
	err      error
}

func (m *mockDispatcher) Enqueue(job jobs.Job) error {
	if m.err != nil {
		return m.err
	}
	m.enqueued = append(m.enqueued, job)
	return nil
}

func newExportFixture(t *testing.T, roster *mockRoster) (*ExportService, *mockExportJobStore, *mockDispatcher) {
	t.Helper()
	fileStore, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	signer := storage.NewSignedURLSigner("test-secret", time.Hour)
	store := &mockExportJobStore{}
	dispatcher := &mockDispatcher{}
	svc := NewExportService(store, roster, fileStore, signer, ExportConfig{}, nil)
	svc.SetQueue(dispatcher)
	return svc, store, dispatcher
}

func rosterEnrollment() models.Enrollment {
	reg := &models.StudentRegistration{
		EnrollmentID: "ENR-001",
		FirstName:    "Amina",
		LastName:     "Khan",
		GradeLevel:   "4",
		DateOfBirth:  time.Date(2015, 4, 2, 0, 0, 0, 0, time.UTC),
	}
	enr := models.Enrollment{
		ID:                  "r1",
		EnrollmentID:        "ENR-001",
		SubmittedAt:         time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
		StudentRegistration: reg,
	}
	enr.Status = models.DeriveEnrollmentStatus(enr.FormsCompleted())
	return enr
}

func TestCreateJobRejectsUnknownFormat(t *testing.T) {
	svc, _, _ := newExportFixture(t, &mockRoster{})

	_, err := svc.CreateJob(context.Background(), "xlsx", "admin-1")
	require.Error(t, err)
	appErr, ok := err.(*appErrors.Error)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestCreateJobQueues(t *testing.T) {
	svc, store, dispatcher := newExportFixture(t, &mockRoster{})

	job, err := svc.CreateJob(context.Background(), "CSV", "admin-1")
	require.NoError(t, err)
	assert.Equal(t, models.ExportFormatCSV, job.Format)
	assert.Equal(t, models.ExportJobQueued, job.Status)
	assert.Equal(t, "admin-1", job.RequestedBy)
	require.Len(t, dispatcher.enqueued, 1)
	assert.Equal(t, job.ID, dispatcher.enqueued[0].ID)
	assert.Equal(t, "roster-export", dispatcher.enqueued[0].Type)
	assert.Contains(t, store.jobs, job.ID)
}

func TestHandleRendersAndCompletes(t *testing.T) {
	roster := &mockRoster{enrollments: []models.Enrollment{rosterEnrollment()}}
	svc, store, _ := newExportFixture(t, roster)

	job, err := svc.CreateJob(context.Background(), "csv", "admin-1")
	require.NoError(t, err)

	err = svc.Handle(context.Background(), jobs.Job{ID: job.ID, Type: "roster-export"})
	require.NoError(t, err)

	stored := store.jobs[job.ID]
	assert.Equal(t, models.ExportJobCompleted, stored.Status)
	require.NotNil(t, stored.FilePath)
	assert.True(t, strings.HasSuffix(*stored.FilePath, ".csv"))
}

func TestGetStatusAttachesDownloadURL(t *testing.T) {
	roster := &mockRoster{enrollments: []models.Enrollment{rosterEnrollment()}}
	svc, _, _ := newExportFixture(t, roster)

	job, err := svc.CreateJob(context.Background(), "csv", "admin-1")
	require.NoError(t, err)
	require.NoError(t, svc.Handle(context.Background(), jobs.Job{ID: job.ID}))

	status, err := svc.GetStatus(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ExportJobCompleted, status.Status)
	assert.True(t, strings.HasPrefix(status.DownloadURL, "/api/v1/exports/download/"), status.DownloadURL)
}

func TestResolveDownloadRoundTrip(t *testing.T) {
	roster := &mockRoster{enrollments: []models.Enrollment{rosterEnrollment()}}
	svc, _, _ := newExportFixture(t, roster)

	job, err := svc.CreateJob(context.Background(), "csv", "admin-1")
	require.NoError(t, err)
	require.NoError(t, svc.Handle(context.Background(), jobs.Job{ID: job.ID}))

	status, err := svc.GetStatus(context.Background(), job.ID)
	require.NoError(t, err)
	token := strings.TrimPrefix(status.DownloadURL, "/api/v1/exports/download/")

	download, err := svc.ResolveDownload(context.Background(), token)
	require.NoError(t, err)
	defer download.File.Close() //nolint:errcheck

	assert.Equal(t, models.ExportFormatCSV, download.Format)
	content, err := io.ReadAll(download.File)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Enrollment ID")
	assert.Contains(t, string(content), "ENR-001")
}

func TestResolveDownloadRejectsBadToken(t *testing.T) {
	svc, _, _ := newExportFixture(t, &mockRoster{})

	_, err := svc.ResolveDownload(context.Background(), "not-a-token")
	require.Error(t, err)
	appErr, ok := err.(*appErrors.Error)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErr.Code)
}

func TestHandleMarksFailureWhenRosterErrors(t *testing.T) {
	roster := &mockRoster{err: context.DeadlineExceeded}
	svc, store, _ := newExportFixture(t, roster)

	job, err := svc.CreateJob(context.Background(), "pdf", "admin-1")
	require.NoError(t, err)

	err = svc.Handle(context.Background(), jobs.Job{ID: job.ID})
	require.Error(t, err)
	stored := store.jobs[job.ID]
	assert.Equal(t, models.ExportJobFailed, stored.Status)
	require.NotNil(t, stored.Error)
}
