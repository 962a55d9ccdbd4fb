package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/alhuda-academy/admissions-api/internal/models"
	appErrors "github.com/alhuda-academy/admissions-api/pkg/errors"
)

type applicationRepository interface {
	Create(ctx context.Context, app *models.Application) error
	List(ctx context.Context, kind models.ApplicationKind) ([]models.Application, error)
	FindByID(ctx context.Context, id string) (*models.Application, error)
	UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) error
	AppendEmail(ctx context.Context, id string, entry models.EmailLogEntry) error
	Delete(ctx context.Context, id string) error
}

// applicantMailer delivers follow-up emails to applicants. The email is
// logged on the application whether or not delivery is wired up.
type applicantMailer interface {
	SendApplicantEmail(ctx context.Context, to, subject, message string) error
}

// SendApplicationEmailRequest describes a follow-up email payload.
type SendApplicationEmailRequest struct {
	To      string `json:"to" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

const applicationAttachmentLimit = 10 * 1024 * 1024

// ApplicationService handles job and volunteer applications. Multipart
// submissions carry the structured arrays as JSON strings and up to two
// attachments, resume and signature.
type ApplicationService struct {
	repo      applicationRepository
	uploads   uploadStore
	mailer    applicantMailer
	validator *validator.Validate
	logger    *zap.Logger
}

// NewApplicationService constructs ApplicationService. mailer may be nil.
func NewApplicationService(repo applicationRepository, uploads uploadStore, mailer applicantMailer, validate *validator.Validate, logger *zap.Logger) *ApplicationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ApplicationService{repo: repo, uploads: uploads, mailer: mailer, validator: validate, logger: logger}
}

// ParseStructuredFields decodes the education, work history and reference
// arrays carried as JSON strings in a multipart submission. Empty values
// decode to nil slices rather than errors.
func (s *ApplicationService) ParseStructuredFields(app *models.Application, schools, workExperience, references string) error {
	if err := decodeJSONField(schools, &app.Schools); err != nil {
		return appErrors.Clone(appErrors.ErrValidation, "schools must be a JSON array")
	}
	if err := decodeJSONField(workExperience, &app.WorkExperience); err != nil {
		return appErrors.Clone(appErrors.ErrValidation, "workExperience must be a JSON array")
	}
	if err := decodeJSONField(references, &app.References); err != nil {
		return appErrors.Clone(appErrors.ErrValidation, "references must be a JSON array")
	}
	return nil
}

func decodeJSONField(raw string, dst interface{}) error {
	if raw == "" {
		return nil
	}
	return json.Unmarshal([]byte(raw), dst)
}

func (s *ApplicationService) storeAttachment(kind string, header *multipart.FileHeader) (*models.UploadedFile, error) {
	if header == nil {
		return nil, nil
	}
	if header.Size > applicationAttachmentLimit {
		return nil, appErrors.Clone(appErrors.ErrUploadRejected,
			fmt.Sprintf("%s exceeds the %d byte limit", kind, applicationAttachmentLimit))
	}
	src, err := header.Open()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read "+kind)
	}
	defer src.Close() //nolint:errcheck

	ext := strings.ToLower(filepath.Ext(header.Filename))
	filename := fmt.Sprintf("applications/%d-%s%s", time.Now().UnixNano(), uuid.NewString()[:8], ext)
	if _, err := s.uploads.SaveStream(filename, src); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store "+kind)
	}
	return &models.UploadedFile{
		Filename:     filename,
		OriginalName: header.Filename,
		MimeType:     header.Header.Get("Content-Type"),
		Size:         header.Size,
		Path:         "/uploads/" + filename,
		UploadedAt:   time.Now().UTC(),
	}, nil
}

// Submit stores an application with its optional attachments. Attachments
// already written to disk are removed when the insert fails.
func (s *ApplicationService) Submit(ctx context.Context, app *models.Application, resume, signature *multipart.FileHeader) (*models.Application, error) {
	if err := s.validator.Struct(app); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid application payload")
	}

	var stored []string
	if resume != nil {
		file, err := s.storeAttachment("resume", resume)
		if err != nil {
			return nil, err
		}
		app.Resume = *file
		stored = append(stored, file.Filename)
	}
	if signature != nil {
		file, err := s.storeAttachment("signature", signature)
		if err != nil {
			s.cleanup(stored)
			return nil, err
		}
		app.Signature = *file
		stored = append(stored, file.Filename)
	}

	if err := s.repo.Create(ctx, app); err != nil {
		s.cleanup(stored)
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save application")
	}
	return app, nil
}

func (s *ApplicationService) cleanup(filenames []string) {
	for _, name := range filenames {
		if err := s.uploads.Delete(name); err != nil {
			s.logger.Warn("failed to remove orphaned attachment", zap.String("filename", name), zap.Error(err))
		}
	}
}

// List returns applications of one kind, newest first.
func (s *ApplicationService) List(ctx context.Context, kind models.ApplicationKind) ([]models.Application, error) {
	apps, err := s.repo.List(ctx, kind)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list applications")
	}
	return apps, nil
}

// Get returns one application.
func (s *ApplicationService) Get(ctx context.Context, id string) (*models.Application, error) {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "application not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load application")
	}
	return app, nil
}

// UpdateStatus moves an application through the review pipeline.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) error {
	switch status {
	case models.ApplicationStatusPending, models.ApplicationStatusUnderReview,
		models.ApplicationStatusApproved, models.ApplicationStatusRejected:
	default:
		return appErrors.Clone(appErrors.ErrValidation, "invalid status")
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "application not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update status")
	}
	return nil
}

// SendEmail delivers a follow-up email and records it in the application's
// log. The log write happens even when no mailer is configured so the
// history stays complete.
func (s *ApplicationService) SendEmail(ctx context.Context, id string, req SendApplicationEmailRequest) (*models.EmailLogEntry, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "missing required fields: to, subject, message")
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "application not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load application")
	}

	if s.mailer != nil {
		if err := s.mailer.SendApplicantEmail(ctx, req.To, req.Subject, req.Message); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to send email")
		}
	} else {
		s.logger.Info("applicant email logged without delivery", zap.String("application_id", id))
	}

	entry := models.EmailLogEntry{To: req.To, Subject: req.Subject, Message: req.Message, SentAt: time.Now().UTC()}
	if err := s.repo.AppendEmail(ctx, id, entry); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record email")
	}
	return &entry, nil
}

// Emails returns the send history for an application.
func (s *ApplicationService) Emails(ctx context.Context, id string) (models.EmailLog, error) {
	app, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.Emails == nil {
		return models.EmailLog{}, nil
	}
	return app.Emails, nil
}

// Delete removes an application and its attachments.
func (s *ApplicationService) Delete(ctx context.Context, id string) error {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "application not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load application")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "application not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete application")
	}
	var files []string
	if app.Resume.Filename != "" {
		files = append(files, app.Resume.Filename)
	}
	if app.Signature.Filename != "" {
		files = append(files, app.Signature.Filename)
	}
	s.cleanup(files)
	return nil
}
