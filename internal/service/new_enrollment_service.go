package service

import (
	"context"
	"database/sql"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/alhuda-academy/admissions-api/internal/dto"
	"github.com/alhuda-academy/admissions-api/internal/models"
	"github.com/alhuda-academy/admissions-api/internal/repository"
	"github.com/alhuda-academy/admissions-api/pkg/config"
	appErrors "github.com/alhuda-academy/admissions-api/pkg/errors"
)

type newEnrollmentRepository interface {
	Create(ctx context.Context, enr *models.NewEnrollment) error
	List(ctx context.Context) ([]models.NewEnrollment, error)
	FindByID(ctx context.Context, id string) (*models.NewEnrollment, error)
	UpdateStatus(ctx context.Context, id string, status models.NewEnrollmentStatus) error
	Delete(ctx context.Context, id string) error
}

type photoSigner interface {
	Generate(id, relPath string) (string, time.Time, error)
}

// DirectEnrollmentService manages the richer single-document enrollment record
// with its uploaded student photo.
type DirectEnrollmentService struct {
	repo      newEnrollmentRepository
	uploads   uploadStore
	signer    photoSigner
	cfg       config.UploadsConfig
	apiPrefix string
	validate  *validator.Validate
	logger    *zap.Logger
}

// NewDirectEnrollmentService constructs DirectEnrollmentService. signer may be nil,
// in which case photo URLs are omitted from responses.
func NewDirectEnrollmentService(repo newEnrollmentRepository, uploads uploadStore, signer photoSigner, cfg config.UploadsConfig, apiPrefix string, logger *zap.Logger) *DirectEnrollmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if apiPrefix == "" {
		apiPrefix = "/api/v1"
	}
	return &DirectEnrollmentService{
		repo:      repo,
		uploads:   uploads,
		signer:    signer,
		cfg:       cfg,
		apiPrefix: apiPrefix,
		validate:  validator.New(),
		logger:    logger,
	}
}

// Submit coerces the multipart payload, stores the optional photo, and
// persists the record. The enrollment id is unique across submissions.
func (s *DirectEnrollmentService) Submit(ctx context.Context, req dto.NewEnrollmentForm, photo *multipart.FileHeader) (*models.NewEnrollment, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid enrollment payload")
	}

	dob, err := parseDOB(req.DateOfBirth)
	if err != nil {
		return nil, appErrors.WithDetails(appErrors.ErrValidation, []string{"dateOfBirth must be a valid date"})
	}
	var admission *time.Time
	if req.AdmissionDate != "" {
		parsed, err := parseDOB(req.AdmissionDate)
		if err != nil {
			return nil, appErrors.WithDetails(appErrors.ErrValidation, []string{"admissionDate must be a valid date"})
		}
		admission = &parsed
	}
	siblings := 0
	if req.TotalSiblings != "" {
		siblings, err = strconv.Atoi(req.TotalSiblings)
		if err != nil || siblings < 0 {
			return nil, appErrors.WithDetails(appErrors.ErrValidation, []string{"totalSiblings must be a non-negative integer"})
		}
	}

	enr := &models.NewEnrollment{
		EnrollmentID:          req.EnrollmentID,
		ParentFullName:        req.ParentFullName,
		RelationshipToStudent: req.RelationshipToStudent,
		MaritalStatus:         req.MaritalStatus,
		PrimaryPhone:          req.PrimaryPhone,
		AlternatePhone:        req.AlternatePhone,
		Email:                 strings.ToLower(req.Email),
		AlternateEmail:        strings.ToLower(req.AlternateEmail),
		StreetAddress:         req.StreetAddress,
		City:                  req.City,
		State:                 req.State,
		ZipCode:               req.ZipCode,
		StudentFullName:       req.StudentFullName,
		Gender:                req.Gender,
		DateOfBirth:           dob,
		BirthCertificateNIC:   req.BirthCertificateNIC,
		TotalSiblings:         siblings,
		OrphanStatus:          defaultString(req.OrphanStatus, "No"),
		OSCStatus:             defaultString(req.OSCStatus, "No"),
		IdentificationMark:    req.IdentificationMark,
		RegistrationNumber:    req.RegistrationNumber,
		AdmissionDate:         admission,
		ClassGrade:            req.ClassGrade,
		Section:               req.Section,
		PreviousSchoolName:    req.PreviousSchoolName,
		PreviousSchoolID:      req.PreviousSchoolID,
		BoardRollNumber:       req.BoardRollNumber,
		StudentEmail:          strings.ToLower(req.StudentEmail),
		StudentPhone:          req.StudentPhone,
		ResidentialAddress:    req.ResidentialAddress,
		AgreementSignature:    req.AgreementSignature,
		Status:                models.NewEnrollmentStatusPending,
	}

	if photo != nil {
		filename, err := s.savePhoto(photo)
		if err != nil {
			return nil, err
		}
		enr.StudentPhoto = filename
	}

	if err := s.repo.Create(ctx, enr); err != nil {
		if enr.StudentPhoto != "" {
			if delErr := s.uploads.Delete(enr.StudentPhoto); delErr != nil {
				s.logger.Warn("failed to remove orphaned photo", zap.String("filename", enr.StudentPhoto), zap.Error(delErr))
			}
		}
		if repository.IsUniqueViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "an enrollment with this id already exists")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store enrollment")
	}
	s.decorate(enr)
	return enr, nil
}

// List returns all records, newest first, with signed photo URLs.
func (s *DirectEnrollmentService) List(ctx context.Context) ([]models.NewEnrollment, error) {
	enrollments, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list enrollments")
	}
	for i := range enrollments {
		s.decorate(&enrollments[i])
	}
	return enrollments, nil
}

// Get returns one record by id.
func (s *DirectEnrollmentService) Get(ctx context.Context, id string) (*models.NewEnrollment, error) {
	enr, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "enrollment not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load enrollment")
	}
	s.decorate(enr)
	return enr, nil
}

// UpdateStatus sets the status directly. No workflow gating applies.
func (s *DirectEnrollmentService) UpdateStatus(ctx context.Context, id, status string) (*models.NewEnrollment, error) {
	st := models.NewEnrollmentStatus(status)
	switch st {
	case models.NewEnrollmentStatusPending, models.NewEnrollmentStatusApproved, models.NewEnrollmentStatusRejected:
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "status must be pending, approved, or rejected")
	}
	if err := s.repo.UpdateStatus(ctx, id, st); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "enrollment not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update enrollment status")
	}
	return s.Get(ctx, id)
}

// Delete removes the record and its stored photo.
func (s *DirectEnrollmentService) Delete(ctx context.Context, id string) error {
	enr, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "enrollment not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load enrollment")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete enrollment")
	}
	if enr.StudentPhoto != "" {
		if err := s.uploads.Delete(enr.StudentPhoto); err != nil {
			s.logger.Warn("failed to remove student photo", zap.String("filename", enr.StudentPhoto), zap.Error(err))
		}
	}
	return nil
}

func (s *DirectEnrollmentService) savePhoto(header *multipart.FileHeader) (string, error) {
	if header.Size > s.cfg.MaxFileSizeBytes {
		return "", appErrors.Clone(appErrors.ErrUploadRejected,
			fmt.Sprintf("file exceeds the %d byte limit", s.cfg.MaxFileSizeBytes))
	}
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !extensionAllowed(ext, s.cfg.AllowedExtensions) {
		return "", appErrors.Clone(appErrors.ErrUploadRejected, "only image files are allowed")
	}
	if ct := header.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		return "", appErrors.Clone(appErrors.ErrUploadRejected, "only image files are allowed")
	}
	src, err := header.Open()
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read uploaded photo")
	}
	defer src.Close()

	filename := fmt.Sprintf("photos/%d-%s%s", time.Now().UnixNano(), uuid.NewString()[:8], ext)
	if _, err := s.uploads.SaveStream(filename, src); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store uploaded photo")
	}
	return filename, nil
}

// decorate attaches a short-lived signed URL for the stored photo.
func (s *DirectEnrollmentService) decorate(enr *models.NewEnrollment) {
	if enr.StudentPhoto == "" || s.signer == nil {
		return
	}
	token, _, err := s.signer.Generate(enr.ID, enr.StudentPhoto)
	if err != nil {
		s.logger.Warn("failed to sign photo url", zap.String("id", enr.ID), zap.Error(err))
		return
	}
	enr.StudentPhotoURL = fmt.Sprintf("%s/files/%s", strings.TrimRight(s.apiPrefix, "/"), token)
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
