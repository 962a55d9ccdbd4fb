package service

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/alhuda-academy/admissions-api/internal/dto"
	"github.com/alhuda-academy/admissions-api/internal/models"
	"github.com/alhuda-academy/admissions-api/internal/repository"
	appErrors "github.com/alhuda-academy/admissions-api/pkg/errors"
)

type enrollmentCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

const enrollmentListCacheKey = "enrollments:list"

// EnrollmentService assembles the read-time enrollment aggregates. Each
// aggregate joins the six form variants on the shared enrollment key; the
// registration is the lookup root, so a key without a registration has no
// aggregate at all.
type EnrollmentService struct {
	registrations registrationRepository
	healthForms   healthFormRepository
	emergency     emergencyContactRepository
	pictureAuth   pictureAuthorizationRepository
	transfers     transferRecordsRepository
	tuition       tuitionContractRepository
	cache         enrollmentCache
	cacheTTL      time.Duration
	metrics       *MetricsService
	validator     *validator.Validate
	logger        *zap.Logger
}

// NewEnrollmentService constructs EnrollmentService. cache may be nil when
// Redis is disabled.
func NewEnrollmentService(
	registrations registrationRepository,
	healthForms healthFormRepository,
	emergency emergencyContactRepository,
	pictureAuth pictureAuthorizationRepository,
	transfers transferRecordsRepository,
	tuition tuitionContractRepository,
	cache enrollmentCache,
	cacheTTL time.Duration,
	validate *validator.Validate,
	logger *zap.Logger,
) *EnrollmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &EnrollmentService{
		registrations: registrations,
		healthForms:   healthForms,
		emergency:     emergency,
		pictureAuth:   pictureAuth,
		transfers:     transfers,
		tuition:       tuition,
		cache:         cache,
		cacheTTL:      cacheTTL,
		validator:     validate,
		logger:        logger,
	}
}

// SetMetrics attaches the optional Prometheus instrumentation.
func (s *EnrollmentService) SetMetrics(metrics *MetricsService) {
	s.metrics = metrics
}

func (s *EnrollmentService) assemble(reg *models.StudentRegistration,
	health *models.HealthForm,
	emergency *models.EmergencyContact,
	pictureAuth *models.PictureAuthorization,
	transfer *models.TransferRecords,
	tuition *models.TuitionContract,
) models.Enrollment {
	enr := models.Enrollment{
		ID:                   reg.ID,
		EnrollmentID:         reg.EnrollmentID,
		SubmittedAt:          reg.SubmittedAt,
		StudentRegistration:  reg,
		HealthForm:           health,
		EmergencyContact:     emergency,
		PictureAuthorization: pictureAuth,
		TransferRecords:      transfer,
		TuitionContract:      tuition,
	}
	enr.Status = models.DeriveEnrollmentStatus(enr.FormsCompleted())
	return enr
}

// Get builds one aggregate rooted at a registration's own identifier.
func (s *EnrollmentService) Get(ctx context.Context, id string) (*models.Enrollment, error) {
	reg, err := s.registrations.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "enrollment not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load registration")
	}
	return s.aggregate(ctx, reg)
}

// GetByKey builds one aggregate for an enrollment key. Missing variants
// leave their slot nil and lower the derived status.
func (s *EnrollmentService) GetByKey(ctx context.Context, enrollmentID string) (*models.Enrollment, error) {
	reg, err := s.registrations.FindByEnrollmentID(ctx, enrollmentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "enrollment not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load registration")
	}
	return s.aggregate(ctx, reg)
}

func (s *EnrollmentService) aggregate(ctx context.Context, reg *models.StudentRegistration) (*models.Enrollment, error) {
	enrollmentID := reg.EnrollmentID
	health, err := s.optionalHealth(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}
	emergency, err := s.optionalEmergency(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}
	pictureAuth, err := s.optionalPictureAuth(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}
	transfer, err := s.optionalTransfer(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}
	tuition, err := s.optionalTuition(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}

	enr := s.assemble(reg, health, emergency, pictureAuth, transfer, tuition)
	return &enr, nil
}

func (s *EnrollmentService) optionalHealth(ctx context.Context, enrollmentID string) (*models.HealthForm, error) {
	form, err := s.healthForms.FindByEnrollmentID(ctx, enrollmentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load health form")
	}
	return form, nil
}

func (s *EnrollmentService) optionalEmergency(ctx context.Context, enrollmentID string) (*models.EmergencyContact, error) {
	form, err := s.emergency.FindByEnrollmentID(ctx, enrollmentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load emergency contact form")
	}
	return form, nil
}

func (s *EnrollmentService) optionalPictureAuth(ctx context.Context, enrollmentID string) (*models.PictureAuthorization, error) {
	form, err := s.pictureAuth.FindByEnrollmentID(ctx, enrollmentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load picture authorization")
	}
	return form, nil
}

func (s *EnrollmentService) optionalTransfer(ctx context.Context, enrollmentID string) (*models.TransferRecords, error) {
	form, err := s.transfers.FindByEnrollmentID(ctx, enrollmentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load transfer records")
	}
	return form, nil
}

func (s *EnrollmentService) optionalTuition(ctx context.Context, enrollmentID string) (*models.TuitionContract, error) {
	form, err := s.tuition.FindByEnrollmentID(ctx, enrollmentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load tuition contract")
	}
	return form, nil
}

// List builds every aggregate, newest registration first. Variant lookups
// are batched into one query per table, then joined in memory, which keeps
// the output identical to the per-key assembly.
func (s *EnrollmentService) List(ctx context.Context) ([]models.Enrollment, error) {
	if s.cache != nil {
		var cached []models.Enrollment
		if err := s.cache.Get(ctx, enrollmentListCacheKey, &cached); err == nil {
			s.metrics.RecordCacheLookup(true)
			return cached, nil
		} else if err != repository.ErrCacheMiss {
			s.logger.Warn("enrollment cache read failed", zap.Error(err))
		} else {
			s.metrics.RecordCacheLookup(false)
		}
	}

	regs, err := s.registrations.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list registrations")
	}
	if len(regs) == 0 {
		return []models.Enrollment{}, nil
	}

	ids := make([]string, 0, len(regs))
	for i := range regs {
		ids = append(ids, regs[i].EnrollmentID)
	}

	healthForms, err := s.healthForms.FindByEnrollmentIDs(ctx, ids)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load health forms")
	}
	emergencyForms, err := s.emergency.FindByEnrollmentIDs(ctx, ids)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load emergency contact forms")
	}
	pictureAuths, err := s.pictureAuth.FindByEnrollmentIDs(ctx, ids)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load picture authorizations")
	}
	transferForms, err := s.transfers.FindByEnrollmentIDs(ctx, ids)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load transfer records")
	}
	tuitionForms, err := s.tuition.FindByEnrollmentIDs(ctx, ids)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load tuition contracts")
	}

	healthByID := make(map[string]*models.HealthForm, len(healthForms))
	for i := range healthForms {
		healthByID[healthForms[i].EnrollmentID] = &healthForms[i]
	}
	emergencyByID := make(map[string]*models.EmergencyContact, len(emergencyForms))
	for i := range emergencyForms {
		emergencyByID[emergencyForms[i].EnrollmentID] = &emergencyForms[i]
	}
	pictureByID := make(map[string]*models.PictureAuthorization, len(pictureAuths))
	for i := range pictureAuths {
		pictureByID[pictureAuths[i].EnrollmentID] = &pictureAuths[i]
	}
	transferByID := make(map[string]*models.TransferRecords, len(transferForms))
	for i := range transferForms {
		transferByID[transferForms[i].EnrollmentID] = &transferForms[i]
	}
	tuitionByID := make(map[string]*models.TuitionContract, len(tuitionForms))
	for i := range tuitionForms {
		tuitionByID[tuitionForms[i].EnrollmentID] = &tuitionForms[i]
	}

	enrollments := make([]models.Enrollment, 0, len(regs))
	for i := range regs {
		key := regs[i].EnrollmentID
		enrollments = append(enrollments, s.assemble(&regs[i],
			healthByID[key], emergencyByID[key], pictureByID[key],
			transferByID[key], tuitionByID[key]))
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, enrollmentListCacheKey, enrollments, s.cacheTTL); err != nil {
			s.logger.Warn("enrollment cache write failed", zap.Error(err))
		}
	}
	return enrollments, nil
}

// splitFullName breaks a combined name on the first whitespace run. A single
// token leaves the last name empty. Leading and repeated whitespace is
// deliberately collapsed rather than split on a literal single space, so
// sloppy client input like "  Maria  Lopez" still yields ("Maria", "Lopez")
// instead of empty tokens.
func splitFullName(full string) (first, last string) {
	tokens := strings.Fields(full)
	if len(tokens) == 0 {
		return "", ""
	}
	return tokens[0], strings.Join(tokens[1:], " ")
}

func parseDOB(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// SubmitCombined accepts the flat single-page enrollment payload and maps it
// into a registration. Combined names are split on the first space, which
// keeps the legacy client working against the per-form name columns; the
// mapping is best effort and skips the canonical-shape checks on purpose, so
// a single-token name lands with an empty last name rather than an error.
func (s *EnrollmentService) SubmitCombined(ctx context.Context, req dto.CombinedEnrollmentRequest, photoPath string) (*models.StudentRegistration, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid enrollment payload")
	}
	dob, err := parseDOB(req.DateOfBirth)
	if err != nil {
		return nil, appErrors.WithDetails(appErrors.ErrValidation, []string{"dateOfBirth must be a valid date"})
	}

	studentFirst, studentLast := splitFullName(req.StudentFullName)
	parentFirst, parentLast := splitFullName(req.ParentFullName)

	reg := &models.StudentRegistration{
		EnrollmentID:    req.EnrollmentID,
		FirstName:       studentFirst,
		LastName:        studentLast,
		Gender:          req.Gender,
		DateOfBirth:     dob,
		GradeLevel:      req.GradeLevel,
		AddressLine1:    req.StreetAddress,
		City:            req.City,
		State:           req.State,
		ZipCode:         req.ZipCode,
		Ethnicity:       req.Ethnicity,
		PublicDistrict:  req.SchoolDistrict,
		FatherFirstName: parentFirst,
		FatherLastName:  parentLast,
		FatherPhone:     req.ParentPhone,
		FatherEmail:     req.ParentEmail,
		PrintName:       req.PrintName,
		StudentPhoto:    photoPath,
	}
	if err := s.registrations.Create(ctx, reg); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "enrollment already submitted for this key")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save enrollment")
	}
	if s.cache != nil {
		if err := s.cache.DeleteByPattern(ctx, "enrollments:*"); err != nil {
			s.logger.Warn("enrollment cache invalidation failed", zap.Error(err))
		}
	}
	return reg, nil
}
