package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/alhuda-academy/admissions-api/internal/models"
	"github.com/alhuda-academy/admissions-api/internal/repository"
	appErrors "github.com/alhuda-academy/admissions-api/pkg/errors"
)

type registrationRepository interface {
	Create(ctx context.Context, reg *models.StudentRegistration) error
	List(ctx context.Context) ([]models.StudentRegistration, error)
	FindByID(ctx context.Context, id string) (*models.StudentRegistration, error)
	FindByEnrollmentID(ctx context.Context, enrollmentID string) (*models.StudentRegistration, error)
	Delete(ctx context.Context, id string) error
}

type healthFormRepository interface {
	Create(ctx context.Context, form *models.HealthForm) error
	List(ctx context.Context) ([]models.HealthForm, error)
	FindByID(ctx context.Context, id string) (*models.HealthForm, error)
	FindByEnrollmentID(ctx context.Context, enrollmentID string) (*models.HealthForm, error)
	FindByEnrollmentIDs(ctx context.Context, enrollmentIDs []string) ([]models.HealthForm, error)
	Delete(ctx context.Context, id string) error
}

type emergencyContactRepository interface {
	Create(ctx context.Context, form *models.EmergencyContact) error
	List(ctx context.Context) ([]models.EmergencyContact, error)
	FindByID(ctx context.Context, id string) (*models.EmergencyContact, error)
	FindByEnrollmentID(ctx context.Context, enrollmentID string) (*models.EmergencyContact, error)
	FindByEnrollmentIDs(ctx context.Context, enrollmentIDs []string) ([]models.EmergencyContact, error)
	Delete(ctx context.Context, id string) error
}

type pictureAuthorizationRepository interface {
	Create(ctx context.Context, form *models.PictureAuthorization) error
	List(ctx context.Context) ([]models.PictureAuthorization, error)
	FindByID(ctx context.Context, id string) (*models.PictureAuthorization, error)
	FindByEnrollmentID(ctx context.Context, enrollmentID string) (*models.PictureAuthorization, error)
	FindByEnrollmentIDs(ctx context.Context, enrollmentIDs []string) ([]models.PictureAuthorization, error)
	Delete(ctx context.Context, id string) error
}

type transferRecordsRepository interface {
	Create(ctx context.Context, form *models.TransferRecords) error
	List(ctx context.Context) ([]models.TransferRecords, error)
	FindByID(ctx context.Context, id string) (*models.TransferRecords, error)
	FindByEnrollmentID(ctx context.Context, enrollmentID string) (*models.TransferRecords, error)
	FindByEnrollmentIDs(ctx context.Context, enrollmentIDs []string) ([]models.TransferRecords, error)
	Delete(ctx context.Context, id string) error
}

type tuitionContractRepository interface {
	Create(ctx context.Context, form *models.TuitionContract) error
	List(ctx context.Context) ([]models.TuitionContract, error)
	FindByID(ctx context.Context, id string) (*models.TuitionContract, error)
	FindByEnrollmentID(ctx context.Context, enrollmentID string) (*models.TuitionContract, error)
	FindByEnrollmentIDs(ctx context.Context, enrollmentIDs []string) ([]models.TuitionContract, error)
	Delete(ctx context.Context, id string) error
}

type enrollmentCacheInvalidator interface {
	DeleteByPattern(ctx context.Context, pattern string) error
}

// FormsService handles the six admission form variants. Each variant shares
// the same lifecycle: validated create, newest-first listing, lookup and
// delete. Mutations drop the cached enrollment aggregates.
type FormsService struct {
	registrations registrationRepository
	healthForms   healthFormRepository
	emergency     emergencyContactRepository
	pictureAuth   pictureAuthorizationRepository
	transfers     transferRecordsRepository
	tuition       tuitionContractRepository
	cache         enrollmentCacheInvalidator
	metrics       *MetricsService
	validator     *validator.Validate
	logger        *zap.Logger
}

// NewFormsService constructs FormsService. cache may be nil when Redis is
// disabled.
func NewFormsService(
	registrations registrationRepository,
	healthForms healthFormRepository,
	emergency emergencyContactRepository,
	pictureAuth pictureAuthorizationRepository,
	transfers transferRecordsRepository,
	tuition tuitionContractRepository,
	cache enrollmentCacheInvalidator,
	validate *validator.Validate,
	logger *zap.Logger,
) *FormsService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FormsService{
		registrations: registrations,
		healthForms:   healthForms,
		emergency:     emergency,
		pictureAuth:   pictureAuth,
		transfers:     transfers,
		tuition:       tuition,
		cache:         cache,
		validator:     validate,
		logger:        logger,
	}
}

// SetMetrics attaches the optional Prometheus instrumentation.
func (s *FormsService) SetMetrics(metrics *MetricsService) {
	s.metrics = metrics
}

func (s *FormsService) recordSubmission(ctx context.Context, form string) {
	s.metrics.RecordFormSubmission(form)
	s.invalidateEnrollments(ctx)
}

func (s *FormsService) invalidateEnrollments(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPattern(ctx, "enrollments:*"); err != nil {
		s.logger.Warn("enrollment cache invalidation failed", zap.Error(err))
	}
}

func (s *FormsService) createErr(err error, what string) error {
	if repository.IsUniqueViolation(err) {
		return appErrors.Clone(appErrors.ErrConflict, what+" already submitted for this enrollment")
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save "+what)
}

// CreateRegistration stores a student registration form.
func (s *FormsService) CreateRegistration(ctx context.Context, reg *models.StudentRegistration) error {
	if err := s.validator.Struct(reg); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid registration payload")
	}
	if err := s.registrations.Create(ctx, reg); err != nil {
		return s.createErr(err, "registration")
	}
	s.recordSubmission(ctx, "student_registration")
	return nil
}

func (s *FormsService) ListRegistrations(ctx context.Context) ([]models.StudentRegistration, error) {
	regs, err := s.registrations.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list registrations")
	}
	return regs, nil
}

func (s *FormsService) GetRegistration(ctx context.Context, id string) (*models.StudentRegistration, error) {
	reg, err := s.registrations.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "registration not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load registration")
	}
	return reg, nil
}

func (s *FormsService) DeleteRegistration(ctx context.Context, id string) error {
	if err := s.registrations.Delete(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "registration not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete registration")
	}
	s.invalidateEnrollments(ctx)
	return nil
}

// CreateHealthForm stores a health form.
func (s *FormsService) CreateHealthForm(ctx context.Context, form *models.HealthForm) error {
	if err := s.validator.Struct(form); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid health form payload")
	}
	if err := s.healthForms.Create(ctx, form); err != nil {
		return s.createErr(err, "health form")
	}
	s.recordSubmission(ctx, "health_form")
	return nil
}

func (s *FormsService) ListHealthForms(ctx context.Context) ([]models.HealthForm, error) {
	forms, err := s.healthForms.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list health forms")
	}
	return forms, nil
}

func (s *FormsService) GetHealthForm(ctx context.Context, id string) (*models.HealthForm, error) {
	form, err := s.healthForms.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "health form not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load health form")
	}
	return form, nil
}

func (s *FormsService) DeleteHealthForm(ctx context.Context, id string) error {
	if err := s.healthForms.Delete(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "health form not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete health form")
	}
	s.invalidateEnrollments(ctx)
	return nil
}

// CreateEmergencyContact stores an emergency contact form.
func (s *FormsService) CreateEmergencyContact(ctx context.Context, form *models.EmergencyContact) error {
	if err := s.validator.Struct(form); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid emergency contact payload")
	}
	if err := s.emergency.Create(ctx, form); err != nil {
		return s.createErr(err, "emergency contact form")
	}
	s.recordSubmission(ctx, "emergency_contact")
	return nil
}

func (s *FormsService) ListEmergencyContacts(ctx context.Context) ([]models.EmergencyContact, error) {
	forms, err := s.emergency.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list emergency contact forms")
	}
	return forms, nil
}

func (s *FormsService) GetEmergencyContact(ctx context.Context, id string) (*models.EmergencyContact, error) {
	form, err := s.emergency.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "emergency contact form not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load emergency contact form")
	}
	return form, nil
}

func (s *FormsService) DeleteEmergencyContact(ctx context.Context, id string) error {
	if err := s.emergency.Delete(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "emergency contact form not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete emergency contact form")
	}
	s.invalidateEnrollments(ctx)
	return nil
}

// CreatePictureAuthorization stores a picture authorization form.
func (s *FormsService) CreatePictureAuthorization(ctx context.Context, form *models.PictureAuthorization) error {
	if err := s.validator.Struct(form); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid picture authorization payload")
	}
	if err := s.pictureAuth.Create(ctx, form); err != nil {
		return s.createErr(err, "picture authorization")
	}
	s.recordSubmission(ctx, "picture_authorization")
	return nil
}

func (s *FormsService) ListPictureAuthorizations(ctx context.Context) ([]models.PictureAuthorization, error) {
	forms, err := s.pictureAuth.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list picture authorizations")
	}
	return forms, nil
}

func (s *FormsService) GetPictureAuthorization(ctx context.Context, id string) (*models.PictureAuthorization, error) {
	form, err := s.pictureAuth.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "picture authorization not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load picture authorization")
	}
	return form, nil
}

func (s *FormsService) DeletePictureAuthorization(ctx context.Context, id string) error {
	if err := s.pictureAuth.Delete(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "picture authorization not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete picture authorization")
	}
	s.invalidateEnrollments(ctx)
	return nil
}

// CreateTransferRecords stores a record transfer request.
func (s *FormsService) CreateTransferRecords(ctx context.Context, form *models.TransferRecords) error {
	if err := s.validator.Struct(form); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid transfer records payload")
	}
	if err := s.transfers.Create(ctx, form); err != nil {
		return s.createErr(err, "transfer records request")
	}
	s.recordSubmission(ctx, "transfer_records")
	return nil
}

func (s *FormsService) ListTransferRecords(ctx context.Context) ([]models.TransferRecords, error) {
	forms, err := s.transfers.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list transfer records")
	}
	return forms, nil
}

func (s *FormsService) GetTransferRecords(ctx context.Context, id string) (*models.TransferRecords, error) {
	form, err := s.transfers.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "transfer records request not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load transfer records")
	}
	return form, nil
}

func (s *FormsService) DeleteTransferRecords(ctx context.Context, id string) error {
	if err := s.transfers.Delete(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "transfer records request not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete transfer records")
	}
	s.invalidateEnrollments(ctx)
	return nil
}

// CreateTuitionContract stores a signed tuition contract.
func (s *FormsService) CreateTuitionContract(ctx context.Context, form *models.TuitionContract) error {
	if err := s.validator.Struct(form); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid tuition contract payload")
	}
	if err := s.tuition.Create(ctx, form); err != nil {
		return s.createErr(err, "tuition contract")
	}
	s.recordSubmission(ctx, "tuition_contract")
	return nil
}

func (s *FormsService) ListTuitionContracts(ctx context.Context) ([]models.TuitionContract, error) {
	forms, err := s.tuition.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list tuition contracts")
	}
	return forms, nil
}

func (s *FormsService) GetTuitionContract(ctx context.Context, id string) (*models.TuitionContract, error) {
	form, err := s.tuition.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "tuition contract not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load tuition contract")
	}
	return form, nil
}

func (s *FormsService) DeleteTuitionContract(ctx context.Context, id string) error {
	if err := s.tuition.Delete(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "tuition contract not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete tuition contract")
	}
	s.invalidateEnrollments(ctx)
	return nil
}
