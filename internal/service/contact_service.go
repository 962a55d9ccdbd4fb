package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/alhuda-academy/admissions-api/internal/models"
	appErrors "github.com/alhuda-academy/admissions-api/pkg/errors"
)

type contactRepository interface {
	Create(ctx context.Context, msg *models.ContactMessage) error
	List(ctx context.Context, status string) ([]models.ContactMessage, error)
	FindByID(ctx context.Context, id string) (*models.ContactMessage, error)
	Reply(ctx context.Context, id, reply string) error
	UpdateStatus(ctx context.Context, id string, status models.ContactStatus) error
	Delete(ctx context.Context, id string) error
}

// contactNotifier forwards a submitted message to the school inbox. Delivery
// failures never fail the submission; the message is already stored.
type contactNotifier interface {
	NotifyContact(ctx context.Context, msg *models.ContactMessage) error
}

// SubmitContactRequest is the public contact form payload.
type SubmitContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// ContactService handles the public contact form and the staff inbox.
type ContactService struct {
	repo      contactRepository
	notifier  contactNotifier
	validator *validator.Validate
	logger    *zap.Logger
}

// NewContactService constructs ContactService. notifier may be nil.
func NewContactService(repo contactRepository, notifier contactNotifier, validate *validator.Validate, logger *zap.Logger) *ContactService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactService{repo: repo, notifier: notifier, validator: validate, logger: logger}
}

// Submit stores the message, then attempts notification best effort.
func (s *ContactService) Submit(ctx context.Context, req SubmitContactRequest, ip, userAgent string) (*models.ContactMessage, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "all fields are required")
	}
	msg := &models.ContactMessage{
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		IPAddress: ip,
		UserAgent: userAgent,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save message")
	}
	if s.notifier != nil {
		if err := s.notifier.NotifyContact(ctx, msg); err != nil {
			s.logger.Warn("contact notification failed", zap.Error(err))
		}
	}
	return msg, nil
}

// List returns messages, optionally filtered by status.
func (s *ContactService) List(ctx context.Context, status string) ([]models.ContactMessage, error) {
	msgs, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list messages")
	}
	return msgs, nil
}

// Get returns one message.
func (s *ContactService) Get(ctx context.Context, id string) (*models.ContactMessage, error) {
	msg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "message not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load message")
	}
	return msg, nil
}

// Reply records the staff response and marks the message replied.
func (s *ContactService) Reply(ctx context.Context, id, reply string) error {
	if reply == "" {
		return appErrors.Clone(appErrors.ErrValidation, "reply is required")
	}
	if err := s.repo.Reply(ctx, id, reply); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "message not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record reply")
	}
	return nil
}

// UpdateStatus moves a message through the triage states.
func (s *ContactService) UpdateStatus(ctx context.Context, id string, status models.ContactStatus) error {
	switch status {
	case models.ContactStatusNew, models.ContactStatusInProgress, models.ContactStatusReplied:
	default:
		return appErrors.Clone(appErrors.ErrValidation, "invalid status")
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "message not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update status")
	}
	return nil
}

// Delete removes a message.
func (s *ContactService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "message not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete message")
	}
	return nil
}
