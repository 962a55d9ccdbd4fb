package service

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/alhuda-academy/admissions-api/internal/models"
	appErrors "github.com/alhuda-academy/admissions-api/pkg/errors"
)

type renrollRepository interface {
	FindByIdentity(ctx context.Context, fatherEmail, childFirstName, childLastName string) (*models.RenrollForm, error)
	Create(ctx context.Context, form *models.RenrollForm) error
	Update(ctx context.Context, form *models.RenrollForm) error
	List(ctx context.Context) ([]models.RenrollForm, error)
	FindByID(ctx context.Context, id string) (*models.RenrollForm, error)
	Delete(ctx context.Context, id string) error
}

// RenrollSubmitResult reports the outcome of a step submission.
type RenrollSubmitResult struct {
	Form       *models.RenrollForm
	Message    string
	CanProceed bool
	Created    bool
}

// RenrollService drives the three-step re-enrollment workflow. A family's
// draft is keyed by father email plus the child's first and last name, and
// every step submission replaces the draft wholesale.
type RenrollService struct {
	repo   renrollRepository
	logger *zap.Logger
}

// NewRenrollService constructs RenrollService.
func NewRenrollService(repo renrollRepository, logger *zap.Logger) *RenrollService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RenrollService{repo: repo, logger: logger}
}

// ValidateStep runs the step checklist without touching storage.
func (s *RenrollService) ValidateStep(step int, form *models.RenrollForm) []string {
	return ValidateRenrollStep(step, form)
}

// SubmitStep validates the submitted step, then creates or overwrites the
// family's draft. The final step marks the draft completed; completion is
// never revoked by a later re-submission of an earlier step.
func (s *RenrollService) SubmitStep(ctx context.Context, form *models.RenrollForm) (*RenrollSubmitResult, error) {
	step := form.CurrentStep
	if errs := ValidateRenrollStep(step, form); len(errs) > 0 {
		return nil, appErrors.WithDetails(appErrors.ErrValidation, errs)
	}

	message := fmt.Sprintf("Step %d saved successfully", step+1)
	if step == models.RenrollStepTuition {
		message = "Renroll form completed successfully!"
	}

	existing, err := s.repo.FindByIdentity(ctx, form.FatherEmail, form.ChildFirstName, form.ChildLastName)
	if err != nil && err != sql.ErrNoRows {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load renroll form")
	}

	if existing == nil {
		form.ID = ""
		form.CurrentStep = step
		form.IsCompleted = step == models.RenrollStepTuition
		if err := s.repo.Create(ctx, form); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save renroll form")
		}
		s.logger.Info("renroll draft created",
			zap.String("id", form.ID),
			zap.Int("step", step))
		return &RenrollSubmitResult{Form: form, Message: message, CanProceed: step < models.RenrollStepTuition, Created: true}, nil
	}

	form.ID = existing.ID
	form.CurrentStep = step
	if step == models.RenrollStepTuition {
		form.IsCompleted = true
	} else {
		form.IsCompleted = existing.IsCompleted
	}
	if err := s.repo.Update(ctx, form); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save renroll form")
	}
	s.logger.Info("renroll draft updated",
		zap.String("id", form.ID),
		zap.Int("step", step))
	return &RenrollSubmitResult{Form: form, Message: message, CanProceed: step < models.RenrollStepTuition, Created: false}, nil
}

// List returns all drafts, newest submission first.
func (s *RenrollService) List(ctx context.Context) ([]models.RenrollForm, error) {
	forms, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list renroll forms")
	}
	return forms, nil
}

// Get returns one draft by id.
func (s *RenrollService) Get(ctx context.Context, id string) (*models.RenrollForm, error) {
	form, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "renroll form not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load renroll form")
	}
	return form, nil
}

// Delete removes a draft.
func (s *RenrollService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "renroll form not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete renroll form")
	}
	return nil
}
