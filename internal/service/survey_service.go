package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/alhuda-academy/admissions-api/internal/models"
	appErrors "github.com/alhuda-academy/admissions-api/pkg/errors"
)

type surveyRepository interface {
	Create(ctx context.Context, survey *models.Survey) error
	List(ctx context.Context, audience models.SurveyAudience) ([]models.Survey, error)
	FindByID(ctx context.Context, id string) (*models.Survey, error)
	Delete(ctx context.Context, id string) error
}

// SubmitSurveyRequest is the feedback payload shared by all audiences.
type SubmitSurveyRequest struct {
	Name        string                `json:"name"`
	Answers     models.SurveyAnswers  `json:"answers" validate:"required"`
	Suggestions string                `json:"suggestions"`
	Audience    models.SurveyAudience `json:"-"`
}

// SurveyService stores feedback surveys for the parent, staff and student
// audiences.
type SurveyService struct {
	repo      surveyRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSurveyService constructs SurveyService.
func NewSurveyService(repo surveyRepository, validate *validator.Validate, logger *zap.Logger) *SurveyService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SurveyService{repo: repo, validator: validate, logger: logger}
}

func validAudience(a models.SurveyAudience) bool {
	switch a {
	case models.SurveyAudienceParent, models.SurveyAudienceStaff, models.SurveyAudienceStudent:
		return true
	}
	return false
}

// Submit stores one survey response.
func (s *SurveyService) Submit(ctx context.Context, req SubmitSurveyRequest) (*models.Survey, error) {
	if !validAudience(req.Audience) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid survey audience")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid survey payload")
	}
	survey := &models.Survey{
		Audience:    req.Audience,
		Name:        req.Name,
		Answers:     req.Answers,
		Suggestions: req.Suggestions,
	}
	if err := s.repo.Create(ctx, survey); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save survey")
	}
	return survey, nil
}

// List returns every response for one audience, newest first.
func (s *SurveyService) List(ctx context.Context, audience models.SurveyAudience) ([]models.Survey, error) {
	if !validAudience(audience) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid survey audience")
	}
	surveys, err := s.repo.List(ctx, audience)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list surveys")
	}
	return surveys, nil
}

// Get returns one response.
func (s *SurveyService) Get(ctx context.Context, id string) (*models.Survey, error) {
	survey, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "survey not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load survey")
	}
	return survey, nil
}

// Delete removes a response.
func (s *SurveyService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "survey not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete survey")
	}
	return nil
}
