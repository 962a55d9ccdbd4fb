package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/alhuda-academy/admissions-api/internal/models"
	appErrors "github.com/alhuda-academy/admissions-api/pkg/errors"
)

type calendarRepository interface {
	Create(ctx context.Context, event *models.CalendarEvent) error
	CreateBatch(ctx context.Context, events []models.CalendarEvent) error
	List(ctx context.Context) ([]models.CalendarEvent, error)
	ListRange(ctx context.Context, from, to string) ([]models.CalendarEvent, error)
	FindByID(ctx context.Context, id string) (*models.CalendarEvent, error)
	Update(ctx context.Context, event *models.CalendarEvent) error
	Delete(ctx context.Context, id string) error
}

// CreateEventRequest describes an event creation payload.
type CreateEventRequest struct {
	Title       string `json:"title" validate:"required"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	EventType   string `json:"type" validate:"required"`
	Color       string `json:"color" validate:"required"`
	CustomColor string `json:"customColor"`
}

// UpdateEventRequest carries partial event updates; empty fields keep their
// stored values.
type UpdateEventRequest struct {
	Title       string  `json:"title"`
	Date        string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	EndDate     *string `json:"endDate" validate:"omitempty"`
	EventType   string  `json:"type"`
	Color       string  `json:"color"`
	CustomColor *string `json:"customColor"`
}

// CalendarService manages academic calendar events.
type CalendarService struct {
	repo      calendarRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCalendarService constructs CalendarService.
func NewCalendarService(repo calendarRepository, validate *validator.Validate, logger *zap.Logger) *CalendarService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CalendarService{repo: repo, validator: validate, logger: logger}
}

// Create stores a new event. A missing end date collapses to the start date,
// making every event at least one day long.
func (s *CalendarService) Create(ctx context.Context, req CreateEventRequest, createdBy string) (*models.CalendarEvent, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload")
	}
	endDate := req.EndDate
	if endDate == "" {
		endDate = req.Date
	}
	event := &models.CalendarEvent{
		Title:       req.Title,
		Date:        req.Date,
		EndDate:     endDate,
		EventType:   req.EventType,
		Color:       req.Color,
		CustomColor: req.CustomColor,
	}
	if createdBy != "" {
		event.CreatedBy = &createdBy
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create event")
	}
	return event, nil
}

// CreateBulk stores a batch of events in one transaction.
func (s *CalendarService) CreateBulk(ctx context.Context, reqs []CreateEventRequest, createdBy string) ([]models.CalendarEvent, error) {
	if len(reqs) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid events array")
	}
	events := make([]models.CalendarEvent, 0, len(reqs))
	for _, req := range reqs {
		if err := s.validator.Struct(req); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload")
		}
		endDate := req.EndDate
		if endDate == "" {
			endDate = req.Date
		}
		event := models.CalendarEvent{
			Title:       req.Title,
			Date:        req.Date,
			EndDate:     endDate,
			EventType:   req.EventType,
			Color:       req.Color,
			CustomColor: req.CustomColor,
		}
		if createdBy != "" {
			event.CreatedBy = &createdBy
		}
		events = append(events, event)
	}
	if err := s.repo.CreateBatch(ctx, events); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create events")
	}
	return events, nil
}

// List returns all events in ascending date order.
func (s *CalendarService) List(ctx context.Context) ([]models.CalendarEvent, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list events")
	}
	return events, nil
}

// ListRange returns events overlapping the inclusive date window.
func (s *CalendarService) ListRange(ctx context.Context, from, to string) ([]models.CalendarEvent, error) {
	if from == "" || to == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "startDate and endDate are required")
	}
	events, err := s.repo.ListRange(ctx, from, to)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list events")
	}
	return events, nil
}

// Get returns one event.
func (s *CalendarService) Get(ctx context.Context, id string) (*models.CalendarEvent, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "event not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load event")
	}
	return event, nil
}

// Update applies the provided fields to an existing event.
func (s *CalendarService) Update(ctx context.Context, id string, req UpdateEventRequest) (*models.CalendarEvent, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload")
	}
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "event not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load event")
	}
	if req.Title != "" {
		event.Title = req.Title
	}
	if req.Date != "" {
		event.Date = req.Date
	}
	if req.EndDate != nil {
		if *req.EndDate == "" {
			event.EndDate = event.Date
		} else {
			event.EndDate = *req.EndDate
		}
	}
	if req.EventType != "" {
		event.EventType = req.EventType
	}
	if req.Color != "" {
		event.Color = req.Color
	}
	if req.CustomColor != nil {
		event.CustomColor = *req.CustomColor
	}
	if err := s.repo.Update(ctx, event); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "event not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update event")
	}
	return event, nil
}

// Delete removes an event.
func (s *CalendarService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "event not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete event")
	}
	return nil
}
