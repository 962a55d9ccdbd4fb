package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/alhuda-academy/admissions-api/internal/models"
)

// CalendarRepository persists academic calendar events. Dates are stored as
// YYYY-MM-DD text since the calendar is day granular and the client supplies
// the strings verbatim.
type CalendarRepository struct {
	db *sqlx.DB
}

func NewCalendarRepository(db *sqlx.DB) *CalendarRepository {
	return &CalendarRepository{db: db}
}

const calendarColumns = `id, title, date, end_date, event_type, color, custom_color,
	created_by, created_at, updated_at`

func (r *CalendarRepository) Create(ctx context.Context, event *models.CalendarEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now
	const query = `INSERT INTO calendar_events (` + calendarColumns + `)
	VALUES (:id, :title, :date, :end_date, :event_type, :color, :custom_color,
	:created_by, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, event); err != nil {
		return fmt.Errorf("create calendar event: %w", err)
	}
	return nil
}

// CreateBatch inserts several events inside one transaction, used by the
// bulk import endpoint.
func (r *CalendarRepository) CreateBatch(ctx context.Context, events []models.CalendarEvent) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin batch insert: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	const query = `INSERT INTO calendar_events (` + calendarColumns + `)
	VALUES (:id, :title, :date, :end_date, :event_type, :color, :custom_color,
	:created_by, :created_at, :updated_at)`
	for i := range events {
		if events[i].ID == "" {
			events[i].ID = uuid.NewString()
		}
		events[i].CreatedAt = now
		events[i].UpdatedAt = now
		if _, err := tx.NamedExecContext(ctx, query, &events[i]); err != nil {
			return fmt.Errorf("batch insert calendar event: %w", err)
		}
	}
	return tx.Commit()
}

func (r *CalendarRepository) List(ctx context.Context) ([]models.CalendarEvent, error) {
	query := `SELECT ` + calendarColumns + ` FROM calendar_events ORDER BY date ASC`
	var events []models.CalendarEvent
	if err := r.db.SelectContext(ctx, &events, query); err != nil {
		return nil, fmt.Errorf("list calendar events: %w", err)
	}
	return events, nil
}

// ListRange returns events overlapping the inclusive [from, to] date window.
func (r *CalendarRepository) ListRange(ctx context.Context, from, to string) ([]models.CalendarEvent, error) {
	query := `SELECT ` + calendarColumns + ` FROM calendar_events
	WHERE date <= $2 AND COALESCE(NULLIF(end_date, ''), date) >= $1 ORDER BY date ASC`
	var events []models.CalendarEvent
	if err := r.db.SelectContext(ctx, &events, query, from, to); err != nil {
		return nil, fmt.Errorf("list calendar range: %w", err)
	}
	return events, nil
}

func (r *CalendarRepository) FindByID(ctx context.Context, id string) (*models.CalendarEvent, error) {
	query := `SELECT ` + calendarColumns + ` FROM calendar_events WHERE id = $1`
	var event models.CalendarEvent
	if err := r.db.GetContext(ctx, &event, query, id); err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *CalendarRepository) Update(ctx context.Context, event *models.CalendarEvent) error {
	event.UpdatedAt = time.Now().UTC()
	const query = `UPDATE calendar_events SET title = :title, date = :date, end_date = :end_date,
	event_type = :event_type, color = :color, custom_color = :custom_color, updated_at = :updated_at
	WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, event)
	if err != nil {
		return fmt.Errorf("update calendar event: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update calendar event: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *CalendarRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM calendar_events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete calendar event: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete calendar event: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
