package models

import "time"

// CalendarEvent is one entry on the school calendar. Dates are stored as
// YYYY-MM-DD strings because the site calendar is day-granular and the
// client sends them verbatim.
type CalendarEvent struct {
	ID          string    `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Date        string    `db:"date" json:"date"`
	EndDate     string    `db:"end_date" json:"endDate"`
	EventType   string    `db:"event_type" json:"type"`
	Color       string    `db:"color" json:"color"`
	CustomColor string    `db:"custom_color" json:"customColor,omitempty"`
	CreatedBy   *string   `db:"created_by" json:"createdBy,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}
