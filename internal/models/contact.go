package models

import "time"

// ContactStatus tracks how far an inquiry has been handled.
type ContactStatus string

const (
	ContactStatusNew        ContactStatus = "New"
	ContactStatusInProgress ContactStatus = "In Progress"
	ContactStatusReplied    ContactStatus = "Replied"
)

// ContactMessage is one inquiry from the public contact form.
type ContactMessage struct {
	ID          string        `db:"id" json:"id"`
	Name        string        `db:"name" json:"name"`
	Email       string        `db:"email" json:"email"`
	Message     string        `db:"message" json:"message"`
	IPAddress   string        `db:"ip_address" json:"-"`
	UserAgent   string        `db:"user_agent" json:"-"`
	Status      ContactStatus `db:"status" json:"status"`
	Reply       *string       `db:"reply" json:"reply,omitempty"`
	RepliedAt   *time.Time    `db:"replied_at" json:"repliedAt,omitempty"`
	SubmittedAt time.Time     `db:"submitted_at" json:"submittedAt"`
}
