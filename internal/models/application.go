package models

import (
	"database/sql/driver"
	"time"
)

// ApplicationKind separates job applications from volunteer applications.
type ApplicationKind string

const (
	ApplicationKindJob       ApplicationKind = "job"
	ApplicationKindVolunteer ApplicationKind = "volunteer"
)

// ApplicationStatus values an administrator may assign.
type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "Pending"
	ApplicationStatusUnderReview ApplicationStatus = "Under Review"
	ApplicationStatusApproved    ApplicationStatus = "Approved"
	ApplicationStatusRejected    ApplicationStatus = "Rejected"
)

// SchoolEntry is one education record on a job application.
type SchoolEntry struct {
	SchoolName     string `json:"schoolName,omitempty"`
	SchoolType     string `json:"schoolType,omitempty"`
	Location       string `json:"location,omitempty"`
	AddressLine1   string `json:"addressLine1,omitempty"`
	AddressLine2   string `json:"addressLine2,omitempty"`
	City           string `json:"city,omitempty"`
	State          string `json:"state,omitempty"`
	ZipCode        string `json:"zipCode,omitempty"`
	Degree         string `json:"degree,omitempty"`
	Major          string `json:"major,omitempty"`
	YearsCompleted string `json:"yearsCompleted,omitempty"`
}

// SchoolEntries stores the education roster as jsonb.
type SchoolEntries []SchoolEntry

func (s SchoolEntries) Value() (driver.Value, error) { return jsonbValue(s) }

func (s *SchoolEntries) Scan(src interface{}) error { return jsonbScan(src, s) }

// WorkExperienceEntry is one prior employment record.
type WorkExperienceEntry struct {
	Company          string `json:"company,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Position         string `json:"position,omitempty"`
	Responsibilities string `json:"responsibilities,omitempty"`
	AddressLine1     string `json:"addressLine1,omitempty"`
	AddressLine2     string `json:"addressLine2,omitempty"`
	City             string `json:"city,omitempty"`
	State            string `json:"state,omitempty"`
	ZipCode          string `json:"zipCode,omitempty"`
	Duration         string `json:"duration,omitempty"`
	ContactForRef    string `json:"contactForRef,omitempty"`
	ReasonForLeaving string `json:"reasonForLeaving,omitempty"`
}

// WorkExperienceEntries stores employment history as jsonb.
type WorkExperienceEntries []WorkExperienceEntry

func (w WorkExperienceEntries) Value() (driver.Value, error) { return jsonbValue(w) }

func (w *WorkExperienceEntries) Scan(src interface{}) error { return jsonbScan(src, w) }

// ReferenceEntry is one professional reference.
type ReferenceEntry struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Company   string `json:"company,omitempty"`
	Title     string `json:"title,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
}

// ReferenceEntries stores references as jsonb.
type ReferenceEntries []ReferenceEntry

func (r ReferenceEntries) Value() (driver.Value, error) { return jsonbValue(r) }

func (r *ReferenceEntries) Scan(src interface{}) error { return jsonbScan(src, r) }

// EmailLogEntry records one notification composed for an applicant. Delivery
// itself happens outside this service; the log is the record of what was sent.
type EmailLogEntry struct {
	To      string    `json:"to"`
	Subject string    `json:"subject"`
	Message string    `json:"message"`
	SentAt  time.Time `json:"sentAt"`
}

// EmailLog is the append-only notification history, stored as jsonb.
type EmailLog []EmailLogEntry

func (l EmailLog) Value() (driver.Value, error) { return jsonbValue(l) }

func (l *EmailLog) Scan(src interface{}) error { return jsonbScan(src, l) }

// UploadedFile describes a stored resume or signature file.
type UploadedFile struct {
	Filename     string    `json:"filename,omitempty"`
	OriginalName string    `json:"originalName,omitempty"`
	MimeType     string    `json:"mimetype,omitempty"`
	Size         int64     `json:"size,omitempty"`
	Path         string    `json:"path,omitempty"`
	UploadedAt   time.Time `json:"uploadedAt,omitempty"`
}

func (f UploadedFile) Value() (driver.Value, error) { return jsonbValue(f) }

func (f *UploadedFile) Scan(src interface{}) error { return jsonbScan(src, f) }

// Application is a job or volunteer application. Volunteer applications use
// only the personal/address block and position; the rest stays empty.
type Application struct {
	ID   string          `db:"id" json:"id"`
	Kind ApplicationKind `db:"kind" json:"kind"`

	FirstName string `db:"first_name" json:"firstName" validate:"required"`
	LastName  string `db:"last_name" json:"lastName" validate:"required"`
	Gender    string `db:"gender" json:"gender,omitempty"`
	Phone     string `db:"phone" json:"phone" validate:"required"`
	Email     string `db:"email" json:"email" validate:"required,email"`

	Address1 string `db:"address1" json:"address1" validate:"required"`
	Address2 string `db:"address2" json:"address2,omitempty"`
	City     string `db:"city" json:"city" validate:"required"`
	State    string `db:"state" json:"state" validate:"required"`
	ZipCode  string `db:"zip_code" json:"zipCode" validate:"required"`

	Position  string `db:"position" json:"position,omitempty"`
	HourlyPay string `db:"hourly_pay" json:"hourlyPay,omitempty"`
	StartDate string `db:"start_date" json:"startDate,omitempty"`
	WorkAuth  string `db:"work_auth" json:"workAuth,omitempty"`
	Felony    string `db:"felony" json:"felony,omitempty"`

	Schools        SchoolEntries         `db:"schools" json:"schools,omitempty"`
	WorkExperience WorkExperienceEntries `db:"work_experience" json:"workExperience,omitempty"`
	References     ReferenceEntries      `db:"reference_entries" json:"references,omitempty"`

	Resume    UploadedFile `db:"resume" json:"resume"`
	Signature UploadedFile `db:"signature" json:"signature"`

	Emails EmailLog `db:"emails" json:"emails,omitempty"`

	Status      ApplicationStatus `db:"status" json:"status"`
	SubmittedAt time.Time         `db:"submitted_at" json:"submittedAt"`
	UpdatedAt   time.Time         `db:"updated_at" json:"updatedAt"`
}
