package models

import "time"

// TransferRecords is a request to pull records from a previous school.
type TransferRecords struct {
	ID           string `db:"id" json:"id"`
	EnrollmentID string `db:"enrollment_id" json:"enrollmentId" validate:"required"`

	FirstName   string    `db:"first_name" json:"firstName" validate:"required"`
	LastName    string    `db:"last_name" json:"lastName" validate:"required"`
	DateOfBirth time.Time `db:"date_of_birth" json:"dateOfBirth" validate:"required"`
	Grade       string    `db:"grade" json:"grade" validate:"required"`

	PreviousSchoolName    string `db:"previous_school_name" json:"previousSchoolName" validate:"required"`
	PreviousSchoolAddress string `db:"previous_school_address" json:"previousSchoolAddress" validate:"required"`
	PreviousSchoolCity    string `db:"previous_school_city" json:"previousSchoolCity" validate:"required"`
	PreviousSchoolState   string `db:"previous_school_state" json:"previousSchoolState" validate:"required"`
	PreviousSchoolZip     string `db:"previous_school_zip" json:"previousSchoolZip" validate:"required"`
	PreviousSchoolPhone   string `db:"previous_school_phone" json:"previousSchoolPhone" validate:"required"`

	ParentGuardianName  string `db:"parent_guardian_name" json:"parentGuardianName" validate:"required"`
	ParentGuardianPhone string `db:"parent_guardian_phone" json:"parentGuardianPhone" validate:"required"`
	ParentGuardianEmail string `db:"parent_guardian_email" json:"parentGuardianEmail,omitempty"`

	RecordsNeeded string `db:"records_needed" json:"recordsNeeded,omitempty"`
	UrgencyLevel  string `db:"urgency_level" json:"urgencyLevel,omitempty"`

	Signature string `db:"signature" json:"transferFormSignature" validate:"required"`

	SubmittedAt time.Time `db:"submitted_at" json:"submittedAt"`
}
