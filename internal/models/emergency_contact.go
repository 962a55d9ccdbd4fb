package models

import "time"

// EmergencyContact lists who may be called and who may pick the student up.
type EmergencyContact struct {
	ID           string `db:"id" json:"id"`
	EnrollmentID string `db:"enrollment_id" json:"enrollmentId" validate:"required"`

	Contact1Name         string `db:"contact1_name" json:"emergencyContact1Name" validate:"required"`
	Contact1Phone        string `db:"contact1_phone" json:"emergencyContact1Phone" validate:"required"`
	Contact1Relationship string `db:"contact1_relationship" json:"emergencyContact1Relationship" validate:"required"`

	Contact2Name         string `db:"contact2_name" json:"emergencyContact2Name" validate:"required"`
	Contact2Phone        string `db:"contact2_phone" json:"emergencyContact2Phone" validate:"required"`
	Contact2Relationship string `db:"contact2_relationship" json:"emergencyContact2Relationship" validate:"required"`

	Contact3Name         string `db:"contact3_name" json:"emergencyContact3Name,omitempty"`
	Contact3Phone        string `db:"contact3_phone" json:"emergencyContact3Phone,omitempty"`
	Contact3Relationship string `db:"contact3_relationship" json:"emergencyContact3Relationship,omitempty"`

	PediatricianName  string `db:"pediatrician_name" json:"pediatricianName,omitempty"`
	PediatricianPhone string `db:"pediatrician_phone" json:"pediatricianPhone,omitempty"`

	HospitalChoice   string `db:"hospital_choice" json:"hospitalChoice,omitempty"`
	AuthorizedPickup string `db:"authorized_pickup" json:"authorizedPickup,omitempty"`

	Signature string `db:"signature" json:"emergencyFormSignature" validate:"required"`

	SubmittedAt time.Time `db:"submitted_at" json:"submittedAt"`
}
