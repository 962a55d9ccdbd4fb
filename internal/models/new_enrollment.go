package models

import "time"

// NewEnrollmentStatus values an administrator may set directly.
type NewEnrollmentStatus string

const (
	NewEnrollmentStatusPending  NewEnrollmentStatus = "pending"
	NewEnrollmentStatusApproved NewEnrollmentStatus = "approved"
	NewEnrollmentStatusRejected NewEnrollmentStatus = "rejected"
)

// NewEnrollment is the richer single-document enrollment record, keyed by a
// unique enrollment id and carrying an uploaded student photo.
type NewEnrollment struct {
	ID           string `db:"id" json:"id"`
	EnrollmentID string `db:"enrollment_id" json:"enrollmentId"`

	ParentFullName        string `db:"parent_full_name" json:"parentFullName"`
	RelationshipToStudent string `db:"relationship_to_student" json:"relationshipToStudent"`
	MaritalStatus         string `db:"marital_status" json:"maritalStatus"`
	PrimaryPhone          string `db:"primary_phone" json:"primaryPhone"`
	AlternatePhone        string `db:"alternate_phone" json:"alternatePhone,omitempty"`
	Email                 string `db:"email" json:"email"`
	AlternateEmail        string `db:"alternate_email" json:"alternateEmail,omitempty"`
	StreetAddress         string `db:"street_address" json:"streetAddress"`
	City                  string `db:"city" json:"city"`
	State                 string `db:"state" json:"state"`
	ZipCode               string `db:"zip_code" json:"zipCode"`

	StudentFullName     string     `db:"student_full_name" json:"studentFullName"`
	Gender              string     `db:"gender" json:"gender"`
	DateOfBirth         time.Time  `db:"date_of_birth" json:"dateOfBirth"`
	BirthCertificateNIC string     `db:"birth_certificate_nic" json:"birthCertificateNIC,omitempty"`
	TotalSiblings       int        `db:"total_siblings" json:"totalSiblings"`
	OrphanStatus        string     `db:"orphan_status" json:"orphanStatus,omitempty"`
	OSCStatus           string     `db:"osc_status" json:"oscStatus,omitempty"`
	IdentificationMark  string     `db:"identification_mark" json:"identificationMark,omitempty"`
	RegistrationNumber  string     `db:"registration_number" json:"registrationNumber,omitempty"`
	AdmissionDate       *time.Time `db:"admission_date" json:"admissionDate,omitempty"`
	ClassGrade          string     `db:"class_grade" json:"classGrade,omitempty"`
	Section             string     `db:"section" json:"section,omitempty"`
	PreviousSchoolName  string     `db:"previous_school_name" json:"previousSchoolName,omitempty"`
	PreviousSchoolID    string     `db:"previous_school_id" json:"previousSchoolID,omitempty"`
	BoardRollNumber     string     `db:"board_roll_number" json:"boardRollNumber,omitempty"`
	StudentEmail        string     `db:"student_email" json:"studentEmail,omitempty"`
	StudentPhone        string     `db:"student_phone" json:"studentPhone,omitempty"`
	ResidentialAddress  string     `db:"residential_address" json:"residentialAddress,omitempty"`
	StudentPhoto        string     `db:"student_photo" json:"studentPhoto,omitempty"`
	StudentPhotoURL     string     `db:"-" json:"studentPhotoUrl,omitempty"`

	AgreementSignature string `db:"agreement_signature" json:"agreementSignature"`

	Status      NewEnrollmentStatus `db:"status" json:"status"`
	SubmittedAt time.Time           `db:"submitted_at" json:"submittedAt"`
}
