package models

import "time"

// EnrollmentStatus is derived from how many of the six forms exist.
type EnrollmentStatus string

const (
	EnrollmentStatusPending     EnrollmentStatus = "Pending"
	EnrollmentStatusUnderReview EnrollmentStatus = "Under Review"
	EnrollmentStatusApproved    EnrollmentStatus = "Approved"
)

// Enrollment is the read-time composite of the six admission forms sharing
// one enrollment key. It is never persisted; the registration is the lookup
// root and always counts as present.
type Enrollment struct {
	ID           string           `json:"id"`
	EnrollmentID string           `json:"enrollmentId"`
	Status       EnrollmentStatus `json:"status"`
	SubmittedAt  time.Time        `json:"submittedAt"`

	StudentRegistration  *StudentRegistration  `json:"studentRegistration"`
	HealthForm           *HealthForm           `json:"healthForm"`
	EmergencyContact     *EmergencyContact     `json:"emergencyContact"`
	PictureAuthorization *PictureAuthorization `json:"pictureAuthorization"`
	TransferRecords      *TransferRecords      `json:"transferRecords"`
	TuitionContract      *TuitionContract      `json:"tuitionContract"`
}

// FormsCompleted counts the non-nil slots among the six forms.
func (e *Enrollment) FormsCompleted() int {
	count := 0
	if e.StudentRegistration != nil {
		count++
	}
	if e.HealthForm != nil {
		count++
	}
	if e.EmergencyContact != nil {
		count++
	}
	if e.PictureAuthorization != nil {
		count++
	}
	if e.TransferRecords != nil {
		count++
	}
	if e.TuitionContract != nil {
		count++
	}
	return count
}

// DeriveEnrollmentStatus maps the completed-form count to a status:
// all six present means Approved, four or five Under Review, fewer Pending.
func DeriveEnrollmentStatus(formsCompleted int) EnrollmentStatus {
	switch {
	case formsCompleted == 6:
		return EnrollmentStatusApproved
	case formsCompleted >= 4:
		return EnrollmentStatusUnderReview
	default:
		return EnrollmentStatusPending
	}
}
