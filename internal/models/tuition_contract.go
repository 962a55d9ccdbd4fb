package models

import "time"

// TuitionContract records the guardian's financial commitments.
type TuitionContract struct {
	ID           string `db:"id" json:"id"`
	EnrollmentID string `db:"enrollment_id" json:"enrollmentId" validate:"required"`

	GuardianFirstName string `db:"guardian_first_name" json:"guardianFirstName" validate:"required"`
	GuardianLastName  string `db:"guardian_last_name" json:"guardianLastName" validate:"required"`
	GuardianPhone     string `db:"guardian_phone" json:"guardianPhone" validate:"required"`
	GuardianEmail     string `db:"guardian_email" json:"guardianEmail" validate:"required"`

	GuardianAddressLine1 string `db:"guardian_address_line1" json:"guardianAddressLine1" validate:"required"`
	GuardianAddressLine2 string `db:"guardian_address_line2" json:"guardianAddressLine2,omitempty"`
	GuardianCity         string `db:"guardian_city" json:"guardianCity" validate:"required"`
	GuardianState        string `db:"guardian_state" json:"guardianState" validate:"required"`
	GuardianZipCode      string `db:"guardian_zip_code" json:"guardianZipCode" validate:"required"`

	TuitionAcknowledgment        string `db:"tuition_acknowledgment" json:"tuitionAcknowledgment" validate:"required"`
	TextbookFeeAcknowledgment    string `db:"textbook_fee_acknowledgment" json:"textbookFeeAcknowledgment" validate:"required"`
	ApplicationFeeAcknowledgment string `db:"application_fee_acknowledgment" json:"applicationFeeAcknowledgment" validate:"required"`

	PaymentOption1 bool `db:"payment_option1" json:"paymentOption1"`
	PaymentOption2 bool `db:"payment_option2" json:"paymentOption2"`
	PaymentOption3 bool `db:"payment_option3" json:"paymentOption3"`

	Signature string `db:"signature" json:"tuitionContractSignature" validate:"required"`

	SubmittedAt time.Time `db:"submitted_at" json:"submittedAt"`
}
