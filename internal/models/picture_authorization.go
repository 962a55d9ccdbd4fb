package models

import "time"

// PictureAuthorization bundles the media-release and discipline consents.
type PictureAuthorization struct {
	ID           string `db:"id" json:"id"`
	EnrollmentID string `db:"enrollment_id" json:"enrollmentId" validate:"required"`

	PictureAuthSignature     string `db:"picture_auth_signature" json:"pictureAuthSignature" validate:"required"`
	DisciplineAcknowledgment string `db:"discipline_acknowledgment" json:"disciplineAcknowledgment" validate:"required"`
	SignerRole               string `db:"signer_role" json:"signerRole" validate:"required,oneof=Parent Guardian"`
	DisciplineFormSignature  string `db:"discipline_form_signature" json:"disciplineFormSignature" validate:"required"`

	SubmittedAt time.Time `db:"submitted_at" json:"submittedAt"`
}
