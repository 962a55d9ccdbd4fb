package dto

import "github.com/alhuda-academy/admissions-api/internal/models"

// ValidateStepRequest is the dry-run validation payload: the declared step
// and the accumulated form state, checked without touching storage.
type ValidateStepRequest struct {
	Step     int                `json:"step"`
	FormData models.RenrollForm `json:"formData"`
}

// ValidateStepResponse mirrors what the client's step gating expects.
type ValidateStepResponse struct {
	Success    bool     `json:"success"`
	Errors     []string `json:"errors"`
	CanProceed bool     `json:"canProceed"`
}

// RenrollSubmitResponse wraps a persisted draft with progression info.
type RenrollSubmitResponse struct {
	Message    string              `json:"message"`
	Form       *models.RenrollForm `json:"form"`
	CanProceed bool                `json:"canProceed"`
}
