package models

import (
	"database/sql/driver"
	"time"
)

// MedicalConditions mirrors the health form's condition checkbox group,
// stored as a single jsonb column.
type MedicalConditions struct {
	Asthma          bool `json:"asthma"`
	Diabetes        bool `json:"diabetes"`
	Convulsion      bool `json:"convulsion"`
	HeartTrouble    bool `json:"heartTrouble"`
	FrequentCold    bool `json:"frequentCold"`
	StomachUpsets   bool `json:"stomachUpsets"`
	FaintingSpells  bool `json:"faintingSpells"`
	UrinaryProblems bool `json:"urinaryProblems"`
	SkinRash        bool `json:"skinRash"`
	Soiling         bool `json:"soiling"`
	SoreThroats     bool `json:"soreThroats"`
	EarInfection    bool `json:"earInfection"`
	NoneOfAbove     bool `json:"noneOfAbove"`
}

func (m MedicalConditions) Value() (driver.Value, error) { return jsonbValue(m) }

func (m *MedicalConditions) Scan(src interface{}) error { return jsonbScan(src, m) }

// PastDiseases is the past-disease checkbox group, stored as jsonb.
type PastDiseases struct {
	Mumps        bool `json:"mumps"`
	Chickenpox   bool `json:"chickenpox"`
	Hepatitis    bool `json:"hepatitis"`
	ScarletFever bool `json:"scarletFever"`
	Tuberculosis bool `json:"tuberculosis"`
	Measles      bool `json:"measles"`
	NoneOfAbove  bool `json:"noneOfAbove"`
}

func (p PastDiseases) Value() (driver.Value, error) { return jsonbValue(p) }

func (p *PastDiseases) Scan(src interface{}) error { return jsonbScan(src, p) }

// HealthForm captures a student's medical history for one enrollment.
type HealthForm struct {
	ID           string `db:"id" json:"id"`
	EnrollmentID string `db:"enrollment_id" json:"enrollmentId" validate:"required"`

	InsuranceCompany string `db:"insurance_company" json:"insuranceCompany" validate:"required"`
	PhysicianName    string `db:"physician_name" json:"physicianName" validate:"required"`
	PhysicianNumber  string `db:"physician_number" json:"physicianNumber" validate:"required"`

	HasDisabilities       string `db:"has_disabilities" json:"hasDisabilities,omitempty" validate:"omitempty,oneof=Yes No"`
	DisabilityExplanation string `db:"disability_explanation" json:"disabilityExplanation,omitempty"`

	MedicalConditions MedicalConditions `db:"medical_conditions" json:"medicalConditions"`
	PastDiseases      PastDiseases      `db:"past_diseases" json:"pastDiseases"`
	PastConditions    string            `db:"past_conditions" json:"pastConditions,omitempty"`

	TakesRegularMedication string `db:"takes_regular_medication" json:"takesRegularMedication,omitempty" validate:"omitempty,oneof=Yes No"`
	MedicationExplanation  string `db:"medication_explanation" json:"medicationExplanation,omitempty"`

	HasAllergies  string `db:"has_allergies" json:"hasAllergies,omitempty" validate:"omitempty,oneof=Yes No"`
	AllergiesList string `db:"allergies_list" json:"allergiesList,omitempty"`

	HealthFormSignature string `db:"health_form_signature" json:"healthFormSignature" validate:"required"`

	SubmittedAt time.Time `db:"submitted_at" json:"submittedAt"`
}
