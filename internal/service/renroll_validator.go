package service

import (
	"strings"

	"github.com/alhuda-academy/admissions-api/internal/models"
)

// requiredField is one rule in a step's checklist. trim distinguishes free
// text, where whitespace-only input is rejected, from select-style fields
// that only need to be present. Error order is part of the client contract,
// so rules run strictly in declaration order.
type requiredField struct {
	value   func(*models.RenrollForm) string
	message string
	trim    bool
}

var studentInfoFields = []requiredField{
	{func(f *models.RenrollForm) string { return f.ChildFirstName }, "Child first name is required", true},
	{func(f *models.RenrollForm) string { return f.ChildLastName }, "Child last name is required", true},
	{func(f *models.RenrollForm) string { return f.Gender }, "Gender is required", false},
	{func(f *models.RenrollForm) string { return f.DateOfBirth }, "Date of birth is required", false},
	{func(f *models.RenrollForm) string { return f.Ethnicity }, "Ethnicity is required", true},
	{func(f *models.RenrollForm) string { return f.GradeLevel }, "Grade level is required", false},
	{func(f *models.RenrollForm) string { return f.Address1 }, "Address is required", true},
	{func(f *models.RenrollForm) string { return f.City }, "City is required", true},
	{func(f *models.RenrollForm) string { return f.State }, "State is required", false},
	{func(f *models.RenrollForm) string { return f.ZipCode }, "Zip code is required", true},
	{func(f *models.RenrollForm) string { return f.SchoolDistrict }, "School district is required", true},
	{func(f *models.RenrollForm) string { return f.FatherFirstName }, "Father first name is required", true},
	{func(f *models.RenrollForm) string { return f.FatherLastName }, "Father last name is required", true},
	{func(f *models.RenrollForm) string { return f.FatherPhone }, "Father phone is required", true},
	{func(f *models.RenrollForm) string { return f.FatherEmail }, "Father email is required", true},
	{func(f *models.RenrollForm) string { return f.MotherFirstName }, "Mother first name is required", true},
	{func(f *models.RenrollForm) string { return f.MotherLastName }, "Mother last name is required", true},
	{func(f *models.RenrollForm) string { return f.MotherPhone }, "Mother phone is required", true},
	{func(f *models.RenrollForm) string { return f.MotherEmail }, "Mother email is required", true},
}

var emergencyFields = []requiredField{
	{func(f *models.RenrollForm) string { return f.Emergency1Name }, "Emergency contact 1 name is required", true},
	{func(f *models.RenrollForm) string { return f.Emergency1Phone }, "Emergency contact 1 phone is required", true},
	{func(f *models.RenrollForm) string { return f.Emergency1Relationship }, "Emergency contact 1 relationship is required", true},
	{func(f *models.RenrollForm) string { return f.Emergency2Name }, "Emergency contact 2 name is required", true},
	{func(f *models.RenrollForm) string { return f.Emergency2Phone }, "Emergency contact 2 phone is required", true},
	{func(f *models.RenrollForm) string { return f.Emergency2Relationship }, "Emergency contact 2 relationship is required", true},
	{func(f *models.RenrollForm) string { return f.AuthorizedPerson1 }, "Authorized person 1 name is required", true},
	{func(f *models.RenrollForm) string { return f.AuthorizedPerson1Phone }, "Authorized person 1 phone is required", true},
	{func(f *models.RenrollForm) string { return f.AuthorizedPerson1Relationship }, "Authorized person 1 relationship is required", true},
	{func(f *models.RenrollForm) string { return f.HospitalPreference }, "Hospital preference is required", true},
	{func(f *models.RenrollForm) string { return f.ParentSignature }, "Parent signature is required", true},
}

// ValidateRenrollStep checks the required fields of a single step and
// returns the failures in a fixed order. Steps outside 0..2 validate
// trivially, matching the permissive switch the workflow has always had.
func ValidateRenrollStep(step int, form *models.RenrollForm) []string {
	var errs []string
	switch step {
	case models.RenrollStepStudentInfo:
		errs = checkRequired(studentInfoFields, form)
	case models.RenrollStepEmergency:
		errs = checkRequired(emergencyFields, form)
	case models.RenrollStepTuition:
		errs = checkRequired(tuitionFields, form)
		// Acknowledgments are checkbox values compared against the literal
		// "yes". Any other value, including "Yes", fails.
		if form.AcknowledgeTuition != "yes" {
			errs = append(errs, "Tuition acknowledgment is required")
		}
		if form.AcknowledgeTextbookFee != "yes" {
			errs = append(errs, "Textbook fee acknowledgment is required")
		}
		if form.PaymentOption == "" {
			errs = append(errs, "Payment option is required")
		}
		if strings.TrimSpace(form.TuitionSignature) == "" {
			errs = append(errs, "Tuition signature is required")
		}
	}
	return errs
}

var tuitionFields = []requiredField{
	{func(f *models.RenrollForm) string { return f.GuardianName }, "Guardian name is required", true},
	{func(f *models.RenrollForm) string { return f.HomePhone }, "Home phone is required", true},
	{func(f *models.RenrollForm) string { return f.GuardianEmail }, "Guardian email is required", true},
}

func checkRequired(fields []requiredField, form *models.RenrollForm) []string {
	var errs []string
	for _, field := range fields {
		v := field.value(form)
		if field.trim {
			v = strings.TrimSpace(v)
		}
		if v == "" {
			errs = append(errs, field.message)
		}
	}
	return errs
}
