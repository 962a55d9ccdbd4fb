package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alhuda-academy/admissions-api/internal/models"
)

func validStudentInfoForm() *models.RenrollForm {
	return &models.RenrollForm{
		ChildFirstName:  "Amina",
		ChildLastName:   "Khan",
		Gender:          "Female",
		DateOfBirth:     "2015-04-02",
		Ethnicity:       "Asian",
		GradeLevel:      "4",
		Address1:        "12 Oak St",
		City:            "Dearborn",
		State:           "MI",
		ZipCode:         "48124",
		SchoolDistrict:  "Dearborn Public",
		FatherFirstName: "Omar",
		FatherLastName:  "Khan",
		FatherPhone:     "313-555-0101",
		FatherEmail:     "omar@example.com",
		MotherFirstName: "Sara",
		MotherLastName:  "Khan",
		MotherPhone:     "313-555-0102",
		MotherEmail:     "sara@example.com",
	}
}

func validTuitionForm() *models.RenrollForm {
	return &models.RenrollForm{
		GuardianName:           "Omar Khan",
		HomePhone:              "313-555-0101",
		GuardianEmail:          "omar@example.com",
		AcknowledgeTuition:     "yes",
		AcknowledgeTextbookFee: "yes",
		PaymentOption:          "monthly",
		TuitionSignature:       "Omar Khan",
	}
}

func TestValidateRenrollStepStudentInfoOrder(t *testing.T) {
	errs := ValidateRenrollStep(models.RenrollStepStudentInfo, &models.RenrollForm{})
	expected := []string{
		"Child first name is required",
		"Child last name is required",
		"Gender is required",
		"Date of birth is required",
		"Ethnicity is required",
		"Grade level is required",
		"Address is required",
		"City is required",
		"State is required",
		"Zip code is required",
		"School district is required",
		"Father first name is required",
		"Father last name is required",
		"Father phone is required",
		"Father email is required",
		"Mother first name is required",
		"Mother last name is required",
		"Mother phone is required",
		"Mother email is required",
	}
	assert.Equal(t, expected, errs)
}

func TestValidateRenrollStepDeterministic(t *testing.T) {
	form := validStudentInfoForm()
	form.City = ""
	form.MotherEmail = "   "

	first := ValidateRenrollStep(models.RenrollStepStudentInfo, form)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ValidateRenrollStep(models.RenrollStepStudentInfo, form))
	}
	assert.Equal(t, []string{"City is required", "Mother email is required"}, first)
}

func TestValidateRenrollStepWhitespaceOnly(t *testing.T) {
	form := validStudentInfoForm()
	form.ChildFirstName = "   "
	errs := ValidateRenrollStep(models.RenrollStepStudentInfo, form)
	assert.Equal(t, []string{"Child first name is required"}, errs)
}

func TestValidateRenrollStepEmergency(t *testing.T) {
	errs := ValidateRenrollStep(models.RenrollStepEmergency, &models.RenrollForm{})
	require.Len(t, errs, 11)
	assert.Equal(t, "Emergency contact 1 name is required", errs[0])
	assert.Equal(t, "Parent signature is required", errs[10])

	form := &models.RenrollForm{
		Emergency1Name:                "Aunt Laila",
		Emergency1Phone:               "313-555-0200",
		Emergency1Relationship:        "Aunt",
		Emergency2Name:                "Uncle Yusuf",
		Emergency2Phone:               "313-555-0201",
		Emergency2Relationship:        "Uncle",
		AuthorizedPerson1:             "Aunt Laila",
		AuthorizedPerson1Phone:        "313-555-0200",
		AuthorizedPerson1Relationship: "Aunt",
		HospitalPreference:            "Beaumont",
		ParentSignature:               "Omar Khan",
	}
	assert.Empty(t, ValidateRenrollStep(models.RenrollStepEmergency, form))
}

func TestValidateRenrollStepTuitionAcknowledgments(t *testing.T) {
	form := validTuitionForm()
	assert.Empty(t, ValidateRenrollStep(models.RenrollStepTuition, form))

	// The checkbox comparison is against the exact lowercase literal.
	form.AcknowledgeTuition = "Yes"
	errs := ValidateRenrollStep(models.RenrollStepTuition, form)
	assert.Equal(t, []string{"Tuition acknowledgment is required"}, errs)

	form.AcknowledgeTuition = "true"
	form.AcknowledgeTextbookFee = ""
	errs = ValidateRenrollStep(models.RenrollStepTuition, form)
	assert.Equal(t, []string{
		"Tuition acknowledgment is required",
		"Textbook fee acknowledgment is required",
	}, errs)
}

func TestValidateRenrollStepUnknownStep(t *testing.T) {
	assert.Empty(t, ValidateRenrollStep(7, &models.RenrollForm{}))
	assert.Empty(t, ValidateRenrollStep(-1, &models.RenrollForm{}))
}
