package models

import (
	"database/sql/driver"
	"time"
)

// Sibling is one entry of a registration's sibling roster.
type Sibling struct {
	Name  string `json:"name"`
	Grade string `json:"grade"`
}

// SiblingList stores the sibling roster as a jsonb column.
type SiblingList []Sibling

func (l SiblingList) Value() (driver.Value, error) { return jsonbValue(l) }

func (l *SiblingList) Scan(src interface{}) error { return jsonbScan(src, l) }

// StudentRegistration is the root admission form. It anchors the six-form
// aggregate: the other five variants are joined to it by enrollment_id.
type StudentRegistration struct {
	ID           string `db:"id" json:"id"`
	EnrollmentID string `db:"enrollment_id" json:"enrollmentId" validate:"required"`

	FirstName   string    `db:"first_name" json:"firstName" validate:"required"`
	LastName    string    `db:"last_name" json:"lastName" validate:"required"`
	Gender      string    `db:"gender" json:"gender" validate:"required"`
	DateOfBirth time.Time `db:"date_of_birth" json:"dateOfBirth" validate:"required"`
	GradeLevel  string    `db:"grade_level" json:"gradeLevel" validate:"required"`

	HouseNumber  string `db:"house_number" json:"houseNumber,omitempty"`
	AddressLine1 string `db:"address_line1" json:"addressLine1" validate:"required"`
	AddressLine2 string `db:"address_line2" json:"addressLine2,omitempty"`
	City         string `db:"city" json:"city" validate:"required"`
	State        string `db:"state" json:"state" validate:"required"`
	ZipCode      string `db:"zip_code" json:"zipCode" validate:"required"`

	Citizenship string `db:"citizenship" json:"citizenship,omitempty"`
	Ethnicity   string `db:"ethnicity" json:"ethnicity,omitempty"`

	FatherFirstName  string `db:"father_first_name" json:"fatherFirstName,omitempty"`
	FatherLastName   string `db:"father_last_name" json:"fatherLastName,omitempty"`
	FatherAddress1   string `db:"father_address1" json:"fatherAddress1,omitempty"`
	FatherAddress2   string `db:"father_address2" json:"fatherAddress2,omitempty"`
	FatherCity       string `db:"father_city" json:"fatherCity,omitempty"`
	FatherState      string `db:"father_state" json:"fatherState,omitempty"`
	FatherZip        string `db:"father_zip" json:"fatherZip,omitempty"`
	FatherPhone      string `db:"father_phone" json:"fatherPhone,omitempty"`
	FatherEmail      string `db:"father_email" json:"fatherEmail,omitempty"`
	FatherOccupation string `db:"father_occupation" json:"fatherOccupation,omitempty"`
	FatherEmployment string `db:"father_employment" json:"fatherEmployment,omitempty"`
	FatherWorkPhone  string `db:"father_work_phone" json:"fatherWorkPhone,omitempty"`

	MotherFirstName  string `db:"mother_first_name" json:"motherFirstName,omitempty"`
	MotherLastName   string `db:"mother_last_name" json:"motherLastName,omitempty"`
	MotherAddress1   string `db:"mother_address1" json:"motherAddress1,omitempty"`
	MotherAddress2   string `db:"mother_address2" json:"motherAddress2,omitempty"`
	MotherCity       string `db:"mother_city" json:"motherCity,omitempty"`
	MotherState      string `db:"mother_state" json:"motherState,omitempty"`
	MotherZip        string `db:"mother_zip" json:"motherZip,omitempty"`
	MotherPhone      string `db:"mother_phone" json:"motherPhone,omitempty"`
	MotherEmail      string `db:"mother_email" json:"motherEmail,omitempty"`
	MotherOccupation string `db:"mother_occupation" json:"motherOccupation,omitempty"`
	MotherEmployment string `db:"mother_employment" json:"motherEmployment,omitempty"`

	PublicSchoolName      string `db:"public_school_name" json:"publicSchoolName,omitempty"`
	PublicDistrict        string `db:"public_district" json:"publicDistrict,omitempty"`
	PreviousSchoolName    string `db:"previous_school_name" json:"previousSchoolName,omitempty"`
	PreviousSchoolPhone   string `db:"previous_school_phone" json:"previousSchoolPhone,omitempty"`
	PreviousSchoolAddress string `db:"previous_school_address" json:"previousSchoolAddress,omitempty"`
	ReasonForLeaving      string `db:"reason_for_leaving" json:"reasonForLeaving,omitempty"`
	RepeatedGrade         string `db:"repeated_grade" json:"repeatedGrade,omitempty"`
	DisciplinaryAction    string `db:"disciplinary_action" json:"disciplinaryAction,omitempty"`

	SubjectsExcel             string `db:"subjects_excel" json:"subjectsExcel,omitempty"`
	SubjectsStruggle          string `db:"subjects_struggle" json:"subjectsStruggle,omitempty"`
	ExtracurricularActivities string `db:"extracurricular_activities" json:"extracurricularActivities,omitempty"`

	Siblings     SiblingList `db:"siblings" json:"siblings,omitempty"`
	StudentPhoto string      `db:"student_photo" json:"studentPhoto,omitempty"`
	PrintName    string      `db:"print_name" json:"printName,omitempty"`

	SubmittedAt time.Time `db:"submitted_at" json:"submittedAt"`
}
