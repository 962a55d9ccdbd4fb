package models

import "time"

// Re-enrollment workflow steps. currentStep tracks the furthest step
// that has passed validation.
const (
	RenrollStepStudentInfo = 0
	RenrollStepEmergency   = 1
	RenrollStepTuition     = 2
)

// RenrollForm is the single mutable draft progressed through the three
// validation-gated steps. Every submission overwrites the full document, so
// fields stay strings until finalization: a draft may hold partial values
// that would not pass the finalized-shape checks.
type RenrollForm struct {
	ID string `db:"id" json:"id"`

	// Student information (step 0)
	ChildFirstName        string `db:"child_first_name" json:"childFirstName"`
	ChildLastName         string `db:"child_last_name" json:"childLastName"`
	Gender                string `db:"gender" json:"gender"`
	DateOfBirth           string `db:"date_of_birth" json:"dateOfBirth"`
	Ethnicity             string `db:"ethnicity" json:"ethnicity"`
	GradeLevel            string `db:"grade_level" json:"gradeLevel"`
	HasAdditionalChildren string `db:"has_additional_children" json:"hasAdditionalChildren"`
	NumberOfChildren      int    `db:"number_of_children" json:"numberOfChildren"`

	Address1       string `db:"address1" json:"address1"`
	Address2       string `db:"address2" json:"address2"`
	City           string `db:"city" json:"city"`
	State          string `db:"state" json:"state"`
	ZipCode        string `db:"zip_code" json:"zipCode"`
	SchoolDistrict string `db:"school_district" json:"schoolDistrict"`

	FatherFirstName  string `db:"father_first_name" json:"fatherFirstName"`
	FatherLastName   string `db:"father_last_name" json:"fatherLastName"`
	FatherPhone      string `db:"father_phone" json:"fatherPhone"`
	FatherEmail      string `db:"father_email" json:"fatherEmail"`
	FatherAddress1   string `db:"father_address1" json:"fatherAddress1"`
	FatherAddress2   string `db:"father_address2" json:"fatherAddress2"`
	FatherCity       string `db:"father_city" json:"fatherCity"`
	FatherState      string `db:"father_state" json:"fatherState"`
	FatherZipCode    string `db:"father_zip_code" json:"fatherZipCode"`
	FatherOccupation string `db:"father_occupation" json:"fatherOccupation"`
	FatherEmployment string `db:"father_employment" json:"fatherEmployment"`

	MotherFirstName     string `db:"mother_first_name" json:"motherFirstName"`
	MotherLastName      string `db:"mother_last_name" json:"motherLastName"`
	MotherPhone         string `db:"mother_phone" json:"motherPhone"`
	MotherEmail         string `db:"mother_email" json:"motherEmail"`
	IsMotherAddressSame string `db:"is_mother_address_same" json:"isMotherAddressSame"`
	MotherAddress1      string `db:"mother_address1" json:"motherAddress1"`
	MotherAddress2      string `db:"mother_address2" json:"motherAddress2"`
	MotherCity          string `db:"mother_city" json:"motherCity"`
	MotherState         string `db:"mother_state" json:"motherState"`
	MotherZipCode       string `db:"mother_zip_code" json:"motherZipCode"`
	MotherOccupation    string `db:"mother_occupation" json:"motherOccupation"`
	MotherEmployment    string `db:"mother_employment" json:"motherEmployment"`

	Child1HealthChanges string `db:"child1_health_changes" json:"child1HealthChanges"`
	Child2HealthChanges string `db:"child2_health_changes" json:"child2HealthChanges"`
	Child3HealthChanges string `db:"child3_health_changes" json:"child3HealthChanges"`
	Child4HealthChanges string `db:"child4_health_changes" json:"child4HealthChanges"`
	Child5HealthChanges string `db:"child5_health_changes" json:"child5HealthChanges"`

	// Emergency contacts and pickup authorization (step 1)
	Emergency1Name         string `db:"emergency1_name" json:"emergency1Name"`
	Emergency1Phone        string `db:"emergency1_phone" json:"emergency1Phone"`
	Emergency1Relationship string `db:"emergency1_relationship" json:"emergency1Relationship"`
	Emergency2Name         string `db:"emergency2_name" json:"emergency2Name"`
	Emergency2Phone        string `db:"emergency2_phone" json:"emergency2Phone"`
	Emergency2Relationship string `db:"emergency2_relationship" json:"emergency2Relationship"`
	Emergency3Name         string `db:"emergency3_name" json:"emergency3Name"`
	Emergency3Phone        string `db:"emergency3_phone" json:"emergency3Phone"`
	Emergency3Relationship string `db:"emergency3_relationship" json:"emergency3Relationship"`

	AuthorizedPerson1             string `db:"authorized_person1" json:"authorizedPerson1"`
	AuthorizedPerson1Phone        string `db:"authorized_person1_phone" json:"authorizedPerson1Phone"`
	AuthorizedPerson1Relationship string `db:"authorized_person1_relationship" json:"authorizedPerson1Relationship"`
	AuthorizedPerson2             string `db:"authorized_person2" json:"authorizedPerson2"`
	AuthorizedPerson2Phone        string `db:"authorized_person2_phone" json:"authorizedPerson2Phone"`
	AuthorizedPerson2Relationship string `db:"authorized_person2_relationship" json:"authorizedPerson2Relationship"`
	AuthorizedPerson3             string `db:"authorized_person3" json:"authorizedPerson3"`
	AuthorizedPerson3Phone        string `db:"authorized_person3_phone" json:"authorizedPerson3Phone"`
	AuthorizedPerson3Relationship string `db:"authorized_person3_relationship" json:"authorizedPerson3Relationship"`

	HospitalPreference string `db:"hospital_preference" json:"hospitalPreference"`
	ParentSignature    string `db:"parent_signature" json:"parentSignature"`

	// Tuition contract (step 2)
	GuardianName           string `db:"guardian_name" json:"guardianName"`
	GuardianName2          string `db:"guardian_name2" json:"guardianName2"`
	HomePhone              string `db:"home_phone" json:"homePhone"`
	GuardianEmail          string `db:"guardian_email" json:"guardianEmail"`
	AcknowledgeTuition     string `db:"acknowledge_tuition" json:"acknowledgeTuition"`
	AcknowledgeTextbookFee string `db:"acknowledge_textbook_fee" json:"acknowledgeTextbookFee"`
	PaymentOption          string `db:"payment_option" json:"paymentOption"`
	TuitionSignature       string `db:"tuition_signature" json:"tuitionSignature"`

	CurrentStep int  `db:"current_step" json:"currentStep"`
	IsCompleted bool `db:"is_completed" json:"isCompleted"`

	SubmittedAt time.Time `db:"submitted_at" json:"submittedAt"`
}
