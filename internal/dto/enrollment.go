package dto

// CombinedEnrollmentRequest is the flattened payload one public enrollment
// form posts. Its vocabulary differs from the canonical registration schema;
// the enrollment service maps it across, splitting full names at the first
// whitespace token.
type CombinedEnrollmentRequest struct {
	EnrollmentID    string `form:"enrollmentId" json:"enrollmentId" validate:"required"`
	StudentFullName string `form:"studentFullName" json:"studentFullName" validate:"required"`
	Gender          string `form:"gender" json:"gender" validate:"required"`
	DateOfBirth     string `form:"dateOfBirth" json:"dateOfBirth" validate:"required"`
	GradeLevel      string `form:"gradeLevel" json:"gradeLevel" validate:"required"`
	StreetAddress   string `form:"streetAddress" json:"streetAddress" validate:"required"`
	City            string `form:"city" json:"city" validate:"required"`
	State           string `form:"state" json:"state" validate:"required"`
	ZipCode         string `form:"zipCode" json:"zipCode" validate:"required"`
	SchoolDistrict  string `form:"schoolDistrict" json:"schoolDistrict"`
	Ethnicity       string `form:"ethnicity" json:"ethnicity"`
	ParentFullName  string `form:"parentFullName" json:"parentFullName"`
	ParentPhone     string `form:"parentPhone" json:"parentPhone"`
	ParentEmail     string `form:"parentEmail" json:"parentEmail"`
	PrintName       string `form:"printName" json:"printName"`
}

// NewEnrollmentForm is the multipart body of the richer enrollment record.
// Dates and counts arrive as strings and are coerced by the service.
type NewEnrollmentForm struct {
	EnrollmentID          string `form:"enrollmentId" validate:"required"`
	ParentFullName        string `form:"parentFullName" validate:"required"`
	RelationshipToStudent string `form:"relationshipToStudent" validate:"required"`
	MaritalStatus         string `form:"maritalStatus" validate:"required"`
	PrimaryPhone          string `form:"primaryPhone" validate:"required"`
	AlternatePhone        string `form:"alternatePhone"`
	Email                 string `form:"email" validate:"required,email"`
	AlternateEmail        string `form:"alternateEmail"`
	StreetAddress         string `form:"streetAddress" validate:"required"`
	City                  string `form:"city" validate:"required"`
	State                 string `form:"state" validate:"required"`
	ZipCode               string `form:"zipCode" validate:"required"`

	StudentFullName     string `form:"studentFullName" validate:"required"`
	Gender              string `form:"gender" validate:"required"`
	DateOfBirth         string `form:"dateOfBirth" validate:"required"`
	BirthCertificateNIC string `form:"birthCertificateNIC"`
	TotalSiblings       string `form:"totalSiblings"`
	OrphanStatus        string `form:"orphanStatus" validate:"omitempty,oneof=Yes No"`
	OSCStatus           string `form:"oscStatus" validate:"omitempty,oneof=Yes No"`
	IdentificationMark  string `form:"identificationMark"`
	RegistrationNumber  string `form:"registrationNumber"`
	AdmissionDate       string `form:"admissionDate"`
	ClassGrade          string `form:"classGrade"`
	Section             string `form:"section"`
	PreviousSchoolName  string `form:"previousSchoolName"`
	PreviousSchoolID    string `form:"previousSchoolID"`
	BoardRollNumber     string `form:"boardRollNumber"`
	StudentEmail        string `form:"studentEmail"`
	StudentPhone        string `form:"studentPhone"`
	ResidentialAddress  string `form:"residentialAddress"`

	AgreementSignature string `form:"agreementSignature" validate:"required"`
}

// UpdateStatusRequest sets a record's status directly, with no workflow
// gating. Used by admin patches on new enrollments and applications.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
