package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alhuda-academy/admissions-api/internal/dto"
	"github.com/alhuda-academy/admissions-api/internal/models"
	appErrors "github.com/alhuda-academy/admissions-api/pkg/errors"
)

type mockRegistrationRepo struct {
	items     map[string]*models.StudentRegistration
	createErr error
	created   []*models.StudentRegistration
}

func (m *mockRegistrationRepo) Create(ctx context.Context, reg *models.StudentRegistration) error {
	if m.createErr != nil {
		return m.createErr
	}
	if reg.ID == "" {
		reg.ID = "reg-" + reg.EnrollmentID
	}
	if m.items == nil {
		m.items = make(map[string]*models.StudentRegistration)
	}
	cp := *reg
	m.items[reg.ID] = &cp
	m.created = append(m.created, &cp)
	return nil
}

func (m *mockRegistrationRepo) List(ctx context.Context) ([]models.StudentRegistration, error) {
	out := make([]models.StudentRegistration, 0, len(m.items))
	for _, reg := range m.items {
		out = append(out, *reg)
	}
	return out, nil
}

func (m *mockRegistrationRepo) FindByID(ctx context.Context, id string) (*models.StudentRegistration, error) {
	if reg, ok := m.items[id]; ok {
		cp := *reg
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockRegistrationRepo) FindByEnrollmentID(ctx context.Context, enrollmentID string) (*models.StudentRegistration, error) {
	for _, reg := range m.items {
		if reg.EnrollmentID == enrollmentID {
			cp := *reg
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockRegistrationRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.items, id)
	return nil
}

type mockHealthFormRepo struct{ byKey map[string]*models.HealthForm }

func (m *mockHealthFormRepo) Create(ctx context.Context, form *models.HealthForm) error { return nil }
func (m *mockHealthFormRepo) List(ctx context.Context) ([]models.HealthForm, error)     { return nil, nil }
func (m *mockHealthFormRepo) FindByID(ctx context.Context, id string) (*models.HealthForm, error) {
	return nil, sql.ErrNoRows
}
func (m *mockHealthFormRepo) FindByEnrollmentID(ctx context.Context, enrollmentID string) (*models.HealthForm, error) {
	if form, ok := m.byKey[enrollmentID]; ok {
		return form, nil
	}
	return nil, sql.ErrNoRows
}
func (m *mockHealthFormRepo) FindByEnrollmentIDs(ctx context.Context, ids []string) ([]models.HealthForm, error) {
	var out []models.HealthForm
	for _, id := range ids {
		if form, ok := m.byKey[id]; ok {
			out = append(out, *form)
		}
	}
	return out, nil
}
func (m *mockHealthFormRepo) Delete(ctx context.Context, id string) error { return nil }

type mockEmergencyRepo struct{ byKey map[string]*models.EmergencyContact }

func (m *mockEmergencyRepo) Create(ctx context.Context, form *models.EmergencyContact) error {
	return nil
}
func (m *mockEmergencyRepo) List(ctx context.Context) ([]models.EmergencyContact, error) {
	return nil, nil
}
func (m *mockEmergencyRepo) FindByID(ctx context.Context, id string) (*models.EmergencyContact, error) {
	return nil, sql.ErrNoRows
}
func (m *mockEmergencyRepo) FindByEnrollmentID(ctx context.Context, enrollmentID string) (*models.EmergencyContact, error) {
	if form, ok := m.byKey[enrollmentID]; ok {
		return form, nil
	}
	return nil, sql.ErrNoRows
}
func (m *mockEmergencyRepo) FindByEnrollmentIDs(ctx context.Context, ids []string) ([]models.EmergencyContact, error) {
	var out []models.EmergencyContact
	for _, id := range ids {
		if form, ok := m.byKey[id]; ok {
			out = append(out, *form)
		}
	}
	return out, nil
}
func (m *mockEmergencyRepo) Delete(ctx context.Context, id string) error { return nil }

type mockPictureAuthRepo struct{ byKey map[string]*models.PictureAuthorization }

func (m *mockPictureAuthRepo) Create(ctx context.Context, form *models.PictureAuthorization) error {
	return nil
}
func (m *mockPictureAuthRepo) List(ctx context.Context) ([]models.PictureAuthorization, error) {
	return nil, nil
}
func (m *mockPictureAuthRepo) FindByID(ctx context.Context, id string) (*models.PictureAuthorization, error) {
	return nil, sql.ErrNoRows
}
func (m *mockPictureAuthRepo) FindByEnrollmentID(ctx context.Context, enrollmentID string) (*models.PictureAuthorization, error) {
	if form, ok := m.byKey[enrollmentID]; ok {
		return form, nil
	}
	return nil, sql.ErrNoRows
}
func (m *mockPictureAuthRepo) FindByEnrollmentIDs(ctx context.Context, ids []string) ([]models.PictureAuthorization, error) {
	var out []models.PictureAuthorization
	for _, id := range ids {
		if form, ok := m.byKey[id]; ok {
			out = append(out, *form)
		}
	}
	return out, nil
}
func (m *mockPictureAuthRepo) Delete(ctx context.Context, id string) error { return nil }

type mockTransferRepo struct{ byKey map[string]*models.TransferRecords }

func (m *mockTransferRepo) Create(ctx context.Context, form *models.TransferRecords) error {
	return nil
}
func (m *mockTransferRepo) List(ctx context.Context) ([]models.TransferRecords, error) {
	return nil, nil
}
func (m *mockTransferRepo) FindByID(ctx context.Context, id string) (*models.TransferRecords, error) {
	return nil, sql.ErrNoRows
}
func (m *mockTransferRepo) FindByEnrollmentID(ctx context.Context, enrollmentID string) (*models.TransferRecords, error) {
	if form, ok := m.byKey[enrollmentID]; ok {
		return form, nil
	}
	return nil, sql.ErrNoRows
}
func (m *mockTransferRepo) FindByEnrollmentIDs(ctx context.Context, ids []string) ([]models.TransferRecords, error) {
	var out []models.TransferRecords
	for _, id := range ids {
		if form, ok := m.byKey[id]; ok {
			out = append(out, *form)
		}
	}
	return out, nil
}
func (m *mockTransferRepo) Delete(ctx context.Context, id string) error { return nil }

type mockTuitionRepo struct{ byKey map[string]*models.TuitionContract }

func (m *mockTuitionRepo) Create(ctx context.Context, form *models.TuitionContract) error {
	return nil
}
func (m *mockTuitionRepo) List(ctx context.Context) ([]models.TuitionContract, error) {
	return nil, nil
}
func (m *mockTuitionRepo) FindByID(ctx context.Context, id string) (*models.TuitionContract, error) {
	return nil, sql.ErrNoRows
}
func (m *mockTuitionRepo) FindByEnrollmentID(ctx context.Context, enrollmentID string) (*models.TuitionContract, error) {
	if form, ok := m.byKey[enrollmentID]; ok {
		return form, nil
	}
	return nil, sql.ErrNoRows
}
func (m *mockTuitionRepo) FindByEnrollmentIDs(ctx context.Context, ids []string) ([]models.TuitionContract, error) {
	var out []models.TuitionContract
	for _, id := range ids {
		if form, ok := m.byKey[id]; ok {
			out = append(out, *form)
		}
	}
	return out, nil
}
func (m *mockTuitionRepo) Delete(ctx context.Context, id string) error { return nil }

type enrollmentFixture struct {
	registrations *mockRegistrationRepo
	health        *mockHealthFormRepo
	emergency     *mockEmergencyRepo
	pictures      *mockPictureAuthRepo
	transfers     *mockTransferRepo
	tuition       *mockTuitionRepo
	svc           *EnrollmentService
}

func newEnrollmentFixture() *enrollmentFixture {
	f := &enrollmentFixture{
		registrations: &mockRegistrationRepo{items: map[string]*models.StudentRegistration{}},
		health:        &mockHealthFormRepo{byKey: map[string]*models.HealthForm{}},
		emergency:     &mockEmergencyRepo{byKey: map[string]*models.EmergencyContact{}},
		pictures:      &mockPictureAuthRepo{byKey: map[string]*models.PictureAuthorization{}},
		transfers:     &mockTransferRepo{byKey: map[string]*models.TransferRecords{}},
		tuition:       &mockTuitionRepo{byKey: map[string]*models.TuitionContract{}},
	}
	f.svc = NewEnrollmentService(f.registrations, f.health, f.emergency,
		f.pictures, f.transfers, f.tuition, nil, time.Minute, nil, nil)
	return f
}

func (f *enrollmentFixture) addRegistration(id, key string) {
	f.registrations.items[id] = &models.StudentRegistration{ID: id, EnrollmentID: key}
}

func (f *enrollmentFixture) addAllVariants(key string) {
	f.health.byKey[key] = &models.HealthForm{EnrollmentID: key}
	f.emergency.byKey[key] = &models.EmergencyContact{EnrollmentID: key}
	f.pictures.byKey[key] = &models.PictureAuthorization{EnrollmentID: key}
	f.transfers.byKey[key] = &models.TransferRecords{EnrollmentID: key}
	f.tuition.byKey[key] = &models.TuitionContract{EnrollmentID: key}
}

func TestDeriveEnrollmentStatus(t *testing.T) {
	cases := []struct {
		completed int
		want      models.EnrollmentStatus
	}{
		{6, models.EnrollmentStatusApproved},
		{5, models.EnrollmentStatusUnderReview},
		{4, models.EnrollmentStatusUnderReview},
		{3, models.EnrollmentStatusPending},
		{2, models.EnrollmentStatusPending},
		{1, models.EnrollmentStatusPending},
		{0, models.EnrollmentStatusPending},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, models.DeriveEnrollmentStatus(tc.completed), "completed=%d", tc.completed)
	}
}

func TestEnrollmentGetAllFormsApproved(t *testing.T) {
	f := newEnrollmentFixture()
	f.addRegistration("r1", "ENR-001")
	f.addAllVariants("ENR-001")

	enr, err := f.svc.Get(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentStatusApproved, enr.Status)
	assert.Equal(t, 6, enr.FormsCompleted())
	assert.Equal(t, "ENR-001", enr.EnrollmentID)
	require.NotNil(t, enr.TuitionContract)
}

func TestEnrollmentGetMissingVariantsLowerStatus(t *testing.T) {
	f := newEnrollmentFixture()
	f.addRegistration("r1", "ENR-001")
	f.health.byKey["ENR-001"] = &models.HealthForm{EnrollmentID: "ENR-001"}
	f.emergency.byKey["ENR-001"] = &models.EmergencyContact{EnrollmentID: "ENR-001"}

	enr, err := f.svc.Get(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentStatusPending, enr.Status)
	assert.Equal(t, 3, enr.FormsCompleted())
	assert.Nil(t, enr.PictureAuthorization)
	assert.Nil(t, enr.TransferRecords)
	assert.Nil(t, enr.TuitionContract)
}

func TestEnrollmentGetFiveFormsUnderReview(t *testing.T) {
	f := newEnrollmentFixture()
	f.addRegistration("r1", "ENR-001")
	f.addAllVariants("ENR-001")
	delete(f.tuition.byKey, "ENR-001")

	enr, err := f.svc.Get(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentStatusUnderReview, enr.Status)
}

func TestEnrollmentGetRegistrationMissing(t *testing.T) {
	f := newEnrollmentFixture()
	_, err := f.svc.Get(context.Background(), "absent")
	require.Error(t, err)
	appErr, ok := err.(*appErrors.Error)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestEnrollmentGetByKeyMatchesGet(t *testing.T) {
	f := newEnrollmentFixture()
	f.addRegistration("r1", "ENR-001")
	f.addAllVariants("ENR-001")

	byID, err := f.svc.Get(context.Background(), "r1")
	require.NoError(t, err)
	byKey, err := f.svc.GetByKey(context.Background(), "ENR-001")
	require.NoError(t, err)
	assert.Equal(t, byID, byKey)
}

func TestEnrollmentListBatchedMatchesPerKeyAssembly(t *testing.T) {
	f := newEnrollmentFixture()
	f.addRegistration("r1", "ENR-001")
	f.addAllVariants("ENR-001")
	f.addRegistration("r2", "ENR-002")
	f.health.byKey["ENR-002"] = &models.HealthForm{EnrollmentID: "ENR-002"}

	list, err := f.svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)

	byKey := make(map[string]models.Enrollment, len(list))
	for _, enr := range list {
		byKey[enr.EnrollmentID] = enr
	}
	assert.Equal(t, models.EnrollmentStatusApproved, byKey["ENR-001"].Status)
	partial := byKey["ENR-002"]
	assert.Equal(t, models.EnrollmentStatusPending, partial.Status)
	assert.Equal(t, 2, partial.FormsCompleted())
}

func TestEnrollmentListEmpty(t *testing.T) {
	f := newEnrollmentFixture()
	list, err := f.svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSplitFullName(t *testing.T) {
	cases := []struct {
		in          string
		first, last string
	}{
		{"Amina Khan", "Amina", "Khan"},
		{"Amina", "Amina", ""},
		{"Mary Jane Watson", "Mary", "Jane Watson"},
		{"  Amina   Khan  ", "Amina", "Khan"},
		{"", "", ""},
	}
	for _, tc := range cases {
		first, last := splitFullName(tc.in)
		assert.Equal(t, tc.first, first, "input %q", tc.in)
		assert.Equal(t, tc.last, last, "input %q", tc.in)
	}
}

func TestSubmitCombinedMapsAndSplitsNames(t *testing.T) {
	f := newEnrollmentFixture()
	req := dto.CombinedEnrollmentRequest{
		EnrollmentID:    "ENR-010",
		StudentFullName: "Amina Noor Khan",
		Gender:          "Female",
		DateOfBirth:     "2015-04-02",
		GradeLevel:      "4",
		StreetAddress:   "12 Oak St",
		City:            "Dearborn",
		State:           "MI",
		ZipCode:         "48124",
		ParentFullName:  "Omar",
		ParentPhone:     "313-555-0101",
		ParentEmail:     "omar@example.com",
	}

	reg, err := f.svc.SubmitCombined(context.Background(), req, "photos/p.jpg")
	require.NoError(t, err)
	assert.Equal(t, "Amina", reg.FirstName)
	assert.Equal(t, "Noor Khan", reg.LastName)
	assert.Equal(t, "Omar", reg.FatherFirstName)
	assert.Equal(t, "", reg.FatherLastName)
	assert.Equal(t, "photos/p.jpg", reg.StudentPhoto)
	require.Len(t, f.registrations.created, 1)
}

func TestSubmitCombinedInvalidDate(t *testing.T) {
	f := newEnrollmentFixture()
	req := dto.CombinedEnrollmentRequest{
		EnrollmentID:    "ENR-010",
		StudentFullName: "Amina Khan",
		Gender:          "Female",
		DateOfBirth:     "04/02/2015",
		GradeLevel:      "4",
		StreetAddress:   "12 Oak St",
		City:            "Dearborn",
		State:           "MI",
		ZipCode:         "48124",
	}

	_, err := f.svc.SubmitCombined(context.Background(), req, "")
	require.Error(t, err)
	appErr, ok := err.(*appErrors.Error)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Contains(t, appErr.Details, "dateOfBirth must be a valid date")
}

func TestSubmitCombinedDuplicateKeyConflict(t *testing.T) {
	f := newEnrollmentFixture()
	f.registrations.createErr = &pq.Error{Code: "23505"}
	req := dto.CombinedEnrollmentRequest{
		EnrollmentID:    "ENR-010",
		StudentFullName: "Amina Khan",
		Gender:          "Female",
		DateOfBirth:     "2015-04-02",
		GradeLevel:      "4",
		StreetAddress:   "12 Oak St",
		City:            "Dearborn",
		State:           "MI",
		ZipCode:         "48124",
	}

	_, err := f.svc.SubmitCombined(context.Background(), req, "")
	require.Error(t, err)
	appErr, ok := err.(*appErrors.Error)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
}
