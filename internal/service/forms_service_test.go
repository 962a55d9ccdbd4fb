package service

import (
	"context"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alhuda-academy/admissions-api/internal/models"
	appErrors "github.com/alhuda-academy/admissions-api/pkg/errors"
)

type mockCacheInvalidator struct {
	patterns []string
	err      error
}

func (m *mockCacheInvalidator) DeleteByPattern(ctx context.Context, pattern string) error {
	m.patterns = append(m.patterns, pattern)
	return m.err
}

func validRegistration() *models.StudentRegistration {
	return &models.StudentRegistration{
		EnrollmentID: "ENR-001",
		FirstName:    "Amina",
		LastName:     "Khan",
		Gender:       "Female",
		DateOfBirth:  time.Date(2015, 4, 2, 0, 0, 0, 0, time.UTC),
		GradeLevel:   "4",
		AddressLine1: "12 Oak St",
		City:         "Dearborn",
		State:        "MI",
		ZipCode:      "48124",
	}
}

func newFormsFixture(cache *mockCacheInvalidator) (*FormsService, *mockRegistrationRepo, *mockHealthFormRepo) {
	regs := &mockRegistrationRepo{items: map[string]*models.StudentRegistration{}}
	health := &mockHealthFormRepo{byKey: map[string]*models.HealthForm{}}
	svc := NewFormsService(regs, health,
		&mockEmergencyRepo{byKey: map[string]*models.EmergencyContact{}},
		&mockPictureAuthRepo{byKey: map[string]*models.PictureAuthorization{}},
		&mockTransferRepo{byKey: map[string]*models.TransferRecords{}},
		&mockTuitionRepo{byKey: map[string]*models.TuitionContract{}},
		cache, nil, nil)
	return svc, regs, health
}

func TestCreateRegistrationInvalidatesCache(t *testing.T) {
	cache := &mockCacheInvalidator{}
	svc, regs, _ := newFormsFixture(cache)

	err := svc.CreateRegistration(context.Background(), validRegistration())
	require.NoError(t, err)
	require.Len(t, regs.created, 1)
	assert.Equal(t, []string{"enrollments:*"}, cache.patterns)
}

func TestCreateRegistrationValidationError(t *testing.T) {
	cache := &mockCacheInvalidator{}
	svc, regs, _ := newFormsFixture(cache)

	reg := validRegistration()
	reg.FirstName = ""
	err := svc.CreateRegistration(context.Background(), reg)
	require.Error(t, err)
	appErr, ok := err.(*appErrors.Error)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Empty(t, regs.created)
	assert.Empty(t, cache.patterns)
}

func TestCreateRegistrationDuplicateConflict(t *testing.T) {
	svc, regs, _ := newFormsFixture(&mockCacheInvalidator{})
	regs.createErr = &pq.Error{Code: "23505"}

	err := svc.CreateRegistration(context.Background(), validRegistration())
	require.Error(t, err)
	appErr, ok := err.(*appErrors.Error)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
}

func TestCreateHealthFormValidates(t *testing.T) {
	svc, _, _ := newFormsFixture(&mockCacheInvalidator{})

	err := svc.CreateHealthForm(context.Background(), &models.HealthForm{EnrollmentID: "ENR-001"})
	require.Error(t, err)
	appErr, ok := err.(*appErrors.Error)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestDeleteRegistrationInvalidatesCache(t *testing.T) {
	cache := &mockCacheInvalidator{}
	svc, regs, _ := newFormsFixture(cache)
	regs.items["r1"] = validRegistration()

	require.NoError(t, svc.DeleteRegistration(context.Background(), "r1"))
	assert.Equal(t, []string{"enrollments:*"}, cache.patterns)

	err := svc.DeleteRegistration(context.Background(), "r1")
	require.Error(t, err)
	appErr, ok := err.(*appErrors.Error)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}
