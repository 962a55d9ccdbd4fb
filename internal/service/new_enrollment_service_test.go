package service

import (
	"context"
	"database/sql"
	"io"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alhuda-academy/admissions-api/internal/dto"
	"github.com/alhuda-academy/admissions-api/internal/models"
	"github.com/alhuda-academy/admissions-api/pkg/config"
	appErrors "github.com/alhuda-academy/admissions-api/pkg/errors"
)

type mockNewEnrollmentRepo struct {
	items     map[string]*models.NewEnrollment
	createErr error
	nextID    int
}

func (m *mockNewEnrollmentRepo) Create(ctx context.Context, enr *models.NewEnrollment) error {
	if m.createErr != nil {
		return m.createErr
	}
	if m.items == nil {
		m.items = make(map[string]*models.NewEnrollment)
	}
	m.nextID++
	enr.ID = "ne-" + string(rune('0'+m.nextID))
	cp := *enr
	m.items[enr.ID] = &cp
	return nil
}

func (m *mockNewEnrollmentRepo) List(ctx context.Context) ([]models.NewEnrollment, error) {
	out := make([]models.NewEnrollment, 0, len(m.items))
	for _, enr := range m.items {
		out = append(out, *enr)
	}
	return out, nil
}

func (m *mockNewEnrollmentRepo) FindByID(ctx context.Context, id string) (*models.NewEnrollment, error) {
	if enr, ok := m.items[id]; ok {
		cp := *enr
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockNewEnrollmentRepo) UpdateStatus(ctx context.Context, id string, status models.NewEnrollmentStatus) error {
	enr, ok := m.items[id]
	if !ok {
		return sql.ErrNoRows
	}
	enr.Status = status
	return nil
}

func (m *mockNewEnrollmentRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.items, id)
	return nil
}

type mockUploadStore struct {
	saved   []string
	deleted []string
}

func (m *mockUploadStore) SaveStream(filename string, r io.Reader) (string, error) {
	m.saved = append(m.saved, filename)
	return filename, nil
}

func (m *mockUploadStore) Delete(filename string) error {
	m.deleted = append(m.deleted, filename)
	return nil
}

func validNewEnrollmentForm() dto.NewEnrollmentForm {
	return dto.NewEnrollmentForm{
		EnrollmentID:          "NE-001",
		ParentFullName:        "Omar Khan",
		RelationshipToStudent: "Father",
		MaritalStatus:         "Married",
		PrimaryPhone:          "555-0101",
		Email:                 "Omar@Example.com",
		StreetAddress:         "12 Main St",
		City:                  "Canton",
		State:                 "MI",
		ZipCode:               "48187",
		StudentFullName:       "Amina Khan",
		Gender:                "female",
		DateOfBirth:           "2015-04-02",
		TotalSiblings:         "2",
		AgreementSignature:    "Omar Khan",
	}
}

func newDirectEnrollmentFixture() (*DirectEnrollmentService, *mockNewEnrollmentRepo) {
	repo := &mockNewEnrollmentRepo{}
	svc := NewDirectEnrollmentService(repo, &mockUploadStore{}, nil, config.UploadsConfig{}, "/api/v1", nil)
	return svc, repo
}

func TestDirectEnrollmentSubmitCoercesFields(t *testing.T) {
	svc, repo := newDirectEnrollmentFixture()

	enr, err := svc.Submit(context.Background(), validNewEnrollmentForm(), nil)
	require.NoError(t, err)
	assert.Equal(t, "omar@example.com", enr.Email)
	assert.Equal(t, 2, enr.TotalSiblings)
	assert.Equal(t, "No", enr.OrphanStatus)
	assert.Equal(t, models.NewEnrollmentStatusPending, enr.Status)
	assert.Len(t, repo.items, 1)
}

func TestDirectEnrollmentSubmitInvalidSiblings(t *testing.T) {
	svc, repo := newDirectEnrollmentFixture()

	form := validNewEnrollmentForm()
	form.TotalSiblings = "-1"
	_, err := svc.Submit(context.Background(), form, nil)
	require.Error(t, err)
	appErr, ok := err.(*appErrors.Error)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Contains(t, appErr.Details, "totalSiblings must be a non-negative integer")
	assert.Empty(t, repo.items)
}

func TestDirectEnrollmentSubmitInvalidDate(t *testing.T) {
	svc, _ := newDirectEnrollmentFixture()

	form := validNewEnrollmentForm()
	form.DateOfBirth = "04/02/2015"
	_, err := svc.Submit(context.Background(), form, nil)
	require.Error(t, err)
	appErr, ok := err.(*appErrors.Error)
	require.True(t, ok)
	assert.Contains(t, appErr.Details, "dateOfBirth must be a valid date")
}

func TestDirectEnrollmentSubmitDuplicateConflict(t *testing.T) {
	svc, repo := newDirectEnrollmentFixture()
	repo.createErr = &pq.Error{Code: "23505"}

	_, err := svc.Submit(context.Background(), validNewEnrollmentForm(), nil)
	require.Error(t, err)
	appErr, ok := err.(*appErrors.Error)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
}

func TestDirectEnrollmentUpdateStatusWhitelist(t *testing.T) {
	svc, _ := newDirectEnrollmentFixture()

	enr, err := svc.Submit(context.Background(), validNewEnrollmentForm(), nil)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), enr.ID, "archived")
	require.Error(t, err)
	appErr, ok := err.(*appErrors.Error)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)

	updated, err := svc.UpdateStatus(context.Background(), enr.ID, "approved")
	require.NoError(t, err)
	assert.Equal(t, models.NewEnrollmentStatusApproved, updated.Status)
}

func TestDirectEnrollmentGetNotFound(t *testing.T) {
	svc, _ := newDirectEnrollmentFixture()

	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)
	appErr, ok := err.(*appErrors.Error)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}
