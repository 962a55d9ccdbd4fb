package service

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alhuda-academy/admissions-api/internal/models"
	appErrors "github.com/alhuda-academy/admissions-api/pkg/errors"
)

type mockRenrollRepo struct {
	items   map[string]*models.RenrollForm
	nextID  int
	listErr error
}

func renrollIdentity(fatherEmail, first, last string) string {
	return strings.ToLower(fatherEmail) + "|" + first + "|" + last
}

func (m *mockRenrollRepo) FindByIdentity(ctx context.Context, fatherEmail, childFirstName, childLastName string) (*models.RenrollForm, error) {
	for _, form := range m.items {
		if renrollIdentity(form.FatherEmail, form.ChildFirstName, form.ChildLastName) == renrollIdentity(fatherEmail, childFirstName, childLastName) {
			cp := *form
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockRenrollRepo) Create(ctx context.Context, form *models.RenrollForm) error {
	if m.items == nil {
		m.items = make(map[string]*models.RenrollForm)
	}
	m.nextID++
	form.ID = string(rune('a' + m.nextID))
	cp := *form
	m.items[form.ID] = &cp
	return nil
}

func (m *mockRenrollRepo) Update(ctx context.Context, form *models.RenrollForm) error {
	cp := *form
	m.items[form.ID] = &cp
	return nil
}

func (m *mockRenrollRepo) List(ctx context.Context) ([]models.RenrollForm, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]models.RenrollForm, 0, len(m.items))
	for _, form := range m.items {
		out = append(out, *form)
	}
	return out, nil
}

func (m *mockRenrollRepo) FindByID(ctx context.Context, id string) (*models.RenrollForm, error) {
	if form, ok := m.items[id]; ok {
		cp := *form
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockRenrollRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.items, id)
	return nil
}

func TestRenrollSubmitStepCreatesDraft(t *testing.T) {
	repo := &mockRenrollRepo{}
	svc := NewRenrollService(repo, nil)

	form := validStudentInfoForm()
	form.CurrentStep = models.RenrollStepStudentInfo

	result, err := svc.SubmitStep(context.Background(), form)
	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.True(t, result.CanProceed)
	assert.False(t, result.Form.IsCompleted)
	assert.Equal(t, "Step 1 saved successfully", result.Message)
	assert.NotEmpty(t, result.Form.ID)
}

func TestRenrollSubmitStepValidationFailure(t *testing.T) {
	repo := &mockRenrollRepo{}
	svc := NewRenrollService(repo, nil)

	form := validStudentInfoForm()
	form.City = ""
	form.CurrentStep = models.RenrollStepStudentInfo

	_, err := svc.SubmitStep(context.Background(), form)
	require.Error(t, err)
	appErr, ok := err.(*appErrors.Error)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Contains(t, appErr.Details, "City is required")
	assert.Empty(t, repo.items)
}

func TestRenrollSubmitStepUpsertIdempotent(t *testing.T) {
	repo := &mockRenrollRepo{}
	svc := NewRenrollService(repo, nil)

	form := validStudentInfoForm()
	form.CurrentStep = models.RenrollStepStudentInfo

	first, err := svc.SubmitStep(context.Background(), form)
	require.NoError(t, err)

	// Same identity tuple resubmitted: the draft is overwritten, not duplicated.
	again := validStudentInfoForm()
	again.City = "Canton"
	again.CurrentStep = models.RenrollStepStudentInfo
	second, err := svc.SubmitStep(context.Background(), again)
	require.NoError(t, err)

	assert.False(t, second.Created)
	assert.Equal(t, first.Form.ID, second.Form.ID)
	require.Len(t, repo.items, 1)
	assert.Equal(t, "Canton", repo.items[first.Form.ID].City)
}

func TestRenrollSubmitStepDistinctIdentityCreatesNewDraft(t *testing.T) {
	repo := &mockRenrollRepo{}
	svc := NewRenrollService(repo, nil)

	form := validStudentInfoForm()
	form.CurrentStep = models.RenrollStepStudentInfo
	_, err := svc.SubmitStep(context.Background(), form)
	require.NoError(t, err)

	sibling := validStudentInfoForm()
	sibling.ChildFirstName = "Bilal"
	sibling.CurrentStep = models.RenrollStepStudentInfo
	result, err := svc.SubmitStep(context.Background(), sibling)
	require.NoError(t, err)

	assert.True(t, result.Created)
	assert.Len(t, repo.items, 2)
}

func TestRenrollSubmitStepFinalStepCompletes(t *testing.T) {
	repo := &mockRenrollRepo{}
	svc := NewRenrollService(repo, nil)

	form := validTuitionForm()
	form.FatherEmail = "omar@example.com"
	form.ChildFirstName = "Amina"
	form.ChildLastName = "Khan"
	form.CurrentStep = models.RenrollStepTuition

	result, err := svc.SubmitStep(context.Background(), form)
	require.NoError(t, err)
	assert.True(t, result.Form.IsCompleted)
	assert.False(t, result.CanProceed)
	assert.Equal(t, "Renroll form completed successfully!", result.Message)
}

func TestRenrollSubmitStepCompletionNeverRevoked(t *testing.T) {
	repo := &mockRenrollRepo{}
	svc := NewRenrollService(repo, nil)

	final := validTuitionForm()
	final.FatherEmail = "omar@example.com"
	final.ChildFirstName = "Amina"
	final.ChildLastName = "Khan"
	final.CurrentStep = models.RenrollStepTuition
	completed, err := svc.SubmitStep(context.Background(), final)
	require.NoError(t, err)
	require.True(t, completed.Form.IsCompleted)

	// Re-submitting an earlier step keeps the completion flag set.
	earlier := validStudentInfoForm()
	earlier.CurrentStep = models.RenrollStepStudentInfo
	result, err := svc.SubmitStep(context.Background(), earlier)
	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.True(t, result.Form.IsCompleted)
	assert.Equal(t, models.RenrollStepStudentInfo, result.Form.CurrentStep)
}

func TestRenrollGetNotFound(t *testing.T) {
	svc := NewRenrollService(&mockRenrollRepo{}, nil)
	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)
	appErr, ok := err.(*appErrors.Error)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}
