package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alhuda-academy/admissions-api/internal/dto"
	"github.com/alhuda-academy/admissions-api/internal/models"
	"github.com/alhuda-academy/admissions-api/internal/service"
)

func newValidateStepContext(t *testing.T, payload any) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, "/renroll/validate-step", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func TestRenrollHandlerValidateStepReportsErrors(t *testing.T) {
	handler := NewRenrollHandler(service.NewRenrollService(nil, nil))

	c, w := newValidateStepContext(t, dto.ValidateStepRequest{
		Step:     models.RenrollStepStudentInfo,
		FormData: models.RenrollForm{ChildFirstName: "Amina"},
	})
	handler.ValidateStep(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ValidateStepResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.False(t, resp.CanProceed)
	assert.NotEmpty(t, resp.Errors)
	assert.Contains(t, resp.Errors, "Child last name is required")
	assert.NotContains(t, resp.Errors, "Child first name is required")
}

func TestRenrollHandlerValidateStepValidFinalStep(t *testing.T) {
	handler := NewRenrollHandler(service.NewRenrollService(nil, nil))

	c, w := newValidateStepContext(t, dto.ValidateStepRequest{
		Step: models.RenrollStepTuition,
		FormData: models.RenrollForm{
			GuardianName:           "Omar Khan",
			HomePhone:              "555-0101",
			GuardianEmail:          "omar@example.com",
			AcknowledgeTuition:     "yes",
			AcknowledgeTextbookFee: "yes",
			PaymentOption:          "monthly",
			TuitionSignature:       "Omar Khan",
		},
	})
	handler.ValidateStep(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ValidateStepResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, resp.CanProceed)
	assert.Empty(t, resp.Errors)
}

func TestRenrollHandlerValidateStepUnknownStepSucceeds(t *testing.T) {
	handler := NewRenrollHandler(service.NewRenrollService(nil, nil))

	c, w := newValidateStepContext(t, dto.ValidateStepRequest{Step: 9})
	handler.ValidateStep(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ValidateStepResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, resp.CanProceed)
	assert.Empty(t, resp.Errors)
	assert.NotNil(t, resp.Errors)
}

func TestRenrollHandlerValidateStepInvalidBody(t *testing.T) {
	handler := NewRenrollHandler(service.NewRenrollService(nil, nil))

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/renroll/validate-step", bytes.NewReader([]byte(`invalid`)))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.ValidateStep(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
