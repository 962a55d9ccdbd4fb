package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alhuda-academy/admissions-api/internal/models"
	"github.com/alhuda-academy/admissions-api/internal/service"
	appErrors "github.com/alhuda-academy/admissions-api/pkg/errors"
	"github.com/alhuda-academy/admissions-api/pkg/response"
)

// FormsHandler exposes the six admission form variants. Each variant gets the
// same four routes: submit, list, get by id, delete.
type FormsHandler struct {
	forms *service.FormsService
}

// NewFormsHandler constructs FormsHandler.
func NewFormsHandler(forms *service.FormsService) *FormsHandler {
	return &FormsHandler{forms: forms}
}

func bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return false
	}
	return true
}

// CreateRegistration godoc
// @Summary Submit student registration
// @Tags Forms
// @Accept json
// @Produce json
// @Param payload body models.StudentRegistration true "Registration payload"
// @Success 201 {object} response.Envelope
// @Router /forms/student-registration [post]
func (h *FormsHandler) CreateRegistration(c *gin.Context) {
	var reg models.StudentRegistration
	if !bindJSON(c, &reg) {
		return
	}
	if err := h.forms.CreateRegistration(c.Request.Context(), &reg); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, reg)
}

// ListRegistrations godoc
// @Summary List student registrations
// @Tags Forms
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /forms/student-registration [get]
func (h *FormsHandler) ListRegistrations(c *gin.Context) {
	regs, err := h.forms.ListRegistrations(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, regs, nil)
}

// GetRegistration godoc
// @Summary Get one student registration
// @Tags Forms
// @Produce json
// @Param id path string true "Registration ID"
// @Success 200 {object} response.Envelope
// @Router /forms/student-registration/{id} [get]
func (h *FormsHandler) GetRegistration(c *gin.Context) {
	reg, err := h.forms.GetRegistration(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, reg, nil)
}

// DeleteRegistration godoc
// @Summary Delete a student registration
// @Tags Forms
// @Produce json
// @Param id path string true "Registration ID"
// @Success 204
// @Router /forms/student-registration/{id} [delete]
func (h *FormsHandler) DeleteRegistration(c *gin.Context) {
	if err := h.forms.DeleteRegistration(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// CreateHealthForm godoc
// @Summary Submit health form
// @Tags Forms
// @Accept json
// @Produce json
// @Param payload body models.HealthForm true "Health form payload"
// @Success 201 {object} response.Envelope
// @Router /forms/health-form [post]
func (h *FormsHandler) CreateHealthForm(c *gin.Context) {
	var form models.HealthForm
	if !bindJSON(c, &form) {
		return
	}
	if err := h.forms.CreateHealthForm(c.Request.Context(), &form); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, form)
}

// ListHealthForms godoc
// @Summary List health forms
// @Tags Forms
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /forms/health-form [get]
func (h *FormsHandler) ListHealthForms(c *gin.Context) {
	forms, err := h.forms.ListHealthForms(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, forms, nil)
}

// GetHealthForm godoc
// @Summary Get one health form
// @Tags Forms
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {object} response.Envelope
// @Router /forms/health-form/{id} [get]
func (h *FormsHandler) GetHealthForm(c *gin.Context) {
	form, err := h.forms.GetHealthForm(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, form, nil)
}

// DeleteHealthForm godoc
// @Summary Delete a health form
// @Tags Forms
// @Produce json
// @Param id path string true "Form ID"
// @Success 204
// @Router /forms/health-form/{id} [delete]
func (h *FormsHandler) DeleteHealthForm(c *gin.Context) {
	if err := h.forms.DeleteHealthForm(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// CreateEmergencyContact godoc
// @Summary Submit emergency contact form
// @Tags Forms
// @Accept json
// @Produce json
// @Param payload body models.EmergencyContact true "Emergency contact payload"
// @Success 201 {object} response.Envelope
// @Router /forms/emergency-contact [post]
func (h *FormsHandler) CreateEmergencyContact(c *gin.Context) {
	var form models.EmergencyContact
	if !bindJSON(c, &form) {
		return
	}
	if err := h.forms.CreateEmergencyContact(c.Request.Context(), &form); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, form)
}

// ListEmergencyContacts godoc
// @Summary List emergency contact forms
// @Tags Forms
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /forms/emergency-contact [get]
func (h *FormsHandler) ListEmergencyContacts(c *gin.Context) {
	forms, err := h.forms.ListEmergencyContacts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, forms, nil)
}

// GetEmergencyContact godoc
// @Summary Get one emergency contact form
// @Tags Forms
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {object} response.Envelope
// @Router /forms/emergency-contact/{id} [get]
func (h *FormsHandler) GetEmergencyContact(c *gin.Context) {
	form, err := h.forms.GetEmergencyContact(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, form, nil)
}

// DeleteEmergencyContact godoc
// @Summary Delete an emergency contact form
// @Tags Forms
// @Produce json
// @Param id path string true "Form ID"
// @Success 204
// @Router /forms/emergency-contact/{id} [delete]
func (h *FormsHandler) DeleteEmergencyContact(c *gin.Context) {
	if err := h.forms.DeleteEmergencyContact(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// CreatePictureAuthorization godoc
// @Summary Submit picture authorization
// @Tags Forms
// @Accept json
// @Produce json
// @Param payload body models.PictureAuthorization true "Picture authorization payload"
// @Success 201 {object} response.Envelope
// @Router /forms/picture-authorization [post]
func (h *FormsHandler) CreatePictureAuthorization(c *gin.Context) {
	var form models.PictureAuthorization
	if !bindJSON(c, &form) {
		return
	}
	if err := h.forms.CreatePictureAuthorization(c.Request.Context(), &form); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, form)
}

// ListPictureAuthorizations godoc
// @Summary List picture authorizations
// @Tags Forms
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /forms/picture-authorization [get]
func (h *FormsHandler) ListPictureAuthorizations(c *gin.Context) {
	forms, err := h.forms.ListPictureAuthorizations(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, forms, nil)
}

// GetPictureAuthorization godoc
// @Summary Get one picture authorization
// @Tags Forms
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {object} response.Envelope
// @Router /forms/picture-authorization/{id} [get]
func (h *FormsHandler) GetPictureAuthorization(c *gin.Context) {
	form, err := h.forms.GetPictureAuthorization(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, form, nil)
}

// DeletePictureAuthorization godoc
// @Summary Delete a picture authorization
// @Tags Forms
// @Produce json
// @Param id path string true "Form ID"
// @Success 204
// @Router /forms/picture-authorization/{id} [delete]
func (h *FormsHandler) DeletePictureAuthorization(c *gin.Context) {
	if err := h.forms.DeletePictureAuthorization(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// CreateTransferRecords godoc
// @Summary Submit transfer records request
// @Tags Forms
// @Accept json
// @Produce json
// @Param payload body models.TransferRecords true "Transfer records payload"
// @Success 201 {object} response.Envelope
// @Router /forms/transfer-records [post]
func (h *FormsHandler) CreateTransferRecords(c *gin.Context) {
	var form models.TransferRecords
	if !bindJSON(c, &form) {
		return
	}
	if err := h.forms.CreateTransferRecords(c.Request.Context(), &form); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, form)
}

// ListTransferRecords godoc
// @Summary List transfer records requests
// @Tags Forms
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /forms/transfer-records [get]
func (h *FormsHandler) ListTransferRecords(c *gin.Context) {
	forms, err := h.forms.ListTransferRecords(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, forms, nil)
}

// GetTransferRecords godoc
// @Summary Get one transfer records request
// @Tags Forms
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {object} response.Envelope
// @Router /forms/transfer-records/{id} [get]
func (h *FormsHandler) GetTransferRecords(c *gin.Context) {
	form, err := h.forms.GetTransferRecords(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, form, nil)
}

// DeleteTransferRecords godoc
// @Summary Delete a transfer records request
// @Tags Forms
// @Produce json
// @Param id path string true "Form ID"
// @Success 204
// @Router /forms/transfer-records/{id} [delete]
func (h *FormsHandler) DeleteTransferRecords(c *gin.Context) {
	if err := h.forms.DeleteTransferRecords(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// CreateTuitionContract godoc
// @Summary Submit tuition contract
// @Tags Forms
// @Accept json
// @Produce json
// @Param payload body models.TuitionContract true "Tuition contract payload"
// @Success 201 {object} response.Envelope
// @Router /forms/tuition-contract [post]
func (h *FormsHandler) CreateTuitionContract(c *gin.Context) {
	var form models.TuitionContract
	if !bindJSON(c, &form) {
		return
	}
	if err := h.forms.CreateTuitionContract(c.Request.Context(), &form); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, form)
}

// ListTuitionContracts godoc
// @Summary List tuition contracts
// @Tags Forms
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /forms/tuition-contract [get]
func (h *FormsHandler) ListTuitionContracts(c *gin.Context) {
	forms, err := h.forms.ListTuitionContracts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, forms, nil)
}

// GetTuitionContract godoc
// @Summary Get one tuition contract
// @Tags Forms
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {object} response.Envelope
// @Router /forms/tuition-contract/{id} [get]
func (h *FormsHandler) GetTuitionContract(c *gin.Context) {
	form, err := h.forms.GetTuitionContract(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, form, nil)
}

// DeleteTuitionContract godoc
// @Summary Delete a tuition contract
// @Tags Forms
// @Produce json
// @Param id path string true "Form ID"
// @Success 204
// @Router /forms/tuition-contract/{id} [delete]
func (h *FormsHandler) DeleteTuitionContract(c *gin.Context) {
	if err := h.forms.DeleteTuitionContract(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
