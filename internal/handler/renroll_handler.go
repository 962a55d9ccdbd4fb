package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alhuda-academy/admissions-api/internal/dto"
	"github.com/alhuda-academy/admissions-api/internal/models"
	"github.com/alhuda-academy/admissions-api/internal/service"
	appErrors "github.com/alhuda-academy/admissions-api/pkg/errors"
	"github.com/alhuda-academy/admissions-api/pkg/response"
)

// RenrollHandler exposes the three-step re-enrollment workflow.
type RenrollHandler struct {
	renroll *service.RenrollService
}

// NewRenrollHandler constructs RenrollHandler.
func NewRenrollHandler(renroll *service.RenrollService) *RenrollHandler {
	return &RenrollHandler{renroll: renroll}
}

// Submit godoc
// @Summary Submit a re-enrollment step
// @Tags Renroll
// @Accept json
// @Produce json
// @Param payload body models.RenrollForm true "Full draft with currentStep"
// @Success 200 {object} response.Envelope
// @Success 201 {object} response.Envelope
// @Router /renroll/renroll-form [post]
func (h *RenrollHandler) Submit(c *gin.Context) {
	var form models.RenrollForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.renroll.SubmitStep(c.Request.Context(), &form)
	if err != nil {
		response.Error(c, err)
		return
	}
	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	response.JSON(c, status, dto.RenrollSubmitResponse{
		Message:    result.Message,
		Form:       result.Form,
		CanProceed: result.CanProceed,
	}, nil)
}

// ValidateStep godoc
// @Summary Dry-run validation of one step
// @Tags Renroll
// @Accept json
// @Produce json
// @Param payload body dto.ValidateStepRequest true "Step and form data"
// @Success 200 {object} dto.ValidateStepResponse
// @Router /renroll/validate-step [post]
func (h *RenrollHandler) ValidateStep(c *gin.Context) {
	var req dto.ValidateStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	// Dry runs gate only on the checklist; a clean final step still reports
	// canProceed so the client can enable its submit button.
	errs := h.renroll.ValidateStep(req.Step, &req.FormData)
	resp := dto.ValidateStepResponse{
		Success:    len(errs) == 0,
		Errors:     errs,
		CanProceed: len(errs) == 0,
	}
	if resp.Errors == nil {
		resp.Errors = []string{}
	}
	c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary List re-enrollment drafts
// @Tags Renroll
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /renroll/renroll-form [get]
func (h *RenrollHandler) List(c *gin.Context) {
	forms, err := h.renroll.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, forms, nil)
}

// Get godoc
// @Summary Get one re-enrollment draft
// @Tags Renroll
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} response.Envelope
// @Router /renroll/renroll-form/{id} [get]
func (h *RenrollHandler) Get(c *gin.Context) {
	form, err := h.renroll.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, form, nil)
}

// Delete godoc
// @Summary Delete a re-enrollment draft
// @Tags Renroll
// @Produce json
// @Param id path string true "Draft ID"
// @Success 204
// @Router /renroll/renroll-form/{id} [delete]
func (h *RenrollHandler) Delete(c *gin.Context) {
	if err := h.renroll.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
