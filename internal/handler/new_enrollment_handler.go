package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alhuda-academy/admissions-api/internal/dto"
	"github.com/alhuda-academy/admissions-api/internal/service"
	appErrors "github.com/alhuda-academy/admissions-api/pkg/errors"
	"github.com/alhuda-academy/admissions-api/pkg/response"
)

// DirectEnrollmentHandler exposes the richer single-document enrollment record.
type DirectEnrollmentHandler struct {
	enrollments *service.DirectEnrollmentService
}

// NewDirectEnrollmentHandler constructs DirectEnrollmentHandler.
func NewDirectEnrollmentHandler(enrollments *service.DirectEnrollmentService) *DirectEnrollmentHandler {
	return &DirectEnrollmentHandler{enrollments: enrollments}
}

// Submit godoc
// @Summary Submit a new enrollment
// @Tags NewEnrollment
// @Accept multipart/form-data
// @Produce json
// @Param enrollmentId formData string true "Enrollment key"
// @Param studentPhoto formData file false "Student photo"
// @Success 201 {object} response.Envelope
// @Router /forms/new-enrollment [post]
func (h *DirectEnrollmentHandler) Submit(c *gin.Context) {
	var req dto.NewEnrollmentForm
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	photo, _ := c.FormFile("studentPhoto")

	enr, err := h.enrollments.Submit(c.Request.Context(), req, photo)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, enr)
}

// List godoc
// @Summary List new enrollments
// @Tags NewEnrollment
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /forms/new-enrollment [get]
func (h *DirectEnrollmentHandler) List(c *gin.Context) {
	enrollments, err := h.enrollments.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, enrollments, nil)
}

// Get godoc
// @Summary Get one new enrollment
// @Tags NewEnrollment
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} response.Envelope
// @Router /forms/new-enrollment/{id} [get]
func (h *DirectEnrollmentHandler) Get(c *gin.Context) {
	enr, err := h.enrollments.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, enr, nil)
}

// UpdateStatus godoc
// @Summary Set new enrollment status
// @Tags NewEnrollment
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param payload body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} response.Envelope
// @Router /forms/new-enrollment/{id}/status [patch]
func (h *DirectEnrollmentHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	enr, err := h.enrollments.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, enr, nil)
}

// Delete godoc
// @Summary Delete a new enrollment
// @Tags NewEnrollment
// @Produce json
// @Param id path string true "Record ID"
// @Success 204
// @Router /forms/new-enrollment/{id} [delete]
func (h *DirectEnrollmentHandler) Delete(c *gin.Context) {
	if err := h.enrollments.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
