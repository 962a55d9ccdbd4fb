package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alhuda-academy/admissions-api/internal/dto"
	"github.com/alhuda-academy/admissions-api/internal/service"
	appErrors "github.com/alhuda-academy/admissions-api/pkg/errors"
	"github.com/alhuda-academy/admissions-api/pkg/response"
)

// EnrollmentHandler exposes the aggregated enrollment views plus the
// flattened single-page submission shim.
type EnrollmentHandler struct {
	enrollments *service.EnrollmentService
	gallery     *service.GalleryService
}

// NewEnrollmentHandler constructs EnrollmentHandler. The gallery service is
// reused for the optional student photo upload on the combined form.
func NewEnrollmentHandler(enrollments *service.EnrollmentService, gallery *service.GalleryService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollments: enrollments, gallery: gallery}
}

// List godoc
// @Summary List aggregated enrollments
// @Tags Enrollments
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /forms/enrollments [get]
func (h *EnrollmentHandler) List(c *gin.Context) {
	enrollments, err := h.enrollments.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, enrollments, nil)
}

// Get godoc
// @Summary Get one aggregated enrollment by registration id
// @Tags Enrollments
// @Produce json
// @Param id path string true "Registration ID"
// @Success 200 {object} response.Envelope
// @Router /forms/enrollments/{id} [get]
func (h *EnrollmentHandler) Get(c *gin.Context) {
	enrollment, err := h.enrollments.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, enrollment, nil)
}

// GetByKey godoc
// @Summary Get one aggregated enrollment by enrollment key
// @Tags Enrollments
// @Produce json
// @Param enrollmentId path string true "Enrollment key"
// @Success 200 {object} response.Envelope
// @Router /forms/enrollment/{enrollmentId} [get]
func (h *EnrollmentHandler) GetByKey(c *gin.Context) {
	enrollment, err := h.enrollments.GetByKey(c.Request.Context(), c.Param("enrollmentId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, enrollment, nil)
}

// SubmitCombined godoc
// @Summary Submit the flattened single-page enrollment form
// @Tags Enrollments
// @Accept multipart/form-data
// @Produce json
// @Param enrollmentId formData string true "Enrollment key"
// @Param studentFullName formData string true "Student full name"
// @Param studentPhoto formData file false "Student photo"
// @Success 201 {object} response.Envelope
// @Router /forms/enrollment [post]
func (h *EnrollmentHandler) SubmitCombined(c *gin.Context) {
	var req dto.CombinedEnrollmentRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	photoPath := ""
	if file, err := c.FormFile("studentPhoto"); err == nil && file != nil {
		_, url, err := h.gallery.SaveUpload(file)
		if err != nil {
			response.Error(c, err)
			return
		}
		photoPath = url
	}

	reg, err := h.enrollments.SubmitCombined(c.Request.Context(), req, photoPath)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, reg)
}
