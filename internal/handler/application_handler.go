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

// ApplicationHandler serves the job and volunteer application routes. Both
// groups share the same service; the route group fixes the kind.
type ApplicationHandler struct {
	applications *service.ApplicationService
}

// NewApplicationHandler constructs ApplicationHandler.
func NewApplicationHandler(applications *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

func applicationFromForm(c *gin.Context, kind models.ApplicationKind) *models.Application {
	return &models.Application{
		Kind:      kind,
		FirstName: c.PostForm("firstName"),
		LastName:  c.PostForm("lastName"),
		Gender:    c.PostForm("gender"),
		Phone:     c.PostForm("phone"),
		Email:     c.PostForm("email"),
		Address1:  c.PostForm("address1"),
		Address2:  c.PostForm("address2"),
		City:      c.PostForm("city"),
		State:     c.PostForm("state"),
		ZipCode:   c.PostForm("zipCode"),
		Position:  c.PostForm("position"),
		HourlyPay: c.PostForm("hourlyPay"),
		StartDate: c.PostForm("startDate"),
		WorkAuth:  c.PostForm("workAuth"),
		Felony:    c.PostForm("felony"),
	}
}

func (h *ApplicationHandler) submit(c *gin.Context, kind models.ApplicationKind) {
	app := applicationFromForm(c, kind)
	if err := h.applications.ParseStructuredFields(app, c.PostForm("schools"), c.PostForm("workExperience"), c.PostForm("references")); err != nil {
		response.Error(c, err)
		return
	}

	resume, err := c.FormFile("resume")
	if err != nil && err != http.ErrMissingFile {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid resume upload"))
		return
	}
	signature, err := c.FormFile("signature")
	if err != nil && err != http.ErrMissingFile {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid signature upload"))
		return
	}

	created, err := h.applications.Submit(c.Request.Context(), app, resume, signature)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, created)
}

// SubmitJob godoc
// @Summary      Submit a job application
// @Tags         applications
// @Accept       multipart/form-data
// @Produce      json
// @Success      201 {object} response.Envelope{data=models.Application}
// @Failure      400 {object} response.Envelope
// @Router       /applications/jobs [post]
func (h *ApplicationHandler) SubmitJob(c *gin.Context) {
	h.submit(c, models.ApplicationKindJob)
}

// SubmitVolunteer godoc
// @Summary      Submit a volunteer application
// @Tags         applications
// @Accept       multipart/form-data
// @Produce      json
// @Success      201 {object} response.Envelope{data=models.Application}
// @Failure      400 {object} response.Envelope
// @Router       /applications/volunteers [post]
func (h *ApplicationHandler) SubmitVolunteer(c *gin.Context) {
	h.submit(c, models.ApplicationKindVolunteer)
}

// ListJobs godoc
// @Summary      List job applications
// @Tags         applications
// @Produce      json
// @Success      200 {object} response.Envelope{data=[]models.Application}
// @Security     BearerAuth
// @Router       /applications/jobs [get]
func (h *ApplicationHandler) ListJobs(c *gin.Context) {
	apps, err := h.applications.List(c.Request.Context(), models.ApplicationKindJob)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, apps, nil)
}

// ListVolunteers godoc
// @Summary      List volunteer applications
// @Tags         applications
// @Produce      json
// @Success      200 {object} response.Envelope{data=[]models.Application}
// @Security     BearerAuth
// @Router       /applications/volunteers [get]
func (h *ApplicationHandler) ListVolunteers(c *gin.Context) {
	apps, err := h.applications.List(c.Request.Context(), models.ApplicationKindVolunteer)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, apps, nil)
}

// Get godoc
// @Summary      Get one application
// @Tags         applications
// @Produce      json
// @Param        id path string true "Application ID"
// @Success      200 {object} response.Envelope{data=models.Application}
// @Failure      404 {object} response.Envelope
// @Security     BearerAuth
// @Router       /applications/{id} [get]
func (h *ApplicationHandler) Get(c *gin.Context) {
	app, err := h.applications.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, app, nil)
}

// UpdateStatus godoc
// @Summary      Update application status
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id path string true "Application ID"
// @Param        request body dto.UpdateStatusRequest true "New status"
// @Success      200 {object} response.Envelope{data=models.Application}
// @Failure      400 {object} response.Envelope
// @Security     BearerAuth
// @Router       /applications/{id}/status [patch]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	id := c.Param("id")
	if err := h.applications.UpdateStatus(c.Request.Context(), id, models.ApplicationStatus(req.Status)); err != nil {
		response.Error(c, err)
		return
	}
	app, err := h.applications.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, app, nil)
}

// SendEmail godoc
// @Summary      Send an email to an applicant
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id path string true "Application ID"
// @Param        request body service.SendApplicationEmailRequest true "Email"
// @Success      200 {object} response.Envelope{data=models.EmailLogEntry}
// @Failure      404 {object} response.Envelope
// @Security     BearerAuth
// @Router       /applications/{id}/email [post]
func (h *ApplicationHandler) SendEmail(c *gin.Context) {
	var req service.SendApplicationEmailRequest
	if !bindJSON(c, &req) {
		return
	}
	entry, err := h.applications.SendEmail(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entry, nil)
}

// Emails godoc
// @Summary      List emails sent to an applicant
// @Tags         applications
// @Produce      json
// @Param        id path string true "Application ID"
// @Success      200 {object} response.Envelope{data=models.EmailLog}
// @Failure      404 {object} response.Envelope
// @Security     BearerAuth
// @Router       /applications/{id}/emails [get]
func (h *ApplicationHandler) Emails(c *gin.Context) {
	log, err := h.applications.Emails(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, log, nil)
}

// Delete godoc
// @Summary      Delete an application
// @Tags         applications
// @Param        id path string true "Application ID"
// @Success      204
// @Failure      404 {object} response.Envelope
// @Security     BearerAuth
// @Router       /applications/{id} [delete]
func (h *ApplicationHandler) Delete(c *gin.Context) {
	if err := h.applications.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
