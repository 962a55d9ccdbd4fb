package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alhuda-academy/admissions-api/internal/models"
	"github.com/alhuda-academy/admissions-api/internal/service"
	"github.com/alhuda-academy/admissions-api/pkg/response"
)

// SurveyHandler serves the parent, staff and student feedback survey routes.
type SurveyHandler struct {
	surveys *service.SurveyService
}

// NewSurveyHandler constructs SurveyHandler.
func NewSurveyHandler(surveys *service.SurveyService) *SurveyHandler {
	return &SurveyHandler{surveys: surveys}
}

func (h *SurveyHandler) submit(c *gin.Context, audience models.SurveyAudience) {
	var req service.SubmitSurveyRequest
	if !bindJSON(c, &req) {
		return
	}
	req.Audience = audience
	survey, err := h.surveys.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, survey)
}

func (h *SurveyHandler) list(c *gin.Context, audience models.SurveyAudience) {
	surveys, err := h.surveys.List(c.Request.Context(), audience)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, surveys, nil)
}

// SubmitParent godoc
// @Summary      Submit a parent survey
// @Tags         surveys
// @Accept       json
// @Produce      json
// @Param        request body service.SubmitSurveyRequest true "Survey response"
// @Success      201 {object} response.Envelope{data=models.Survey}
// @Failure      400 {object} response.Envelope
// @Router       /surveys/parent [post]
func (h *SurveyHandler) SubmitParent(c *gin.Context) { h.submit(c, models.SurveyAudienceParent) }

// SubmitStaff godoc
// @Summary      Submit a staff survey
// @Tags         surveys
// @Accept       json
// @Produce      json
// @Param        request body service.SubmitSurveyRequest true "Survey response"
// @Success      201 {object} response.Envelope{data=models.Survey}
// @Failure      400 {object} response.Envelope
// @Router       /surveys/staff [post]
func (h *SurveyHandler) SubmitStaff(c *gin.Context) { h.submit(c, models.SurveyAudienceStaff) }

// SubmitStudent godoc
// @Summary      Submit a student survey
// @Tags         surveys
// @Accept       json
// @Produce      json
// @Param        request body service.SubmitSurveyRequest true "Survey response"
// @Success      201 {object} response.Envelope{data=models.Survey}
// @Failure      400 {object} response.Envelope
// @Router       /surveys/student [post]
func (h *SurveyHandler) SubmitStudent(c *gin.Context) { h.submit(c, models.SurveyAudienceStudent) }

// ListParent godoc
// @Summary      List parent surveys
// @Tags         surveys
// @Produce      json
// @Success      200 {object} response.Envelope{data=[]models.Survey}
// @Security     BearerAuth
// @Router       /surveys/parent [get]
func (h *SurveyHandler) ListParent(c *gin.Context) { h.list(c, models.SurveyAudienceParent) }

// ListStaff godoc
// @Summary      List staff surveys
// @Tags         surveys
// @Produce      json
// @Success      200 {object} response.Envelope{data=[]models.Survey}
// @Security     BearerAuth
// @Router       /surveys/staff [get]
func (h *SurveyHandler) ListStaff(c *gin.Context) { h.list(c, models.SurveyAudienceStaff) }

// ListStudent godoc
// @Summary      List student surveys
// @Tags         surveys
// @Produce      json
// @Success      200 {object} response.Envelope{data=[]models.Survey}
// @Security     BearerAuth
// @Router       /surveys/student [get]
func (h *SurveyHandler) ListStudent(c *gin.Context) { h.list(c, models.SurveyAudienceStudent) }

// Get godoc
// @Summary      Get one survey response
// @Tags         surveys
// @Produce      json
// @Param        id path string true "Survey ID"
// @Success      200 {object} response.Envelope{data=models.Survey}
// @Failure      404 {object} response.Envelope
// @Security     BearerAuth
// @Router       /surveys/{id} [get]
func (h *SurveyHandler) Get(c *gin.Context) {
	survey, err := h.surveys.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, survey, nil)
}

// Delete godoc
// @Summary      Delete a survey response
// @Tags         surveys
// @Param        id path string true "Survey ID"
// @Success      204
// @Failure      404 {object} response.Envelope
// @Security     BearerAuth
// @Router       /surveys/{id} [delete]
func (h *SurveyHandler) Delete(c *gin.Context) {
	if err := h.surveys.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
