package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alhuda-academy/admissions-api/internal/service"
	appErrors "github.com/alhuda-academy/admissions-api/pkg/errors"
	"github.com/alhuda-academy/admissions-api/pkg/response"
)

// CalendarHandler exposes school calendar events.
type CalendarHandler struct {
	calendar *service.CalendarService
}

// NewCalendarHandler constructs CalendarHandler.
func NewCalendarHandler(calendar *service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendar: calendar}
}

// List godoc
// @Summary List events sorted by date
// @Tags Calendar
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /calendar/events [get]
func (h *CalendarHandler) List(c *gin.Context) {
	events, err := h.calendar.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, events, nil)
}

// ListRange godoc
// @Summary List events overlapping a date range
// @Tags Calendar
// @Produce json
// @Param startDate query string true "Range start (YYYY-MM-DD)"
// @Param endDate query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /calendar/events/range [get]
func (h *CalendarHandler) ListRange(c *gin.Context) {
	events, err := h.calendar.ListRange(c.Request.Context(), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, events, nil)
}

// Get godoc
// @Summary Get one event
// @Tags Calendar
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} response.Envelope
// @Router /calendar/events/{id} [get]
func (h *CalendarHandler) Get(c *gin.Context) {
	event, err := h.calendar.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, event, nil)
}

// Create godoc
// @Summary Create an event
// @Tags Calendar
// @Accept json
// @Produce json
// @Param payload body service.CreateEventRequest true "Event payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /calendar/events [post]
func (h *CalendarHandler) Create(c *gin.Context) {
	var req service.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	event, err := h.calendar.Create(c.Request.Context(), req, actorID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, event)
}

// CreateBulk godoc
// @Summary Create several events at once
// @Tags Calendar
// @Accept json
// @Produce json
// @Param payload body []service.CreateEventRequest true "Events payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /calendar/events/bulk [post]
func (h *CalendarHandler) CreateBulk(c *gin.Context) {
	var reqs []service.CreateEventRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	events, err := h.calendar.CreateBulk(c.Request.Context(), reqs, actorID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, events)
}

// Update godoc
// @Summary Update an event
// @Tags Calendar
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param payload body service.UpdateEventRequest true "Fields to change"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /calendar/events/{id} [put]
func (h *CalendarHandler) Update(c *gin.Context) {
	var req service.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	event, err := h.calendar.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, event, nil)
}

// Delete godoc
// @Summary Delete an event
// @Tags Calendar
// @Produce json
// @Param id path string true "Event ID"
// @Success 204
// @Security BearerAuth
// @Router /calendar/events/{id} [delete]
func (h *CalendarHandler) Delete(c *gin.Context) {
	if err := h.calendar.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
