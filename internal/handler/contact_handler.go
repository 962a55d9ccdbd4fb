package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alhuda-academy/admissions-api/internal/models"
	"github.com/alhuda-academy/admissions-api/internal/service"
	appErrors "github.com/alhuda-academy/admissions-api/pkg/errors"
	"github.com/alhuda-academy/admissions-api/pkg/response"
)

// ContactHandler exposes the public contact form and its admin views.
type ContactHandler struct {
	contact *service.ContactService
}

// NewContactHandler constructs ContactHandler.
func NewContactHandler(contact *service.ContactService) *ContactHandler {
	return &ContactHandler{contact: contact}
}

// Submit godoc
// @Summary Submit a contact message
// @Tags Contact
// @Accept json
// @Produce json
// @Param payload body service.SubmitContactRequest true "Message payload"
// @Success 201 {object} response.Envelope
// @Router /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req service.SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	msg, err := h.contact.Submit(c.Request.Context(), req, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, msg)
}

// List godoc
// @Summary List contact messages
// @Tags Contact
// @Produce json
// @Param status query string false "Status filter"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /contact [get]
func (h *ContactHandler) List(c *gin.Context) {
	msgs, err := h.contact.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, msgs, nil)
}

// Get godoc
// @Summary Get one contact message
// @Tags Contact
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /contact/{id} [get]
func (h *ContactHandler) Get(c *gin.Context) {
	msg, err := h.contact.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, msg, nil)
}

type replyRequest struct {
	Reply string `json:"reply"`
}

// Reply godoc
// @Summary Record a reply and mark the message replied
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path string true "Message ID"
// @Param payload body replyRequest true "Reply text"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /contact/{id}/reply [post]
func (h *ContactHandler) Reply(c *gin.Context) {
	var req replyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.contact.Reply(c.Request.Context(), c.Param("id"), req.Reply); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "reply recorded")
}

type contactStatusRequest struct {
	Status models.ContactStatus `json:"status"`
}

// UpdateStatus godoc
// @Summary Set a contact message status
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path string true "Message ID"
// @Param payload body contactStatusRequest true "New status"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /contact/{id}/status [put]
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	var req contactStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.contact.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "status updated")
}

// Delete godoc
// @Summary Delete a contact message
// @Tags Contact
// @Produce json
// @Param id path string true "Message ID"
// @Success 204
// @Security BearerAuth
// @Router /contact/{id} [delete]
func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.contact.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
