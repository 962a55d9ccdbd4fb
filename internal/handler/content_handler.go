package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alhuda-academy/admissions-api/internal/models"
	"github.com/alhuda-academy/admissions-api/internal/service"
	"github.com/alhuda-academy/admissions-api/pkg/response"
)

// ContentHandler serves the editable site content documents.
type ContentHandler struct {
	content *service.ContentService
}

// NewContentHandler constructs ContentHandler.
func NewContentHandler(content *service.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

type updateContentRequest struct {
	Content models.RawJSONDocument `json:"content"`
}

// Get godoc
// @Summary      Get page content
// @Tags         content
// @Produce      json
// @Param        page path string true "Page key"
// @Success      200 {object} response.Envelope{data=models.PageContent}
// @Failure      404 {object} response.Envelope
// @Router       /content/{page} [get]
func (h *ContentHandler) Get(c *gin.Context) {
	doc, err := h.content.GetPage(c.Request.Context(), c.Param("page"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, doc, nil)
}

// Update godoc
// @Summary      Replace page content
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        page path string true "Page key"
// @Param        request body updateContentRequest true "New content document"
// @Success      200 {object} response.Envelope{data=models.PageContent}
// @Failure      400 {object} response.Envelope
// @Security     BearerAuth
// @Router       /content/{page} [put]
func (h *ContentHandler) Update(c *gin.Context) {
	var req updateContentRequest
	if !bindJSON(c, &req) {
		return
	}
	doc, err := h.content.UpdatePage(c.Request.Context(), c.Param("page"), req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, doc, nil)
}
