package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alhuda-academy/admissions-api/internal/models"
	"github.com/alhuda-academy/admissions-api/internal/service"
	"github.com/alhuda-academy/admissions-api/pkg/response"
)

// ExportHandler serves roster export job creation, polling and downloads.
type ExportHandler struct {
	exports *service.ExportService
}

// NewExportHandler constructs ExportHandler.
func NewExportHandler(exports *service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

type createExportRequest struct {
	Format string `json:"format"`
}

// Create godoc
// @Summary      Queue a roster export
// @Tags         exports
// @Accept       json
// @Produce      json
// @Param        request body createExportRequest true "Export format"
// @Success      202 {object} response.Envelope{data=models.ExportJob}
// @Failure      400 {object} response.Envelope
// @Security     BearerAuth
// @Router       /exports [post]
func (h *ExportHandler) Create(c *gin.Context) {
	var req createExportRequest
	if !bindJSON(c, &req) {
		return
	}
	job, err := h.exports.CreateJob(c.Request.Context(), req.Format, actorID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusAccepted, job, nil)
}

// Status godoc
// @Summary      Get export job status
// @Tags         exports
// @Produce      json
// @Param        id path string true "Export job ID"
// @Success      200 {object} response.Envelope{data=models.ExportJob}
// @Failure      404 {object} response.Envelope
// @Security     BearerAuth
// @Router       /exports/{id} [get]
func (h *ExportHandler) Status(c *gin.Context) {
	job, err := h.exports.GetStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, job, nil)
}

// Download godoc
// @Summary      Download a completed export
// @Tags         exports
// @Produce      text/csv,application/pdf
// @Param        token path string true "Signed download token"
// @Success      200 {file} file
// @Failure      403 {object} response.Envelope
// @Router       /exports/download/{token} [get]
func (h *ExportHandler) Download(c *gin.Context) {
	download, err := h.exports.ResolveDownload(c.Request.Context(), c.Param("token"))
	if err != nil {
		response.Error(c, err)
		return
	}
	defer download.File.Close() //nolint:errcheck

	contentType := "text/csv"
	if download.Format == models.ExportFormatPDF {
		contentType = "application/pdf"
	}
	c.Header("Content-Disposition", `attachment; filename="`+download.Filename+`"`)
	c.Header("Cache-Control", "no-store")

	info, err := download.File.Stat()
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.DataFromReader(http.StatusOK, info.Size(), contentType, download.File, nil)
}
