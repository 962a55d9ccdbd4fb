package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alhuda-academy/admissions-api/internal/service"
	appErrors "github.com/alhuda-academy/admissions-api/pkg/errors"
	"github.com/alhuda-academy/admissions-api/pkg/response"
)

// GalleryHandler exposes the public image gallery.
type GalleryHandler struct {
	gallery *service.GalleryService
}

// NewGalleryHandler constructs GalleryHandler.
func NewGalleryHandler(gallery *service.GalleryService) *GalleryHandler {
	return &GalleryHandler{gallery: gallery}
}

// List godoc
// @Summary List gallery images
// @Tags Gallery
// @Produce json
// @Param category query string false "Category filter, All for everything"
// @Success 200 {object} response.Envelope
// @Router /gallery [get]
func (h *GalleryHandler) List(c *gin.Context) {
	images, err := h.gallery.List(c.Request.Context(), c.DefaultQuery("category", "All"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, images, nil)
}

// Upload godoc
// @Summary Upload a gallery image
// @Tags Gallery
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Image title"
// @Param category formData string true "Image category"
// @Param image formData file true "Image file"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /gallery [post]
func (h *GalleryHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "image file is required"))
		return
	}
	img, err := h.gallery.Upload(c.Request.Context(), c.PostForm("title"), c.PostForm("category"), file)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, img)
}

// Delete godoc
// @Summary Delete a gallery image
// @Tags Gallery
// @Produce json
// @Param id path string true "Image ID"
// @Success 204
// @Security BearerAuth
// @Router /gallery/{id} [delete]
func (h *GalleryHandler) Delete(c *gin.Context) {
	if err := h.gallery.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
