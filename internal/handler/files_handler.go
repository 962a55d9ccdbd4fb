package handler

import (
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	appErrors "github.com/alhuda-academy/admissions-api/pkg/errors"
	"github.com/alhuda-academy/admissions-api/pkg/response"
	"github.com/alhuda-academy/admissions-api/pkg/storage"
)

// FilesHandler serves signed-URL downloads of uploaded files such as
// enrollment photos. Tokens bind the file path to the owning record and
// expire; nothing under the uploads root is reachable without one.
type FilesHandler struct {
	signer  *storage.SignedURLSigner
	uploads *storage.LocalStorage
}

// NewFilesHandler constructs FilesHandler.
func NewFilesHandler(signer *storage.SignedURLSigner, uploads *storage.LocalStorage) *FilesHandler {
	return &FilesHandler{signer: signer, uploads: uploads}
}

// Download godoc
// @Summary      Download a signed file
// @Tags         files
// @Param        token path string true "Signed file token"
// @Success      200 {file} file
// @Failure      403 {object} response.Envelope
// @Router       /files/{token} [get]
func (h *FilesHandler) Download(c *gin.Context) {
	_, relPath, _, err := h.signer.Parse(c.Param("token"), false)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "invalid or expired file token"))
		return
	}

	file, err := h.uploads.Open(relPath)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "file not found"))
		return
	}
	defer file.Close() //nolint:errcheck

	contentType := mime.TypeByExtension(filepath.Ext(relPath))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Cache-Control", "no-store")

	info, err := file.Stat()
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.DataFromReader(http.StatusOK, info.Size(), contentType, file, nil)
}
