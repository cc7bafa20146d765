package attachment

import (
	"net/http"

	attachmenterrors "go-personnel/internal/attachment/errors"
	"go-personnel/internal/shared/apperror"
	"go-personnel/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PhotoField is the multipart field carrying a profile photo.
const PhotoField = "foto"

type Handler struct {
	manager *Manager
	logger  *zap.Logger
}

func NewHandler(manager *Manager, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("attachment.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attachment.handler")
	}
	return &Handler{manager: manager, logger: l}
}

type UploadPhotoResponse struct {
	FilePath string `json:"filePath"`
}

func (h *Handler) UploadPhoto(c *gin.Context) {
	fh, err := c.FormFile(PhotoField)
	if err != nil {
		h.writeError(c, attachmenterrors.ErrMissingFile)
		return
	}

	p, err := h.manager.Store(c.Request.Context(), fh, CategoryPhotos)
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.logger.Info("profile photo uploaded", zap.String("path", p))
	response.Success(c, http.StatusOK, UploadPhotoResponse{FilePath: p}, "Foto subida exitosamente")
}

func (h *Handler) writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("upload request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}
