package profile

import (
	"fmt"
	"net/http"
	"strconv"

	personnelerrors "go-personnel/internal/personnel/errors"
	"go-personnel/internal/record"
	"go-personnel/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("profile.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("profile.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) GetProfile(c *gin.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}
	p, err := h.service.GetProfile(c.Request.Context(), id)
	if err != nil {
		record.WriteError(c, h.logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "")
}

func (h *Handler) ExportPDF(c *gin.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}
	doc, filename, err := h.service.ExportPDF(c.Request.Context(), id)
	if err != nil {
		record.WriteError(c, h.logger, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", doc)
}

func (h *Handler) id(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		record.WriteError(c, h.logger, personnelerrors.ErrInvalidPersonnelID)
		return 0, false
	}
	return id, true
}

// RegisterRoutes hangs the profile views off the /personal group.
func RegisterRoutes(personal *gin.RouterGroup, h *Handler) {
	personal.GET("/:id/perfil", h.GetProfile)
	personal.GET("/:id/perfil/pdf", h.ExportPDF)
}
