package absence

import (
	"net/http"

	"go-personnel/internal/record"
	"go-personnel/internal/shared/apperror"
	"go-personnel/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("absence.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("absence.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateAbsenceRequest
	if err := c.ShouldBind(&req); err != nil {
		record.WriteError(c, h.logger, apperror.MapValidationError(err))
		return
	}
	file, err := record.OptionalFile(c, Descriptor.FileField)
	if err != nil {
		record.WriteError(c, h.logger, err)
		return
	}
	resp, err := h.service.Create(c.Request.Context(), req, file)
	if err != nil {
		record.WriteError(c, h.logger, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, "Incapacidad/Ausencia registrada con éxito")
}

func (h *Handler) ListByPersonnel(c *gin.Context) {
	personalID, err := record.ParsePersonalID(c.Param("id"))
	if err != nil {
		record.WriteError(c, h.logger, err)
		return
	}
	resp, err := h.service.ListByPersonnel(c.Request.Context(), personalID)
	if err != nil {
		record.WriteError(c, h.logger, err)
		return
	}
	response.Success(c, http.StatusOK, resp, "")
}

func RegisterRoutes(api, performance *gin.RouterGroup, h *Handler, writeGuards ...gin.HandlerFunc) {
	performance.POST("/incapacidades-ausencias", record.Guarded(h.Create, writeGuards...)...)
	api.GET("/incapacidades-ausencias/personal/:id", h.ListByPersonnel)
}
