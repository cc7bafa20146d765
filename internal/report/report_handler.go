package report

import (
	"fmt"
	"net/http"

	"go-personnel/internal/record"
	"go-personnel/internal/shared/apperror"
	"go-personnel/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("report.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Search(c *gin.Context) {
	rows, err := h.service.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		record.WriteError(c, h.logger, err)
		return
	}
	response.Success(c, http.StatusOK, rows, "")
}

func (h *Handler) Summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		record.WriteError(c, h.logger, err)
		return
	}
	response.Success(c, http.StatusOK, summary, "")
}

func (h *Handler) SetStatus(c *gin.Context) {
	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		record.WriteError(c, h.logger, apperror.MapValidationError(err))
		return
	}
	p, err := h.service.SetStatus(c.Request.Context(), req.ID, req.Estatus)
	if err != nil {
		record.WriteError(c, h.logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "Estatus actualizado correctamente")
}

func (h *Handler) ExportSummaryXLSX(c *gin.Context) {
	doc, err := h.service.ExportSummaryXLSX(c.Request.Context())
	if err != nil {
		record.WriteError(c, h.logger, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, SummaryFilename))
	c.Data(http.StatusOK, xlsxContentType, doc)
}

func RegisterRoutes(r *gin.RouterGroup, h *Handler, writeGuards ...gin.HandlerFunc) {
	reports := r.Group("/reportes")
	{
		reports.GET("/search", h.Search)
		reports.GET("/summary", h.Summary)
		reports.GET("/summary/xlsx", h.ExportSummaryXLSX)
		reports.PUT("/status", record.Guarded(h.SetStatus, writeGuards...)...)
	}
}
