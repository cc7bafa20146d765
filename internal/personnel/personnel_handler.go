package personnel

import (
	"net/http"
	"strconv"

	personnelerrors "go-personnel/internal/personnel/errors"
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
	l := zap.L().Named("personnel.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("personnel.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		record.WriteError(c, h.logger, err)
		return
	}
	response.Success(c, http.StatusOK, resp, "")
}

func (h *Handler) Search(c *gin.Context) {
	resp, err := h.service.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		record.WriteError(c, h.logger, err)
		return
	}
	response.Success(c, http.StatusOK, resp, "")
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}
	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		record.WriteError(c, h.logger, err)
		return
	}
	response.Success(c, http.StatusOK, resp, "")
}

func (h *Handler) Create(c *gin.Context) {
	var req PersonnelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		record.WriteError(c, h.logger, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		record.WriteError(c, h.logger, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, "Personal registrado exitosamente")
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}
	var req PersonnelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		record.WriteError(c, h.logger, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		record.WriteError(c, h.logger, err)
		return
	}
	response.Success(c, http.StatusOK, resp, "Personal actualizado exitosamente")
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		record.WriteError(c, h.logger, err)
		return
	}
	response.Success(c, http.StatusOK, nil, "Personal eliminado exitosamente")
}

func (h *Handler) id(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		record.WriteError(c, h.logger, personnelerrors.ErrInvalidPersonnelID)
		return 0, false
	}
	return id, true
}
