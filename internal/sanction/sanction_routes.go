package sanction

import (
	"go-personnel/internal/record"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(api, performance *gin.RouterGroup, h *Handler, writeGuards ...gin.HandlerFunc) {
	performance.POST("/estimulos-sanciones", record.Guarded(h.Create, writeGuards...)...)
	api.GET("/estimulos-sanciones/personal/:id", h.ListByPersonnel)
}
