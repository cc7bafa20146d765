package training

import (
	"go-personnel/internal/record"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, writeGuards ...gin.HandlerFunc) {
	g := r.Group("/formacion-inicial")
	g.POST("", record.Guarded(h.Create, writeGuards...)...)
	g.GET("/personal/:id", h.ListByPersonnel)
	g.DELETE("/:id", h.Delete)
}
