package evaluation

import (
	"go-personnel/internal/record"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the handlers; writeGuards run before Create.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, writeGuards ...gin.HandlerFunc) {
	evaluations := r.Group("/evaluaciones-control")
	{
		evaluations.POST("", record.Guarded(h.Create, writeGuards...)...)
		evaluations.GET("/personal/:id", h.ListByPersonnel)
		evaluations.DELETE("/:id", h.Delete)
	}
}
