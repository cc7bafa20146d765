package laborhistory

import (
	"go-personnel/internal/record"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts creation under the performance review group and the
// listing under api.
func RegisterRoutes(api, performance *gin.RouterGroup, h *Handler, writeGuards ...gin.HandlerFunc) {
	performance.POST("/historial-laboral", record.Guarded(h.Create, writeGuards...)...)
	api.GET("/historial-laboral/personal/:id", h.ListByPersonnel)
}
