package personnel

import (
	"go-personnel/internal/record"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts /personal on r and returns the group so related
// views can hang off /personal/:id.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, writeGuards ...gin.HandlerFunc) *gin.RouterGroup {
	personal := r.Group("/personal")
	{
		personal.GET("", h.GetAll)
		personal.GET("/search", h.Search)
		personal.GET("/:id", h.GetByID)
		personal.POST("", record.Guarded(h.Create, writeGuards...)...)
		personal.PUT("/:id", record.Guarded(h.Update, writeGuards...)...)
		personal.DELETE("/:id", record.Guarded(h.Delete, writeGuards...)...)
	}
	return personal
}
