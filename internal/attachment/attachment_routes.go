package attachment

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler, guards ...gin.HandlerFunc) {
	r.POST("/upload", append(guards[:len(guards):len(guards)], h.UploadPhoto)...)
}
