package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the slot endpoints. Slot management is an admin
// surface: both middlewares are required on every route.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, credMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/slots")

	group.Use(credMiddleware, adminMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}
