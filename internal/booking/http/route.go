package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, credMiddleware gin.HandlerFunc) {
	group := g.Group("/bookings")

	group.Use(credMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
		group.PUT("/:id", h.Update)
		group.PATCH("/:id", h.Patch)
		group.DELETE("/:id", h.Delete)
	}
}
