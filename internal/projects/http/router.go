package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to a session-guarded router group.
// The rate limit applies to create and update only; reads and delete are
// exempt.
func (h *Handler) Register(rg gin.IRouter, rateLimit gin.HandlerFunc) {
	rg.POST("/create_project", rateLimit, h.create)
	rg.GET("/projects", h.list)
	rg.GET("/projects/:id", h.get)
	rg.PUT("/projects/:id", rateLimit, h.update)
	rg.DELETE("/projects/:id", h.delete)
	rg.GET("/stats", h.getStats)
}
