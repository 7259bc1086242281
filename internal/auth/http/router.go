package http

import "github.com/gin-gonic/gin"

// RegisterPublic attaches the routes that do not need a session.
func (h *Handler) RegisterPublic(r gin.IRouter) {
	r.POST("/login", h.login)
	r.POST("/logout", h.logout)
}

// RegisterProtected attaches the session-guarded routes.
func (h *Handler) RegisterProtected(rg gin.IRouter) {
	rg.GET("/profile", h.profile)
}
