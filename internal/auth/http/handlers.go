package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	apihttp "github.com/projectpulse/project-pulse-backend/internal/api/http"
	"github.com/projectpulse/project-pulse-backend/internal/auth"
	"github.com/projectpulse/project-pulse-backend/internal/projects/service"
)

// Handler serves login, logout and profile.
type Handler struct {
	registry *auth.Registry
	sessions *auth.SessionStore
	projects *service.ProjectService
}

func NewHandler(registry *auth.Registry, sessions *auth.SessionStore, projects *service.ProjectService) *Handler {
	return &Handler{
		registry: registry,
		sessions: sessions,
		projects: projects,
	}
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		apihttp.Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		apihttp.Fail(c, http.StatusBadRequest, "username and password are required")
		return
	}

	identity, err := h.registry.Authenticate(username, req.Password)
	if err != nil {
		apihttp.Fail(c, http.StatusUnauthorized, "invalid username or password")
		return
	}

	sid, err := h.sessions.Create(c.Request.Context(), identity)
	if err != nil {
		apihttp.Fail(c, http.StatusInternalServerError, "could not create session")
		return
	}

	c.SetCookie(auth.SessionCookie, sid, int(h.sessions.TTL()/time.Second), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Welcome back, %s!", identity.Name),
		"user":    identity,
	})
}

func (h *Handler) logout(c *gin.Context) {
	if sid, err := c.Cookie(auth.SessionCookie); err == nil && sid != "" {
		// Server-side invalidation; clearing the cookie alone is not enough.
		_ = h.sessions.Delete(c.Request.Context(), sid)
	}

	c.SetCookie(auth.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "logged out"})
}

func (h *Handler) profile(c *gin.Context) {
	username := auth.Username(c)
	owned := h.projects.OwnedBy(username)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"username":       username,
			"name":           auth.DisplayName(c),
			"projects_count": len(owned),
			"projects":       owned,
		},
	})
}
