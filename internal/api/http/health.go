package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
	Service       string    `json:"service"`
	Version       string    `json:"version"`
	ProjectsCount int       `json:"projects_count"`
	UsersCount    int       `json:"users_count"`
	Sessions      string    `json:"sessions,omitempty"`
}

// Counter reports the size of a store.
type Counter interface {
	Count() int
}

// Pinger reports backend reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	serviceName string
	version     string
	projects    Counter
	users       Counter
	sessions    Pinger
}

func NewHealthHandler(serviceName, version string, projects, users Counter, sessions Pinger) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		projects:    projects,
		users:       users,
		sessions:    sessions,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	sessionStatus := "disabled"
	if h.sessions != nil {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
		defer cancel()

		if err := h.sessions.Ping(pingCtx); err != nil {
			sessionStatus = "down"
		} else {
			sessionStatus = "up"
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:        "healthy",
		Timestamp:     time.Now().UTC(),
		Service:       h.serviceName,
		Version:       h.version,
		ProjectsCount: h.projects.Count(),
		UsersCount:    h.users.Count(),
		Sessions:      sessionStatus,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
