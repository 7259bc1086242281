package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	apihttp "github.com/projectpulse/project-pulse-backend/internal/api/http"
	"github.com/projectpulse/project-pulse-backend/internal/auth"
	authhttp "github.com/projectpulse/project-pulse-backend/internal/auth/http"
	"github.com/projectpulse/project-pulse-backend/internal/auth/middleware"
	projhttp "github.com/projectpulse/project-pulse-backend/internal/projects/http"
	"github.com/projectpulse/project-pulse-backend/internal/projects/repository"
	"github.com/projectpulse/project-pulse-backend/internal/projects/service"
	"github.com/projectpulse/project-pulse-backend/internal/ratelimit"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Registry    *auth.Registry
	Sessions    *auth.SessionStore
	Projects    *repository.ProjectRepository
	Limiter     *ratelimit.Limiter
}

func SetGinMode(env string) {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "PUT", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
	}))

	projectSvc := service.NewProjectService(dep.Projects)
	statsSvc := service.NewStatsService(dep.Projects)

	healthHandler := apihttp.NewHealthHandler(dep.ServiceName, dep.Version, dep.Projects, dep.Registry, dep.Sessions)
	healthHandler.RegisterRoutes(r)

	authHandler := authhttp.NewHandler(dep.Registry, dep.Sessions, projectSvc)
	authHandler.RegisterPublic(r)

	authed := r.Group("")
	authed.Use(middleware.RequireSession(dep.Sessions))

	authHandler.RegisterProtected(authed)

	projectHandler := projhttp.NewHandler(projectSvc, statsSvc)
	projectHandler.Register(authed, ratelimit.Middleware(dep.Limiter))

	return r
}
