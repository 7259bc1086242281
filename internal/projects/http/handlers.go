package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apihttp "github.com/projectpulse/project-pulse-backend/internal/api/http"
	"github.com/projectpulse/project-pulse-backend/internal/auth"
	"github.com/projectpulse/project-pulse-backend/internal/projects/domain"
	"github.com/projectpulse/project-pulse-backend/internal/projects/service"
)

// Handler serves the project CRUD and stats endpoints.
type Handler struct {
	svc   *service.ProjectService
	stats *service.StatsService
}

func NewHandler(svc *service.ProjectService, stats *service.StatsService) *Handler {
	return &Handler{
		svc:   svc,
		stats: stats,
	}
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		apihttp.Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	input := domain.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		Tags:        []string(req.Tags),
	}

	p, err := h.svc.Create(input, auth.Username(c))
	if err != nil {
		failFromErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "project created", "project": p})
}

func (h *Handler) list(c *gin.Context) {
	filter := domain.Filter{
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
	}

	items := h.svc.List(filter)
	c.JSON(http.StatusOK, gin.H{"success": true, "projects": items, "total": len(items)})
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.svc.Get(c.Param("id"))
	if err != nil {
		failFromErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "project": p})
}

func (h *Handler) update(c *gin.Context) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		apihttp.Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	changes := domain.UpdateInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		Progress:    req.Progress,
	}
	if req.Tags != nil {
		tags := []string(*req.Tags)
		changes.Tags = &tags
	}

	p, err := h.svc.Update(c.Param("id"), changes, auth.Username(c))
	if err != nil {
		failFromErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "project updated", "project": p})
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id"), auth.Username(c)); err != nil {
		failFromErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "project deleted"})
}

func (h *Handler) getStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": h.stats.Compute(auth.Username(c))})
}

// failFromErr maps store errors onto the HTTP error taxonomy.
func failFromErr(c *gin.Context, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		apihttp.Fail(c, http.StatusBadRequest, vErr.Message)
	case errors.Is(err, domain.ErrNotFound):
		apihttp.Fail(c, http.StatusNotFound, "project not found")
	case errors.Is(err, domain.ErrForbidden):
		apihttp.Fail(c, http.StatusForbidden, "you do not own this project")
	case errors.Is(err, domain.ErrDuplicateName):
		apihttp.Fail(c, http.StatusConflict, "a project with this name already exists")
	case errors.Is(err, domain.ErrTransient):
		apihttp.Fail(c, http.StatusInternalServerError, "something went wrong, please try again")
	default:
		apihttp.Fail(c, http.StatusInternalServerError, "internal server error")
	}
}
