package service

import (
	"github.com/projectpulse/project-pulse-backend/internal/projects/domain"
	"github.com/projectpulse/project-pulse-backend/internal/projects/repository"
)

// ProjectService handles project-related business logic
type ProjectService struct {
	repo *repository.ProjectRepository
}

// NewProjectService creates a new project service
func NewProjectService(repo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{
		repo: repo,
	}
}

// Create creates a new project owned by the given user
func (s *ProjectService) Create(input domain.CreateInput, owner string) (*domain.Project, error) {
	return s.repo.Create(input, owner)
}

// Get returns a project by id
func (s *ProjectService) Get(id string) (*domain.Project, error) {
	return s.repo.Get(id)
}

// List returns projects matching the filter
func (s *ProjectService) List(f domain.Filter) []*domain.Project {
	return s.repo.List(f)
}

// Update applies a partial update on behalf of the requester
func (s *ProjectService) Update(id string, changes domain.UpdateInput, requester string) (*domain.Project, error) {
	return s.repo.Update(id, changes, requester)
}

// Delete removes a project on behalf of the requester
func (s *ProjectService) Delete(id, requester string) error {
	return s.repo.Delete(id, requester)
}

// OwnedBy returns the requester's own projects
func (s *ProjectService) OwnedBy(username string) []*domain.Project {
	return s.repo.OwnedBy(username)
}
