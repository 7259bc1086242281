package bootstrap

import (
	"github.com/projectpulse/project-pulse-backend/internal/projects/domain"
	"github.com/projectpulse/project-pulse-backend/internal/projects/repository"
)

// SeedDemoProjects inserts two sample records for the admin account when the
// store is empty. Purely for demo deployments; disabled via SEED_DEMO_DATA.
func SeedDemoProjects(repo *repository.ProjectRepository) {
	if repo.Count() > 0 {
		return
	}

	repo.Seed(
		&domain.Project{
			Name:        "Sample Project 1",
			Description: "A demonstration project",
			Status:      domain.StatusInProgress,
			Priority:    domain.PriorityHigh,
			Tags:        []string{"sample", "demo"},
			CreatedBy:   "admin",
		},
		&domain.Project{
			Name:        "Sample Project 2",
			Description: "Another project for testing",
			Status:      domain.StatusPlanning,
			Priority:    domain.PriorityMedium,
			Tags:        []string{"test", "planning"},
			CreatedBy:   "admin",
		},
	)
}
