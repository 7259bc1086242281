package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projectpulse/project-pulse-backend/internal/projects/domain"
	"github.com/projectpulse/project-pulse-backend/internal/projects/repository"
)

func TestStatsCompute(t *testing.T) {
	repo := repository.NewProjectRepository()
	stats := NewStatsService(repo)

	t.Run("empty store", func(t *testing.T) {
		s := stats.Compute("admin")
		assert.Equal(t, 0, s.TotalProjects)
		assert.Equal(t, 0, s.UserProjects)
		assert.Equal(t, 0.0, s.AverageProgress)
		// Every enum value is present even when zero.
		assert.Len(t, s.StatusDistribution, len(domain.Statuses))
		assert.Len(t, s.PriorityDistribution, len(domain.Priorities))
	})

	repo.Seed(
		&domain.Project{Name: "One", Status: domain.StatusInProgress, Priority: domain.PriorityHigh, Progress: 40, CreatedBy: "admin"},
		&domain.Project{Name: "Two", Status: domain.StatusInProgress, Priority: domain.PriorityLow, Progress: 60, CreatedBy: "admin"},
		&domain.Project{Name: "Theirs", Status: domain.StatusCompleted, Priority: domain.PriorityCritical, Progress: 100, CreatedBy: "user"},
	)

	t.Run("total is global, breakdowns are owner-scoped", func(t *testing.T) {
		s := stats.Compute("admin")
		require.Equal(t, 3, s.TotalProjects)
		assert.Equal(t, 2, s.UserProjects)
		assert.Equal(t, 2, s.StatusDistribution[domain.StatusInProgress])
		assert.Equal(t, 0, s.StatusDistribution[domain.StatusCompleted])
		assert.Equal(t, 1, s.PriorityDistribution[domain.PriorityHigh])
		assert.Equal(t, 0, s.PriorityDistribution[domain.PriorityCritical])
		assert.Equal(t, 50.0, s.AverageProgress)
	})

	t.Run("another requester sees their own breakdowns", func(t *testing.T) {
		s := stats.Compute("user")
		assert.Equal(t, 3, s.TotalProjects)
		assert.Equal(t, 1, s.UserProjects)
		assert.Equal(t, 1, s.StatusDistribution[domain.StatusCompleted])
		assert.Equal(t, 100.0, s.AverageProgress)
	})

	t.Run("average is rounded to two decimals", func(t *testing.T) {
		r := repository.NewProjectRepository()
		r.Seed(
			&domain.Project{Name: "A", Status: domain.StatusPlanning, Priority: domain.PriorityLow, Progress: 1, CreatedBy: "admin"},
			&domain.Project{Name: "B", Status: domain.StatusPlanning, Priority: domain.PriorityLow, Progress: 1, CreatedBy: "admin"},
			&domain.Project{Name: "C", Status: domain.StatusPlanning, Priority: domain.PriorityLow, Progress: 2, CreatedBy: "admin"},
		)
		s := NewStatsService(r).Compute("admin")
		assert.Equal(t, 1.33, s.AverageProgress)
	})
}
