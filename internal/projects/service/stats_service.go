package service

import (
	"math"

	"github.com/projectpulse/project-pulse-backend/internal/projects/domain"
	"github.com/projectpulse/project-pulse-backend/internal/projects/repository"
)

// StatsService derives aggregate numbers from the project store.
type StatsService struct {
	repo *repository.ProjectRepository
}

// NewStatsService creates a new stats service
func NewStatsService(repo *repository.ProjectRepository) *StatsService {
	return &StatsService{
		repo: repo,
	}
}

// Compute builds the stats block for one requesting user. The total spans
// every owner; the distributions and the progress average cover only the
// requester's own projects.
func (s *StatsService) Compute(requester string) *domain.Stats {
	all := s.repo.All()

	stats := &domain.Stats{
		TotalProjects:        len(all),
		StatusDistribution:   make(map[string]int, len(domain.Statuses)),
		PriorityDistribution: make(map[string]int, len(domain.Priorities)),
	}
	for _, status := range domain.Statuses {
		stats.StatusDistribution[status] = 0
	}
	for _, priority := range domain.Priorities {
		stats.PriorityDistribution[priority] = 0
	}

	progressSum := 0
	for _, p := range all {
		if p.CreatedBy != requester {
			continue
		}
		stats.UserProjects++
		stats.StatusDistribution[p.Status]++
		stats.PriorityDistribution[p.Priority]++
		progressSum += p.Progress
	}

	if stats.UserProjects > 0 {
		avg := float64(progressSum) / float64(stats.UserProjects)
		stats.AverageProgress = math.Round(avg*100) / 100
	}

	return stats
}
