package domain

import "time"

// Project statuses in lifecycle order.
const (
	StatusPlanning   = "planning"
	StatusInProgress = "in_progress"
	StatusTesting    = "testing"
	StatusCompleted  = "completed"
	StatusOnHold     = "on_hold"
	StatusCancelled  = "cancelled"
)

const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

// Statuses and Priorities list the allowed enum values. Order matters for
// stats output, which reports a zero-filled count per value.
var (
	Statuses   = []string{StatusPlanning, StatusInProgress, StatusTesting, StatusCompleted, StatusOnHold, StatusCancelled}
	Priorities = []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}
)

// Project represents a single tracked unit of work owned by a user.
// It is storage-agnostic and shared across repository and HTTP layers.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	Tags        []string  `json:"tags"`
	Progress    int       `json:"progress"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	CreatedBy   string    `json:"created_by"`
}

// Clone returns a deep copy so callers cannot mutate stored records.
func (p *Project) Clone() *Project {
	cp := *p
	cp.Tags = make([]string, len(p.Tags))
	copy(cp.Tags, p.Tags)
	return &cp
}

// CreateInput carries the caller-supplied fields for a new project.
// Empty Status and Priority fall back to their defaults.
type CreateInput struct {
	Name        string
	Description string
	Status      string
	Priority    string
	Tags        []string
}

// UpdateInput carries a partial update. Nil fields are left untouched.
type UpdateInput struct {
	Name        *string
	Description *string
	Status      *string
	Priority    *string
	Progress    *int
	Tags        *[]string
}

// Filter narrows List results. Search matches name or description
// case-insensitively; Status and Priority apply only when they are
// recognized enum values.
type Filter struct {
	Search   string
	Status   string
	Priority string
}

// Stats aggregates project counts for one requesting user. TotalProjects
// spans every owner; the remaining fields cover only the requester's own
// projects.
type Stats struct {
	TotalProjects        int            `json:"total_projects"`
	UserProjects         int            `json:"user_projects"`
	StatusDistribution   map[string]int `json:"status_distribution"`
	PriorityDistribution map[string]int `json:"priority_distribution"`
	AverageProgress      float64        `json:"average_progress"`
}
