package repository

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/projectpulse/project-pulse-backend/internal/projects/domain"
)

// ProjectRepository is the in-memory project store. All operations,
// including the name-uniqueness check, run under one mutex so that two
// concurrent creates with the same name cannot both succeed.
type ProjectRepository struct {
	mu       sync.RWMutex
	projects []*domain.Project

	// fault simulates an unreliable backend on create. When it returns
	// true the create fails with ErrTransient and no state changes.
	fault func() bool
}

// Option configures a ProjectRepository.
type Option func(*ProjectRepository)

// WithFaultHook installs the create fault-injection hook. A nil hook
// disables injection entirely.
func WithFaultHook(hook func() bool) Option {
	return func(r *ProjectRepository) {
		r.fault = hook
	}
}

// NewProjectRepository creates an empty project store.
func NewProjectRepository(opts ...Option) *ProjectRepository {
	r := &ProjectRepository{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Create validates the input, enforces case-insensitive name uniqueness and
// inserts a new project owned by the given user. Validation failures surface
// as *domain.ValidationError in field order: name, description, status,
// priority, tags.
func (r *ProjectRepository) Create(input domain.CreateInput, owner string) (*domain.Project, error) {
	name, err := domain.ValidateName(input.Name)
	if err != nil {
		return nil, err
	}
	desc, err := domain.ValidateDescription(input.Description)
	if err != nil {
		return nil, err
	}
	status := input.Status
	if status == "" {
		status = domain.StatusPlanning
	}
	if status, err = domain.ValidateStatus(status); err != nil {
		return nil, err
	}
	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if priority, err = domain.ValidatePriority(priority); err != nil {
		return nil, err
	}
	tags, err := domain.ValidateTags(input.Tags)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.nameTaken(name, "") {
		return nil, domain.ErrDuplicateName
	}

	if r.fault != nil && r.fault() {
		return nil, domain.ErrTransient
	}

	now := time.Now().UTC()
	p := &domain.Project{
		ID:          uuid.New().String(),
		Name:        name,
		Description: desc,
		Status:      status,
		Priority:    priority,
		Tags:        tags,
		Progress:    0,
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedBy:   owner,
	}
	r.projects = append(r.projects, p)

	return p.Clone(), nil
}

// Get returns the project with the given id, or ErrNotFound.
func (r *ProjectRepository) Get(id string) (*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	return r.projects[i].Clone(), nil
}

// List returns the projects matching the filter in insertion order.
// Unrecognized status/priority filter values are silently ignored.
func (r *ProjectRepository) List(f domain.Filter) []*domain.Project {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	status, statusOK := memberOf(f.Status, domain.Statuses)
	priority, priorityOK := memberOf(f.Priority, domain.Priorities)

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Project, 0, len(r.projects))
	for _, p := range r.projects {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if statusOK && p.Status != status {
			continue
		}
		if priorityOK && p.Priority != priority {
			continue
		}
		out = append(out, p.Clone())
	}
	return out
}

// Update applies a partial update to the project. Only the owner may update.
// Every present field is validated against a staged copy before anything is
// written back, so a single invalid field leaves the record untouched.
func (r *ProjectRepository) Update(id string, changes domain.UpdateInput, requester string) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	stored := r.projects[i]
	if stored.CreatedBy != requester {
		return nil, domain.ErrForbidden
	}

	staged := stored.Clone()

	if changes.Name != nil {
		name, err := domain.ValidateName(*changes.Name)
		if err != nil {
			return nil, err
		}
		if r.nameTaken(name, id) {
			return nil, domain.ErrDuplicateName
		}
		staged.Name = name
	}
	if changes.Description != nil {
		desc, err := domain.ValidateDescription(*changes.Description)
		if err != nil {
			return nil, err
		}
		staged.Description = desc
	}
	if changes.Status != nil {
		status, err := domain.ValidateStatus(*changes.Status)
		if err != nil {
			return nil, err
		}
		staged.Status = status
	}
	if changes.Priority != nil {
		priority, err := domain.ValidatePriority(*changes.Priority)
		if err != nil {
			return nil, err
		}
		staged.Priority = priority
	}
	if changes.Progress != nil {
		if err := domain.ValidateProgress(*changes.Progress); err != nil {
			return nil, err
		}
		staged.Progress = *changes.Progress
	}
	if changes.Tags != nil {
		tags, err := domain.ValidateTags(*changes.Tags)
		if err != nil {
			return nil, err
		}
		staged.Tags = tags
	}

	staged.UpdatedAt = time.Now().UTC()
	r.projects[i] = staged

	return staged.Clone(), nil
}

// Delete removes the project entirely. Only the owner may delete.
func (r *ProjectRepository) Delete(id, requester string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	if r.projects[i].CreatedBy != requester {
		return domain.ErrForbidden
	}

	r.projects = append(r.projects[:i], r.projects[i+1:]...)
	return nil
}

// All returns a snapshot of every project in insertion order.
func (r *ProjectRepository) All() []*domain.Project {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Project, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, p.Clone())
	}
	return out
}

// OwnedBy returns the projects created by the given user, in insertion order.
func (r *ProjectRepository) OwnedBy(username string) []*domain.Project {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Project, 0)
	for _, p := range r.projects {
		if p.CreatedBy == username {
			out = append(out, p.Clone())
		}
	}
	return out
}

// Count returns the number of stored projects.
func (r *ProjectRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.projects)
}

// Seed inserts pre-built records directly, filling in ids and timestamps
// when missing. It bypasses validation and the fault hook; intended for
// demo data at startup only.
func (r *ProjectRepository) Seed(projects ...*domain.Project) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	for _, p := range projects {
		cp := p.Clone()
		if cp.ID == "" {
			cp.ID = uuid.New().String()
		}
		if cp.CreatedAt.IsZero() {
			cp.CreatedAt = now
		}
		if cp.UpdatedAt.IsZero() {
			cp.UpdatedAt = cp.CreatedAt
		}
		r.projects = append(r.projects, cp)
	}
}

// indexOf must be called with the lock held.
func (r *ProjectRepository) indexOf(id string) int {
	for i, p := range r.projects {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// nameTaken must be called with the lock held. excludeID skips the project
// being renamed so an update can keep its own name.
func (r *ProjectRepository) nameTaken(name, excludeID string) bool {
	for _, p := range r.projects {
		if p.ID != excludeID && strings.EqualFold(p.Name, name) {
			return true
		}
	}
	return false
}

func memberOf(value string, allowed []string) (string, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return "", false
	}
	for _, a := range allowed {
		if v == a {
			return v, true
		}
	}
	return "", false
}
