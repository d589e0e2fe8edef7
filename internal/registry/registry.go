// Package registry holds the activity-name -> activity-record mapping and
// the three operations the API exposes over it: list, signup, unregister.
//
// The registry is seeded once at startup and lives for the process's
// lifetime. Activity names never change at runtime; only participant
// rosters mutate, under a RWMutex so concurrent signups cannot lose
// updates.
package registry

import (
	"sync"

	apperrors "github.com/anastasiia-melnyk-softserve/skills-getting-started-with-github-copilot/internal/common/errors"
	"github.com/anastasiia-melnyk-softserve/skills-getting-started-with-github-copilot/internal/common/logger"
	"github.com/anastasiia-melnyk-softserve/skills-getting-started-with-github-copilot/internal/models"
	"github.com/anastasiia-melnyk-softserve/skills-getting-started-with-github-copilot/pkg/seed"
)

type Registry struct {
	mu         sync.RWMutex
	activities map[string]*models.Activity
	logger     logger.Logger
}

// New creates a registry populated with the built-in activity seed.
func New(log logger.Logger) *Registry {
	return &Registry{
		activities: defaultActivities(),
		logger:     log.WithFields(map[string]interface{}{"component": "registry"}),
	}
}

// NewFromSeed creates a registry populated from a validated seed file.
func NewFromSeed(f *seed.File, log logger.Logger) *Registry {
	activities := make(map[string]*models.Activity, len(f.Activities))
	for name, a := range f.Activities {
		participants := make([]string, len(a.Participants))
		copy(participants, a.Participants)
		activities[name] = &models.Activity{
			Description:     a.Description,
			Schedule:        a.Schedule,
			MaxParticipants: a.MaxParticipants,
			Participants:    participants,
		}
	}
	return &Registry{
		activities: activities,
		logger:     log.WithFields(map[string]interface{}{"component": "registry"}),
	}
}

// List returns a copy of the full mapping. Always succeeds.
func (r *Registry) List() map[string]models.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]models.Activity, len(r.activities))
	for name, a := range r.activities {
		out[name] = a.Clone()
	}
	return out
}

// Get returns a copy of one activity record.
func (r *Registry) Get(name string) (models.Activity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.activities[name]
	if !ok {
		return models.Activity{}, false
	}
	return a.Clone(), true
}

// Signup appends email to the activity's roster, preserving arrival order.
// Capacity is intentionally not checked; see DESIGN.md.
func (r *Registry) Signup(name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return apperrors.NewActivityNotFoundError()
	}
	if a.HasParticipant(email) {
		return apperrors.NewAlreadySignedUpError(email)
	}

	a.Participants = append(a.Participants, email)
	r.logger.Info("participant signed up", map[string]interface{}{
		"activity": name,
		"email":    email,
		"roster":   len(a.Participants),
	})
	return nil
}

// Unregister removes exactly one occurrence of email from the roster.
func (r *Registry) Unregister(name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return apperrors.NewActivityNotFoundError()
	}

	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
			r.logger.Info("participant unregistered", map[string]interface{}{
				"activity": name,
				"email":    email,
				"roster":   len(a.Participants),
			})
			return nil
		}
	}
	return apperrors.NewNotRegisteredError(email)
}

// Snapshot captures the full registry state so tests can restore it.
func (r *Registry) Snapshot() map[string]models.Activity {
	return r.List()
}

// Restore replaces the registry state with a previously taken snapshot.
func (r *Registry) Restore(snap map[string]models.Activity) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activities := make(map[string]*models.Activity, len(snap))
	for name, a := range snap {
		clone := a.Clone()
		activities[name] = &clone
	}
	r.activities = activities
}
