// Package registry owns the canonical state of every alert. It is the only
// mutable shared resource in the core; all access goes through one lock.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/yatriai/sos-alerts/internal/models"
)

var (
	ErrDuplicateID       = errors.New("alert id already exists")
	ErrNotFound          = errors.New("alert not found")
	ErrIllegalTransition = errors.New("illegal status transition")
)

// transitions is the lifecycle state machine. resolved and cancelled are
// terminal. A transition to the current status is not listed, so no-op
// "changes" are illegal too.
var transitions = map[models.AlertStatus][]models.AlertStatus{
	models.StatusActive:       {models.StatusAcknowledged, models.StatusCancelled},
	models.StatusAcknowledged: {models.StatusResolved, models.StatusCancelled},
	models.StatusResolved:     {},
	models.StatusCancelled:    {},
}

func canTransition(from, to models.AlertStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Registry struct {
	mu     sync.RWMutex
	alerts map[string]*models.Alert
}

func New() *Registry {
	return &Registry{
		alerts: make(map[string]*models.Alert),
	}
}

// Create inserts a new alert. The registry stores its own copy, so later
// mutation of the caller's value cannot bypass the lock.
func (r *Registry) Create(a *models.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.alerts[a.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, a.ID)
	}

	stored := *a
	stored.Responders = append([]models.ResponderAck(nil), a.Responders...)
	r.alerts[a.ID] = &stored
	return nil
}

// UpdateStatus atomically moves an alert to the next status and appends the
// acting responder. It returns a snapshot of the updated alert and the status
// it held before the change; callers use the previous status to decide whether
// a genuine change happened.
func (r *Registry) UpdateStatus(id string, next models.AlertStatus, actor string) (models.Alert, models.AlertStatus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.alerts[id]
	if !ok {
		return models.Alert{}, "", fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	prev := a.Status
	if !canTransition(prev, next) {
		return models.Alert{}, "", fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, prev, next)
	}

	a.Status = next
	if actor != "" {
		a.Responders = append(a.Responders, models.ResponderAck{
			Name:   actor,
			Status: next,
			At:     time.Now().UTC(),
		})
	}

	return snapshot(a), prev, nil
}

// Get returns a consistent snapshot of one alert.
func (r *Registry) Get(id string) (models.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.alerts[id]
	if !ok {
		return models.Alert{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return snapshot(a), nil
}

// ListByReporter returns snapshots of all alerts raised by a reporter, in
// creation order.
func (r *Registry) ListByReporter(reporterID string) []models.Alert {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Alert
	for _, a := range r.alerts {
		if a.ReporterID == reporterID {
			out = append(out, snapshot(a))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// Len reports how many alerts the registry holds.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.alerts)
}

func snapshot(a *models.Alert) models.Alert {
	out := *a
	out.Responders = append([]models.ResponderAck(nil), a.Responders...)
	return out
}
