package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/cx-tal-miterani/bluesky-booking/internal/booking"
	"github.com/cx-tal-miterani/bluesky-booking/pkg/logger"
	"github.com/cx-tal-miterani/bluesky-booking/shared/models"
	"github.com/google/uuid"
)

// Registry owns the live sessions of the process. It routes notifications
// from the booking flow to the session that started it.
type Registry struct {
	mu   sync.RWMutex
	apps map[string]*App
	deps Deps
}

func NewRegistry(deps Deps) *Registry {
	return &Registry{
		apps: make(map[string]*App),
		deps: deps.withDefaults(),
	}
}

// SetBooking installs the booking starter used by sessions opened afterwards.
func (r *Registry) SetBooking(s booking.Starter) {
	r.mu.Lock()
	r.deps.Booking = s
	r.mu.Unlock()
}

// Open mounts a session at path. An empty id creates a new session; a known
// id is remounted, the way a page reload re-reads the persisted flags. The
// registry lock is never held while waiting on a session loop.
func (r *Registry) Open(ctx context.Context, id, path string) (*App, State, error) {
	if id == "" {
		id = uuid.NewString()
	} else if _, err := uuid.Parse(id); err != nil {
		return nil, State{}, fmt.Errorf("%w: %s", ErrInvalidSessionID, id)
	}

	r.mu.RLock()
	a, ok := r.apps[id]
	deps := r.deps
	r.mu.RUnlock()
	if ok {
		st, err := a.Init(ctx, path)
		return a, st, err
	}

	a, err := New(ctx, id, path, deps)
	if err != nil {
		return nil, State{}, err
	}

	r.mu.Lock()
	if existing, ok := r.apps[id]; ok {
		r.mu.Unlock()
		a.Close(ctx)
		st, err := existing.Init(ctx, path)
		return existing, st, err
	}
	r.apps[id] = a
	r.mu.Unlock()
	deps.Log.Info("session opened", logger.String("sessionId", id), logger.String("path", path))

	st, err := a.State(ctx)
	return a, st, err
}

func (r *Registry) Get(id string) (*App, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.apps[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return a, nil
}

// Notify implements notices.Notifier.
func (r *Registry) Notify(sessionID string, n models.Notification) {
	a, err := r.Get(sessionID)
	if err != nil {
		r.deps.Log.Warning("dropping notification for unknown session",
			logger.String("sessionId", sessionID), logger.String("title", n.Title))
		return
	}
	a.Notify(n)
}

// Close stops every session.
func (r *Registry) Close(ctx context.Context) {
	r.mu.Lock()
	apps := r.apps
	r.apps = make(map[string]*App)
	r.mu.Unlock()

	for _, a := range apps {
		a.Close(ctx)
	}
}
