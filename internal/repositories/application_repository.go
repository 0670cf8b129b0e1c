package repositories

import (
	"sync"
	"time"

	"artbook_backend/internal/models"
	"artbook_backend/internal/wizard"
)

// Application is one onboarding wizard session.
type Application struct {
	ID           string
	Wizard       *wizard.Wizard
	Notification *models.Notification
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ApplicationRepository keeps wizard sessions for the lifetime of the
// process. Update marks the session as touched and runs fn under the store
// lock, so every change to a session is serialized.
type ApplicationRepository interface {
	Create(app *Application) error
	Update(id string, fn func(app *Application) error) error
	View(id string, fn func(app *Application)) error
	Delete(id string) error
	DeleteIdleSince(cutoff time.Time) []string
	Count() int
}

type MemoryApplicationRepository struct {
	mu   sync.Mutex
	apps map[string]*Application
	now  func() time.Time
}

func NewMemoryApplicationRepository() ApplicationRepository {
	return &MemoryApplicationRepository{
		apps: make(map[string]*Application),
		now:  time.Now,
	}
}

func (r *MemoryApplicationRepository) Create(app *Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	app.CreatedAt = now
	app.UpdatedAt = now
	r.apps[app.ID] = app
	return nil
}

func (r *MemoryApplicationRepository) Update(id string, fn func(app *Application) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	app, ok := r.apps[id]
	if !ok {
		return ErrApplicationNotFound
	}
	app.UpdatedAt = r.now()
	return fn(app)
}

func (r *MemoryApplicationRepository) View(id string, fn func(app *Application)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	app, ok := r.apps[id]
	if !ok {
		return ErrApplicationNotFound
	}
	fn(app)
	return nil
}

func (r *MemoryApplicationRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.apps[id]; !ok {
		return ErrApplicationNotFound
	}
	delete(r.apps, id)
	return nil
}

// DeleteIdleSince drops sessions not touched since cutoff, except those
// with a submission in flight, and returns their IDs.
func (r *MemoryApplicationRepository) DeleteIdleSince(cutoff time.Time) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed []string
	for id, app := range r.apps {
		if app.UpdatedAt.Before(cutoff) && !app.Wizard.Submitting() {
			delete(r.apps, id)
			removed = append(removed, id)
		}
	}
	return removed
}

func (r *MemoryApplicationRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.apps)
}
