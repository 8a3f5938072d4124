// Package board holds the authoritative, in-memory list of projects and
// broadcasts every mutation to registered listeners.
//
// A process owns exactly one Store, built by the composition root and handed
// to every adapter that reads or changes the board:
//
//	store := board.NewStore()
//	sub := store.AddListener(func(snapshot []project.Project) { ... })
//	defer sub.Unsubscribe()
//
//	p := store.AddProject("Launch site", "Ship the marketing site", 3)
//	store.MoveProject(p.ID, project.StatusFinished)
//
// Store operations never fail. Moving an unknown id, or moving a project to
// the status it already has, changes nothing and notifies nobody.
package board

import (
	"slices"
	"sync"
	"time"

	"github.com/jsamuelsen11/project-board/internal/domain/project"
)

// Store is the board's single source of truth. It is safe for concurrent use;
// mutations are serialized and each one notifies listeners before returning.
type Store struct {
	// notifyMu is held from mutation through the last listener call so that
	// snapshots are delivered in mutation order.
	notifyMu sync.Mutex

	mu       sync.RWMutex
	projects []project.Project
	lastID   int64

	listeners listenerSet
	now       func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source used to derive project ids and creation
// times. Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates an empty board.
func NewStore(opts ...Option) *Store {
	s := &Store{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddProject appends a new active project and notifies every listener with
// the full list. It performs no validation; callers check input first.
// The returned value is a copy of the stored project.
func (s *Store) AddProject(title, description string, people int) project.Project {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	now := s.now()
	p := project.Project{
		ID:          s.nextID(now),
		Title:       title,
		Description: description,
		People:      people,
		Status:      project.StatusActive,
		CreatedAt:   now,
	}
	s.projects = append(s.projects, p)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.listeners.notify(snapshot)
	return p
}

// MoveProject sets the status of the first project with the given id and
// notifies listeners. It reports whether anything changed: an unknown id or
// an unchanged status is a silent no-op.
func (s *Store) MoveProject(id int64, status project.Status) bool {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	idx := slices.IndexFunc(s.projects, func(p project.Project) bool { return p.ID == id })
	if idx == -1 || s.projects[idx].Status == status {
		s.mu.Unlock()
		return false
	}
	s.projects[idx].Status = status
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.listeners.notify(snapshot)
	return true
}

// AddListener registers fn for every future mutation. fn is not called with
// the current state. Listeners run synchronously, in registration order, on
// the goroutine that made the change; they may call Snapshot but must not
// mutate the store.
func (s *Store) AddListener(fn Listener) *Subscription {
	return s.listeners.add(fn)
}

// Snapshot returns a copy of the current project list.
func (s *Store) Snapshot() []project.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Project returns a copy of the project with the given id.
func (s *Store) Project(id int64) (project.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := slices.IndexFunc(s.projects, func(p project.Project) bool { return p.ID == id })
	if idx == -1 {
		return project.Project{}, false
	}
	return s.projects[idx], true
}

// snapshotLocked copies the list. Must be called with s.mu held.
func (s *Store) snapshotLocked() []project.Project {
	out := make([]project.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// nextID derives an id from the clock in milliseconds, bumped past the last
// id issued so that ids stay unique and increasing. Must be called with s.mu held.
func (s *Store) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}
