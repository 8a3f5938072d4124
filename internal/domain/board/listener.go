package board

import (
	"sync"

	"github.com/jsamuelsen11/project-board/internal/domain/project"
)

// Listener receives a snapshot of the whole board after every mutation.
// The slice is the listener's own copy.
type Listener func(snapshot []project.Project)

// Subscription is the handle returned by Store.AddListener.
type Subscription struct {
	set  *listenerSet
	once sync.Once
}

// Unsubscribe removes the listener. Calling it more than once is harmless.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		s.set.remove(s)
	})
}

type listenerEntry struct {
	sub *Subscription
	fn  Listener
}

// listenerSet keeps listeners in registration order.
type listenerSet struct {
	mu      sync.RWMutex
	entries []listenerEntry
}

func (ls *listenerSet) add(fn Listener) *Subscription {
	sub := &Subscription{set: ls}

	ls.mu.Lock()
	defer ls.mu.Unlock()
	ls.entries = append(ls.entries, listenerEntry{sub: sub, fn: fn})
	return sub
}

func (ls *listenerSet) remove(sub *Subscription) {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	for i, e := range ls.entries {
		if e.sub == sub {
			ls.entries = append(ls.entries[:i:i], ls.entries[i+1:]...)
			return
		}
	}
}

// notify hands each listener its own copy of snapshot. The entries are
// copied under the read lock so listeners may unsubscribe while being called.
func (ls *listenerSet) notify(snapshot []project.Project) {
	ls.mu.RLock()
	entries := make([]listenerEntry, len(ls.entries))
	copy(entries, ls.entries)
	ls.mu.RUnlock()

	for _, e := range entries {
		own := make([]project.Project, len(snapshot))
		copy(own, snapshot)
		e.fn(own)
	}
}
