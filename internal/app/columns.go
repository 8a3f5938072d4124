package app

import (
	"sync"

	"github.com/jsamuelsen11/project-board/internal/domain/board"
	"github.com/jsamuelsen11/project-board/internal/domain/project"
	"github.com/jsamuelsen11/project-board/internal/ports"
)

// ColumnView keeps the board split by status, re-rendered from every store
// snapshot. Each column lists its projects in insertion order.
type ColumnView struct {
	mu      sync.RWMutex
	columns ports.Columns
	sub     *board.Subscription
}

// NewColumnView subscribes to store and seeds the view from its current
// contents.
func NewColumnView(store *board.Store) *ColumnView {
	v := &ColumnView{}
	v.sub = store.AddListener(v.render)
	v.render(store.Snapshot())
	return v
}

// Columns returns a copy of the current columns.
func (v *ColumnView) Columns() ports.Columns {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return ports.Columns{
		Active:   append([]project.Project{}, v.columns.Active...),
		Finished: append([]project.Project{}, v.columns.Finished...),
	}
}

// Close stops the view from receiving further snapshots.
func (v *ColumnView) Close() {
	v.sub.Unsubscribe()
}

func (v *ColumnView) render(snapshot []project.Project) {
	cols := SplitColumns(snapshot)

	v.mu.Lock()
	v.columns = cols
	v.mu.Unlock()
}

// SplitColumns partitions a snapshot into one list per status.
func SplitColumns(snapshot []project.Project) ports.Columns {
	return ports.Columns{
		Active:   project.FilterByStatus(snapshot, project.StatusActive),
		Finished: project.FilterByStatus(snapshot, project.StatusFinished),
	}
}
