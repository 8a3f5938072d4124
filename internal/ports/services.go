package ports

import (
	"context"

	"github.com/jsamuelsen11/project-board/internal/domain/board"
	"github.com/jsamuelsen11/project-board/internal/domain/project"
)

// BoardService defines the service port for the project board.
// Implemented by the application layer; called by inbound adapters.
type BoardService interface {
	// ListProjects returns a snapshot of the board. A non-empty status keeps
	// only projects in that column.
	// Returns domain.ErrValidation if status is set but unknown.
	ListProjects(ctx context.Context, status project.Status) ([]project.Project, error)

	// GetProject returns a single project by ID.
	// Returns domain.ErrNotFound if no project has that ID.
	GetProject(ctx context.Context, id int64) (*project.Project, error)

	// CreateProject validates a form submission and, on success, adds an
	// active project to the board.
	// Returns domain.ErrValidation (as *domain.ValidationError) on bad input;
	// nothing is created in that case.
	CreateProject(ctx context.Context, in project.Input) (*project.Project, error)

	// MoveProject moves a project to another column. moved is false when the
	// ID is unknown or the project already has that status; neither case is
	// an error.
	// Returns domain.ErrValidation if status is not a known column.
	MoveProject(ctx context.Context, id int64, status project.Status) (p *project.Project, moved bool, err error)

	// Columns returns the board split into one list per status, in display order.
	Columns(ctx context.Context) Columns

	// Subscribe registers fn for every future board snapshot.
	Subscribe(fn board.Listener) *board.Subscription
}

// Columns is the board as displayed: one list per status.
type Columns struct {
	Active   []project.Project
	Finished []project.Project
}

// Count returns the total number of projects across all columns.
func (c Columns) Count() int {
	return len(c.Active) + len(c.Finished)
}
