package ports

import (
	"context"

	"github.com/jsamuelsen11/project-board/internal/domain/project"
)

// SnapshotPublisher defines the client port for pushing board snapshots to a
// downstream receiver (a webhook). Implemented by an outbound adapter.
type SnapshotPublisher interface {
	// Target identifies the receiver in logs and health output.
	Target() string

	// Publish delivers one snapshot. Implementations should respect context
	// cancellation and deadlines.
	// Returns domain.ErrUnavailable when the receiver cannot be reached.
	Publish(ctx context.Context, snapshot []project.Project) error
}
