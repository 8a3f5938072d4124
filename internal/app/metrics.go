package app

import (
	"context"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/project-board/internal/domain/board"
	"github.com/jsamuelsen11/project-board/internal/domain/project"
	"github.com/jsamuelsen11/project-board/internal/platform/telemetry"
)

// NewProjectGaugeListener returns a listener that records the number of
// projects per status on the board.projects gauge after every change.
func NewProjectGaugeListener(m *telemetry.Metrics) board.Listener {
	return func(snapshot []project.Project) {
		counts := make(map[project.Status]int64, len(project.Statuses()))
		for _, p := range snapshot {
			counts[p.Status]++
		}

		ctx := context.Background()
		for _, s := range project.Statuses() {
			m.BoardProjects.Record(ctx, counts[s],
				metric.WithAttributes(telemetry.AttrStatus.String(string(s))),
			)
		}
	}
}
