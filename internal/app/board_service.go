// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/project-board/internal/domain"
	"github.com/jsamuelsen11/project-board/internal/domain/board"
	"github.com/jsamuelsen11/project-board/internal/domain/project"
	"github.com/jsamuelsen11/project-board/internal/platform/telemetry"
	"github.com/jsamuelsen11/project-board/internal/ports"
)

// Compile-time check that BoardService implements ports.BoardService.
var _ ports.BoardService = (*BoardService)(nil)

// Mutation results recorded on the board.mutations counter.
const (
	resultCreated = "created"
	resultMoved   = "moved"
	resultNoop    = "noop"
	resultInvalid = "invalid"
)

// BoardService implements ports.BoardService on top of the in-memory store.
// It checks form input against the configured rules before anything reaches
// the store, logs each use case and counts mutations.
type BoardService struct {
	store   *board.Store
	columns *ColumnView
	rules   project.InputRules
	logger  *slog.Logger
	metrics *telemetry.Metrics
}

// ServiceOption configures a BoardService.
type ServiceOption func(*BoardService)

// WithMetrics records board.mutations on m. Without it no metrics are recorded.
func WithMetrics(m *telemetry.Metrics) ServiceOption {
	return func(s *BoardService) {
		s.metrics = m
	}
}

// NewBoardService creates a BoardService over store and subscribes a column
// projection to it. A nil logger discards output.
func NewBoardService(store *board.Store, rules project.InputRules, logger *slog.Logger, opts ...ServiceOption) *BoardService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &BoardService{
		store:   store,
		columns: NewColumnView(store),
		rules:   rules,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListProjects returns the board in insertion order, optionally limited to
// one status.
func (s *BoardService) ListProjects(ctx context.Context, status project.Status) ([]project.Project, error) {
	s.logger.DebugContext(ctx, "listing projects", slog.String("status", string(status)))

	snapshot := s.store.Snapshot()
	if status == "" {
		return snapshot, nil
	}
	if !status.IsValid() {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"status": invalidStatusMessage(status),
		}}
	}
	return project.FilterByStatus(snapshot, status), nil
}

// GetProject returns a single project by ID.
func (s *BoardService) GetProject(ctx context.Context, id int64) (*project.Project, error) {
	s.logger.DebugContext(ctx, "fetching project", slog.Int64("id", id))

	p, ok := s.store.Project(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

// CreateProject validates a form submission and adds it to the board as an
// active project. Invalid input never reaches the store.
func (s *BoardService) CreateProject(ctx context.Context, in project.Input) (*project.Project, error) {
	s.logger.InfoContext(ctx, "creating project", slog.String("title", in.Title))

	if err := in.Validate(s.rules); err != nil {
		s.logger.InfoContext(ctx, "rejected project input",
			slog.String("operation", "CreateProject"),
			slog.Any("error", err),
		)
		s.recordMutation(ctx, "add", resultInvalid)
		return nil, err
	}

	p := s.store.AddProject(in.Title, in.Description, in.People)
	s.recordMutation(ctx, "add", resultCreated)

	return &p, nil
}

// MoveProject changes a project's status. An unknown ID or an unchanged
// status leaves the board untouched and returns moved == false.
func (s *BoardService) MoveProject(ctx context.Context, id int64, status project.Status) (*project.Project, bool, error) {
	s.logger.InfoContext(ctx, "moving project",
		slog.Int64("id", id),
		slog.String("status", string(status)),
	)

	if !status.IsValid() {
		s.recordMutation(ctx, "move", resultInvalid)
		return nil, false, &domain.ValidationError{Fields: map[string]string{
			"status": invalidStatusMessage(status),
		}}
	}

	if !s.store.MoveProject(id, status) {
		s.logger.DebugContext(ctx, "move changed nothing",
			slog.String("operation", "MoveProject"),
			slog.Int64("id", id),
		)
		s.recordMutation(ctx, "move", resultNoop)
		return nil, false, nil
	}
	s.recordMutation(ctx, "move", resultMoved)

	p, ok := s.store.Project(id)
	if !ok {
		return nil, true, nil
	}
	return &p, true, nil
}

// Columns returns the current column projection.
func (s *BoardService) Columns(_ context.Context) ports.Columns {
	return s.columns.Columns()
}

// Subscribe registers fn with the underlying store.
func (s *BoardService) Subscribe(fn board.Listener) *board.Subscription {
	return s.store.AddListener(fn)
}

func (s *BoardService) recordMutation(ctx context.Context, operation, result string) {
	if s.metrics == nil {
		return
	}
	s.metrics.BoardMutations.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrOperation.String(operation),
		telemetry.AttrResult.String(result),
	))
}

func invalidStatusMessage(status project.Status) string {
	return fmt.Sprintf("must be one of %s, %s; got %q", project.StatusActive, project.StatusFinished, status)
}
