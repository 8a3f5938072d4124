package app

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/project-board/internal/app/fanout"
	"github.com/jsamuelsen11/project-board/internal/domain/board"
	"github.com/jsamuelsen11/project-board/internal/domain/project"
	"github.com/jsamuelsen11/project-board/internal/platform/logging"
	"github.com/jsamuelsen11/project-board/internal/ports"
)

// Broadcaster forwards board snapshots to every configured publisher.
//
// The store calls listeners synchronously, so the listener only parks the
// snapshot in a one-slot mailbox; a background goroutine does the delivery.
// When deliveries fall behind, intermediate snapshots are dropped and only
// the latest one is sent.
type Broadcaster struct {
	publishers []ports.SnapshotPublisher
	workers    int
	logger     *slog.Logger

	mailbox chan []project.Project
	sub     *board.Subscription
	cancel  context.CancelFunc
	done    chan struct{}
	once    sync.Once
}

// NewBroadcaster creates a Broadcaster that delivers to publishers with at
// most workers deliveries in flight. A nil logger discards output.
func NewBroadcaster(publishers []ports.SnapshotPublisher, workers int, logger *slog.Logger) *Broadcaster {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Broadcaster{
		publishers: publishers,
		workers:    workers,
		logger:     logger,
		mailbox:    make(chan []project.Project, 1),
		done:       make(chan struct{}),
	}
}

// Start subscribes to svc and begins delivering. ctx bounds the delivery
// goroutine; Close stops it early.
func (b *Broadcaster) Start(ctx context.Context, svc ports.BoardService) {
	ctx, b.cancel = context.WithCancel(ctx)
	b.sub = svc.Subscribe(b.enqueue)
	go b.run(ctx)
}

// Close unsubscribes and waits for an in-flight delivery to finish.
// Calling Close before Start is a no-op.
func (b *Broadcaster) Close() {
	b.once.Do(func() {
		if b.sub == nil {
			return
		}
		b.sub.Unsubscribe()
		b.cancel()
		<-b.done
	})
}

// enqueue replaces any undelivered snapshot with the newest one. It never
// blocks the store.
func (b *Broadcaster) enqueue(snapshot []project.Project) {
	for {
		select {
		case b.mailbox <- snapshot:
			return
		default:
		}
		select {
		case <-b.mailbox:
		default:
		}
	}
}

func (b *Broadcaster) run(ctx context.Context) {
	defer close(b.done)
	for {
		select {
		case <-ctx.Done():
			return
		case snapshot := <-b.mailbox:
			b.deliver(ctx, snapshot)
		}
	}
}

func (b *Broadcaster) deliver(ctx context.Context, snapshot []project.Project) {
	errs := fanout.Each(ctx, b.workers, b.publishers,
		func(ctx context.Context, p ports.SnapshotPublisher) error {
			return p.Publish(ctx, snapshot)
		},
	)

	for i, err := range errs {
		if err != nil {
			b.logger.ErrorContext(ctx, "snapshot delivery failed",
				slog.String("operation", "Broadcaster.deliver"),
				slog.String("target", b.publishers[i].Target()),
				slog.Int("count", len(snapshot)),
				slog.Any("error", err),
			)
			continue
		}
		b.logger.DebugContext(ctx, "snapshot delivered",
			slog.String("target", b.publishers[i].Target()),
			slog.Int("count", len(snapshot)),
		)
	}
}
