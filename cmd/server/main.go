// Package main is the entry point for the project board. It wires all
// dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/project-board/internal/adapters/http"
	"github.com/jsamuelsen11/project-board/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/project-board/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/project-board/internal/adapters/clients/webhook"
	"github.com/jsamuelsen11/project-board/internal/adapters/mcp"
	"github.com/jsamuelsen11/project-board/internal/app"
	"github.com/jsamuelsen11/project-board/internal/domain/board"
	"github.com/jsamuelsen11/project-board/internal/domain/project"
	"github.com/jsamuelsen11/project-board/internal/platform/config"
	"github.com/jsamuelsen11/project-board/internal/platform/health"
	"github.com/jsamuelsen11/project-board/internal/platform/logging"
	"github.com/jsamuelsen11/project-board/internal/platform/telemetry"
	"github.com/jsamuelsen11/project-board/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	healthCheckTimeout    = 2 * time.Second
)

// boardCheck names the readiness check that takes the service out of
// rotation when it fails. Webhook checks only mark it degraded.
const boardCheck = "board"

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	// Open streams (SSE clients, MCP sessions) end when streams is canceled,
	// which happens as soon as shutdown starts.
	streams, stopStreams := context.WithCancel(ctx)
	defer stopStreams()

	registerDependencies(injector, cfg, logger, streams)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}
	server.OnShutdown(stopStreams)

	registry := do.MustInvoke[ports.HealthRegistry](injector)
	svc := do.MustInvoke[ports.BoardService](injector)
	registry.Register(health.Func(boardCheck, func(ctx context.Context) error {
		_ = svc.Columns(ctx)
		return nil
	}))

	if cfg.Webhook.Enabled {
		publishers := do.MustInvoke[[]*webhook.Publisher](injector)
		targets := make([]ports.SnapshotPublisher, len(publishers))
		for i, p := range publishers {
			registry.Register(p)
			targets[i] = p
		}

		broadcaster := app.NewBroadcaster(targets, cfg.Webhook.Workers, logger)
		broadcaster.Start(ctx, svc)
		defer broadcaster.Close()

		logger.Info("webhook delivery enabled", slog.Int("targets", len(targets)))
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	var errs []error
	if err := server.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("server shutdown: %w", err))
	}

	<-serverErr

	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		errs = append(errs, fmt.Errorf("telemetry shutdown: %w", err))
	}

	if err := errors.Join(errs...); err != nil {
		logger.Error("shutdown finished with errors", slog.Any("error", err))
		return err
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func inputRules(cfg config.BoardConfig) project.InputRules {
	return project.InputRules{
		TitleMaxLength:       cfg.TitleMaxLength,
		DescriptionMinLength: cfg.DescriptionMinLength,
		PeopleMin:            cfg.PeopleMin,
		PeopleMax:            cfg.PeopleMax,
	}
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger, streams context.Context) {
	// The one store for the life of the process. do.Provide is lazy, so it
	// is built on first resolution.
	do.Provide(injector, func(i do.Injector) (*board.Store, error) {
		store := board.NewStore()
		if metrics := do.MustInvoke[*telemetry.Metrics](i); metrics != nil {
			store.AddListener(app.NewProjectGaugeListener(metrics))
		}
		return store, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.BoardService, error) {
		store := do.MustInvoke[*board.Store](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewBoardService(store, inputRules(cfg.Board), logger, app.WithMetrics(metrics)), nil
	})

	do.Provide(injector, func(i do.Injector) ([]*webhook.Publisher, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return webhook.NewFromConfig(&cfg.Webhook, metrics, logger)
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(healthCheckTimeout)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ProjectHandler, error) {
		svc := do.MustInvoke[ports.BoardService](i)
		return handlers.NewProjectHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.BoardHandler, error) {
		svc := do.MustInvoke[ports.BoardService](i)
		return handlers.NewBoardHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry, boardCheck), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		routes := adapthttp.Routes{
			Projects: do.MustInvoke[*handlers.ProjectHandler](i),
			Board:    do.MustInvoke[*handlers.BoardHandler](i),
			Health:   do.MustInvoke[*handlers.HealthHandler](i),
			MCPPath:  cfg.MCP.Path,
		}
		if cfg.MCP.Enabled {
			svc := do.MustInvoke[ports.BoardService](i)
			server := mcp.NewServer(svc, mcp.Config{Version: version, Logger: logger})
			routes.MCP = mcp.NewHTTPHandler(server)
		}

		metrics := do.MustInvoke[*telemetry.Metrics](i)
		opts := adapthttp.RouterOptions{
			RequestTimeout: cfg.Server.RequestTimeout,
			Streams:        streams,
		}

		return adapthttp.NewRouter(routes, opts,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
