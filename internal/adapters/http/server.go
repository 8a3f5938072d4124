package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/jsamuelsen11/project-board/internal/platform/config"
)

const (
	defaultShutdownTimeout   = 10 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
)

// Server owns the board's listener and its graceful shutdown.
type Server struct {
	srv    *http.Server
	logger *slog.Logger

	once  sync.Once
	ready chan struct{}
	addr  net.Addr
}

// NewServer configures a server for cfg. Nothing is bound until Start.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		srv: &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Handler:           handler,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
		},
		logger: logger,
		ready:  make(chan struct{}),
	}
}

// Start binds the configured address and serves until Shutdown, which makes
// it return nil.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}
	return s.Serve(ln)
}

// Serve serves on ln until Shutdown. Only the first call marks the server
// ready.
func (s *Server) Serve(ln net.Listener) error {
	s.once.Do(func() {
		s.addr = ln.Addr()
		close(s.ready)
	})
	s.logger.Info("serving board API", slog.String("addr", ln.Addr().String()))

	if err := s.srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving http: %w", err)
	}
	return nil
}

// Ready is closed once the server is listening.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// ListenAddr is the bound address, which differs from Addr when the
// configured port is 0. It is nil until Ready is closed.
func (s *Server) ListenAddr() net.Addr {
	select {
	case <-s.ready:
		return s.addr
	default:
		return nil
	}
}

// Addr is the configured listen address.
func (s *Server) Addr() string {
	return s.srv.Addr
}

// OnShutdown registers fn to run as Shutdown begins. Open event streams are
// ended this way; Shutdown does not wait for hijacked or streaming work on
// its own.
func (s *Server) OnShutdown(fn func()) {
	s.srv.RegisterOnShutdown(fn)
}

// Shutdown stops accepting connections and drains in-flight requests until
// ctx ends, or for at most 10 seconds when ctx has no deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultShutdownTimeout)
		defer cancel()
	}

	s.logger.Info("draining board API")
	return s.srv.Shutdown(ctx)
}
