package server

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-chain-keeper/internal/config"
	"github.com/MKhiriev/go-chain-keeper/internal/handler"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
)

type server struct {
	httpServer *httpServer
	background Background
	logger     *logger.Logger

	stopOnce sync.Once
	stop     chan struct{}
}

// NewServer creates the coordinator server. background may be nil.
func NewServer(handlers *handler.Handlers, background Background, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.Address == "" {
		return nil, errNothingToServe
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		background: background,
		logger:     logger,
		stop:       make(chan struct{}),
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

// Shutdown makes a running RunServer return. It is safe to call more than
// once.
func (s *server) Shutdown() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// run serves until ctx is cancelled or Shutdown is called, then drains the
// HTTP server and stops the background jobs.
func (s *server) run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.server.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpServer.server.Addr, err)
	}

	return s.runOn(ctx, ln)
}

func (s *server) runOn(ctx context.Context, ln net.Listener) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if s.background != nil {
		s.logger.Info().Msg("starting background workers")
		s.background.Start(ctx)
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve(ln)
	}()

	var err error
	select {
	case <-ctx.Done():
	case <-s.stop:
	case err = <-serveErr:
	}

	s.httpServer.Shutdown()
	if s.background != nil {
		s.background.Stop()
	}
	s.logger.Info().Msg("server Shutdown gracefully")

	return err
}
