package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// Start runs the HTTP server until ctx is canceled, then shuts down.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", s.Cfg.GetServerAddr())
		if err := s.E.Start(s.Cfg.GetServerAddr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}

// Shutdown stops the modules, the HTTP server and the shared services.
func (s *Server) Shutdown(ctx context.Context) error {
	for i := len(s.modules) - 1; i >= 0; i-- {
		if err := s.modules[i].Shutdown(ctx); err != nil {
			slog.Warn("Module shutdown failed", "module", s.modules[i].Name(), "error", err)
		}
	}

	err := s.E.Shutdown(ctx)
	report := s.injector.Shutdown()
	slog.Info("Services shut down", "report", report)
	return err
}
