package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/hoth-industries/controltower/pkg/application/services"
	"github.com/hoth-industries/controltower/pkg/config"
)

// Server serves the dashboard, the analytics API, and the Prometheus
// metrics endpoint over a loaded dataset snapshot.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
}

// NewServer wires the handlers onto a mux and returns a ready-to-start server.
func NewServer(cfg *config.Config, dataset *services.Dataset, analysis *services.AnalysisService, logger *zap.Logger) (*Server, error) {
	mux := http.NewServeMux()

	NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	NewAnalysisHandler(dataset, analysis, logger).RegisterRoutes(mux)

	dashboard, err := NewDashboardHandler(dataset, analysis, cfg.Version, logger)
	if err != nil {
		return nil, err
	}
	dashboard.RegisterRoutes(mux)

	mux.Handle("GET /metrics", promhttp.Handler())

	handler := RequestLogger(logger)(mux)

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}, nil
}

// Start serves HTTP until the context is cancelled, then shuts down
// gracefully. Returns only fatal listener errors.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}
