package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"draftline/internal/config"
	"draftline/internal/logging"
	"draftline/internal/telemetry"
)

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 10 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second

var telemetrySetup = telemetry.Setup

// httpServer abstracts the metrics endpoint for easier testing.
type httpServer interface {
	ListenAndServe() error
	Shutdown(context.Context) error
	Addr() string
}

type netHTTPServer struct {
	srv *http.Server
}

func (s netHTTPServer) ListenAndServe() error              { return s.srv.ListenAndServe() }
func (s netHTTPServer) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
func (s netHTTPServer) Addr() string                       { return s.srv.Addr }

// Metrics owns the telemetry recorder plus the Prometheus scrape endpoint
// that exposes it while a run is in flight.
type Metrics struct {
	Recorder *telemetry.Recorder

	srv    httpServer
	stop   func(context.Context) error
	logger *slog.Logger
}

// NewMetrics sets up telemetry from config. When setup fails the run
// continues with an in-memory recorder and no endpoint; collection never
// dies for metrics.
func NewMetrics(ctx context.Context, cfg config.MetricsConfig, logger *slog.Logger) *Metrics {
	rec, handler, shutdown, err := telemetrySetup(ctx, telemetry.Config{
		Enabled:      cfg.Enabled,
		Port:         cfg.Port,
		ServiceName:  cfg.ServiceName,
		OtlpEndpoint: cfg.OtlpEndpoint,
		OtlpInsecure: cfg.OtlpInsecure,
	})
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return &Metrics{Recorder: telemetry.NewRecorder(), logger: logger}
	}

	m := &Metrics{Recorder: rec, stop: shutdown, logger: logger}
	if handler != nil && cfg.Enabled {
		m.srv = netHTTPServer{srv: &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      handler,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			IdleTimeout:  idleTimeout,
		}}
	}
	return m
}

// Start launches the scrape endpoint when one is configured.
func (m *Metrics) Start() {
	if m.srv == nil {
		return
	}
	launchServer("metrics", m.srv, m.logger)
}

// Shutdown flushes exporters and stops the scrape endpoint.
func (m *Metrics) Shutdown(ctx context.Context) {
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if m.stop != nil {
		if err := m.stop(shutdownCtx); err != nil {
			logging.Warn(m.logger, "telemetry shutdown failed", "err", err)
		}
	}
	if m.srv != nil {
		if err := m.srv.Shutdown(shutdownCtx); err != nil {
			logging.Warn(m.logger, "metrics server shutdown failed", "err", err)
		}
	}
}

func launchServer(name string, srv httpServer, logger *slog.Logger) {
	go func() {
		logging.Info(logger, "starting "+name+" server", "addr", srv.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "err", err)
		}
	}()
}
