package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"slices"

	"customer-service/internal/config"
	"customer-service/internal/database"
	"customer-service/internal/handlers"
	"customer-service/internal/middleware"
	"customer-service/internal/repositories"
	"customer-service/internal/services"

	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const maxBodySize = "1M"

// Server wires the customer store, handlers and middleware into one echo instance
type Server struct {
	cfg      *config.Config
	logger   *slog.Logger
	echo     *echo.Echo
	repo     repositories.CustomerRepositoryInterface
	db       *database.DB
	registry *prometheus.Registry
	limiter  *middleware.RateLimiter
	httpSrv  *http.Server
}

// New builds a server for cfg. The sqlite backend is opened and migrated here.
func New(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	repo, db, err := newRepository(&cfg.Store)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	s := &Server{
		cfg:      cfg,
		logger:   logger,
		repo:     repo,
		db:       db,
		registry: registry,
	}
	s.echo = s.buildEcho()

	return s, nil
}

func newRepository(cfg *config.StoreConfig) (repositories.CustomerRepositoryInterface, *database.DB, error) {
	ids := repositories.NewSequenceGenerator()

	switch cfg.Backend {
	case config.BackendSQLite:
		db, err := database.Initialize(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize customer store: %w", err)
		}
		return repositories.NewSQLCustomerRepository(db, ids), db, nil
	case config.BackendMemory, "":
		return repositories.NewCustomerRepository(ids), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

func (s *Server) buildEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler(s.registry)
	if s.cfg.Security.TrustProxyHeaders {
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	} else {
		e.IPExtractor = echo.ExtractIPDirect()
	}

	if s.cfg.IsProduction() && slices.Contains(s.cfg.Server.CORSAllowOrigins, "*") {
		s.logger.Warn("CORS allows every origin in production, set CORS_ALLOW_ORIGINS to restrict it")
	}

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(s.logger))
	e.Use(middleware.RequestLogger(s.logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  s.cfg.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))
	e.Use(echomw.BodyLimit(maxBodySize))
	if s.cfg.Security.RateLimitEnabled() {
		s.limiter = middleware.NewRateLimiter(s.cfg.Security.RateLimitPerSecond, s.cfg.Security.RateLimitBurst)
		e.Use(s.limiter.Middleware())
	}

	customerLogger := services.NewCustomerLogger(s.logger)
	metrics := services.NewPrometheusMetrics(s.registry)

	customerHandler := handlers.NewCustomerHandler(s.repo, customerLogger, metrics)
	customerHandler.RegisterRoutes(e.Group("/customer"))

	healthHandler := handlers.NewHealthCheckHandler(s.repo, s.backendName())
	e.GET("/health", healthHandler.HealthCheck)

	if s.cfg.Metrics.Enabled {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))
	}

	return e
}

func (s *Server) backendName() string {
	if s.cfg.Store.Backend == "" {
		return config.BackendMemory
	}
	return s.cfg.Store.Backend
}

// Handler exposes the configured router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Repository returns the customer store the server was built with
func (s *Server) Repository() repositories.CustomerRepositoryInterface {
	return s.repo
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.cfg.Server.Address())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Server.Address(), err)
	}

	return s.Serve(ctx, listener)
}

// Serve is Run on an existing listener
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	s.httpSrv = &http.Server{
		Handler:      s.echo,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("customer service listening",
			"address", listener.Addr().String(),
			"store", s.backendName(),
			"environment", s.cfg.Server.Environment,
		)
		if err := s.httpSrv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			s.closeStore()
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
	}

	s.logger.Info("shutting down customer service")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	var result *multierror.Error
	if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
		result = multierror.Append(result, fmt.Errorf("graceful shutdown failed: %w", err))
	}
	if err := s.Close(); err != nil {
		result = multierror.Append(result, fmt.Errorf("failed to close customer store: %w", err))
	}
	if err := result.ErrorOrNil(); err != nil {
		return err
	}

	s.logger.Info("customer service stopped")
	return nil
}

// Close stops the rate limiter and releases the store without serving
func (s *Server) Close() error {
	if s.limiter != nil {
		s.limiter.Stop()
	}
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Server) closeStore() {
	if err := s.Close(); err != nil {
		s.logger.Warn("failed to close customer store", "error", err)
	}
}
