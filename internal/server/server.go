// Package server wires repositories, services and handlers into an
// HTTP server.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/config"
	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/handlers"
	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/metrics"
	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/middleware"
	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/repository"
	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/service"
	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/session"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server is the menu/cart API server
type Server struct {
	cfg      *config.Config
	logger   *slog.Logger
	registry *session.Registry
	handler  http.Handler
}

// New builds the server from configuration. The catalog comes from
// cfg.Catalog.File when set, otherwise the compiled-in menu is used.
func New(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	repo, err := LoadRepository(cfg.Catalog)
	if err != nil {
		return nil, err
	}

	var (
		m        *metrics.Metrics
		gatherer prometheus.Gatherer
	)
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m = metrics.New(reg)
		gatherer = reg
	}

	catalog, err := repo.GetAll(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	registry := session.NewRegistry(catalog, cfg.Session.TTL, logger, session.WithMetrics(m))

	return &Server{
		cfg:      cfg,
		logger:   logger,
		registry: registry,
		handler:  NewRouter(cfg, logger, repo, registry, m, gatherer),
	}, nil
}

// LoadRepository returns the catalog repository selected by cfg
func LoadRepository(cfg config.CatalogConfig) (*repository.InMemoryMenuRepository, error) {
	if cfg.File == "" {
		return repository.NewInMemoryMenuRepository(), nil
	}
	repo, err := repository.NewInMemoryMenuRepositoryFromFile(cfg.File)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from %s: %w", cfg.File, err)
	}
	return repo, nil
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Registry returns the session registry backing the server
func (s *Server) Registry() *session.Registry {
	return s.registry
}

// NewRouter creates the chi router with all routes and middleware.
// m and gatherer may be nil when metrics are disabled.
func NewRouter(cfg *config.Config, logger *slog.Logger, repo repository.MenuRepository, registry *session.Registry, m *metrics.Metrics, gatherer prometheus.Gatherer) http.Handler {
	// Initialize services
	menuService := service.NewMenuService(repo, registry)
	cartService := service.NewCartService(repo, registry)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(logger, registry.Len)
	menuHandler := handlers.NewMenuHandler(menuService, logger)
	cartHandler := handlers.NewCartHandler(cartService, logger)
	sessionHandler := handlers.NewSessionHandler(registry, menuService, logger)
	subscribeHandler := handlers.NewSubscribeHandler(registry, nil, m, logger)

	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics(m))
	r.Use(chimiddleware.Recoverer)

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "api_key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.APIKeyAuth(cfg.Auth))

		timeout := chimiddleware.Timeout(60 * time.Second)

		// Menu endpoints
		r.With(timeout).Get("/menu", menuHandler.ListMenu)
		r.With(timeout).Get("/menu/categories", menuHandler.ListCategories)
		r.With(timeout).Get("/menu/{itemId}", menuHandler.GetItem)

		// Session endpoints
		r.With(timeout).Post("/session", sessionHandler.CreateSession)
		r.Route("/session/{sessionId}", func(r chi.Router) {
			// WebSocket subscriptions are long-lived and stay outside the timeout
			r.Get("/ws", subscribeHandler.Subscribe)

			r.Group(func(r chi.Router) {
				r.Use(timeout)

				r.Get("/", sessionHandler.GetSession)
				r.Delete("/", sessionHandler.DeleteSession)

				r.Get("/menu", menuHandler.FilteredMenu)
				r.Get("/filter", menuHandler.GetFilter)
				r.Put("/filter", menuHandler.SetFilter)

				r.Get("/cart", cartHandler.GetCart)
				r.Delete("/cart", cartHandler.ClearCart)
				r.Post("/cart/items", cartHandler.AddItem)
				r.Patch("/cart/items/{itemId}", cartHandler.UpdateItem)
				r.Delete("/cart/items/{itemId}", cartHandler.RemoveItem)
			})
		})
	})

	return r
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%s", s.cfg.Server.Host, s.cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.handler,
		ReadTimeout:  time.Duration(s.cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.cfg.Server.WriteTimeout) * time.Second,
	}

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go s.registry.Run(sweepCtx, s.cfg.Session.SweepInterval)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed to start: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(s.cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	s.logger.Info("server stopped gracefully")
	return nil
}
