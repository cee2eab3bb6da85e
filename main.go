package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	appLogger "github.com/FACorreiaa/go-saudi-city-events/app/logger"
	"github.com/FACorreiaa/go-saudi-city-events/app/observability/metrics"
	"github.com/FACorreiaa/go-saudi-city-events/app/tracer"
	"github.com/FACorreiaa/go-saudi-city-events/config"
	"github.com/FACorreiaa/go-saudi-city-events/internal/container"
	api "github.com/FACorreiaa/go-saudi-city-events/internal/router"
)

const shutdownTimeout = 10 * time.Second

// @title        Saudi City Events API
// @version      1.0
// @description  Browse Saudi cities and the upcoming events generated for them.
// @BasePath     /api/v1
func main() {
	// Use standard log until slog is configured, in case godotenv fails
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or error loading:", err)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("FATAL: Error initializing config: %v", err)
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = cfg.Mode
	}
	logger := appLogger.NewLogger(os.Stdout, env)
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, &cfg, logger); err != nil {
		logger.Error("Application exited with error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Application shut down complete.")
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	metricsHandler, shutdownTelemetry, err := tracer.InitTracingAndMetrics(tracer.ServiceName)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			logger.Warn("Telemetry shutdown failed", slog.Any("error", err))
		}
	}()
	// instruments must be created after the meter provider is installed
	metrics.InitAppMetrics()

	c, err := container.NewContainer(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to build container: %w", err)
	}
	defer c.Close()

	mainRouter := api.SetupRouter(&api.Config{
		CityHandler:           c.CityHandler,
		EventsHandler:         c.EventsHandler,
		ViewStateHandler:      c.ViewStateHandler,
		LLMInteractionHandler: c.LLMInteractionHandlerImpl,
		AllowedOrigins:        cfg.Server.AllowedOrigins,
	})

	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(appLogger.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(middleware.Timeout(cfg.Server.Timeout))
	router.Use(middleware.Compress(5, "application/json"))
	router.Mount("/", mainRouter)

	apiServer := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.HTTPPort),
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.Server.Timeout + 5*time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	servers := []listener{{
		srv:       apiServer,
		enableTLS: cfg.Server.EnableTLS,
		certFile:  cfg.Server.CertFile,
		keyFile:   cfg.Server.KeyFile,
	}}
	if prom := cfg.Handlers.Prometheus; prom.Port != "" {
		metricsMux := chi.NewMux()
		metricsMux.Handle("/metrics", metricsHandler)
		servers = append(servers, listener{
			srv: &http.Server{
				Addr:              fmt.Sprintf(":%s", prom.Port),
				Handler:           metricsMux,
				ReadHeaderTimeout: 5 * time.Second,
				ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
			},
			enableTLS: prom.EnableTLS,
			certFile:  prom.CertFile,
			keyFile:   prom.KeyFile,
		})
	} else {
		router.Handle("/metrics", metricsHandler)
	}

	g, gCtx := errgroup.WithContext(ctx)
	for _, l := range servers {
		g.Go(func() error {
			logger.Info("Starting HTTP server", slog.String("address", l.srv.Addr), slog.Bool("tls", l.enableTLS))
			return l.serve()
		})
	}

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("Shutdown signal received, starting graceful shutdown...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		var errs []error
		for _, l := range servers {
			if err := l.srv.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, fmt.Errorf("shutdown %s: %w", l.srv.Addr, err))
			}
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}

type listener struct {
	srv       *http.Server
	enableTLS bool
	certFile  string
	keyFile   string
}

// serve blocks until the server stops. A graceful Shutdown is not an error.
func (l listener) serve() error {
	var err error
	if l.enableTLS {
		err = l.srv.ListenAndServeTLS(l.certFile, l.keyFile)
	} else {
		err = l.srv.ListenAndServe()
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server %s: %w", l.srv.Addr, err)
	}
	return nil
}
