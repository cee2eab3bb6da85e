package container

import (
	"context"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	database "github.com/FACorreiaa/go-saudi-city-events/app/db"
	"github.com/FACorreiaa/go-saudi-city-events/config"
	"github.com/FACorreiaa/go-saudi-city-events/internal/api/city"
	"github.com/FACorreiaa/go-saudi-city-events/internal/api/events"
	generativeAI "github.com/FACorreiaa/go-saudi-city-events/internal/api/generative_ai"
	llmInteraction "github.com/FACorreiaa/go-saudi-city-events/internal/api/llm_interaction"
	"github.com/FACorreiaa/go-saudi-city-events/internal/api/viewstate"
)

// Container holds all application dependencies
type Container struct {
	Config                    *config.Config
	Logger                    *slog.Logger
	Pool                      *pgxpool.Pool
	CityHandler               *city.Handler
	EventsHandler             *events.HandlerImpl
	ViewStateHandler          *viewstate.HandlerImpl
	LLMInteractionHandlerImpl *llmInteraction.HandlerImpl
	SessionStore              *viewstate.Store
}

// NewContainer wires the application against the real Gemini backend. A
// missing API key is not fatal: every fetch then falls back to no events.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	var generator generativeAI.ContentGenerator
	aiClient, err := generativeAI.NewAIClient(ctx, os.Getenv(cfg.GenerativeAI.APIKeyEnv), cfg.GenerativeAI.Model)
	if err != nil {
		logger.Warn("Generative AI client unavailable, events will be empty",
			slog.String("api_key_env", cfg.GenerativeAI.APIKeyEnv),
			slog.Any("error", err))
		generator = generativeAI.UnavailableGenerator{ModelName: cfg.GenerativeAI.Model, Err: err}
	} else {
		generator = aiClient
	}
	return NewContainerWithGenerator(ctx, cfg, logger, generator)
}

// NewContainerWithGenerator wires the application around the given generator.
func NewContainerWithGenerator(ctx context.Context, cfg *config.Config, logger *slog.Logger,
	generator generativeAI.ContentGenerator) (*Container, error) {
	c := &Container{
		Config: cfg,
		Logger: logger,
	}

	var auditRepo llmInteraction.Repository = llmInteraction.NoopRepository{}
	if cfg.PostgresEnabled() {
		dbConfig, err := database.NewDatabaseConfig(cfg, logger)
		if err != nil {
			logger.Error("Failed to generate database config", slog.Any("error", err))
			return nil, err
		}

		if err = database.RunMigrations(dbConfig.ConnectionURL, logger); err != nil {
			logger.Error("Failed to run database migrations", slog.Any("error", err))
			return nil, err
		}

		pool, err := database.Init(dbConfig.ConnectionURL, logger)
		if err != nil {
			logger.Error("Failed to initialize database pool", slog.Any("error", err))
			return nil, err
		}
		c.Pool = pool

		if !database.WaitForDB(ctx, pool, cfg.Repositories.Postgres.MAXCONWAITINGTIME, logger) {
			logger.Warn("Database not reachable, fetch audit log disabled")
		} else {
			auditRepo = llmInteraction.NewPostgresLlmInteractionRepo(pool, logger)
		}
	} else {
		logger.Info("No Postgres host configured, fetch audit log disabled")
	}

	cityRepo := city.NewCatalogRepository(logger)
	cityService := city.NewCityService(cityRepo, logger)
	c.CityHandler = city.NewCityHandler(cityService, logger)

	fetchClient := events.NewEventFetchClient(generator, auditRepo, eventClientConfig(cfg), logger)
	c.EventsHandler = events.NewHandlerImpl(cityService, fetchClient, logger)

	c.SessionStore = viewstate.NewStore(fetchClient, cfg.Sessions.TTL, cfg.Sessions.CleanupInterval, logger)
	viewStateService := viewstate.NewViewStateService(c.SessionStore, cityService, logger)
	c.ViewStateHandler = viewstate.NewHandlerImpl(viewStateService, logger)

	c.LLMInteractionHandlerImpl = llmInteraction.NewLLMHandlerImpl(auditRepo, logger)

	return c, nil
}

func eventClientConfig(cfg *config.Config) events.ClientConfig {
	clientCfg := events.ClientConfig{
		TimeWindow: cfg.Events.TimeWindow,
		BookingURL: cfg.Events.BookingURL,
	}
	if cfg.GenerativeAI.Temperature != nil {
		temperature := *cfg.GenerativeAI.Temperature
		clientCfg.Temperature = &temperature
	}
	return clientCfg
}

// Close releases all resources held by the container
func (c *Container) Close() {
	if c.SessionStore != nil {
		c.SessionStore.Flush()
	}
	if c.Pool != nil {
		c.Pool.Close()
	}
}
