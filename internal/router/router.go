package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/FACorreiaa/go-saudi-city-events/docs"
	"github.com/FACorreiaa/go-saudi-city-events/internal/api/city"
	"github.com/FACorreiaa/go-saudi-city-events/internal/api/events"
	llmInteraction "github.com/FACorreiaa/go-saudi-city-events/internal/api/llm_interaction"
	"github.com/FACorreiaa/go-saudi-city-events/internal/api/viewstate"
)

var defaultAllowedOrigins = []string{"http://localhost:5173", "http://localhost:3000"}

// Config contains dependencies needed for the router setup
type Config struct {
	CityHandler           *city.Handler
	EventsHandler         *events.HandlerImpl
	ViewStateHandler      *viewstate.HandlerImpl
	LLMInteractionHandler *llmInteraction.HandlerImpl
	AllowedOrigins        []string
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (logger, requestID, recoverer) is applied in main.go
// before mounting this router.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = defaultAllowedOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("pong"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/cities", func(r chi.Router) {
			r.Get("/", cfg.CityHandler.GetAllCities)
			r.Get("/{cityID}", cfg.CityHandler.GetCity)
			r.Get("/{cityID}/events", cfg.EventsHandler.GetCityEvents)
		})

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", cfg.ViewStateHandler.CreateSession)
			r.Route("/{sessionID}", func(r chi.Router) {
				r.Get("/", cfg.ViewStateHandler.GetSession)
				r.Delete("/", cfg.ViewStateHandler.DeleteSession)
				r.Post("/city", cfg.ViewStateHandler.SelectCity)
				r.Post("/back", cfg.ViewStateHandler.GoBack)
				r.Post("/event", cfg.ViewStateHandler.SelectEvent)
				r.Delete("/event", cfg.ViewStateHandler.CloseEventDetail)
			})
		})

		r.Get("/llm-interactions", cfg.LLMInteractionHandler.GetRecentInteractions)
	})

	return r
}
