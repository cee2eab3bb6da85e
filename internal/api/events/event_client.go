package events

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"

	"github.com/FACorreiaa/go-saudi-city-events/app/observability/metrics"
	generativeAI "github.com/FACorreiaa/go-saudi-city-events/internal/api/generative_ai"
	llmInteraction "github.com/FACorreiaa/go-saudi-city-events/internal/api/llm_interaction"
	"github.com/FACorreiaa/go-saudi-city-events/internal/types"
)

var _ FetchClient = (*EventFetchClient)(nil)

// FetchClient turns a city display name into generated events. It never
// fails: any problem yields an empty, non-nil list.
type FetchClient interface {
	FetchEventsForCity(ctx context.Context, cityName string) []types.Event
}

const defaultAuditTimeout = 5 * time.Second

type ClientConfig struct {
	TimeWindow  string
	BookingURL  string
	Temperature *float32
	// AuditTimeout bounds the audit write; zero means defaultAuditTimeout.
	AuditTimeout time.Duration
}

type EventFetchClient struct {
	logger    *slog.Logger
	generator generativeAI.ContentGenerator
	auditRepo llmInteraction.Repository
	metrics   *metrics.AppMetrics
	cfg       ClientConfig
}

func NewEventFetchClient(generator generativeAI.ContentGenerator,
	auditRepo llmInteraction.Repository,
	cfg ClientConfig,
	logger *slog.Logger) *EventFetchClient {
	metrics.InitAppMetrics()
	if auditRepo == nil {
		auditRepo = llmInteraction.NoopRepository{}
	}
	return &EventFetchClient{
		logger:    logger,
		generator: generator,
		auditRepo: auditRepo,
		metrics:   metrics.Get(),
		cfg:       cfg,
	}
}

func (c *EventFetchClient) generationConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:      c.cfg.Temperature,
		ResponseMIMEType: "application/json",
		ResponseSchema:   getEventsResponseSchema(),
	}
}

// FetchEventsForCity makes exactly one model call. There is no retry and no
// timeout beyond ctx and the transport default.
func (c *EventFetchClient) FetchEventsForCity(ctx context.Context, cityName string) []types.Event {
	ctx, span := otel.Tracer("EventFetchClient").Start(ctx, "FetchEventsForCity", trace.WithAttributes(
		attribute.String("city.name", cityName),
		attribute.String("llm.model", c.generator.Model()),
	))
	defer span.End()

	l := c.logger.With(slog.String("city", cityName))
	prompt := getCityEventsPrompt(cityName, c.cfg.TimeWindow, c.cfg.BookingURL)
	span.SetAttributes(attribute.Int("prompt.length", len(prompt)))

	cityAttr := metric.WithAttributes(attribute.String("city", cityName))
	c.metrics.EventFetchRequestsTotal.Add(ctx, 1, cityAttr)

	start := time.Now()
	events, err := c.fetch(ctx, prompt)
	latency := time.Since(start)
	c.metrics.EventFetchDurationSeconds.Record(ctx, latency.Seconds(), cityAttr)

	c.audit(ctx, cityName, prompt, latency, events, err)

	if err != nil {
		c.metrics.EventFetchFailuresTotal.Add(ctx, 1, cityAttr)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Event fetch fell back to empty list")
		if errors.Is(err, context.Canceled) {
			l.DebugContext(ctx, "Event fetch cancelled")
		} else {
			l.ErrorContext(ctx, "Error fetching events", slog.Any("error", err))
		}
		return []types.Event{}
	}

	span.SetAttributes(attribute.Int("events.count", len(events)))
	span.SetStatus(codes.Ok, "Events generated")
	l.InfoContext(ctx, "Fetched events", slog.Int("count", len(events)), slog.Duration("latency", latency))
	return events
}

func (c *EventFetchClient) fetch(ctx context.Context, prompt string) ([]types.Event, error) {
	txt, err := c.generator.GenerateContent(ctx, prompt, c.generationConfig())
	if err != nil {
		return nil, err
	}
	return parseEvents(txt)
}

func (c *EventFetchClient) audit(ctx context.Context, cityName, prompt string, latency time.Duration, events []types.Event, fetchErr error) {
	interaction := types.LlmInteraction{
		CityName:   cityName,
		Prompt:     prompt,
		ModelUsed:  c.generator.Model(),
		LatencyMs:  int(latency.Milliseconds()),
		EventCount: len(events),
		Succeeded:  fetchErr == nil,
	}
	if fetchErr != nil {
		interaction.ErrorText = fetchErr.Error()
	}
	timeout := c.cfg.AuditTimeout
	if timeout <= 0 {
		timeout = defaultAuditTimeout
	}
	// the caller may already have moved on; the record is still wanted
	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()
	if _, err := c.auditRepo.SaveInteraction(saveCtx, interaction); err != nil {
		c.logger.WarnContext(ctx, "Failed to save llm interaction", slog.Any("error", err))
	}
}
