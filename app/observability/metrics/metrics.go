package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	EventFetchRequestsTotal   metric.Int64Counter
	EventFetchFailuresTotal   metric.Int64Counter
	EventFetchDurationSeconds metric.Float64Histogram
	StaleFetchResultsTotal    metric.Int64Counter
	ActiveSessions            metric.Int64UpDownCounter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metrics instruments ONLY ONCE.
// It gets the Meter from the globally configured MeterProvider, so it must
// run after the provider is installed to export anything.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("SaudiCityEvents")
		var err error
		m := &AppMetrics{}

		m.EventFetchRequestsTotal, err = meter.Int64Counter(
			"event_fetch_requests_total",
			metric.WithDescription("Total number of event generation calls made to the model"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create event_fetch_requests_total: %v", err)
		}

		m.EventFetchFailuresTotal, err = meter.Int64Counter(
			"event_fetch_failures_total",
			metric.WithDescription("Event generation calls that fell back to an empty list"),
			metric.WithUnit("{error}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create event_fetch_failures_total: %v", err)
		}

		m.EventFetchDurationSeconds, err = meter.Float64Histogram(
			"event_fetch_duration_seconds",
			metric.WithDescription("Duration of event generation calls in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create event_fetch_duration_seconds: %v", err)
		}

		m.StaleFetchResultsTotal, err = meter.Int64Counter(
			"stale_fetch_results_total",
			metric.WithDescription("Fetch results discarded because the session moved on"),
			metric.WithUnit("{result}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create stale_fetch_results_total: %v", err)
		}

		m.ActiveSessions, err = meter.Int64UpDownCounter(
			"active_sessions",
			metric.WithDescription("View-state sessions currently held in memory"),
			metric.WithUnit("{session}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create active_sessions: %v", err)
		}

		log.Println("Application metrics instruments initialized.")
		appMetrics = m
	})
}

// Get returns the globally initialized AppMetrics instance.
// Panics if InitAppMetrics was not called first.
func Get() *AppMetrics {
	if appMetrics == nil {
		panic("metrics instruments not initialized. Call metrics.InitAppMetrics() first.")
	}
	return appMetrics
}
