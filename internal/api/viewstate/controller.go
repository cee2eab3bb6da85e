package viewstate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/FACorreiaa/go-saudi-city-events/app/observability/metrics"
	"github.com/FACorreiaa/go-saudi-city-events/internal/api/events"
	"github.com/FACorreiaa/go-saudi-city-events/internal/types"
)

var ErrEventNotFound = errors.New("event not found in current list")

// Controller owns one client's view state: which screen is showing, the
// selected city, the events for that city and the event open in the detail
// overlay. All transitions take mu, so handlers and fetch goroutines can call
// in concurrently.
//
// Every SelectCity and GoBack bumps generation and cancels the outstanding
// fetch. A fetch result is applied only while its generation is current, so
// the events in memory always belong to the selected city.
type Controller struct {
	id      string
	client  events.FetchClient
	logger  *slog.Logger
	metrics *metrics.AppMetrics

	mu            sync.Mutex
	state         types.ViewState
	selectedCity  *types.City
	events        []types.Event
	loading       bool
	selectedEvent *types.Event
	generation    uint64
	cancelFetch   context.CancelFunc
}

func NewController(id string, client events.FetchClient, logger *slog.Logger) *Controller {
	metrics.InitAppMetrics()
	return &Controller{
		id:      id,
		client:  client,
		logger:  logger.With(slog.String("session_id", id)),
		metrics: metrics.Get(),
		state:   types.ViewStateGrid,
		events:  []types.Event{},
	}
}

func (c *Controller) ID() string {
	return c.id
}

// invalidateLocked makes any in-flight fetch stale. Caller holds mu.
func (c *Controller) invalidateLocked() uint64 {
	c.generation++
	if c.cancelFetch != nil {
		c.cancelFetch()
		c.cancelFetch = nil
	}
	return c.generation
}

// SelectCity switches to the detail screen for city and starts fetching its
// events in the background. The returned channel is closed once that fetch
// has settled, whether its result was applied or discarded as stale.
//
// The fetch outlives ctx's cancellation (requests end long before the model
// answers) but keeps its values for tracing.
func (c *Controller) SelectCity(ctx context.Context, city types.City) <-chan struct{} {
	c.mu.Lock()
	gen := c.invalidateLocked()
	fetchCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	c.cancelFetch = cancel

	selected := city
	c.state = types.ViewStateCityDetail
	c.selectedCity = &selected
	c.events = []types.Event{}
	c.selectedEvent = nil
	c.loading = true
	c.mu.Unlock()

	c.logger.DebugContext(ctx, "City selected", slog.String("city", city.Name), slog.Uint64("generation", gen))

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer cancel()
		defer func() {
			if r := recover(); r != nil {
				c.logger.Error("Event fetch panicked", slog.Any("panic", r), slog.String("city", city.Name))
				c.applyFetchResult(fetchCtx, gen, city.Name, []types.Event{})
			}
		}()

		result := c.client.FetchEventsForCity(fetchCtx, city.Name)
		c.applyFetchResult(fetchCtx, gen, city.Name, result)
	}()
	return done
}

// applyFetchResult stores result if gen is still current and reports whether
// it did.
func (c *Controller) applyFetchResult(ctx context.Context, gen uint64, cityName string, result []types.Event) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		c.metrics.StaleFetchResultsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("city", cityName)))
		c.logger.DebugContext(ctx, "Discarding stale fetch result",
			slog.String("city", cityName),
			slog.Uint64("generation", gen),
			slog.Uint64("current_generation", c.generation))
		return false
	}

	if result == nil {
		result = []types.Event{}
	}
	c.events = result
	c.loading = false
	c.cancelFetch = nil
	return true
}

// GoBack returns to the grid and drops everything tied to the old city.
func (c *Controller) GoBack() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.invalidateLocked()
	c.state = types.ViewStateGrid
	c.selectedCity = nil
	c.events = []types.Event{}
	c.selectedEvent = nil
	c.loading = false
}

// SelectEvent opens the detail overlay. It does not touch the screen state.
func (c *Controller) SelectEvent(event types.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := event
	c.selectedEvent = &e
}

// SelectEventByID opens the overlay for an event of the current list.
func (c *Controller) SelectEventByID(eventID string) (types.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.events {
		if e.ID == eventID {
			selected := e
			c.selectedEvent = &selected
			return e, nil
		}
	}
	return types.Event{}, fmt.Errorf("event %q: %w", eventID, ErrEventNotFound)
}

func (c *Controller) CloseEventDetail() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.selectedEvent = nil
}

// Snapshot copies the current state for rendering.
func (c *Controller) Snapshot() types.ViewSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := types.ViewSnapshot{
		SessionID: c.id,
		State:     c.state,
		Events:    append(make([]types.Event, 0, len(c.events)), c.events...),
		Loading:   c.loading,
	}
	if c.selectedCity != nil {
		city := *c.selectedCity
		snap.SelectedCity = &city
	}
	if c.selectedEvent != nil {
		e := *c.selectedEvent
		snap.SelectedEvent = &e
	}
	return snap
}

// Close cancels any outstanding fetch; its result will be discarded.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.invalidateLocked()
	c.loading = false
}
