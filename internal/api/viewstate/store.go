package viewstate

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/FACorreiaa/go-saudi-city-events/app/observability/metrics"
	"github.com/FACorreiaa/go-saudi-city-events/internal/api/events"
)

var ErrSessionNotFound = errors.New("session not found")

// Store keeps one Controller per client session. Sessions expire after ttl
// without access; expiry and deletion cancel the session's pending fetch.
type Store struct {
	cache   *cache.Cache
	ttl     time.Duration
	client  events.FetchClient
	logger  *slog.Logger
	metrics *metrics.AppMetrics
}

func NewStore(client events.FetchClient, ttl, cleanupInterval time.Duration, logger *slog.Logger) *Store {
	metrics.InitAppMetrics()
	s := &Store{
		cache:   cache.New(ttl, cleanupInterval),
		ttl:     ttl,
		client:  client,
		logger:  logger,
		metrics: metrics.Get(),
	}
	s.cache.OnEvicted(func(id string, v interface{}) {
		if ctrl, ok := v.(*Controller); ok {
			ctrl.Close()
		}
		s.metrics.ActiveSessions.Add(context.Background(), -1)
		s.logger.Debug("Session evicted", slog.String("session_id", id))
	})
	return s
}

func (s *Store) Create(ctx context.Context) *Controller {
	id := uuid.NewString()
	ctrl := NewController(id, s.client, s.logger)
	s.cache.Set(id, ctrl, s.ttl)
	s.metrics.ActiveSessions.Add(ctx, 1)
	s.logger.DebugContext(ctx, "Session created", slog.String("session_id", id))
	return ctrl
}

// Get returns the session's controller and refreshes its expiry.
func (s *Store) Get(id string) (*Controller, error) {
	v, found := s.cache.Get(id)
	if !found {
		return nil, ErrSessionNotFound
	}
	ctrl, ok := v.(*Controller)
	if !ok {
		return nil, ErrSessionNotFound
	}
	// Replace only writes if the session was not evicted or deleted meanwhile
	if err := s.cache.Replace(id, ctrl, s.ttl); err != nil {
		return nil, ErrSessionNotFound
	}
	return ctrl, nil
}

func (s *Store) Delete(id string) error {
	if _, found := s.cache.Get(id); !found {
		return ErrSessionNotFound
	}
	s.cache.Delete(id)
	return nil
}

func (s *Store) Count() int {
	return s.cache.ItemCount()
}

// Flush closes every session, cancelling any fetch still in flight.
func (s *Store) Flush() {
	for id := range s.cache.Items() {
		s.cache.Delete(id)
	}
}
