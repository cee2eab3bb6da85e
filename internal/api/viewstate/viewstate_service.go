package viewstate

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-saudi-city-events/internal/api/city"
	"github.com/FACorreiaa/go-saudi-city-events/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// Service drives session controllers by id for the HTTP layer.
type Service interface {
	CreateSession(ctx context.Context) types.ViewSnapshot
	GetSession(ctx context.Context, sessionID string) (types.ViewSnapshot, error)
	DeleteSession(ctx context.Context, sessionID string) error
	SelectCity(ctx context.Context, sessionID, cityID string) (types.ViewSnapshot, <-chan struct{}, error)
	GoBack(ctx context.Context, sessionID string) (types.ViewSnapshot, error)
	SelectEvent(ctx context.Context, sessionID, eventID string) (types.ViewSnapshot, error)
	CloseEventDetail(ctx context.Context, sessionID string) (types.ViewSnapshot, error)
}

type ServiceImpl struct {
	logger      *slog.Logger
	store       *Store
	cityService city.Service
}

func NewViewStateService(store *Store, cityService city.Service, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:      logger,
		store:       store,
		cityService: cityService,
	}
}

func (s *ServiceImpl) CreateSession(ctx context.Context) types.ViewSnapshot {
	return s.store.Create(ctx).Snapshot()
}

func (s *ServiceImpl) GetSession(_ context.Context, sessionID string) (types.ViewSnapshot, error) {
	ctrl, err := s.store.Get(sessionID)
	if err != nil {
		return types.ViewSnapshot{}, err
	}
	return ctrl.Snapshot(), nil
}

func (s *ServiceImpl) DeleteSession(_ context.Context, sessionID string) error {
	return s.store.Delete(sessionID)
}

func (s *ServiceImpl) SelectCity(ctx context.Context, sessionID, cityID string) (types.ViewSnapshot, <-chan struct{}, error) {
	ctx, span := otel.Tracer("ViewStateService").Start(ctx, "SelectCity", trace.WithAttributes(
		attribute.String("session.id", sessionID),
		attribute.String("city.id", cityID),
	))
	defer span.End()

	ctrl, err := s.store.Get(sessionID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Session lookup failed")
		return types.ViewSnapshot{}, nil, err
	}
	c, err := s.cityService.GetCityByID(ctx, cityID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "City lookup failed")
		return types.ViewSnapshot{}, nil, fmt.Errorf("failed to select city: %w", err)
	}

	done := ctrl.SelectCity(ctx, *c)
	return ctrl.Snapshot(), done, nil
}

func (s *ServiceImpl) GoBack(_ context.Context, sessionID string) (types.ViewSnapshot, error) {
	ctrl, err := s.store.Get(sessionID)
	if err != nil {
		return types.ViewSnapshot{}, err
	}
	ctrl.GoBack()
	return ctrl.Snapshot(), nil
}

func (s *ServiceImpl) SelectEvent(_ context.Context, sessionID, eventID string) (types.ViewSnapshot, error) {
	ctrl, err := s.store.Get(sessionID)
	if err != nil {
		return types.ViewSnapshot{}, err
	}
	if _, err := ctrl.SelectEventByID(eventID); err != nil {
		return types.ViewSnapshot{}, err
	}
	return ctrl.Snapshot(), nil
}

func (s *ServiceImpl) CloseEventDetail(_ context.Context, sessionID string) (types.ViewSnapshot, error) {
	ctrl, err := s.store.Get(sessionID)
	if err != nil {
		return types.ViewSnapshot{}, err
	}
	ctrl.CloseEventDetail()
	return ctrl.Snapshot(), nil
}
