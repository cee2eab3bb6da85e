package city

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-saudi-city-events/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	GetAllCities(ctx context.Context) ([]types.City, error)
	GetCityByID(ctx context.Context, id string) (*types.City, error)
	GetCityByName(ctx context.Context, name string) (*types.City, error)
}

type ServiceImpl struct {
	logger *slog.Logger
	repo   Repository
}

func NewCityService(repo Repository, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

func (s *ServiceImpl) GetAllCities(ctx context.Context) ([]types.City, error) {
	ctx, span := otel.Tracer("CityService").Start(ctx, "GetAllCities")
	defer span.End()

	cities, err := s.repo.GetAllCities(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to list cities")
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	span.SetAttributes(attribute.Int("cities.count", len(cities)))
	return cities, nil
}

func (s *ServiceImpl) GetCityByID(ctx context.Context, id string) (*types.City, error) {
	ctx, span := otel.Tracer("CityService").Start(ctx, "GetCityByID", trace.WithAttributes(
		attribute.String("city.id", id),
	))
	defer span.End()

	c, err := s.repo.FindCityByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "City lookup failed")
		return nil, fmt.Errorf("failed to get city %q: %w", id, err)
	}
	return c, nil
}

func (s *ServiceImpl) GetCityByName(ctx context.Context, name string) (*types.City, error) {
	ctx, span := otel.Tracer("CityService").Start(ctx, "GetCityByName", trace.WithAttributes(
		attribute.String("city.name", name),
	))
	defer span.End()

	c, err := s.repo.FindCityByName(ctx, name)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "City lookup failed")
		return nil, fmt.Errorf("failed to get city %q: %w", name, err)
	}
	return c, nil
}
