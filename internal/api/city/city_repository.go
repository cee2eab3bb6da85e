package city

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/FACorreiaa/go-saudi-city-events/internal/types"
)

var ErrCityNotFound = errors.New("city not found")

var _ Repository = (*CatalogRepository)(nil)

type Repository interface {
	GetAllCities(ctx context.Context) ([]types.City, error)
	FindCityByID(ctx context.Context, id string) (*types.City, error)
	FindCityByName(ctx context.Context, name string) (*types.City, error)
}

// CatalogRepository serves the compiled-in catalog. It hands out copies so
// callers can never mutate the shared records.
type CatalogRepository struct {
	logger *slog.Logger
	cities []types.City
	byID   map[string]int
}

func NewCatalogRepository(logger *slog.Logger) *CatalogRepository {
	byID := make(map[string]int, len(saudiCities))
	for i, c := range saudiCities {
		byID[c.ID] = i
	}
	return &CatalogRepository{
		logger: logger,
		cities: saudiCities,
		byID:   byID,
	}
}

func (r *CatalogRepository) GetAllCities(_ context.Context) ([]types.City, error) {
	out := make([]types.City, len(r.cities))
	copy(out, r.cities)
	return out, nil
}

func (r *CatalogRepository) FindCityByID(ctx context.Context, id string) (*types.City, error) {
	i, ok := r.byID[id]
	if !ok {
		r.logger.DebugContext(ctx, "City id not in catalog", slog.String("city_id", id))
		return nil, ErrCityNotFound
	}
	c := r.cities[i]
	return &c, nil
}

// FindCityByName matches the display name, ignoring case and surrounding space.
func (r *CatalogRepository) FindCityByName(ctx context.Context, name string) (*types.City, error) {
	name = strings.TrimSpace(name)
	for _, c := range r.cities {
		if strings.EqualFold(c.Name, name) {
			return &c, nil
		}
	}
	r.logger.DebugContext(ctx, "City name not in catalog", slog.String("city_name", name))
	return nil, ErrCityNotFound
}
