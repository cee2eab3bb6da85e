package city

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-saudi-city-events/internal/types"
)

var testLogger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))

type MockCityRepository struct {
	mock.Mock
}

func (m *MockCityRepository) GetAllCities(ctx context.Context) ([]types.City, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.City), args.Error(1)
}

func (m *MockCityRepository) FindCityByID(ctx context.Context, id string) (*types.City, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.City), args.Error(1)
}

func (m *MockCityRepository) FindCityByName(ctx context.Context, name string) (*types.City, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.City), args.Error(1)
}

func TestCatalogRepository_NineCitiesInOrder(t *testing.T) {
	repo := NewCatalogRepository(testLogger)
	cities, err := repo.GetAllCities(context.Background())
	require.NoError(t, err)

	ids := make([]string, 0, len(cities))
	for _, c := range cities {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"riyadh", "jeddah", "alula", "dammam", "abha", "medina", "mecca", "taif", "tabuk"}, ids)
	assert.Equal(t, "Al-Ula", cities[2].Name)
	assert.Equal(t, "العلا", cities[2].LocalizedName)
	assert.Equal(t, "The spiritual heart of Islam, hosting the iconic Great Mosque.", cities[6].Description)
}

func TestCatalogRepository_ReturnsCopies(t *testing.T) {
	repo := NewCatalogRepository(testLogger)
	ctx := context.Background()

	cities, err := repo.GetAllCities(ctx)
	require.NoError(t, err)
	cities[0].Name = "Changed"

	c, err := repo.FindCityByID(ctx, "riyadh")
	require.NoError(t, err)
	c.Description = "Changed"

	again, err := repo.FindCityByID(ctx, "riyadh")
	require.NoError(t, err)
	assert.Equal(t, "Riyadh", again.Name)
	assert.NotEqual(t, "Changed", again.Description)
}

func TestCatalogRepository_Find(t *testing.T) {
	repo := NewCatalogRepository(testLogger)
	ctx := context.Background()

	t.Run("by id", func(t *testing.T) {
		c, err := repo.FindCityByID(ctx, "tabuk")
		require.NoError(t, err)
		assert.Equal(t, "Tabuk", c.Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.FindCityByID(ctx, "cairo")
		assert.ErrorIs(t, err, ErrCityNotFound)
	})

	t.Run("by name ignores case", func(t *testing.T) {
		c, err := repo.FindCityByName(ctx, "  al-ula ")
		require.NoError(t, err)
		assert.Equal(t, "alula", c.ID)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := repo.FindCityByName(ctx, "Cairo")
		assert.ErrorIs(t, err, ErrCityNotFound)
	})
}

func TestCityService_WrapsRepositoryErrors(t *testing.T) {
	repo := new(MockCityRepository)
	svc := NewCityService(repo, testLogger)
	ctx := context.Background()

	repo.On("FindCityByID", mock.Anything, "nowhere").Return(nil, ErrCityNotFound)
	repo.On("GetAllCities", mock.Anything).Return(nil, errors.New("boom"))

	_, err := svc.GetCityByID(ctx, "nowhere")
	assert.ErrorIs(t, err, ErrCityNotFound)

	_, err = svc.GetAllCities(ctx)
	assert.EqualError(t, err, "failed to list cities: boom")
	repo.AssertExpectations(t)
}

func newTestRouter(svc Service) http.Handler {
	h := NewCityHandler(svc, testLogger)
	r := chi.NewRouter()
	r.Get("/cities", h.GetAllCities)
	r.Get("/cities/{cityID}", h.GetCity)
	return r
}

func TestCityHandler(t *testing.T) {
	svc := NewCityService(NewCatalogRepository(testLogger), testLogger)
	router := newTestRouter(svc)

	t.Run("list", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cities", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var cities []types.City
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cities))
		assert.Len(t, cities, 9)
	})

	t.Run("single", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cities/jeddah", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var c types.City
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &c))
		assert.Equal(t, "Jeddah", c.Name)
	})

	t.Run("not found", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cities/cairo", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCityHandler_ServiceFailure(t *testing.T) {
	repo := new(MockCityRepository)
	repo.On("GetAllCities", mock.Anything).Return(nil, errors.New("boom"))
	router := newTestRouter(NewCityService(repo, testLogger))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cities", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
