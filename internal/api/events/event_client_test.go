package events

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/FACorreiaa/go-saudi-city-events/internal/api/city"
	"github.com/FACorreiaa/go-saudi-city-events/internal/types"
)

var testLogger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))

type MockAIClient struct {
	mock.Mock
}

func (m *MockAIClient) GenerateContent(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	args := m.Called(ctx, prompt, config)
	return args.String(0), args.Error(1)
}

func (m *MockAIClient) Model() string {
	return "gemini-3-flash-preview"
}

type MockLlmInteractionRepo struct {
	mock.Mock
}

func (m *MockLlmInteractionRepo) SaveInteraction(ctx context.Context, interaction types.LlmInteraction) (uuid.UUID, error) {
	args := m.Called(ctx, interaction)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockLlmInteractionRepo) GetRecentInteractions(ctx context.Context, limit int) ([]types.LlmInteraction, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.LlmInteraction), args.Error(1)
}

var testClientConfig = ClientConfig{
	TimeWindow: "January 2026",
	BookingURL: "https://webook.com/en",
}

const hegraJSON = `[{"id":"e1","title":"Hegra Night Tour","description":"...","location":"Al-Ula","date":"Jan 2026","category":"Heritage","bookingUrl":"https://webook.com/en"}]`

func TestFetchEventsForCity_AlUla(t *testing.T) {
	ai := new(MockAIClient)
	client := NewEventFetchClient(ai, nil, testClientConfig, testLogger)

	ai.On("GenerateContent", mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, "EXCLUSIVELY in Al-Ula, Saudi Arabia for January 2026")
	}), mock.AnythingOfType("*genai.GenerateContentConfig")).Return(hegraJSON, nil)

	events := client.FetchEventsForCity(context.Background(), "Al-Ula")

	require.Len(t, events, 1)
	assert.Equal(t, types.Event{
		ID:          "e1",
		Title:       "Hegra Night Tour",
		Description: "...",
		Location:    "Al-Ula",
		Date:        "Jan 2026",
		Category:    "Heritage",
		BookingURL:  "https://webook.com/en",
	}, events[0])
	ai.AssertExpectations(t)
}

func TestFetchEventsForCity_FallsBackToEmpty(t *testing.T) {
	tests := []struct {
		name string
		text string
		err  error
	}{
		{name: "empty text", text: ""},
		{name: "whitespace only", text: "  \n "},
		{name: "malformed JSON", text: `[{"id":"e1",`},
		{name: "object instead of array", text: `{"events":[]}`},
		{name: "transport error", err: errors.New("503 service unavailable")},
		{name: "cancelled", err: context.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ai := new(MockAIClient)
			client := NewEventFetchClient(ai, nil, testClientConfig, testLogger)
			ai.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything).Return(tt.text, tt.err).Once()

			var events []types.Event
			require.NotPanics(t, func() {
				events = client.FetchEventsForCity(context.Background(), "Tabuk")
			})
			assert.NotNil(t, events)
			assert.Empty(t, events)
			ai.AssertNumberOfCalls(t, "GenerateContent", 1)
		})
	}
}

func TestFetchEventsForCity_PreservesOrderAndFields(t *testing.T) {
	ai := new(MockAIClient)
	client := NewEventFetchClient(ai, nil, testClientConfig, testLogger)

	want := make([]types.Event, 0, 9)
	for i, title := range []string{"Qiddiya Six Flags", "Boulevard World", "KAFD Lights", "Riyadh Season", "Diriyah Gate", "Formula E", "MDLBEAST", "Camel Cup", "Riyadh Marathon"} {
		want = append(want, types.Event{
			ID:          string(rune('a' + i)),
			Title:       title,
			Description: "desc " + title,
			Location:    "Riyadh",
			Date:        "January 2026",
			Category:    "Entertainment",
			BookingURL:  "https://webook.com/en",
		})
	}
	raw, err := json.Marshal(want)
	require.NoError(t, err)
	ai.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything).Return("```json\n"+string(raw)+"\n```", nil)

	got := client.FetchEventsForCity(context.Background(), "Riyadh")
	assert.Equal(t, want, got)
}

func TestFetchEventsForCity_RequestsStructuredJSON(t *testing.T) {
	ai := new(MockAIClient)
	temp := float32(0.2)
	cfg := testClientConfig
	cfg.Temperature = &temp
	client := NewEventFetchClient(ai, nil, cfg, testLogger)

	var captured *genai.GenerateContentConfig
	ai.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(*genai.GenerateContentConfig)
		}).
		Return("[]", nil)

	events := client.FetchEventsForCity(context.Background(), "Jeddah")
	assert.Empty(t, events)

	require.NotNil(t, captured)
	assert.Equal(t, "application/json", captured.ResponseMIMEType)
	require.NotNil(t, captured.Temperature)
	assert.Equal(t, float32(0.2), *captured.Temperature)

	schema := captured.ResponseSchema
	require.NotNil(t, schema)
	assert.Equal(t, genai.TypeArray, schema.Type)
	require.NotNil(t, schema.Items)
	assert.Equal(t, genai.TypeObject, schema.Items.Type)
	assert.ElementsMatch(t, []string{"id", "title", "description", "location", "date", "category", "bookingUrl"}, schema.Items.Required)
	for _, f := range schema.Items.Required {
		require.Contains(t, schema.Items.Properties, f)
		assert.Equal(t, genai.TypeString, schema.Items.Properties[f].Type)
	}
}

func TestFetchEventsForCity_AuditsEachCall(t *testing.T) {
	ai := new(MockAIClient)
	repo := new(MockLlmInteractionRepo)
	client := NewEventFetchClient(ai, repo, testClientConfig, testLogger)

	ai.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything).Return(hegraJSON, nil).Once()
	ai.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything).Return("not json", nil).Once()

	repo.On("SaveInteraction", mock.Anything, mock.MatchedBy(func(i types.LlmInteraction) bool {
		return i.CityName == "Al-Ula" && i.Succeeded && i.EventCount == 1 && i.ModelUsed == "gemini-3-flash-preview"
	})).Return(uuid.New(), nil).Once()
	repo.On("SaveInteraction", mock.Anything, mock.MatchedBy(func(i types.LlmInteraction) bool {
		return i.CityName == "Tabuk" && !i.Succeeded && i.ErrorText != ""
	})).Return(uuid.Nil, errors.New("db down")).Once()

	assert.Len(t, client.FetchEventsForCity(context.Background(), "Al-Ula"), 1)
	// audit failure must not change the result
	assert.Empty(t, client.FetchEventsForCity(context.Background(), "Tabuk"))
	repo.AssertExpectations(t)
}

func TestFetchEventsForCity_HungAuditDoesNotBlockResult(t *testing.T) {
	ai := new(MockAIClient)
	repo := new(MockLlmInteractionRepo)
	cfg := testClientConfig
	cfg.AuditTimeout = 30 * time.Millisecond
	client := NewEventFetchClient(ai, repo, cfg, testLogger)

	ai.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything).Return(hegraJSON, nil)
	var hadDeadline bool
	repo.On("SaveInteraction", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			ctx := args.Get(0).(context.Context)
			_, hadDeadline = ctx.Deadline()
			// a database that never answers
			<-ctx.Done()
		}).
		Return(uuid.Nil, context.DeadlineExceeded)

	done := make(chan []types.Event, 1)
	go func() { done <- client.FetchEventsForCity(context.Background(), "Al-Ula") }()

	select {
	case got := <-done:
		assert.Len(t, got, 1)
	case <-time.After(2 * time.Second):
		t.Fatal("fetch blocked on audit write")
	}
	assert.True(t, hadDeadline)
	repo.AssertExpectations(t)
}

func TestParseEvents(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := parseEvents("")
		assert.ErrorIs(t, err, ErrEmptyResponse)
	})

	t.Run("null literal", func(t *testing.T) {
		events, err := parseEvents("null")
		require.NoError(t, err)
		assert.NotNil(t, events)
		assert.Empty(t, events)
	})

	t.Run("fenced", func(t *testing.T) {
		events, err := parseEvents("```json\n" + hegraJSON + "\n```")
		require.NoError(t, err)
		assert.Len(t, events, 1)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := parseEvents("[{")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse events JSON")
	})
}

func TestGetCityEventsPrompt(t *testing.T) {
	prompt := getCityEventsPrompt("Tabuk", "January 2026", "https://webook.com/en")

	assert.True(t, strings.HasPrefix(prompt, "List 8 to 10 REAL, high-profile mega-project activities occurring EXCLUSIVELY in Tabuk, Saudi Arabia for January 2026."))
	assert.Contains(t, prompt, "GEOGRAPHIC FILTER:")
	assert.Contains(t, prompt, "- RIYADH: Only projects in Riyadh (Qiddiya, Boulevard, KAFD).")
	assert.Contains(t, prompt, "- JEDDAH: Only projects in Jeddah (Red Sea, Yacht Club, Al-Balad).")
	assert.Contains(t, prompt, "- AL-ULA: Only projects in Al-Ula (Hegra, Maraya).")
	assert.Contains(t, prompt, "- TABUK: Only NEOM projects (Sindalah, Trojena).")
	assert.Contains(t, prompt, "max 60 words")
	assert.Contains(t, prompt, "Ensure bookingUrl is EXACTLY: https://webook.com/en")
	assert.True(t, strings.HasSuffix(prompt, "Format as JSON array."))
}

func TestGetCityEventsPrompt_UnknownCityPassesThrough(t *testing.T) {
	prompt := getCityEventsPrompt("Cairo", "January 2026", "https://webook.com/en")
	assert.Contains(t, prompt, "EXCLUSIVELY in Cairo, Saudi Arabia")
}

type stubFetchClient struct {
	events  []types.Event
	gotCity string
}

func (s *stubFetchClient) FetchEventsForCity(_ context.Context, cityName string) []types.Event {
	s.gotCity = cityName
	return s.events
}

func TestHandler_GetCityEvents(t *testing.T) {
	cityService := city.NewCityService(city.NewCatalogRepository(testLogger), testLogger)
	stub := &stubFetchClient{events: []types.Event{}}
	h := NewHandlerImpl(cityService, stub, testLogger)

	r := chi.NewRouter()
	r.Get("/cities/{cityID}/events", h.GetCityEvents)

	t.Run("uses display name", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cities/alula/events", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Al-Ula", stub.gotCity)

		var resp types.CityEventsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "alula", resp.City.ID)
		assert.NotNil(t, resp.Events)
		assert.Empty(t, resp.Events)
	})

	t.Run("unknown city", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cities/cairo/events", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
