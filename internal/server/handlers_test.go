package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourgen/internal/catalog"
	"tourgen/internal/config"
	"tourgen/internal/gigachat"
	"tourgen/internal/trip"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeGenerator struct {
	content string
	err     error
	last    trip.Request
	calls   int
}

func (f *fakeGenerator) Generate(ctx context.Context, r trip.Request) (string, error) {
	f.calls++
	f.last = r
	return f.content, f.err
}

func newTestServer(t *testing.T, gen Generator) *Server {
	t.Helper()
	cfg := &config.Config{
		ListenAddr:         ":0",
		RequestTimeout:     5 * time.Second,
		CORSAllowedOrigins: []string{"*"},
	}
	return New(cfg, catalog.New(), gen, nil)
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	return rr
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, &fakeGenerator{})
	rr := doJSON(t, s, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"ok"`)
}

func TestCities(t *testing.T) {
	s := newTestServer(t, &fakeGenerator{})
	rr := doJSON(t, s, http.MethodGet, "/api/cities", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var cities []catalog.City
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &cities))
	assert.NotEmpty(t, cities)
}

func TestRouteCards(t *testing.T) {
	s := newTestServer(t, &fakeGenerator{})
	rr := doJSON(t, s, http.MethodGet, "/api/route-cards", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var cards []catalog.RouteCard
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &cards))
	assert.NotEmpty(t, cards)
}

func TestSearch(t *testing.T) {
	s := newTestServer(t, &fakeGenerator{})
	rr := doJSON(t, s, http.MethodPost, "/api/search", map[string]any{"to": "Тула", "guests": 2})
	require.Equal(t, http.StatusOK, rr.Code)

	var cities []catalog.City
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &cities))
	require.Len(t, cities, 1)
	assert.Equal(t, "Тула", cities[0].Name)
}

func TestTourByID(t *testing.T) {
	s := newTestServer(t, &fakeGenerator{})

	rr := doJSON(t, s, http.MethodGet, "/api/tours/moscow-tula", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var tour catalog.PreGeneratedTour
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &tour))
	assert.Equal(t, "moscow-tula", tour.ID)

	rr = doJSON(t, s, http.MethodGet, "/api/tours/missing", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Тур не найден")
}

func TestGenerateTour(t *testing.T) {
	gen := &fakeGenerator{content: "## Персональный тур"}
	s := newTestServer(t, gen)

	rr := doJSON(t, s, http.MethodPost, "/api/generate-tour", map[string]any{
		"from":         "Москва",
		"to":           "Тула",
		"dateFrom":     "2025-06-01",
		"dateTo":       "2025-06-03",
		"guests":       2,
		"childrenAges": []int{},
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Content string `json:"content"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "## Персональный тур", resp.Content)

	assert.Equal(t, "Москва", gen.last.From)
	assert.Equal(t, 3, gen.last.Days())
}

func TestGenerateTourValidation(t *testing.T) {
	gen := &fakeGenerator{content: "unused"}
	s := newTestServer(t, gen)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing from", map[string]any{"to": "Тула", "dateFrom": "2025-06-01", "dateTo": "2025-06-03", "guests": 2}},
		{"bad date", map[string]any{"from": "Москва", "to": "Тула", "dateFrom": "June 1st", "dateTo": "2025-06-03", "guests": 2}},
		{"guests out of range", map[string]any{"from": "Москва", "to": "Тула", "dateFrom": "2025-06-01", "dateTo": "2025-06-03", "guests": 11}},
		{"age out of range", map[string]any{"from": "Москва", "to": "Тула", "dateFrom": "2025-06-01", "dateTo": "2025-06-03", "guests": 2, "childrenAges": []int{21}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doJSON(t, s, http.MethodPost, "/api/generate-tour", tt.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Contains(t, rr.Body.String(), "Некорректные параметры запроса")
		})
	}
	assert.Zero(t, gen.calls, "validation failures must not reach the generator")
}

func TestGenerateTourMalformedBody(t *testing.T) {
	s := newTestServer(t, &fakeGenerator{})
	req := httptest.NewRequest(http.MethodPost, "/api/generate-tour", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGenerateTourCoreFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"configuration", gigachat.ErrAuthKeyMissing},
		{"provider", &gigachat.ProviderError{Op: "chat/completions", Status: 503, Body: "overloaded"}},
		{"connectivity", &gigachat.ConnectivityError{Op: "oauth", Err: context.DeadlineExceeded}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, &fakeGenerator{err: tt.err})
			rr := doJSON(t, s, http.MethodPost, "/api/generate-tour", map[string]any{
				"from": "Москва", "to": "Тула",
				"dateFrom": "2025-06-01", "dateTo": "2025-06-03", "guests": 2,
			})
			assert.Equal(t, http.StatusInternalServerError, rr.Code)
			assert.Contains(t, rr.Body.String(), "Ошибка генерации тура")
		})
	}
}

func TestRequestIDHeader(t *testing.T) {
	s := newTestServer(t, &fakeGenerator{})

	rr := doJSON(t, s, http.MethodGet, "/api/cities", nil)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/api/cities", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	rr = httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	assert.Equal(t, "fixed-id", rr.Header().Get("X-Request-ID"))
}

func TestErrorKind(t *testing.T) {
	assert.Equal(t, "configuration", errorKind(gigachat.ErrAuthKeyMissing))
	assert.Equal(t, "provider", errorKind(&gigachat.ProviderError{Status: 500}))
	assert.Equal(t, "connectivity", errorKind(&gigachat.ConnectivityError{Err: context.DeadlineExceeded}))
	assert.Equal(t, "malformed_response", errorKind(&gigachat.MalformedResponseError{}))
	assert.Equal(t, "unknown", errorKind(context.Canceled))
}
