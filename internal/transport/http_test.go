package transport_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vasiliy-maslov/portfolio-api/internal/transport"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error { return p.err }

type panicRoutes struct{}

func (panicRoutes) RegisterRoutes(router chi.Router) {
	router.Get("/boom", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
}

func TestNewRouter_Root(t *testing.T) {
	router := transport.NewRouter([]string{"*"}, stubPinger{})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "portfolio server is running", rr.Body.String())
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/plain")
}

func TestNewRouter_Healthz(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantBody   string
	}{
		{name: "up", wantStatus: http.StatusOK, wantBody: `{"status":"up"}`},
		{name: "down", pingErr: errors.New("no connection"), wantStatus: http.StatusServiceUnavailable, wantBody: `{"status":"down"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := transport.NewRouter([]string{"*"}, stubPinger{err: tt.pingErr})

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestNewRouter_RecoversFromPanics(t *testing.T) {
	router := transport.NewRouter([]string{"*"}, stubPinger{}, panicRoutes{})

	rr := httptest.NewRecorder()
	require.NotPanics(t, func() {
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/boom", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestNewRouter_CORS(t *testing.T) {
	router := transport.NewRouter([]string{"https://shop.example.com"}, stubPinger{})

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, "https://shop.example.com", rr.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}
