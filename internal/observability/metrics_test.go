package observability

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestMiddlewareCountsRequests(t *testing.T) {
	m := NewMetrics()

	router := chi.NewRouter()
	router.Use(m.Middleware)
	router.Get("/test", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))
	require.Equal(t, http.StatusTeapot, rec.Code)

	body := scrape(t, m)
	require.Contains(t, body, `arus_http_requests_total{code="418",route="/test"} 1`)
	require.Contains(t, body, `arus_http_request_duration_seconds_count{route="/test"} 1`)
}

func TestMiddlewareDefaultsStatusOK(t *testing.T) {
	m := NewMetrics()

	router := chi.NewRouter()
	router.Use(m.Middleware)
	router.Get("/ok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))

	require.Contains(t, scrape(t, m), `arus_http_requests_total{code="200",route="/ok"} 1`)
}

func TestObserveReport(t *testing.T) {
	m := NewMetrics()

	m.ObserveReport("2025-09-18", 3, nil)
	m.ObserveReport("2025-09-18", 0, nil)
	m.ObserveReport("2025-09-19", 0, io.ErrUnexpectedEOF)

	body := scrape(t, m)
	require.Contains(t, body, `arus_recon_reports_total{outcome="ok"} 2`)
	require.Contains(t, body, `arus_recon_reports_total{outcome="error"} 1`)
	require.Contains(t, body, `arus_recon_last_mismatches{date="2025-09-18"} 0`)
	require.False(t, strings.Contains(body, `arus_recon_last_mismatches{date="2025-09-19"}`))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics

	handler := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	m.ObserveReport("2025-09-18", 1, nil)

	rec = httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
