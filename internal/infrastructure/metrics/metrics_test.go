package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

// TestMetrics_Init проверяет создание метрик и их регистрацию
func TestMetrics_Init(t *testing.T) {
	tests := []struct {
		name     string
		metric   prometheus.Collector
		wantType string
	}{
		{name: "http request duration histogram", metric: httpRequestDuration, wantType: "Histogram"},
		{name: "http requests total counter", metric: httpRequestsTotal, wantType: "Counter"},
		{name: "db request duration histogram", metric: dbRequestDuration, wantType: "Histogram"},
		{name: "db requests total counter", metric: dbRequestsTotal, wantType: "Counter"},
		{name: "seeded records counter", metric: seededRecordsTotal, wantType: "Counter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.metric, "Metric should not be nil")

			var isCorrectType bool
			switch tt.wantType {
			case "Histogram":
				_, isCorrectType = tt.metric.(*prometheus.HistogramVec)
			case "Counter":
				_, isCorrectType = tt.metric.(*prometheus.CounterVec)
			}
			assert.True(t, isCorrectType, "Metric should be of type %s", tt.wantType)
		})
	}
}

func TestObserveHTTPRequest(t *testing.T) {
	httpRequestsTotal.Reset()
	httpRequestDuration.Reset()

	for i := 0; i < 5; i++ {
		ObserveHTTPRequest("/users", "GET", "200", 50*time.Millisecond)
	}

	counter := httpRequestsTotal.WithLabelValues("/users", "GET", "200")
	assert.Equal(t, float64(5), testutil.ToFloat64(counter), "Counter should be 5")
}

func TestObserveDBRequest(t *testing.T) {
	dbRequestsTotal.Reset()
	dbRequestDuration.Reset()

	ObserveDBRequest("select", 20*time.Millisecond)
	ObserveDBRequest("select", 10*time.Millisecond)
	ObserveDBRequest("insert", 10*time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(dbRequestsTotal.WithLabelValues("select")))
	assert.Equal(t, float64(1), testutil.ToFloat64(dbRequestsTotal.WithLabelValues("insert")))
}

func TestAddSeededRecords(t *testing.T) {
	seededRecordsTotal.Reset()

	AddSeededRecords("users", 30)
	AddSeededRecords("users", 2)

	assert.Equal(t, float64(32), testutil.ToFloat64(seededRecordsTotal.WithLabelValues("users")))
}

// TestHTTPMetricsMiddleware_DifferentStatusCodes проверяет метрики для разных статус кодов
func TestHTTPMetricsMiddleware_DifferentStatusCodes(t *testing.T) {
	httpRequestsTotal.Reset()
	httpRequestDuration.Reset()

	handler := HTTPMetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	req := httptest.NewRequest(http.MethodGet, "/users/999", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	counter := httpRequestsTotal.WithLabelValues("/users/999", "GET", "404")
	assert.Equal(t, float64(1), testutil.ToFloat64(counter), "Should record 404 status code")
}

// TestHTTPMetricsMiddleware_ImplicitOK ответ без явного WriteHeader считается 200
func TestHTTPMetricsMiddleware_ImplicitOK(t *testing.T) {
	httpRequestsTotal.Reset()
	httpRequestDuration.Reset()

	handler := HTTPMetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	counter := httpRequestsTotal.WithLabelValues("/health", "GET", "200")
	assert.Equal(t, float64(1), testutil.ToFloat64(counter))
}

// TestHTTPMetricsMiddleware_RoutePattern метка path берется из шаблона chi
func TestHTTPMetricsMiddleware_RoutePattern(t *testing.T) {
	httpRequestsTotal.Reset()
	httpRequestDuration.Reset()

	r := chi.NewRouter()
	r.Use(HTTPMetricsMiddleware)
	r.Get("/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, id := range []string{"1", "2", "3"} {
		req := httptest.NewRequest(http.MethodGet, "/orders/"+id, nil)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	counter := httpRequestsTotal.WithLabelValues("/orders/{id}", "GET", "200")
	assert.Equal(t, float64(3), testutil.ToFloat64(counter))
}

// TestHTTPMetricsMiddleware_PanicRecovery проверяет восстановление после паники
func TestHTTPMetricsMiddleware_PanicRecovery(t *testing.T) {
	httpRequestsTotal.Reset()
	httpRequestDuration.Reset()

	handler := HTTPMetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	}))

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	rr := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		handler.ServeHTTP(rr, req)
	})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	counter := httpRequestsTotal.WithLabelValues("/panic", "GET", "500")
	assert.Equal(t, float64(1), testutil.ToFloat64(counter), "Should record 500 status after panic")
}

// TestMetrics_Export проверяет экспорт метрик в формате Prometheus
func TestMetrics_Export(t *testing.T) {
	httpRequestsTotal.Reset()
	httpRequestDuration.Reset()

	ObserveHTTPRequest("/users", "GET", "200", 50*time.Millisecond)

	registry := prometheus.NewRegistry()
	registry.MustRegister(httpRequestsTotal)
	registry.MustRegister(httpRequestDuration)

	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	metricsHandler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code, "Metrics endpoint should return 200")

	body, _ := io.ReadAll(rr.Body)
	bodyStr := string(body)

	assert.True(t, strings.Contains(bodyStr, "http_request_duration_seconds"))
	assert.True(t, strings.Contains(bodyStr, `http_requests_total{method="GET",path="/users",status_code="200"} 1`))
}
