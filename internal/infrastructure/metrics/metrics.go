package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP метрики
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests.",
		Buckets: prometheus.DefBuckets,
	}, []string{"path", "method", "status_code"})

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests.",
	}, []string{"path", "method", "status_code"})

	// БД метрики
	dbRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "db_request_duration_seconds",
		Help:    "Duration of database requests.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16),
	}, []string{"method"})

	dbRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "db_requests_total",
		Help: "Total number of database requests.",
	}, []string{"method"})

	// Загрузка фикстур
	seededRecordsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "seeded_records_total",
		Help: "Total number of records loaded from fixture files.",
	}, []string{"kind"})
)

// ObserveHTTPRequest измеряет время HTTP запроса
func ObserveHTTPRequest(path, method, statusCode string, duration time.Duration) {
	httpRequestDuration.WithLabelValues(path, method, statusCode).Observe(duration.Seconds())
	httpRequestsTotal.WithLabelValues(path, method, statusCode).Inc()
}

// ObserveDBRequest измеряет время запроса к БД
func ObserveDBRequest(method string, duration time.Duration) {
	dbRequestDuration.WithLabelValues(method).Observe(duration.Seconds())
	dbRequestsTotal.WithLabelValues(method).Inc()
}

// AddSeededRecords учитывает записи, загруженные из фикстуры
func AddSeededRecords(kind string, n int) {
	seededRecordsTotal.WithLabelValues(kind).Add(float64(n))
}
