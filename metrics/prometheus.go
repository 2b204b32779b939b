package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
	"time"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "endpoint", "status"},
	)
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations.",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"method", "endpoint", "status"},
	)
	apiRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_api_requests_total",
			Help: "Total number of outgoing marketplace API requests.",
		},
		[]string{"marketplace", "endpoint", "status"},
	)
	apiRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "marketplace_api_request_duration_seconds",
			Help:    "Histogram of outgoing marketplace API request durations.",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"marketplace", "endpoint"},
	)
	recordsSubmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sync_records_submitted_total",
			Help: "Stock and price records pushed to marketplaces.",
		},
		[]string{"marketplace", "kind"},
	)
	syncRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sync_runs_total",
			Help: "Finished synchronization runs by result.",
		},
		[]string{"marketplace", "result"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(apiRequestsTotal)
	prometheus.MustRegister(apiRequestDuration)
	prometheus.MustRegister(recordsSubmitted)
	prometheus.MustRegister(syncRunsTotal)
}

// RecordRequest записывает метрики входящего HTTP-запроса.
func RecordRequest(method, endpoint string, statusCode int, duration time.Duration) {
	status := classifyStatus(statusCode)
	httpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint, status).Observe(duration.Seconds())
}

// RecordAPIRequest записывает метрики исходящего запроса к маркетплейсу.
func RecordAPIRequest(marketplace, endpoint string, statusCode int, duration time.Duration) {
	apiRequestsTotal.WithLabelValues(marketplace, endpoint, classifyStatus(statusCode)).Inc()
	apiRequestDuration.WithLabelValues(marketplace, endpoint).Observe(duration.Seconds())
}

// RecordSubmission учитывает отправленные записи остатков или цен.
func RecordSubmission(marketplace, kind string, count int) {
	recordsSubmitted.WithLabelValues(marketplace, kind).Add(float64(count))
}

// RecordRun учитывает завершённый прогон синхронизации.
func RecordRun(marketplace, result string) {
	syncRunsTotal.WithLabelValues(marketplace, result).Inc()
}

// classifyStatus классифицирует HTTP-статус код в строку.
func classifyStatus(statusCode int) string {
	if statusCode >= 200 && statusCode < 300 {
		return "2xx"
	} else if statusCode >= 300 && statusCode < 400 {
		return "3xx"
	} else if statusCode >= 400 && statusCode < 500 {
		return "4xx"
	} else if statusCode >= 500 && statusCode < 600 {
		return "5xx"
	}
	return "unknown"
}

// MetricsHandler возвращает HTTP-обработчик для экспорта метрик Prometheus.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
