package middleware

import (
	"gomarketplace_sync/metrics"
	"net/http"
	"time"
)

// responseWriter оборачивает http.ResponseWriter для сохранения кода ответа.
type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

// PrometheusMiddleware собирает метрики входящих запросов сервисного
// листенера. Сигнатура совместима с chi Use.
func PrometheusMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r)

		metrics.RecordRequest(r.Method, r.URL.Path, rw.status, time.Since(start))
	})
}
