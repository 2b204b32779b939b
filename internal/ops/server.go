package ops

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gomarketplace_sync/internal/journal"
	"gomarketplace_sync/metrics"
	"gomarketplace_sync/pkg/logger"
	"gomarketplace_sync/pkg/middleware"
)

const lastRunsLimit = 20

// Server — сервисный HTTP-листенер: здоровье процесса, метрики Prometheus
// и последние прогоны из журнала.
type Server struct {
	journal *journal.Repository
	log     logger.Logger
}

func NewServer(journalRepo *journal.Repository, writer io.Writer) *Server {
	return &Server{
		journal: journalRepo,
		log:     logger.NewLogger(writer, "[OpsServer]"),
	}
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.PrometheusMiddleware)
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", metrics.MetricsHandler())
	r.Get("/runs", s.handleRuns)
	return r
}

func (s *Server) ListenAndServe(addr string) error {
	s.log.Log("Сервисный листенер запущен на %s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		s.log.Log("Не удалось записать ответ healthz: %s", err)
	}
}

// handleRuns отдаёт последние прогоны из журнала. Без настроенной базы
// журнала нет, эндпоинт честно отвечает 503.
func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	if s.journal == nil {
		http.Error(w, "run journal is not configured", http.StatusServiceUnavailable)
		return
	}
	runs, err := s.journal.LastRuns(r.Context(), lastRunsLimit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if runs == nil {
		runs = []journal.Run{}
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(runs); err != nil {
		s.log.Log("Не удалось записать ответ runs: %s", err)
	}
}
