// Package httpapi is the thin HTTP surface over the mess bill pipeline: billing
// sessions, their fixed expenses, bill computation and CSV downloads.
package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"mess-bill/internal/config"
	"mess-bill/internal/session"
	"mess-bill/internal/usecase"
)

// Server routes HTTP requests to the usecase and the session store.
type Server struct {
	uc       *usecase.MessBillUseCase
	sessions *session.Store
	cfg      *config.Config
	metrics  http.Handler
	now      func() time.Time
}

// NewServer wires the handlers. metrics may be nil to disable /metrics.
func NewServer(uc *usecase.MessBillUseCase, sessions *session.Store, cfg *config.Config, metrics http.Handler) *Server {
	return &Server{uc: uc, sessions: sessions, cfg: cfg, metrics: metrics, now: time.Now}
}

// Handler returns the routed handler wrapped in request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics)
	}

	mux.HandleFunc("POST /sessions", s.handleCreateSession)
	mux.HandleFunc("DELETE /sessions/{id}", s.handleDeleteSession)
	mux.HandleFunc("GET /sessions/{id}/expenses", s.handleListExpenses)
	mux.HandleFunc("POST /sessions/{id}/expenses", s.handleAddExpense)
	mux.HandleFunc("DELETE /sessions/{id}/expenses", s.handleClearExpenses)
	mux.HandleFunc("POST /sessions/{id}/bill", s.handleComputeBill)

	return loggingMiddleware(mux)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// loggingMiddleware logs all completed requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		slog.Info("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
