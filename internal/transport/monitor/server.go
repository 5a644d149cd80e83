// Package monitor serves the optional HTTP endpoint that makes long
// corpus runs observable: health, Prometheus metrics, and run progress.
package monitor

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/bitext-tools/realign/internal/usecase/realign"
	"github.com/bitext-tools/realign/internal/version"
)

// ProgressSource reports run progress. Implemented by the pipeline
// service.
type ProgressSource interface {
	Progress() realign.Progress
}

// NewHandler builds the monitor router.
func NewHandler(progress ProgressSource, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chiMiddleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, logger, map[string]string{
			"status":  "ok",
			"version": version.Version,
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Get("/progress", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, logger, progress.Progress())
	})

	return r
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("write monitor response", zap.Error(err))
	}
}
