package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/soundings-io/soundings/internal/config"
	"github.com/soundings-io/soundings/internal/events"
	"github.com/soundings-io/soundings/internal/infer"
	"github.com/soundings-io/soundings/internal/store"
	"github.com/soundings-io/soundings/internal/translate"
)

func NewRouter(s store.Store, ev events.Client, engine *infer.Engine, baselines *infer.Baselines, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(cfg.Server.RateLimitPerMinute))

	analyze := NewAnalyzeHandler(engine, baselines, ev)
	stateH := NewStateHandler(s, ev, engine, baselines, cfg.Inference.Enabled)
	contextH := NewContextHandler(s, translate.RuleTranslator{})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := s.Ping(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy", "error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/v1", func(r chi.Router) {
		r.Use(APIKeyMiddleware(cfg.Server.APIKeys))

		r.Post("/analyze", analyze.Analyze)
		r.Post("/infer", analyze.Infer)

		r.Post("/state", stateH.Upsert)
		r.Get("/state/{user_id}", stateH.Get)
		r.Delete("/state/{user_id}", stateH.Delete)
		r.Get("/state/{user_id}/history", stateH.History)

		r.Get("/context/{user_id}", contextH.Context)
		r.Post("/translate", contextH.Translate)

		r.Get("/axes", contextH.Axes)
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
