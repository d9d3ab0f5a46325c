package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/soundings-io/soundings/internal/events"
	"github.com/soundings-io/soundings/internal/extract"
	"github.com/soundings-io/soundings/internal/infer"
	"github.com/soundings-io/soundings/internal/scoring"
)

type AnalyzeHandler struct {
	engine    *infer.Engine
	baselines *infer.Baselines
	events    events.Client
}

func NewAnalyzeHandler(engine *infer.Engine, baselines *infer.Baselines, ev events.Client) *AnalyzeHandler {
	return &AnalyzeHandler{engine: engine, baselines: baselines, events: ev}
}

type AnalyzeRequest struct {
	Message string `json:"message"`
}

type AnalyzeResponse struct {
	Features extract.Features `json:"features"`
	Scores   scoring.Scores   `json:"scores"`
}

// Analyze handles POST /v1/analyze: the raw feature record and every
// composite score for one message. Empty messages are valid and yield the
// zero record.
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	start := time.Now()
	features := h.engine.Features(req.Message)
	extractDuration.Observe(time.Since(start).Seconds())
	analyzeTotal.Inc()

	writeJSON(w, http.StatusOK, AnalyzeResponse{
		Features: features,
		Scores:   scoring.Compute(features),
	})
}

type InferRequest struct {
	Message string `json:"message"`
	// UserID enables baseline comparison and folds this message into the
	// user's baseline.
	UserID          string `json:"user_id,omitempty"`
	IncludeFeatures bool   `json:"include_features,omitempty"`
}

type InferResponse struct {
	Estimates []infer.Estimate  `json:"estimates"`
	Features  *extract.Features `json:"features,omitempty"`
}

// Infer handles POST /v1/infer: axis estimates from a message without
// touching stored state.
func (h *AnalyzeHandler) Infer(w http.ResponseWriter, r *http.Request) {
	var req InferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	var estimates []infer.Estimate
	if req.UserID != "" {
		estimates = h.engine.InferWithBaseline(req.Message, h.baselines.Get(req.UserID))
	} else {
		estimates = h.engine.Infer(req.Message)
	}
	inferTotal.Inc()

	resp := InferResponse{Estimates: estimates}
	features := h.engine.Features(req.Message)
	if req.IncludeFeatures {
		resp.Features = &features
	}

	if h.events != nil {
		_ = h.events.Publish(events.SubjectInferCompleted(), events.InferCompletedEvent{
			EventID:       uuid.NewString(),
			UserID:        req.UserID,
			EstimateCount: len(estimates),
			WordCount:     features.WordCount,
			Timestamp:     time.Now().UTC(),
		})
	}

	writeJSON(w, http.StatusOK, resp)
}
