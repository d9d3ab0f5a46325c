package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/soundings-io/soundings/internal/state"
	"github.com/soundings-io/soundings/internal/store"
	"github.com/soundings-io/soundings/internal/translate"
)

type ContextHandler struct {
	store      store.Store
	translator translate.RuleTranslator
}

func NewContextHandler(s store.Store, tr translate.RuleTranslator) *ContextHandler {
	return &ContextHandler{store: s, translator: tr}
}

// Context handles GET /v1/context/{user_id}: the stored snapshot translated
// into prompt guidance.
func (h *ContextHandler) Context(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")
	snap, err := h.store.GetLatest(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if snap == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no state for user " + userID})
		return
	}
	writeJSON(w, http.StatusOK, h.translator.Context(snap))
}

type TranslateRequest struct {
	Axes       map[string]float64 `json:"axes"`
	Source     string             `json:"source,omitempty"`
	Confidence *float64           `json:"confidence,omitempty"`
}

// Translate handles POST /v1/translate: prompt guidance for arbitrary axis
// values without touching stored state.
func (h *ContextHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	source, err := state.ParseSource(req.Source)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	confidence := 1.0
	if req.Confidence != nil {
		confidence = *req.Confidence
	}

	snap := &state.Snapshot{
		ID:         uuid.New(),
		UserID:     "_anonymous",
		Source:     source,
		Confidence: confidence,
		Axes:       req.Axes,
	}
	if err := snap.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, h.translator.Context(snap))
}

// Axes handles GET /v1/axes: the axis registry.
func (h *ContextHandler) Axes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, state.Axes())
}
