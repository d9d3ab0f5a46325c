package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/soundings-io/soundings/internal/events"
	"github.com/soundings-io/soundings/internal/infer"
	"github.com/soundings-io/soundings/internal/state"
	"github.com/soundings-io/soundings/internal/store"
)

type StateHandler struct {
	store            store.Store
	events           events.Client
	engine           *infer.Engine
	baselines        *infer.Baselines
	inferenceEnabled bool
}

func NewStateHandler(s store.Store, ev events.Client, engine *infer.Engine, baselines *infer.Baselines, inferenceEnabled bool) *StateHandler {
	return &StateHandler{
		store:            s,
		events:           ev,
		engine:           engine,
		baselines:        baselines,
		inferenceEnabled: inferenceEnabled,
	}
}

type UpsertStateRequest struct {
	UserID     string             `json:"user_id"`
	Source     string             `json:"source,omitempty"`
	Confidence *float64           `json:"confidence,omitempty"`
	Axes       map[string]float64 `json:"axes"`
	// Message, when present and inference is enabled, contributes inferred
	// axis values. Explicit axes always win.
	Message string `json:"message,omitempty"`
}

// Upsert handles POST /v1/state.
func (h *StateHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req UpsertStateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.UserID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "user_id required"})
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

	axes := req.Axes
	if axes == nil {
		axes = map[string]float64{}
	}

	if h.inferenceEnabled && req.Message != "" {
		estimates := h.engine.InferWithBaseline(req.Message, h.baselines.Get(req.UserID))
		contributed := false
		for _, est := range estimates {
			if _, ok := axes[est.Axis]; !ok {
				axes[est.Axis] = est.Value
				contributed = true
			}
		}
		if contributed && source == state.SourceSelfReport {
			source = state.SourceMixed
		}
	}

	snap := &state.Snapshot{
		ID:         uuid.New(),
		UserID:     req.UserID,
		Source:     source,
		Confidence: confidence,
		Axes:       axes,
		UpdatedAt:  time.Now().UTC(),
	}
	if err := snap.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := h.store.UpsertLatest(r.Context(), snap); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	stateUpserts.WithLabelValues(string(snap.Source)).Inc()

	if h.events != nil {
		_ = h.events.Publish(events.SubjectStateUpdated(snap.UserID), events.StateUpdatedEvent{
			EventID:    uuid.NewString(),
			UserID:     snap.UserID,
			SnapshotID: snap.ID.String(),
			Source:     string(snap.Source),
			Confidence: snap.Confidence,
			AxisCount:  len(snap.Axes),
			UpdatedAt:  snap.UpdatedAt,
		})
	}

	writeJSON(w, http.StatusOK, snap)
}

// Get handles GET /v1/state/{user_id}.
func (h *StateHandler) Get(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, http.StatusOK, snap)
}

// Delete handles DELETE /v1/state/{user_id}. Removes stored state and the
// in-process baseline for the user.
func (h *StateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")
	if err := h.store.Delete(r.Context(), userID); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	h.baselines.Delete(userID)

	if h.events != nil {
		_ = h.events.Publish(events.SubjectStateDeleted(userID), events.StateDeletedEvent{
			EventID:   uuid.NewString(),
			UserID:    userID,
			DeletedAt: time.Now().UTC(),
		})
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// History handles GET /v1/state/{user_id}/history?limit=N.
func (h *StateHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid limit"})
			return
		}
		limit = n
	}

	snaps, err := h.store.History(r.Context(), userID, limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if snaps == nil {
		snaps = []*state.Snapshot{}
	}
	writeJSON(w, http.StatusOK, snaps)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
