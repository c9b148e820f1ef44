package triage

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hopcare/telehealth-platform/internal/identity"
	"github.com/hopcare/telehealth-platform/pkg/logging"
)

// Handler handles HTTP requests for the symptom checker.
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates a new triage handler.
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, logger: logger}
}

// CheckRequest is the request body for a symptom check.
type CheckRequest struct {
	Symptoms string `json:"symptoms"`
}

// Check handles POST /api/symptom-check requests.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	user, ok := identity.UserFromContext(r.Context())
	if !ok {
		http.Error(w, `{"error": "missing identity"}`, http.StatusUnauthorized)
		return
	}

	var req CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid JSON body"}`, http.StatusBadRequest)
		return
	}

	rec, err := h.service.Classify(r.Context(), user.ID, req.Symptoms)
	if err != nil {
		if errors.Is(err, ErrEmptySymptoms) {
			http.Error(w, `{"error": "symptoms required"}`, http.StatusBadRequest)
			return
		}
		h.logger.Error("failed to classify symptoms", "patient_id", user.ID, "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// HistoryResponse is the response for listing past symptom checks.
type HistoryResponse struct {
	Records []*Record `json:"records"`
	Count   int       `json:"count"`
}

// History handles GET /api/symptom-check/history requests, scoped to
// the caller.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	user, ok := identity.UserFromContext(r.Context())
	if !ok {
		http.Error(w, `{"error": "missing identity"}`, http.StatusUnauthorized)
		return
	}

	recs, err := h.service.History(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("failed to list symptom history", "patient_id", user.ID, "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, HistoryResponse{Records: recs, Count: len(recs)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
