package doctors

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hopcare/telehealth-platform/internal/identity"
	"github.com/hopcare/telehealth-platform/pkg/logging"
)

// Handler handles HTTP requests for the doctor directory and availability.
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates a new doctors handler.
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, logger: logger}
}

// ListDoctors handles GET /api/doctors requests.
func (h *Handler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	docs, err := h.service.ListDoctors(r.Context())
	if err != nil {
		h.logger.Error("failed to list doctors", "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

// GetDoctor handles GET /api/doctors/{id} requests.
func (h *Handler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, "id")

	doc, err := h.service.GetDoctor(r.Context(), doctorID)
	switch {
	case errors.Is(err, ErrDoctorNotFound):
		http.Error(w, `{"error": "doctor not found"}`, http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("failed to get doctor", "doctor_id", doctorID, "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// SlotsResponse is the response for listing a doctor's available slots.
type SlotsResponse struct {
	DoctorID string   `json:"doctor_id"`
	Date     string   `json:"date"`
	Slots    []string `json:"slots"`
}

// ListSlots handles GET /api/doctors/{id}/slots?date=YYYY-MM-DD requests.
func (h *Handler) ListSlots(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, "id")
	date := r.URL.Query().Get("date")

	slots, err := h.service.ListAvailableSlots(r.Context(), doctorID, date)
	switch {
	case errors.Is(err, ErrInvalidDate):
		http.Error(w, `{"error": "date must be YYYY-MM-DD after today"}`, http.StatusBadRequest)
		return
	case errors.Is(err, ErrDoctorNotFound):
		http.Error(w, `{"error": "doctor not found"}`, http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("failed to list slots", "doctor_id", doctorID, "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, SlotsResponse{DoctorID: doctorID, Date: date, Slots: slots})
}

// UpdateAvailabilityRequest is the request body for replacing a slot template.
type UpdateAvailabilityRequest struct {
	Slots []string `json:"slots"`
}

// UpdateAvailability handles PUT /api/doctors/{id}/availability requests.
// Only the doctor themself may replace their template.
func (h *Handler) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, "id")

	user, ok := identity.UserFromContext(r.Context())
	if !ok {
		http.Error(w, `{"error": "missing identity"}`, http.StatusUnauthorized)
		return
	}
	if user.Role != identity.RoleDoctor || user.ID != doctorID {
		http.Error(w, `{"error": "not allowed to edit this template"}`, http.StatusForbidden)
		return
	}

	var req UpdateAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid JSON body"}`, http.StatusBadRequest)
		return
	}

	doc, err := h.service.SetAvailability(r.Context(), doctorID, req.Slots)
	switch {
	case errors.Is(err, ErrInvalidSlotLabel):
		http.Error(w, `{"error": "slot labels must be HH:MM"}`, http.StatusBadRequest)
		return
	case errors.Is(err, ErrDoctorNotFound):
		http.Error(w, `{"error": "doctor not found"}`, http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("failed to update availability", "doctor_id", doctorID, "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
