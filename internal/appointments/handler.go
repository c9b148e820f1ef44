package appointments

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hopcare/telehealth-platform/internal/identity"
	"github.com/hopcare/telehealth-platform/pkg/logging"
)

// Handler handles HTTP requests for appointments.
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates a new appointments handler.
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, logger: logger}
}

// Create handles POST /api/appointments requests.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := identity.UserFromContext(r.Context())
	if !ok {
		http.Error(w, `{"error": "missing identity"}`, http.StatusUnauthorized)
		return
	}

	var req CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid JSON body"}`, http.StatusBadRequest)
		return
	}

	// A patient books for themself unless the body says otherwise; the
	// creation path otherwise trusts the caller's denormalized fields.
	if req.PatientID == "" {
		req.PatientID = user.ID
		req.PatientName = user.Name
	}

	appt, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if IsValidationError(err) {
			http.Error(w, jsonError(err), http.StatusBadRequest)
			return
		}
		h.logger.Error("failed to create appointment", "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, appt)
}

// UpdateStatusRequest is the request body for a status transition.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PUT /api/appointments/{id}/status requests.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	user, ok := identity.UserFromContext(r.Context())
	if !ok {
		http.Error(w, `{"error": "missing identity"}`, http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid JSON body"}`, http.StatusBadRequest)
		return
	}
	status, ok := ParseStatus(req.Status)
	if !ok {
		http.Error(w, jsonError(ErrUnknownStatus), http.StatusBadRequest)
		return
	}

	appt, err := h.service.UpdateStatus(r.Context(), id, status, user.Role)
	switch {
	case errors.Is(err, ErrAppointmentNotFound):
		http.Error(w, jsonError(err), http.StatusNotFound)
		return
	case errors.Is(err, ErrInvalidTransition):
		http.Error(w, jsonError(err), http.StatusConflict)
		return
	case errors.Is(err, ErrUnauthorizedActor):
		http.Error(w, jsonError(err), http.StatusForbidden)
		return
	case err != nil:
		h.logger.Error("failed to update status", "appointment_id", id, "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, appt)
}

// ListResponse is the response for listing appointments.
type ListResponse struct {
	Appointments []*Appointment `json:"appointments"`
	Count        int            `json:"count"`
}

// List handles GET /api/appointments requests, scoped to the caller.
// An optional role query parameter must match the caller's own role.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := identity.UserFromContext(r.Context())
	if !ok {
		http.Error(w, `{"error": "missing identity"}`, http.StatusUnauthorized)
		return
	}
	if role := r.URL.Query().Get("role"); role != "" && role != string(user.Role) {
		http.Error(w, `{"error": "role does not match caller"}`, http.StatusForbidden)
		return
	}

	appts, err := h.service.List(r.Context(), user)
	if err != nil {
		h.logger.Error("failed to list appointments", "user_id", user.ID, "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, ListResponse{Appointments: appts, Count: len(appts)})
}

func jsonError(err error) string {
	msg, _ := json.Marshal(map[string]string{"error": err.Error()})
	return string(msg)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
