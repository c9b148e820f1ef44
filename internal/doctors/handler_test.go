package doctors

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/hopcare/telehealth-platform/internal/identity"
)

func newTestRouter(t *testing.T) (chi.Router, *Service) {
	t.Helper()
	repo := NewInMemoryRepository()
	SeedInMemory(repo)
	svc := NewService(repo, nil).WithNow(fixedNow)
	h := NewHandler(svc, nil)

	r := chi.NewRouter()
	r.Get("/api/doctors", h.ListDoctors)
	r.Get("/api/doctors/{id}", h.GetDoctor)
	r.Get("/api/doctors/{id}/slots", h.ListSlots)
	r.Put("/api/doctors/{id}/availability", h.UpdateAvailability)
	return r, svc
}

func asDoctor(req *http.Request, doctorID string) *http.Request {
	ctx := identity.WithUser(req.Context(), identity.User{ID: doctorID, Name: "Dr. Test", Role: identity.RoleDoctor})
	return req.WithContext(ctx)
}

func TestListDoctors(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/doctors", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var docs []*Doctor
	if err := json.NewDecoder(w.Body).Decode(&docs); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(docs) != 10 {
		t.Fatalf("expected 10 doctors, got %d", len(docs))
	}
}

func TestGetDoctor(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/doctors/dm1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var doc Doctor
	if err := json.NewDecoder(w.Body).Decode(&doc); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if doc.Name != "Dr. Amit Sharma" {
		t.Fatalf("unexpected doctor: %+v", doc)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/doctors/nope", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestListSlots_OK(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/doctors/dm1/slots?date=2025-03-11", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp SlotsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Slots) != 4 {
		t.Fatalf("expected 4 slots, got %v", resp.Slots)
	}
}

func TestListSlots_BadDate(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/doctors/dm1/slots?date=2025-03-10", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestListSlots_UnknownDoctor(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/doctors/nope/slots?date=2025-03-11", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestUpdateAvailability_OwnerOnly(t *testing.T) {
	router, _ := newTestRouter(t)

	body, _ := json.Marshal(UpdateAvailabilityRequest{Slots: []string{"09:00", "10:00"}})

	// Another doctor may not edit this template.
	req := asDoctor(httptest.NewRequest(http.MethodPut, "/api/doctors/dm1/availability", bytes.NewReader(body)), "dm2")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for other doctor, got %d", w.Code)
	}

	// A patient may never edit a template.
	req = httptest.NewRequest(http.MethodPut, "/api/doctors/dm1/availability", bytes.NewReader(body))
	req = req.WithContext(identity.WithUser(req.Context(), identity.User{ID: "p1", Role: identity.RolePatient}))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for patient, got %d", w.Code)
	}

	// The owner succeeds.
	req = asDoctor(httptest.NewRequest(http.MethodPut, "/api/doctors/dm1/availability", bytes.NewReader(body)), "dm1")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for owner, got %d: %s", w.Code, w.Body.String())
	}
	var doc Doctor
	if err := json.NewDecoder(w.Body).Decode(&doc); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(doc.Availability) != 2 {
		t.Fatalf("expected replaced template, got %v", doc.Availability)
	}
}

func TestUpdateAvailability_BadSlots(t *testing.T) {
	router, _ := newTestRouter(t)

	body, _ := json.Marshal(UpdateAvailabilityRequest{Slots: []string{"late evening"}})
	req := asDoctor(httptest.NewRequest(http.MethodPut, "/api/doctors/dm1/availability", bytes.NewReader(body)), "dm1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestUpdateAvailability_MissingIdentity(t *testing.T) {
	router, _ := newTestRouter(t)

	body, _ := json.Marshal(UpdateAvailabilityRequest{Slots: []string{"09:00"}})
	req := httptest.NewRequest(http.MethodPut, "/api/doctors/dm1/availability", bytes.NewReader(body))
	req = req.WithContext(context.Background())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
