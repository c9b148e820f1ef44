package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hopcare/telehealth-platform/internal/appointments"
	"github.com/hopcare/telehealth-platform/internal/doctors"
	"github.com/hopcare/telehealth-platform/internal/http/middleware"
	"github.com/hopcare/telehealth-platform/internal/triage"
)

const testSecret = "router-test-secret"

func fixedNow() time.Time {
	return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	doctorRepo := doctors.NewInMemoryRepository()
	doctors.SeedInMemory(doctorRepo)
	doctorSvc := doctors.NewService(doctorRepo, nil).WithNow(fixedNow)
	apptSvc := appointments.NewService(appointments.NewInMemoryRepository(), nil, nil).WithNow(fixedNow)
	triageSvc := triage.NewService(triage.NewInMemoryHistory(), nil, nil).WithNow(fixedNow)

	return New(&Config{
		AppointmentsHandler: appointments.NewHandler(apptSvc, nil),
		DoctorsHandler:      doctors.NewHandler(doctorSvc, nil),
		TriageHandler:       triage.NewHandler(triageSvc, nil),
		AuthJWTSecret:       testSecret,
	})
}

func mintToken(t *testing.T, sub, name, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, middleware.UserClaims{
		Name: name,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func doJSON(t *testing.T, h http.Handler, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthIsPublic(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestDoctorDirectoryIsPublic(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/doctors", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/api/doctors/dm1/slots?date=2025-03-11", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticatedRoutesRequireToken(t *testing.T) {
	srv := newTestServer(t)

	for _, tc := range []struct {
		method, target string
	}{
		{http.MethodPost, "/api/appointments"},
		{http.MethodGet, "/api/appointments"},
		{http.MethodPut, "/api/appointments/a1/status"},
		{http.MethodPost, "/api/symptom-check"},
		{http.MethodGet, "/api/symptom-check/history"},
		{http.MethodPut, "/api/doctors/dm1/availability"},
	} {
		rec := doJSON(t, srv, tc.method, tc.target, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.target)
	}
}

func TestBookingFlowThroughRouter(t *testing.T) {
	srv := newTestServer(t)
	patient := mintToken(t, "p1", "Asha Rao", "patient")
	doctor := mintToken(t, "dm1", "Dr. Amit Sharma", "doctor")

	// patient books
	rec := doJSON(t, srv, http.MethodPost, "/api/appointments", patient, map[string]string{
		"doctor_id":   "dm1",
		"doctor_name": "Dr. Amit Sharma",
		"date":        "2025-03-11",
		"time":        "09:00",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var appt appointments.Appointment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &appt))
	assert.Equal(t, "p1", appt.PatientID)
	assert.Equal(t, appointments.StatusPending, appt.Status)

	// doctor confirms
	rec = doJSON(t, srv, http.MethodPut, "/api/appointments/"+appt.ID+"/status", doctor,
		map[string]string{"status": "confirmed"})
	require.Equal(t, http.StatusOK, rec.Code)

	// patient cannot confirm their own booking
	rec = doJSON(t, srv, http.MethodPut, "/api/appointments/"+appt.ID+"/status", patient,
		map[string]string{"status": "completed"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// both sides see the booking
	rec = doJSON(t, srv, http.MethodGet, "/api/appointments", patient, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listed appointments.ListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Equal(t, 1, listed.Count)

	rec = doJSON(t, srv, http.MethodGet, "/api/appointments", doctor, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestSymptomCheckThroughRouter(t *testing.T) {
	srv := newTestServer(t)
	patient := mintToken(t, "p1", "Asha Rao", "patient")

	rec := doJSON(t, srv, http.MethodPost, "/api/symptom-check", patient,
		triage.CheckRequest{Symptoms: "headache and nausea, dizzy"})
	require.Equal(t, http.StatusOK, rec.Code)

	var checked triage.Record
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &checked))
	assert.Equal(t, "Migraine", checked.Result.Prediction)
	assert.Equal(t, triage.ConfidenceHigh, checked.Result.Confidence)

	rec = doJSON(t, srv, http.MethodGet, "/api/symptom-check/history", patient, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var history triage.HistoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	assert.Equal(t, 1, history.Count)
}

func TestAvailabilityUpdateThroughRouter(t *testing.T) {
	srv := newTestServer(t)
	owner := mintToken(t, "dm1", "Dr. Amit Sharma", "doctor")
	other := mintToken(t, "dm2", "Dr. Rahul Verma", "doctor")

	rec := doJSON(t, srv, http.MethodPut, "/api/doctors/dm1/availability", owner,
		map[string][]string{"slots": {"10:00", "08:00"}})
	require.Equal(t, http.StatusOK, rec.Code)

	var doc doctors.Doctor
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, []string{"08:00", "10:00"}, doc.Availability)

	rec = doJSON(t, srv, http.MethodPut, "/api/doctors/dm1/availability", other,
		map[string][]string{"slots": {"10:00"}})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
