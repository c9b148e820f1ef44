package triage

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hopcare/telehealth-platform/internal/identity"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	svc := NewService(NewInMemoryHistory(), nil, nil)
	h := NewHandler(svc, nil)

	r := chi.NewRouter()
	r.Post("/api/symptom-check", h.Check)
	r.Get("/api/symptom-check/history", h.History)
	return r
}

func doAs(r http.Handler, user identity.User, method, target string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	if user.ID != "" {
		req = req.WithContext(identity.WithUser(req.Context(), user))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

var patientUser = identity.User{ID: "p1", Name: "Asha Rao", Role: identity.RolePatient}

func TestCheckHandler(t *testing.T) {
	router := newTestRouter(t)

	rec := doAs(router, patientUser, http.MethodPost, "/api/symptom-check",
		CheckRequest{Symptoms: "splitting headache, nausea, sensitivity to light"})
	require.Equal(t, http.StatusOK, rec.Code)

	var got Record
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Migraine", got.Result.Prediction)
	assert.Equal(t, ConfidenceHigh, got.Result.Confidence)
	assert.Equal(t, "Neurologist", got.Result.Specialist)
	assert.Equal(t, "p1", got.PatientID)
}

func TestCheckHandlerRejections(t *testing.T) {
	router := newTestRouter(t)

	t.Run("missing identity", func(t *testing.T) {
		rec := doAs(router, identity.User{}, http.MethodPost, "/api/symptom-check",
			CheckRequest{Symptoms: "fever"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("empty symptoms", func(t *testing.T) {
		rec := doAs(router, patientUser, http.MethodPost, "/api/symptom-check",
			CheckRequest{Symptoms: "   "})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "symptoms required")
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/symptom-check", bytes.NewBufferString("{oops"))
		req = req.WithContext(identity.WithUser(req.Context(), patientUser))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHistoryHandler(t *testing.T) {
	router := newTestRouter(t)

	for _, symptoms := range []string{"migraine and nausea", "itchy rash"} {
		rec := doAs(router, patientUser, http.MethodPost, "/api/symptom-check",
			CheckRequest{Symptoms: symptoms})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := doAs(router, patientUser, http.MethodGet, "/api/symptom-check/history", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HistoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Count)
	assert.Equal(t, "Dermatitis / Skin Allergy", resp.Records[0].Result.Prediction)
	assert.Equal(t, "Migraine", resp.Records[1].Result.Prediction)

	t.Run("scoped to caller", func(t *testing.T) {
		other := identity.User{ID: "p2", Role: identity.RolePatient}
		rec := doAs(router, other, http.MethodGet, "/api/symptom-check/history", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp HistoryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 0, resp.Count)
	})

	t.Run("missing identity", func(t *testing.T) {
		rec := doAs(router, identity.User{}, http.MethodGet, "/api/symptom-check/history", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
