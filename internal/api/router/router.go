package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hopcare/telehealth-platform/internal/appointments"
	"github.com/hopcare/telehealth-platform/internal/doctors"
	httpmiddleware "github.com/hopcare/telehealth-platform/internal/http/middleware"
	"github.com/hopcare/telehealth-platform/internal/triage"
	"github.com/hopcare/telehealth-platform/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger              *logging.Logger
	AppointmentsHandler *appointments.Handler
	DoctorsHandler      *doctors.Handler
	TriageHandler       *triage.Handler
	MetricsHandler      http.Handler

	// AuthJWTSecret verifies the bearer tokens issued by the identity
	// provider. Authenticated routes are disabled when empty.
	AuthJWTSecret      string
	CORSAllowedOrigins []string
	RateLimitPerSec    float64
	RateLimitBurst     int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}
	if cfg.RateLimitPerSec > 0 {
		r.Use(httpmiddleware.RateLimit(cfg.RateLimitPerSec, cfg.RateLimitBurst))
	}

	// Public endpoints (health, metrics, doctor directory)
	r.Group(func(public chi.Router) {
		public.Get("/health", healthCheck)
		if cfg.MetricsHandler != nil {
			public.Handle("/metrics", cfg.MetricsHandler)
		}
		if cfg.DoctorsHandler != nil {
			public.Get("/api/doctors", cfg.DoctorsHandler.ListDoctors)
			public.Get("/api/doctors/{id}", cfg.DoctorsHandler.GetDoctor)
			public.Get("/api/doctors/{id}/slots", cfg.DoctorsHandler.ListSlots)
		}
	})

	// Authenticated routes (patient and doctor bearer tokens)
	if cfg.AuthJWTSecret != "" {
		r.Group(func(api chi.Router) {
			api.Use(httpmiddleware.UserJWT(cfg.AuthJWTSecret))

			if cfg.AppointmentsHandler != nil {
				api.Route("/api/appointments", func(r chi.Router) {
					r.Post("/", cfg.AppointmentsHandler.Create)
					r.Get("/", cfg.AppointmentsHandler.List)
					r.Put("/{id}/status", cfg.AppointmentsHandler.UpdateStatus)
				})
			}
			if cfg.TriageHandler != nil {
				api.Route("/api/symptom-check", func(r chi.Router) {
					r.Post("/", cfg.TriageHandler.Check)
					r.Get("/history", cfg.TriageHandler.History)
				})
			}
			if cfg.DoctorsHandler != nil {
				api.Put("/api/doctors/{id}/availability", cfg.DoctorsHandler.UpdateAvailability)
			}
		})
	}

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
