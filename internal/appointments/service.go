package appointments

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/hopcare/telehealth-platform/internal/identity"
	"github.com/hopcare/telehealth-platform/internal/observability/metrics"
	"github.com/hopcare/telehealth-platform/pkg/logging"
)

var bookingTracer = otel.Tracer("hopcare.internal.appointments")

// Service drives the booking lifecycle on top of a Repository.
type Service struct {
	repo    Repository
	logger  *logging.Logger
	metrics *metrics.BookingMetrics
	now     func() time.Time
}

// NewService constructs a booking service. metrics may be nil.
func NewService(repo Repository, logger *logging.Logger, m *metrics.BookingMetrics) *Service {
	if repo == nil {
		panic("appointments: repository required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{repo: repo, logger: logger, metrics: m, now: time.Now}
}

// WithNow overrides the clock. Tests use this to pin "today".
func (s *Service) WithNow(now func() time.Time) *Service {
	s.now = now
	return s
}

// Create books a new PENDING appointment. No slot is reserved or locked:
// two bookings for the same doctor/date/time both succeed as independent
// records, which is the contract doctors rely on for overlapping consults.
func (s *Service) Create(ctx context.Context, req *CreateAppointmentRequest) (*Appointment, error) {
	ctx, span := bookingTracer.Start(ctx, "appointments.create")
	defer span.End()

	if err := req.Validate(s.now()); err != nil {
		return nil, err
	}

	appt := &Appointment{
		ID:          uuid.NewString(),
		PatientID:   strings.TrimSpace(req.PatientID),
		PatientName: strings.TrimSpace(req.PatientName),
		DoctorID:    strings.TrimSpace(req.DoctorID),
		DoctorName:  strings.TrimSpace(req.DoctorName),
		Date:        req.Date,
		Time:        strings.TrimSpace(req.Time),
		Status:      StatusPending,
		Notes:       strings.TrimSpace(req.Notes),
		CreatedAt:   s.now().UTC(),
	}
	if err := s.repo.Create(ctx, appt); err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(
		attribute.String("hopcare.appointment_id", appt.ID),
		attribute.String("hopcare.doctor_id", appt.DoctorID),
	)
	s.metrics.ObserveCreated()
	s.logger.Info("appointment created",
		"appointment_id", appt.ID,
		"patient_id", appt.PatientID,
		"doctor_id", appt.DoctorID,
		"date", appt.Date,
		"slot", appt.Time,
	)
	return appt, nil
}

// UpdateStatus validates the requested transition against the state table
// and persists it. There are no cascading effects: cancelling never frees
// a slot because slots are never decremented.
func (s *Service) UpdateStatus(ctx context.Context, id string, to Status, actor identity.Role) (*Appointment, error) {
	ctx, span := bookingTracer.Start(ctx, "appointments.update_status")
	defer span.End()
	span.SetAttributes(
		attribute.String("hopcare.appointment_id", id),
		attribute.String("hopcare.to_status", string(to)),
		attribute.String("hopcare.actor_role", string(actor)),
	)

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.metrics.ObserveTransition(string(to), transitionOutcome(err))
		return nil, err
	}

	if err := CanTransition(current.Status, to, actor); err != nil {
		span.RecordError(err)
		s.metrics.ObserveTransition(string(to), transitionOutcome(err))
		s.logger.Warn("status transition rejected",
			"appointment_id", id,
			"from", current.Status,
			"to", to,
			"actor_role", actor,
			"error", err,
		)
		return nil, err
	}

	updated, err := s.repo.UpdateStatus(ctx, id, to)
	if err != nil {
		span.RecordError(err)
		s.metrics.ObserveTransition(string(to), transitionOutcome(err))
		return nil, err
	}

	s.metrics.ObserveTransition(string(to), "ok")
	s.logger.Info("appointment status updated",
		"appointment_id", id,
		"from", current.Status,
		"to", updated.Status,
		"actor_role", actor,
	)
	return updated, nil
}

// List returns the caller's appointments newest-created-first.
func (s *Service) List(ctx context.Context, user identity.User) ([]*Appointment, error) {
	if user.Role == identity.RoleDoctor {
		return s.repo.ListByDoctor(ctx, user.ID)
	}
	return s.repo.ListByPatient(ctx, user.ID)
}

func transitionOutcome(err error) string {
	switch {
	case errors.Is(err, ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, ErrUnauthorizedActor):
		return "unauthorized"
	case errors.Is(err, ErrAppointmentNotFound):
		return "not_found"
	default:
		return "error"
	}
}
