package appointments

import (
	"context"
	"sync"
)

// Repository defines the interface for appointment storage. Reads are
// side-effect-free so dashboards can poll them cheaply.
type Repository interface {
	Create(ctx context.Context, appt *Appointment) error
	GetByID(ctx context.Context, id string) (*Appointment, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Appointment, error)
	ListByPatient(ctx context.Context, patientID string) ([]*Appointment, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]*Appointment, error)
}

// InMemoryRepository stores appointments in process memory, preserving
// insertion order so listings can run newest-first.
type InMemoryRepository struct {
	mu    sync.RWMutex
	byID  map[string]*Appointment
	order []string
}

// NewInMemoryRepository creates a new in-memory repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byID: make(map[string]*Appointment)}
}

// Create appends a new appointment. No uniqueness is enforced on
// (doctor, date, time): concurrent bookings of one slot all land.
func (r *InMemoryRepository) Create(ctx context.Context, appt *Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *appt
	r.byID[appt.ID] = &cp
	r.order = append(r.order, appt.ID)
	return nil
}

// GetByID retrieves an appointment by id.
func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appt, ok := r.byID[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	cp := *appt
	return &cp, nil
}

// UpdateStatus persists a new status and returns the updated record.
func (r *InMemoryRepository) UpdateStatus(ctx context.Context, id string, status Status) (*Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	appt, ok := r.byID[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	appt.Status = status
	cp := *appt
	return &cp, nil
}

// ListByPatient returns the patient's appointments newest-created-first.
func (r *InMemoryRepository) ListByPatient(ctx context.Context, patientID string) ([]*Appointment, error) {
	return r.list(func(a *Appointment) bool { return a.PatientID == patientID }), nil
}

// ListByDoctor returns the doctor's appointments newest-created-first.
func (r *InMemoryRepository) ListByDoctor(ctx context.Context, doctorID string) ([]*Appointment, error) {
	return r.list(func(a *Appointment) bool { return a.DoctorID == doctorID }), nil
}

func (r *InMemoryRepository) list(match func(*Appointment) bool) []*Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Appointment, 0)
	for i := len(r.order) - 1; i >= 0; i-- {
		appt := r.byID[r.order[i]]
		if match(appt) {
			cp := *appt
			out = append(out, &cp)
		}
	}
	return out
}
