// Package appointments implements the booking lifecycle: slot requests,
// the status state machine and who may drive each transition.
package appointments

import (
	"strings"
	"time"

	"github.com/hopcare/telehealth-platform/internal/identity"
)

// Status is the lifecycle state of an appointment.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ParseStatus maps a wire label to a Status.
func ParseStatus(s string) (Status, bool) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusPending:
		return StatusPending, true
	case StatusConfirmed:
		return StatusConfirmed, true
	case StatusCompleted:
		return StatusCompleted, true
	case StatusCancelled:
		return StatusCancelled, true
	}
	return "", false
}

// Appointment is a booking request/record. Patient and doctor names are
// denormalized at booking time so the record stays readable after profile
// changes.
type Appointment struct {
	ID          string    `json:"id"`
	PatientID   string    `json:"patient_id"`
	PatientName string    `json:"patient_name"`
	DoctorID    string    `json:"doctor_id"`
	DoctorName  string    `json:"doctor_name"`
	Date        string    `json:"date"` // YYYY-MM-DD
	Time        string    `json:"time"` // slot label, e.g. "09:00"
	Status      Status    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// transitions maps each valid edge to the roles allowed to drive it.
// An edge with no roles exists in the state table but cannot be triggered
// by either party (confirmed -> completed is reserved for elapsed time,
// which nothing schedules yet).
var transitions = map[Status]map[Status][]identity.Role{
	StatusPending: {
		StatusConfirmed: {identity.RoleDoctor},
		StatusCancelled: {identity.RoleDoctor, identity.RolePatient},
	},
	StatusConfirmed: {
		StatusCancelled: {identity.RolePatient},
		StatusCompleted: {},
	},
}

// CanTransition validates a status change against the state table.
// It returns ErrInvalidTransition when the edge does not exist and
// ErrUnauthorizedActor when the edge exists but the role may not drive it.
func CanTransition(from, to Status, actor identity.Role) error {
	edges, ok := transitions[from]
	if !ok {
		return ErrInvalidTransition
	}
	roles, ok := edges[to]
	if !ok {
		return ErrInvalidTransition
	}
	for _, role := range roles {
		if role == actor {
			return nil
		}
	}
	return ErrUnauthorizedActor
}

const dateLayout = "2006-01-02"

// CreateAppointmentRequest is the request body for booking an appointment.
type CreateAppointmentRequest struct {
	PatientID   string `json:"patient_id"`
	PatientName string `json:"patient_name"`
	DoctorID    string `json:"doctor_id"`
	DoctorName  string `json:"doctor_name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Notes       string `json:"notes"`
}

// Validate checks the booking request. The slot label is only required to be
// non-empty: membership in the doctor's template is not enforced at creation,
// matching the trust-the-caller contract.
func (r *CreateAppointmentRequest) Validate(now time.Time) error {
	if strings.TrimSpace(r.PatientID) == "" {
		return ErrMissingPatientID
	}
	if strings.TrimSpace(r.DoctorID) == "" {
		return ErrMissingDoctorID
	}
	if strings.TrimSpace(r.Time) == "" {
		return ErrMissingTime
	}
	if _, err := time.Parse(dateLayout, r.Date); err != nil {
		return ErrInvalidDate
	}
	// Fixed-width format makes the lexical compare safe.
	if r.Date <= now.UTC().Format(dateLayout) {
		return ErrInvalidDate
	}
	return nil
}
