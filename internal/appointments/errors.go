package appointments

import "errors"

var (
	// ErrMissingPatientID indicates the booking has no patient id.
	ErrMissingPatientID = errors.New("appointments: patient id is required")

	// ErrMissingDoctorID indicates the booking has no doctor id.
	ErrMissingDoctorID = errors.New("appointments: doctor id is required")

	// ErrMissingTime indicates the booking has no slot label.
	ErrMissingTime = errors.New("appointments: time slot is required")

	// ErrInvalidDate indicates the date is malformed or not after today.
	ErrInvalidDate = errors.New("appointments: date must be YYYY-MM-DD after today")

	// ErrAppointmentNotFound indicates the referenced appointment id does not exist.
	ErrAppointmentNotFound = errors.New("appointments: appointment not found")

	// ErrInvalidTransition indicates the status change is not permitted from
	// the current state.
	ErrInvalidTransition = errors.New("appointments: invalid status transition")

	// ErrUnauthorizedActor indicates the acting role may not drive this transition.
	ErrUnauthorizedActor = errors.New("appointments: actor not permitted for this transition")

	// ErrUnknownStatus indicates the requested status label is not recognized.
	ErrUnknownStatus = errors.New("appointments: unknown status")
)

// IsValidationError reports whether err is a malformed-request condition the
// caller can fix by re-prompting.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingPatientID) ||
		errors.Is(err, ErrMissingDoctorID) ||
		errors.Is(err, ErrMissingTime) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrUnknownStatus)
}
