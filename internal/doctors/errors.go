package doctors

import "errors"

var (
	// ErrDoctorNotFound indicates the referenced doctor id does not exist.
	ErrDoctorNotFound = errors.New("doctors: doctor not found")

	// ErrInvalidSlotLabel indicates a slot label is not a HH:MM time string.
	ErrInvalidSlotLabel = errors.New("doctors: slot label must be HH:MM")

	// ErrInvalidDate indicates the requested date is malformed or not after today.
	ErrInvalidDate = errors.New("doctors: date must be YYYY-MM-DD after today")
)
