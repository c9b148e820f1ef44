package triage

import "errors"

var (
	// ErrEmptySymptoms is returned when the symptom text is empty or
	// whitespace only.
	ErrEmptySymptoms = errors.New("triage: symptoms required")
)
