// Package doctors owns the doctor directory and the slot-template availability rules.
package doctors

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

// Specialties is the fixed specialty set the platform recognizes. It covers
// every specialist the triage engine can suggest plus the directory extras.
var Specialties = []string{
	"Cardiologist",
	"Dentist",
	"Dermatologist",
	"ENT Specialist",
	"Endocrinologist",
	"Gastroenterologist",
	"General Physician",
	"Gynecologist",
	"Neurologist",
	"Oncologist",
	"Ophthalmologist",
	"Orthopedist",
	"Pediatrician",
	"Psychiatrist",
}

// IsValidSpecialty reports whether s belongs to the fixed specialty set.
func IsValidSpecialty(s string) bool {
	for _, known := range Specialties {
		if known == s {
			return true
		}
	}
	return false
}

// Doctor is a practitioner profile plus the weekly slot template.
// Availability holds time labels ("09:00") offered every day, not
// date-specific reservations.
type Doctor struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email,omitempty"`
	Specialization  string   `json:"specialization"`
	Qualifications  string   `json:"qualifications,omitempty"`
	Experience      string   `json:"experience,omitempty"`
	Hospital        string   `json:"hospital,omitempty"`
	Location        string   `json:"location,omitempty"`
	Rating          float64  `json:"rating,omitempty"`
	ReviewCount     int      `json:"review_count,omitempty"`
	ConsultationFee string   `json:"consultation_fee,omitempty"`
	Bio             string   `json:"bio,omitempty"`
	Availability    []string `json:"availability"`
}

var slotLabelPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// NormalizeSlots validates, deduplicates and sorts a slot-label template.
// Labels must be 24-hour HH:MM strings. The sorted order makes template
// iteration deterministic.
func NormalizeSlots(slots []string) ([]string, error) {
	seen := make(map[string]struct{}, len(slots))
	out := make([]string, 0, len(slots))
	for _, slot := range slots {
		slot = strings.TrimSpace(slot)
		if !slotLabelPattern.MatchString(slot) {
			return nil, ErrInvalidSlotLabel
		}
		if _, ok := seen[slot]; ok {
			continue
		}
		seen[slot] = struct{}{}
		out = append(out, slot)
	}
	sort.Strings(out)
	return out, nil
}

const dateLayout = "2006-01-02"

// validFutureDate reports whether date is a well-formed YYYY-MM-DD strictly
// after today. The fixed-width format makes a lexical compare sufficient.
func validFutureDate(date string, now time.Time) bool {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return false
	}
	return date > now.UTC().Format(dateLayout)
}
