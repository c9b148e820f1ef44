package doctors

import (
	"context"
	"time"

	"github.com/hopcare/telehealth-platform/pkg/logging"
)

// Service owns the availability rules on top of the directory store.
type Service struct {
	repo   Repository
	logger *logging.Logger
	now    func() time.Time
}

// NewService constructs a doctors service.
func NewService(repo Repository, logger *logging.Logger) *Service {
	if repo == nil {
		panic("doctors: repository required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// WithNow overrides the clock. Tests use this to pin "today".
func (s *Service) WithNow(now func() time.Time) *Service {
	s.now = now
	return s
}

// ListDoctors returns the full directory.
func (s *Service) ListDoctors(ctx context.Context) ([]*Doctor, error) {
	return s.repo.List(ctx)
}

// GetDoctor returns a single profile.
func (s *Service) GetDoctor(ctx context.Context, id string) (*Doctor, error) {
	return s.repo.GetByID(ctx, id)
}

// ListAvailableSlots returns the doctor's slot template for a future date.
// The template is returned as-is: existing bookings never remove slots, a
// doctor may deliberately take overlapping consults.
func (s *Service) ListAvailableSlots(ctx context.Context, doctorID, date string) ([]string, error) {
	if !validFutureDate(date, s.now()) {
		return nil, ErrInvalidDate
	}
	doc, err := s.repo.GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	return doc.Availability, nil
}

// SetAvailability replaces the doctor's slot template wholesale.
func (s *Service) SetAvailability(ctx context.Context, doctorID string, slots []string) (*Doctor, error) {
	normalized, err := NormalizeSlots(slots)
	if err != nil {
		return nil, err
	}
	doc, err := s.repo.ReplaceAvailability(ctx, doctorID, normalized)
	if err != nil {
		return nil, err
	}
	s.logger.Info("doctor availability updated", "doctor_id", doctorID, "slots", len(normalized))
	return doc, nil
}
