package triage

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/hopcare/telehealth-platform/internal/observability/metrics"
	"github.com/hopcare/telehealth-platform/pkg/logging"
)

var triageTracer = otel.Tracer("hopcare.internal.triage")

// Confidence bands for a classification.
const (
	ConfidenceHigh   = "High"
	ConfidenceMedium = "Medium"
	ConfidenceLow    = "Low"
)

// Result is the outcome of classifying one symptom description.
type Result struct {
	Prediction     string `json:"prediction"`
	Confidence     string `json:"confidence"`
	Recommendation string `json:"recommendation"`
	Specialist     string `json:"specialist"`
}

// Evaluate runs the rule table over the symptom text. It is pure: the same
// input always yields the same result. Each rule scores the number of its
// keywords contained in the lowercased text; the first rule with a strictly
// higher score than all earlier ones wins. No matches falls through to the
// General Symptoms result.
func Evaluate(symptoms string) (Result, error) {
	if strings.TrimSpace(symptoms) == "" {
		return Result{}, ErrEmptySymptoms
	}

	lower := strings.ToLower(symptoms)
	var best *conditionRule
	maxCount := 0
	for i := range conditionRules {
		rule := &conditionRules[i]
		count := 0
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				count++
			}
		}
		if count > maxCount {
			maxCount = count
			best = rule
		}
	}

	if best == nil {
		return Result{
			Prediction:     fallbackPrediction,
			Confidence:     ConfidenceLow,
			Recommendation: fallbackRecommendation,
			Specialist:     fallbackSpecialist,
		}, nil
	}

	confidence := ConfidenceMedium
	if maxCount >= 3 {
		confidence = ConfidenceHigh
	}
	return Result{
		Prediction:     best.Prediction,
		Confidence:     confidence,
		Recommendation: best.Recommendation,
		Specialist:     best.Specialist,
	}, nil
}

// Service classifies symptom descriptions and records them in the
// patient's history.
type Service struct {
	history HistoryStore
	logger  *logging.Logger
	metrics *metrics.TriageMetrics
	now     func() time.Time
}

// NewService constructs a triage service. history and metrics may be nil.
func NewService(history HistoryStore, logger *logging.Logger, m *metrics.TriageMetrics) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{history: history, logger: logger, metrics: m, now: time.Now}
}

// WithNow overrides the clock. Tests use this to pin timestamps.
func (s *Service) WithNow(now func() time.Time) *Service {
	s.now = now
	return s
}

// Classify evaluates the symptom text and appends the outcome to the
// patient's history. A history write failure does not fail the check:
// the classification is still returned.
func (s *Service) Classify(ctx context.Context, patientID, symptoms string) (*Record, error) {
	ctx, span := triageTracer.Start(ctx, "triage.classify")
	defer span.End()

	result, err := Evaluate(symptoms)
	if err != nil {
		return nil, err
	}

	rec := &Record{
		ID:        uuid.NewString(),
		PatientID: patientID,
		Symptoms:  strings.TrimSpace(symptoms),
		Result:    result,
		CreatedAt: s.now().UTC(),
	}

	span.SetAttributes(
		attribute.String("hopcare.prediction", result.Prediction),
		attribute.String("hopcare.confidence", result.Confidence),
	)
	s.metrics.ObserveClassified(result.Prediction, result.Confidence)

	if s.history != nil {
		if err := s.history.Append(ctx, rec); err != nil {
			span.RecordError(err)
			s.logger.Warn("failed to record symptom check",
				"patient_id", patientID,
				"error", err,
			)
		}
	}

	s.logger.Info("symptoms classified",
		"patient_id", patientID,
		"prediction", result.Prediction,
		"confidence", result.Confidence,
	)
	return rec, nil
}

// History returns the patient's past symptom checks newest-first.
func (s *Service) History(ctx context.Context, patientID string) ([]*Record, error) {
	if s.history == nil {
		return []*Record{}, nil
	}
	return s.history.ListByPatient(ctx, patientID)
}
