package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters for the appointment lifecycle.
type BookingMetrics struct {
	createdTotal     prometheus.Counter
	transitionsTotal *prometheus.CounterVec
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		createdTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hopcare",
			Subsystem: "bookings",
			Name:      "created_total",
			Help:      "Total appointments created",
		}),
		transitionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hopcare",
			Subsystem: "bookings",
			Name:      "status_transitions_total",
			Help:      "Total appointment status transition attempts",
		}, []string{"to_status", "outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.createdTotal, m.transitionsTotal)
	return m
}

func (m *BookingMetrics) ObserveCreated() {
	if m == nil {
		return
	}
	m.createdTotal.Inc()
}

func (m *BookingMetrics) ObserveTransition(toStatus, outcome string) {
	if m == nil {
		return
	}
	m.transitionsTotal.WithLabelValues(toStatus, outcome).Inc()
}

// TriageMetrics exposes counters for symptom classification.
type TriageMetrics struct {
	classifiedTotal *prometheus.CounterVec
}

func NewTriageMetrics(reg prometheus.Registerer) *TriageMetrics {
	m := &TriageMetrics{
		classifiedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hopcare",
			Subsystem: "triage",
			Name:      "classified_total",
			Help:      "Total symptom classifications by predicted condition and confidence",
		}, []string{"condition", "confidence"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.classifiedTotal)
	return m
}

func (m *TriageMetrics) ObserveClassified(condition, confidence string) {
	if m == nil {
		return
	}
	m.classifiedTotal.WithLabelValues(condition, confidence).Inc()
}
