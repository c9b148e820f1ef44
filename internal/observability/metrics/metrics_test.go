package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestBookingMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewBookingMetrics(reg)

	m.ObserveCreated()
	m.ObserveCreated()
	m.ObserveTransition("confirmed", "ok")
	m.ObserveTransition("cancelled", "invalid_transition")

	if got := testutil.ToFloat64(m.createdTotal); got != 2 {
		t.Errorf("expected 2 created, got %f", got)
	}
	if got := testutil.ToFloat64(m.transitionsTotal.WithLabelValues("confirmed", "ok")); got != 1 {
		t.Errorf("expected 1 confirmed/ok transition, got %f", got)
	}
}

func TestTriageMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewTriageMetrics(reg)

	m.ObserveClassified("Migraine", "High")
	if got := testutil.ToFloat64(m.classifiedTotal.WithLabelValues("Migraine", "High")); got != 1 {
		t.Errorf("expected 1 classification, got %f", got)
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	var bm *BookingMetrics
	var tm *TriageMetrics

	bm.ObserveCreated()
	bm.ObserveTransition("confirmed", "ok")
	tm.ObserveClassified("Migraine", "High")
}
