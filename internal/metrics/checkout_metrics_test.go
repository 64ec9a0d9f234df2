package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestNewCheckoutMetrics(t *testing.T) {
	metrics := newCheckoutMetricsWithRegisterer(prometheus.NewRegistry())

	if metrics == nil {
		t.Fatal("newCheckoutMetricsWithRegisterer should not return nil")
	}

	if metrics.ordersCreated == nil {
		t.Error("ordersCreated counter should not be nil")
	}

	if metrics.ordersRejected == nil {
		t.Error("ordersRejected counter should not be nil")
	}

	if metrics.ordersCancelled == nil {
		t.Error("ordersCancelled counter should not be nil")
	}

	if metrics.ordersFailed == nil {
		t.Error("ordersFailed counter should not be nil")
	}

	if metrics.statusChanges == nil {
		t.Error("statusChanges counter should not be nil")
	}

	if metrics.checkoutDuration == nil {
		t.Error("checkoutDuration histogram should not be nil")
	}

	if metrics.stepDuration == nil {
		t.Error("stepDuration histogram vec should not be nil")
	}

	if metrics.timelineEvents == nil {
		t.Error("timelineEvents counter should not be nil")
	}

	if metrics.outboxEvents == nil {
		t.Error("outboxEvents counter should not be nil")
	}

	if metrics.activeCheckouts == nil {
		t.Error("activeCheckouts gauge should not be nil")
	}
}

func TestRegistererReusesExistingCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()

	first := newCheckoutMetricsWithRegisterer(reg)
	second := newCheckoutMetricsWithRegisterer(reg)

	// Повторная регистрация должна вернуть уже существующие коллекторы.
	if first.ordersCreated != second.ordersCreated {
		t.Error("expected ordersCreated collector to be reused on re-registration")
	}

	if first.stepDuration != second.stepDuration {
		t.Error("expected stepDuration collector to be reused on re-registration")
	}
}

func TestRecordOrderCreated(t *testing.T) {
	reg := prometheus.NewRegistry()

	ordersCreated := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "test_orders_created_total",
		Help: "Test counter",
	})

	reg.MustRegister(ordersCreated)

	metrics := &CheckoutMetrics{
		ordersCreated: ordersCreated,
	}

	metrics.RecordOrderCreated()
	metrics.RecordOrderCreated()

	metric := &dto.Metric{}
	if err := ordersCreated.Write(metric); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}

	if metric.Counter.GetValue() != 2.0 {
		t.Errorf("expected counter value 2.0, got %f", metric.Counter.GetValue())
	}
}

func TestRecordOrderRejected(t *testing.T) {
	reg := prometheus.NewRegistry()

	ordersRejected := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "test_orders_rejected_total",
		Help: "Test counter",
	})
	ordersCreated := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "test_orders_created_reject_total",
		Help: "Test counter",
	})

	reg.MustRegister(ordersRejected, ordersCreated)

	metrics := &CheckoutMetrics{
		ordersRejected: ordersRejected,
		ordersCreated:  ordersCreated,
	}

	metrics.RecordOrderRejected()

	metric := &dto.Metric{}
	if err := ordersRejected.Write(metric); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}

	if metric.Counter.GetValue() != 1.0 {
		t.Errorf("expected counter value 1.0, got %f", metric.Counter.GetValue())
	}

	// Отклонение не должно трогать счётчик созданных заказов.
	createdMetric := &dto.Metric{}
	if err := ordersCreated.Write(createdMetric); err != nil {
		t.Fatalf("failed to write created metric: %v", err)
	}

	if createdMetric.Counter.GetValue() != 0.0 {
		t.Errorf("expected created counter 0.0, got %f", createdMetric.Counter.GetValue())
	}
}

func TestRecordCheckoutDuration(t *testing.T) {
	reg := prometheus.NewRegistry()

	checkoutDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "test_checkout_duration_seconds",
		Help:    "Test histogram",
		Buckets: prometheus.DefBuckets,
	})

	reg.MustRegister(checkoutDuration)

	metrics := &CheckoutMetrics{
		checkoutDuration: checkoutDuration,
	}

	metrics.RecordCheckoutDuration(100 * time.Millisecond)
	metrics.RecordCheckoutDuration(500 * time.Millisecond)
	metrics.RecordCheckoutDuration(1 * time.Second)

	metric := &dto.Metric{}
	if err := checkoutDuration.Write(metric); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}

	if metric.Histogram.GetSampleCount() != 3 {
		t.Errorf("expected 3 samples, got %d", metric.Histogram.GetSampleCount())
	}

	// Check sum is approximately correct (0.1 + 0.5 + 1.0 = 1.6)
	sum := metric.Histogram.GetSampleSum()
	if sum < 1.5 || sum > 1.7 {
		t.Errorf("expected sum around 1.6, got %f", sum)
	}
}

func TestRecordStepDuration(t *testing.T) {
	reg := prometheus.NewRegistry()

	stepDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "test_checkout_step_duration_seconds",
		Help:    "Test histogram vec",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
	}, []string{"step"})

	reg.MustRegister(stepDuration)

	metrics := &CheckoutMetrics{
		stepDuration: stepDuration,
	}

	metrics.RecordStepDuration("verify_user", 50*time.Millisecond)
	metrics.RecordStepDuration("validate_items", 100*time.Millisecond)
	metrics.RecordStepDuration("persist", 25*time.Millisecond)

	verifyMetric := &dto.Metric{}
	observer := stepDuration.WithLabelValues("verify_user")
	if err := observer.(prometheus.Histogram).Write(verifyMetric); err != nil {
		t.Fatalf("failed to write verify_user metric: %v", err)
	}

	if verifyMetric.Histogram.GetSampleCount() != 1 {
		t.Errorf("expected 1 sample for verify_user, got %d", verifyMetric.Histogram.GetSampleCount())
	}
}

func TestCheckoutLifecycle(t *testing.T) {
	reg := prometheus.NewRegistry()

	activeCheckouts := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "test_checkout_lifecycle_active",
		Help: "Test gauge",
	})
	ordersCreated := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "test_checkout_lifecycle_created",
		Help: "Test counter",
	})

	reg.MustRegister(activeCheckouts, ordersCreated)

	metrics := &CheckoutMetrics{
		activeCheckouts: activeCheckouts,
		ordersCreated:   ordersCreated,
	}

	// Simulate checkout lifecycle
	metrics.RecordCheckoutStarted() // active: 1
	metrics.RecordCheckoutStarted() // active: 2
	metrics.RecordCheckoutStarted() // active: 3

	metrics.RecordOrderCreated()
	metrics.RecordCheckoutFinished() // active: 2
	metrics.RecordOrderCreated()
	metrics.RecordCheckoutFinished() // active: 1

	gaugeMetric := &dto.Metric{}
	if err := activeCheckouts.Write(gaugeMetric); err != nil {
		t.Fatalf("failed to write gauge: %v", err)
	}

	if gaugeMetric.Gauge.GetValue() != 1.0 {
		t.Errorf("expected 1 active checkout, got %f", gaugeMetric.Gauge.GetValue())
	}

	createdMetric := &dto.Metric{}
	if err := ordersCreated.Write(createdMetric); err != nil {
		t.Fatalf("failed to write created metric: %v", err)
	}

	if createdMetric.Counter.GetValue() != 2.0 {
		t.Errorf("expected 2 created orders, got %f", createdMetric.Counter.GetValue())
	}
}

func TestRecordTimelineAndOutboxEvents(t *testing.T) {
	reg := prometheus.NewRegistry()

	timelineEvents := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "test_timeline_events_total",
		Help: "Test counter",
	})
	outboxEvents := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "test_outbox_events_total",
		Help: "Test counter",
	})

	reg.MustRegister(timelineEvents, outboxEvents)

	metrics := &CheckoutMetrics{
		timelineEvents: timelineEvents,
		outboxEvents:   outboxEvents,
	}

	metrics.RecordTimelineEvent()
	metrics.RecordTimelineEvent()
	metrics.RecordTimelineEvent()
	metrics.RecordOutboxEvent()
	metrics.RecordOutboxEvent()

	timelineMetric := &dto.Metric{}
	if err := timelineEvents.Write(timelineMetric); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}

	if timelineMetric.Counter.GetValue() != 3.0 {
		t.Errorf("expected timeline counter 3.0, got %f", timelineMetric.Counter.GetValue())
	}

	outboxMetric := &dto.Metric{}
	if err := outboxEvents.Write(outboxMetric); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}

	if outboxMetric.Counter.GetValue() != 2.0 {
		t.Errorf("expected outbox counter 2.0, got %f", outboxMetric.Counter.GetValue())
	}
}
