package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// AdmissionMetrics содержит метрики контроля входящего трафика.
type AdmissionMetrics struct {
	allowed prometheus.Counter
	denied  prometheus.Counter
}

// NewAdmissionMetrics создаёт новый экземпляр метрик admission контроля.
func NewAdmissionMetrics() *AdmissionMetrics {
	return newAdmissionMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newAdmissionMetricsWithRegisterer(registerer prometheus.Registerer) *AdmissionMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &AdmissionMetrics{
		allowed: registerCounter(registerer, prometheus.CounterOpts{
			Name: "commerce_admission_allowed_total",
			Help: "Total number of requests admitted by the rate limiter",
		}),
		denied: registerCounter(registerer, prometheus.CounterOpts{
			Name: "commerce_admission_denied_total",
			Help: "Total number of requests denied by the rate limiter",
		}),
	}
}

// ObserveAdmission фиксирует решение admission контроля по одному запросу.
func (m *AdmissionMetrics) ObserveAdmission(allowed bool) {
	if allowed {
		m.allowed.Inc()
		return
	}
	m.denied.Inc()
}
