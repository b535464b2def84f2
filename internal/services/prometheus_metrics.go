package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	customerCreatedTotal     prometheus.Counter
	customerDeletedTotal     prometheus.Counter
	customerLookupsTotal     *prometheus.CounterVec
	customerRejectedTotal    *prometheus.CounterVec
	customersStored          prometheus.Gauge
	customerOperationLatency *prometheus.HistogramVec
}

// NewPrometheusMetrics registers the customer metrics on reg
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		customerCreatedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "customer_created_total",
				Help: "Total number of customers created",
			},
		),
		customerDeletedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "customer_deleted_total",
				Help: "Total number of customers deleted",
			},
		),
		customerLookupsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customer_lookups_total",
				Help: "Total number of customer lookups by ID",
			},
			[]string{"operation", "result"},
		),
		customerRejectedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customer_rejected_requests_total",
				Help: "Total number of customer requests rejected as malformed",
			},
			[]string{"reason"},
		),
		customersStored: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "customers_stored",
				Help: "Current number of customers held by the store",
			},
		),
		customerOperationLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "customer_operation_duration_seconds",
				Help:    "Customer operation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "customer_created":
		m.customerCreatedTotal.Inc()
	case "customer_deleted":
		m.customerDeletedTotal.Inc()
	case "customer_lookup":
		if result := tags["result"]; result != "" {
			m.customerLookupsTotal.WithLabelValues(tags["operation"], result).Inc()
		}
	case "customer_rejected":
		if reason := tags["reason"]; reason != "" {
			m.customerRejectedTotal.WithLabelValues(reason).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "customer_list", "customer_create", "customer_get", "customer_delete":
		m.customerOperationLatency.WithLabelValues(name).Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "customers_stored":
		m.customersStored.Set(value)
	}
}
