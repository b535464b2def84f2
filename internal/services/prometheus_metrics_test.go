package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

type PrometheusMetricsTestSuite struct {
	suite.Suite
	registry *prometheus.Registry
	metrics  *PrometheusMetrics
}

func (s *PrometheusMetricsTestSuite) SetupTest() {
	s.registry = prometheus.NewRegistry()
	s.metrics = NewPrometheusMetrics(s.registry).(*PrometheusMetrics)
}

func TestPrometheusMetricsTestSuite(t *testing.T) {
	suite.Run(t, new(PrometheusMetricsTestSuite))
}

func (s *PrometheusMetricsTestSuite) TestIncrementCounter_CreatedAndDeleted() {
	s.metrics.IncrementCounter("customer_created", nil)
	s.metrics.IncrementCounter("customer_created", nil)
	s.metrics.IncrementCounter("customer_deleted", nil)

	s.Equal(float64(2), testutil.ToFloat64(s.metrics.customerCreatedTotal))
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.customerDeletedTotal))
}

func (s *PrometheusMetricsTestSuite) TestIncrementCounter_Lookup() {
	s.metrics.IncrementCounter("customer_lookup", map[string]string{"operation": "get", "result": "found"})
	s.metrics.IncrementCounter("customer_lookup", map[string]string{"operation": "get", "result": "not_found"})
	s.metrics.IncrementCounter("customer_lookup", map[string]string{"operation": "get", "result": "not_found"})
	s.metrics.IncrementCounter("customer_lookup", map[string]string{"operation": "get"})

	s.Equal(float64(1), testutil.ToFloat64(s.metrics.customerLookupsTotal.WithLabelValues("get", "found")))
	s.Equal(float64(2), testutil.ToFloat64(s.metrics.customerLookupsTotal.WithLabelValues("get", "not_found")))
}

func (s *PrometheusMetricsTestSuite) TestIncrementCounter_Rejected() {
	s.metrics.IncrementCounter("customer_rejected", map[string]string{"reason": "malformed_body"})

	s.Equal(float64(1), testutil.ToFloat64(s.metrics.customerRejectedTotal.WithLabelValues("malformed_body")))
}

func (s *PrometheusMetricsTestSuite) TestIncrementCounter_UnknownNameIgnored() {
	s.NotPanics(func() {
		s.metrics.IncrementCounter("unknown_counter", nil)
	})
	s.Equal(float64(0), testutil.ToFloat64(s.metrics.customerCreatedTotal))
}

func (s *PrometheusMetricsTestSuite) TestRecordGauge() {
	s.metrics.RecordGauge("customers_stored", 5, nil)
	s.Equal(float64(5), testutil.ToFloat64(s.metrics.customersStored))

	s.metrics.RecordGauge("customers_stored", 3, nil)
	s.Equal(float64(3), testutil.ToFloat64(s.metrics.customersStored))
}

func (s *PrometheusMetricsTestSuite) TestRecordProcessingTime() {
	s.metrics.RecordProcessingTime("customer_create", 15*time.Millisecond)
	s.metrics.RecordProcessingTime("customer_list", 2*time.Millisecond)
	s.metrics.RecordProcessingTime("something_else", time.Second)

	s.Equal(2, testutil.CollectAndCount(s.metrics.customerOperationLatency))
}

func (s *PrometheusMetricsTestSuite) TestRegistersOnGivenRegistry() {
	s.metrics.IncrementCounter("customer_created", nil)
	s.metrics.RecordGauge("customers_stored", 1, nil)

	families, err := s.registry.Gather()
	s.Require().NoError(err)

	names := make(map[string]bool, len(families))
	for _, family := range families {
		names[family.GetName()] = true
	}
	s.True(names["customer_created_total"])
	s.True(names["customers_stored"])
}

func (s *PrometheusMetricsTestSuite) TestSeparateRegistriesDoNotConflict() {
	s.NotPanics(func() {
		NewPrometheusMetrics(prometheus.NewRegistry())
		NewPrometheusMetrics(prometheus.NewRegistry())
	})
}
