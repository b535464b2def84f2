package services

import (
	"context"
	"time"
)

// CustomerLoggerInterface provides structured logging for customer operations
type CustomerLoggerInterface interface {
	LogCustomerCreated(ctx context.Context, customerID int64)
	LogCustomerDeleted(ctx context.Context, customerID int64)
	LogCustomerNotFound(ctx context.Context, operation string, customerID int64)
	LogCustomersListed(ctx context.Context, count int)
	LogValidationFailure(ctx context.Context, operation string, errorMsg string)
}

// MetricsRecorderInterface records operational metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
