package services

import (
	"context"
	"log/slog"
	"time"
)

// CustomerLogger provides structured logging for customer-related operations
type CustomerLogger struct {
	logger *slog.Logger
}

// NewCustomerLogger creates a new customer logger
func NewCustomerLogger(logger *slog.Logger) CustomerLoggerInterface {
	return &CustomerLogger{
		logger: logger,
	}
}

// LogCustomerCreated logs customer creation
func (cl *CustomerLogger) LogCustomerCreated(ctx context.Context, customerID int64) {
	cl.logger.InfoContext(ctx, "customer created",
		slog.String("event_type", "customer_created"),
		slog.Int64("customer_id", customerID),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogCustomerDeleted logs customer deletion
func (cl *CustomerLogger) LogCustomerDeleted(ctx context.Context, customerID int64) {
	cl.logger.InfoContext(ctx, "customer deleted",
		slog.String("event_type", "customer_deleted"),
		slog.Int64("customer_id", customerID),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogCustomerNotFound logs a lookup or delete for an unknown customer
func (cl *CustomerLogger) LogCustomerNotFound(ctx context.Context, operation string, customerID int64) {
	cl.logger.InfoContext(ctx, "customer not found",
		slog.String("event_type", "customer_not_found"),
		slog.String("operation", operation),
		slog.Int64("customer_id", customerID),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogCustomersListed logs a served customer listing
func (cl *CustomerLogger) LogCustomersListed(ctx context.Context, count int) {
	cl.logger.DebugContext(ctx, "customer list served",
		slog.String("event_type", "customer_list_served"),
		slog.Int("results_count", count),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogValidationFailure logs rejected input
func (cl *CustomerLogger) LogValidationFailure(ctx context.Context, operation string, errorMsg string) {
	cl.logger.WarnContext(ctx, "validation failure",
		slog.String("event_type", "validation_failure"),
		slog.String("operation", operation),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}
