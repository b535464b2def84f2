package services

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type CustomerLoggerTestSuite struct {
	suite.Suite
	buf    *bytes.Buffer
	logger CustomerLoggerInterface
}

func (s *CustomerLoggerTestSuite) SetupTest() {
	s.buf = &bytes.Buffer{}
	handler := slog.NewJSONHandler(s.buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	s.logger = NewCustomerLogger(slog.New(handler))
}

func TestCustomerLoggerTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerLoggerTestSuite))
}

func (s *CustomerLoggerTestSuite) lastEntry() map[string]interface{} {
	lines := strings.Split(strings.TrimSpace(s.buf.String()), "\n")
	s.Require().NotEmpty(lines)

	var entry map[string]interface{}
	s.Require().NoError(json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

func (s *CustomerLoggerTestSuite) TestLogCustomerCreated() {
	ctx := WithRequestID(context.Background(), "trace-123")

	s.logger.LogCustomerCreated(ctx, 7)

	entry := s.lastEntry()
	s.Equal("INFO", entry["level"])
	s.Equal("customer_created", entry["event_type"])
	s.Equal(float64(7), entry["customer_id"])
	s.Equal("trace-123", entry["request_id"])
}

func (s *CustomerLoggerTestSuite) TestLogCustomerDeleted() {
	s.logger.LogCustomerDeleted(context.Background(), 3)

	entry := s.lastEntry()
	s.Equal("customer_deleted", entry["event_type"])
	s.Equal(float64(3), entry["customer_id"])
	s.Equal("", entry["request_id"])
}

func (s *CustomerLoggerTestSuite) TestLogCustomerNotFound() {
	s.logger.LogCustomerNotFound(context.Background(), "delete", 1000)

	entry := s.lastEntry()
	s.Equal("customer_not_found", entry["event_type"])
	s.Equal("delete", entry["operation"])
	s.Equal(float64(1000), entry["customer_id"])
}

func (s *CustomerLoggerTestSuite) TestLogCustomersListed_IsDebug() {
	s.logger.LogCustomersListed(context.Background(), 2)

	entry := s.lastEntry()
	s.Equal("DEBUG", entry["level"])
	s.Equal("customer_list_served", entry["event_type"])
	s.Equal(float64(2), entry["results_count"])
}

func (s *CustomerLoggerTestSuite) TestLogValidationFailure() {
	s.logger.LogValidationFailure(context.Background(), "create", "request body is empty")

	entry := s.lastEntry()
	s.Equal("WARN", entry["level"])
	s.Equal("validation_failure", entry["event_type"])
	s.Equal("create", entry["operation"])
	s.Equal("request body is empty", entry["error"])
}

func (s *CustomerLoggerTestSuite) TestGetRequestID_IgnoresForeignValues() {
	ctx := context.WithValue(context.Background(), RequestIDKey, 42)
	s.Equal("", getRequestID(ctx))
}
