package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

const testTraceID = "550e8400-e29b-41d4-a716-446655440000"

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestRegistry_EveryCodeIsComplete() {
	prefixes := []string{"VALIDATION_", "CUSTOMER_", "REQUEST_", "SYSTEM_"}

	for code, info := range registry {
		s.Run(string(code), func() {
			s.NotEmpty(info.message)
			s.GreaterOrEqual(info.status, 400)

			hasPrefix := false
			for _, prefix := range prefixes {
				hasPrefix = hasPrefix || strings.HasPrefix(string(code), prefix)
			}
			s.True(hasPrefix, "code %s has no known prefix", code)
		})
	}
}

func (s *ErrorsTestSuite) TestUnknownCode() {
	s.Equal("An error occurred", GetErrorMessage("CUSTOMER_999"))
	s.Equal(http.StatusInternalServerError, GetHTTPStatus("CUSTOMER_999"))
}

func (s *ErrorsTestSuite) TestCodeForStatus_RoundTrips() {
	statuses := []int{
		http.StatusBadRequest,
		http.StatusNotFound,
		http.StatusMethodNotAllowed,
		http.StatusRequestEntityTooLarge,
		http.StatusUnsupportedMediaType,
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusServiceUnavailable,
	}

	for _, status := range statuses {
		s.Run(http.StatusText(status), func() {
			s.Equal(status, GetHTTPStatus(CodeForStatus(status)))
		})
	}
}

func (s *ErrorsTestSuite) TestCodeForStatus_Unmapped() {
	s.Equal(SystemUnexpectedError, CodeForStatus(http.StatusTeapot))
}

func (s *ErrorsTestSuite) TestNewErrorResponse_Defaults() {
	response := NewErrorResponse(CustomerInvalidID, testTraceID)

	s.Equal("CUSTOMER_004", response.Error.Code)
	s.Equal("Invalid customer ID format", response.Error.Message)
	s.Equal(testTraceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
	s.Equal(http.StatusBadRequest, response.Status())
}

func (s *ErrorsTestSuite) TestNewErrorResponse_LastOptionWins() {
	response := NewErrorResponse(ValidationGeneral, testTraceID,
		WithMessage("first"),
		WithDetails("a", "b"),
		WithMessage("second"),
		WithDetails("c"),
	)

	s.Equal("second", response.Error.Message)
	s.Equal([]string{"c"}, response.Error.Details)
}

func (s *ErrorsTestSuite) TestWrapSystemError_HidesCause() {
	cause := stderrors.New("SQL error: no such table: customers")

	response, err := WrapSystemError(cause, testTraceID)

	s.Same(cause, err)
	s.Equal("SYSTEM_001", response.Error.Code)
	s.NotContains(response.Error.Message, "customers")
	s.Empty(response.Error.Details)
	s.Equal(http.StatusInternalServerError, response.Status())
}

func (s *ErrorsTestSuite) TestWireFormat() {
	body, err := json.Marshal(NewErrorResponse(RequestRouteNotFound, testTraceID))
	s.Require().NoError(err)
	s.JSONEq(`{"error":{"code":"REQUEST_001","message":"Resource not found","trace_id":"`+testTraceID+`"}}`, string(body))

	body, err = json.Marshal(NewErrorResponse(ValidationGeneral, testTraceID, WithDetails("request body is empty")))
	s.Require().NoError(err)
	s.JSONEq(`{"error":{"code":"VALIDATION_001","message":"Validation failed","details":["request body is empty"],"trace_id":"`+testTraceID+`"}}`, string(body))
}
