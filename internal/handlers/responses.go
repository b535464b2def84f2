package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"customer-service/internal/errors"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// Handlers use the following helpers for error responses:
//
// 1. SendError - For client errors (4xx responses)
//    - Malformed bodies: SendError(c, errors.ValidationGeneral, errors.WithDetails("..."))
//    - Bad path parameters: SendError(c, errors.CustomerInvalidID)
//
// 2. SendSystemError - For store and other internal errors (500 responses)
//
// A missing customer is the one exception: it is answered with an empty 404
// through c.NoContent so clients can test for absence without parsing a body.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.Status(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internalErr := errors.WrapSystemError(err, traceID)
	slog.ErrorContext(c.Request().Context(), "internal error",
		"trace_id", traceID,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", internalErr,
	)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// sendJSON writes v without the trailing newline echo's encoder appends
func sendJSON(c echo.Context, status int, v interface{}) error {
	body, err := json.Marshal(v)
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSONBlob(status, body)
}
