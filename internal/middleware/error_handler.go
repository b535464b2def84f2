package middleware

import (
	"fmt"
	"log/slog"

	"customer-service/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CustomHTTPErrorHandler returns an Echo error handler that formats errors
// as standardized error responses, logs them and counts them on reg
func CustomHTTPErrorHandler(reg prometheus.Registerer) echo.HTTPErrorHandler {
	apiErrorsTotal := promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_errors_total",
			Help: "Total number of API errors by code, endpoint, and status",
		},
		[]string{"code", "endpoint", "status"},
	)

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		traceID := GetTraceID(c)
		if traceID == "" {
			traceID = "unknown"
		}

		var errorResponse *errors.ErrorResponse
		var httpStatus int

		if echoErr, ok := err.(*echo.HTTPError); ok {
			errorCode := errors.CodeForStatus(echoErr.Code)
			message := fmt.Sprintf("%v", echoErr.Message)

			errorResponse = errors.NewErrorResponse(
				errorCode,
				traceID,
				errors.WithMessage(message),
			)
			httpStatus = echoErr.Code
		} else {
			errorResponse, _ = errors.WrapSystemError(err, traceID)
			httpStatus = errorResponse.Status()
		}

		logLevel := slog.LevelWarn
		if httpStatus >= 500 {
			logLevel = slog.LevelError
		}

		slog.Log(c.Request().Context(), logLevel, "HTTP error occurred",
			"trace_id", traceID,
			"error_code", errorResponse.Error.Code,
			"status", httpStatus,
			"message", errorResponse.Error.Message,
			"path", c.Request().URL.Path,
			"method", c.Request().Method,
			"error", err.Error(),
		)

		apiErrorsTotal.WithLabelValues(
			errorResponse.Error.Code,
			c.Path(),
			fmt.Sprintf("%d", httpStatus),
		).Inc()

		if sendErr := c.JSON(httpStatus, errorResponse); sendErr != nil {
			slog.Error("Failed to send error response",
				"trace_id", traceID,
				"error", sendErr.Error(),
			)
		}
	}
}
