package errors

import "net/http"

// ErrorCode is the machine-readable code carried in every error body
type ErrorCode string

const (
	ValidationGeneral ErrorCode = "VALIDATION_001"

	CustomerInvalidID ErrorCode = "CUSTOMER_004"

	// Raised by the router rather than by a handler
	RequestRouteNotFound    ErrorCode = "REQUEST_001"
	RequestMethodNotAllowed ErrorCode = "REQUEST_002"
	RequestUnsupportedMedia ErrorCode = "REQUEST_003"
	RequestEntityTooLarge   ErrorCode = "REQUEST_004"

	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

type codeInfo struct {
	status  int
	message string
}

var registry = map[ErrorCode]codeInfo{
	ValidationGeneral:        {http.StatusBadRequest, "Validation failed"},
	CustomerInvalidID:        {http.StatusBadRequest, "Invalid customer ID format"},
	RequestRouteNotFound:     {http.StatusNotFound, "Resource not found"},
	RequestMethodNotAllowed:  {http.StatusMethodNotAllowed, "Method not allowed for this resource"},
	RequestUnsupportedMedia:  {http.StatusUnsupportedMediaType, "Unsupported content type"},
	RequestEntityTooLarge:    {http.StatusRequestEntityTooLarge, "Request body is too large"},
	SystemInternalError:      {http.StatusInternalServerError, "An unexpected error occurred. Please contact support with trace ID"},
	SystemServiceUnavailable: {http.StatusServiceUnavailable, "Service temporarily unavailable"},
	SystemUnexpectedError:    {http.StatusInternalServerError, "An unexpected error occurred"},
	SystemRateLimitExceeded:  {http.StatusTooManyRequests, "Rate limit exceeded. Please try again later"},
}

// GetErrorMessage returns the default message for code, or a generic one for unknown codes
func GetErrorMessage(code ErrorCode) string {
	if info, ok := registry[code]; ok {
		return info.message
	}
	return "An error occurred"
}

// GetHTTPStatus returns the status a response with code is sent with.
// Unknown codes are treated as server errors.
func GetHTTPStatus(code ErrorCode) int {
	if info, ok := registry[code]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}

// CodeForStatus picks the code used when the router itself rejects a request
func CodeForStatus(status int) ErrorCode {
	switch status {
	case http.StatusBadRequest:
		return ValidationGeneral
	case http.StatusNotFound:
		return RequestRouteNotFound
	case http.StatusMethodNotAllowed:
		return RequestMethodNotAllowed
	case http.StatusRequestEntityTooLarge:
		return RequestEntityTooLarge
	case http.StatusUnsupportedMediaType:
		return RequestUnsupportedMedia
	case http.StatusTooManyRequests:
		return SystemRateLimitExceeded
	case http.StatusInternalServerError:
		return SystemInternalError
	case http.StatusServiceUnavailable:
		return SystemServiceUnavailable
	default:
		return SystemUnexpectedError
	}
}
