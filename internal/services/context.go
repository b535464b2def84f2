package services

import "context"

type contextKey string

// RequestIDKey is the request context key holding the trace ID
const RequestIDKey contextKey = "request_id"

// WithRequestID returns a copy of ctx carrying the given request ID
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func getRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}
