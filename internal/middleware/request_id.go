package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"nird-intake/pkg/logger"
)

type contextKey string

// RequestIDContextKey is the context key carrying the request id
const RequestIDContextKey contextKey = "request_id"

// RequestID creates a middleware that adds a unique request ID to each request
func RequestID(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := generateRequestID()

			ctx := context.WithValue(r.Context(), RequestIDContextKey, requestID)
			r = r.WithContext(ctx)

			w.Header().Set("X-Request-ID", requestID)

			log.WithFields(map[string]interface{}{
				"request_id": requestID,
				"method":     r.Method,
				"path":       r.URL.Path,
			}).Debug("Request received")

			next.ServeHTTP(w, r)
		})
	}
}

// generateRequestID generates a simple timestamp-based request ID
func generateRequestID() string {
	return fmt.Sprintf("%d-%d", time.Now().Unix(), time.Now().Nanosecond())
}
