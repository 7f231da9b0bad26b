package middleware

import (
	"context"
	"net/http"

	"github.com/oklog/ulid/v2"
)

const (
	// RequestIDHeader is the header carrying the request id.
	RequestIDHeader = "X-Request-Id"

	requestIDContextKey ContextKey = "request_id"
)

// RequestID assigns a ULID to each request missing an id. ULIDs sort by
// time, which makes log correlation across services cheap.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = ulid.Make().String()
		}

		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDContextKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext returns the request id, or "" when absent.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey).(string)
	return id
}
