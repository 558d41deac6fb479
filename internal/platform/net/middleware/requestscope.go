package middleware

import (
	"net/http"

	"sentimenttech/internal/platform/logger"
	pnet "sentimenttech/internal/platform/net"
)

// RequestScope copies the request id into the logger context and mirrors it
// in the response header. Must run after RequestID
func RequestScope() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := pnet.RequestID(r.Context())
			if reqID != "" {
				w.Header().Set("X-Request-ID", reqID)
				r = r.WithContext(logger.WithRequest(r.Context(), reqID))
			}
			next.ServeHTTP(w, r)
		})
	}
}
