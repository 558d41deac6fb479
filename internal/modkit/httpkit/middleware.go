package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"sentimenttech/internal/platform/net/middleware"
)

// CommonStack returns the baseline middleware slice for the API
// origins is the CORS allow list; empty means allow all
func CommonStack(origins []string) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RequestScope(),
		middleware.RealIP(),

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		// observability
		middleware.AccessLog(middleware.AccessLogOptions{Slow: 500 * time.Millisecond}),

		// cross-origin
		middleware.CORS(middleware.CORSOptions{
			AllowedOrigins:   origins,
			AllowCredentials: true,
			MaxAge:           3600,
		}),
		middleware.Compress(flate.BestSpeed),
		middleware.RedirectSlashes(),
		middleware.StripSlashes(),
		middleware.Timeout(30 * time.Second),
	}
}
