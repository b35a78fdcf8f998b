package middlewares

import (
	"net/http"
	"patient-record-service/internal/pkg/exceptions"
	"patient-record-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/httprate"
)

// RateLimiter limits every client IP to APP_MAX_REQUESTS per second and
// answers over-limit requests with the usual JSON error body.
func (m *Middlewares) RateLimiter() func(next http.Handler) http.Handler {
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		time.Second,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(r.RemoteAddr))
		}),
	)
}
