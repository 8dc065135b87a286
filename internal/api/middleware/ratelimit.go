package middleware

import (
	"net/http"

	"github.com/phrazzld/todo-api/internal/api/shared"
	"golang.org/x/time/rate"
)

// RateLimit applies a process-wide token-bucket limit to the wrapped
// handler. A nil limiter disables limiting entirely.
func RateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				shared.RespondWithError(w, r,
					http.StatusTooManyRequests, "Too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
