package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/todo-api/internal/api/shared"
)

// BodyLimit rejects request bodies larger than maxBytes before the handler
// runs. Requests declaring an oversized Content-Length are answered with
// 413 immediately; bodies without a declared length are capped with
// http.MaxBytesReader, which fails the handler's read at the same
// threshold. Handlers behind this middleware never see an oversized body.
func BodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				slog.Debug("request body too large",
					slog.Int64("content_length", r.ContentLength),
					slog.Int64("max_bytes", maxBytes),
					slog.String("path", r.URL.Path))
				shared.RespondWithError(w, r,
					http.StatusRequestEntityTooLarge, "Request body too large")
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
