package middleware

import (
	"net/http"
)

// BodyLimit caps the request body at maxBytes. Handlers reading past the
// limit get an error from the body reader; the render handler maps it to
// 413.
func BodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
