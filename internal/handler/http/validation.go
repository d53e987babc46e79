package http

import (
	"errors"
	"net/http"

	"company-brochure/internal/handler/http/respond"
)

const maxPathLength = 2048

// InputValidation returns middleware that rejects oversized paths and caps
// request bodies at maxBodyBytes. Handlers see a *http.MaxBytesError from
// the body reader once the cap is crossed.
func InputValidation(maxBodyBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.URL.Path) > maxPathLength {
				respond.SafeError(w, http.StatusRequestURITooLong, errors.New("URI too long"))
				return
			}

			if r.ContentLength > maxBodyBytes {
				respond.SafeError(w, http.StatusRequestEntityTooLarge, errors.New("request body too large"))
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
			next.ServeHTTP(w, r)
		})
	}
}
