package brochure

import (
	"log/slog"
	"net/http"
)

// Register registers the brochure handlers with the given mux.
// limit wraps every route; it is the rate limiter in production and may be nil.
//
// /generate_prompt is the path the existing front end posts to and is kept
// as an alias of /generate_brochure.
func Register(mux *http.ServeMux, svc Service, limit func(http.Handler) http.Handler, logger *slog.Logger) {
	if limit == nil {
		limit = func(h http.Handler) http.Handler { return h }
	}

	generate := limit(GenerateHandler{Svc: svc, Logger: logger})
	mux.Handle("POST /generate_brochure", generate)
	mux.Handle("POST /generate_prompt", generate)
	mux.Handle("POST /fetch_links", limit(LinksHandler{Svc: svc, Logger: logger}))
}
