package brochure

import (
	"log/slog"
	"net/http"

	"company-brochure/internal/domain/entity"
	"company-brochure/internal/handler/http/respond"
	"company-brochure/internal/observability/logging"
)

// LinksHandler lists the same-domain links of a page.
type LinksHandler struct {
	Svc    Service
	Logger *slog.Logger
}

// ServeHTTP lists links
// @Summary      Fetch links
// @Description  Returns the same-domain links found on base_url. With "relevant": true the
// @Description  model's brochure-relevant selection is returned as well.
// @Tags         brochure
// @Accept       json
// @Produce      json
// @Param        request body LinksRequest true "Target website"
// @Success      200 {object} LinksResponse
// @Failure      400 {object} respond.ErrorBody "Bad request - invalid base_url"
// @Failure      429 {object} respond.ErrorBody "Too many requests - rate limit exceeded"
// @Failure      500 {object} respond.ErrorBody "Internal server error"
// @Router       /fetch_links [post]
func (h LinksHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req LinksRequest
	if err := decodeJSON(r, &req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var (
		links     entity.LinkSet
		selection entity.Selection
		err       error
	)
	if req.Relevant {
		links, selection, err = h.Svc.SelectLinks(r.Context(), req.BaseURL)
	} else {
		links, err = h.Svc.DiscoverLinks(r.Context(), req.BaseURL)
	}
	if err != nil {
		writeRunError(w, err)
		return
	}

	resp := LinksResponse{Links: links.Links, RelevantLinks: selection.Entries}
	if resp.Links == nil {
		resp.Links = []string{}
	}
	if links.Failed() {
		// The cause can carry resolver or network detail; it is logged, not returned.
		logging.FromContext(r.Context(), h.Logger).Warn("link discovery failed",
			slog.String("base_url", links.BaseURL),
			slog.String("error", respond.SanitizeError(links.Err)))
		resp.Error = "failed to load page"
	}

	respond.JSON(w, http.StatusOK, resp)
}
