package brochure

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"company-brochure/internal/domain/entity"
	"company-brochure/internal/handler/http/respond"
	"company-brochure/internal/infra/render"
	"company-brochure/internal/observability/logging"
	brochureUC "company-brochure/internal/usecase/brochure"
)

// GenerateHandler generates a brochure for a company website.
type GenerateHandler struct {
	Svc    Service
	Logger *slog.Logger
}

// ServeHTTP generates a brochure
// @Summary      Generate brochure
// @Description  Scrapes base_url, asks the model for relevant links and returns a markdown brochure.
// @Description  Without a format parameter the answer is {"company_brochure": "..."}.
// @Tags         brochure
// @Accept       json
// @Produce      json
// @Produce      text/markdown
// @Produce      application/pdf
// @Param        request body GenerateRequest true "Target website"
// @Param        format query string false "Export format: markdown, json or pdf"
// @Success      200 {object} GenerateResponse
// @Header       200 {boolean} X-Brochure-Degraded "true when a pipeline stage fell back to an empty result"
// @Failure      400 {object} respond.ErrorBody "Bad request - invalid base_url or format"
// @Failure      429 {object} respond.ErrorBody "Too many requests - rate limit exceeded"
// @Failure      500 {object} respond.ErrorBody "Internal server error"
// @Router       /generate_brochure [post]
// @Router       /generate_prompt [post]
func (h GenerateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var exporter render.Exporter
	if format := r.URL.Query().Get("format"); format != "" {
		var err error
		exporter, err = render.New(format)
		if err != nil {
			respond.SafeError(w, http.StatusBadRequest,
				&entity.ValidationError{Field: "format", Message: "format must be markdown, json or pdf"})
			return
		}
	}

	var req GenerateRequest
	if err := decodeJSON(r, &req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	run, err := h.Svc.Run(r.Context(), brochureUC.Request{BaseURL: req.BaseURL, CompanyName: req.CompanyName})
	if err != nil {
		writeRunError(w, err)
		return
	}

	w.Header().Set("X-Brochure-Degraded", strconv.FormatBool(run.Degraded()))

	if exporter == nil {
		respond.JSON(w, http.StatusOK, GenerateResponse{CompanyBrochure: run.Brochure.Markdown})
		return
	}

	body, err := exporter.Export(run)
	if err != nil {
		logging.FromContext(r.Context(), h.Logger).Error("brochure export failed",
			slog.String("run_id", run.ID),
			slog.String("content_type", exporter.ContentType()),
			slog.Any("error", err))
		respond.Failure(w, http.StatusInternalServerError,
			respond.NewAppError(http.StatusInternalServerError, "failed to export brochure", err))
		return
	}

	w.Header().Set("Content-Type", exporter.ContentType())
	w.Header().Set("Content-Disposition",
		`attachment; filename="`+render.Filename(run.BaseURL, exporter.Extension())+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// writeRunError maps pipeline errors to responses. An invalid base URL is
// the caller's fault; anything else is reported as a failed generation.
func writeRunError(w http.ResponseWriter, err error) {
	if errors.Is(err, brochureUC.ErrInvalidBaseURL) {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	respond.Failure(w, http.StatusInternalServerError,
		respond.NewAppError(http.StatusInternalServerError, "brochure generation failed", err))
}
