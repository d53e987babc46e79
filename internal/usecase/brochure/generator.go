package brochure

import (
	"context"
	"fmt"
	"log/slog"

	"company-brochure/internal/domain/entity"
)

// BrochureGenerator asks the model for the brochure text.
type BrochureGenerator struct {
	client  AIClient
	prompts PromptBuilder
	logger  *slog.Logger
}

// NewBrochureGenerator creates a BrochureGenerator. A nil prompts uses
// DefaultPrompts.
func NewBrochureGenerator(client AIClient, prompts PromptBuilder, logger *slog.Logger) *BrochureGenerator {
	if prompts == nil {
		prompts = DefaultPrompts{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &BrochureGenerator{client: client, prompts: prompts, logger: logger}
}

// CreateBrochure returns the model's reply verbatim. When the call fails
// the brochure holds a readable error message instead, and Err the cause.
func (g *BrochureGenerator) CreateBrochure(ctx context.Context, companyName, pageContent, relevantLinks string) entity.Brochure {
	system := g.prompts.BrochureSystemPrompt()
	user := g.prompts.BrochureUserPrompt(companyName, pageContent, relevantLinks)

	reply, err := complete(ctx, g.client, system, user)
	if err != nil {
		g.logger.ErrorContext(ctx, "brochure generation failed",
			slog.String("company", companyName),
			slog.Any("error", err))
		return entity.Brochure{
			CompanyName: companyName,
			Markdown:    failureMessage(companyName),
			Err:         fmt.Errorf("%w: %w", ErrGenerationFailed, err),
		}
	}

	return entity.Brochure{CompanyName: companyName, Markdown: reply}
}

// failureMessage is shown in place of a brochure. It never includes the
// underlying error, which may carry provider details.
func failureMessage(companyName string) string {
	return fmt.Sprintf("Error: the brochure for %s could not be generated because the AI service request failed. Please try again later.", companyName)
}
