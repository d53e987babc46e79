package brochure

import (
	"context"

	"company-brochure/internal/domain/entity"
	brochureUC "company-brochure/internal/usecase/brochure"
)

// Service is the part of the brochure orchestrator the handlers use.
// *brochureUC.Orchestrator implements it.
type Service interface {
	Run(ctx context.Context, req brochureUC.Request) (*entity.BrochureRequest, error)
	DiscoverLinks(ctx context.Context, baseURL string) (entity.LinkSet, error)
	SelectLinks(ctx context.Context, baseURL string) (entity.LinkSet, entity.Selection, error)
}

var _ Service = (*brochureUC.Orchestrator)(nil)
