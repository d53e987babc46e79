package brochure

import (
	"context"
	"fmt"

	"company-brochure/internal/domain/entity"
)

// AIClient completes one system+user exchange.
type AIClient interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// PageFetcher loads a page and extracts its links or text. Both methods
// degrade to an empty result carrying Err instead of failing.
type PageFetcher interface {
	FetchLinks(ctx context.Context, baseURL string) entity.LinkSet
	FetchContent(ctx context.Context, pageURL string) entity.PageContent
}

// complete calls client and turns a panic into an error.
func complete(ctx context.Context, client AIClient, system, user string) (reply string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic in model client: %v", rec)
		}
	}()
	return client.Complete(ctx, system, user)
}
