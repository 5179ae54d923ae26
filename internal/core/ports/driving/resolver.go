package driving

import (
	"context"

	"github.com/custodia-labs/recap-cli/internal/core/domain"
)

// ResolverService resolves the identifiers of a page.
type ResolverService interface {
	// Resolve returns the page's identifiers, writing newly learned pairs
	// back to the tab cache. Missing identifiers are left empty.
	// The only error is domain.ErrUntrustedOrigin.
	Resolve(ctx context.Context, page PageContext) (domain.Identifiers, error)

	// Record merges identifiers into the tab cache.
	Record(ctx context.Context, tabID string, patch domain.TabCachePatch) error
}
