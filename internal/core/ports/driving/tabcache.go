package driving

import (
	"context"

	"github.com/custodia-labs/recap-cli/internal/core/domain"
)

// TabCacheService manages per-tab identifier state and user options.
type TabCacheService interface {
	// Get returns the tab's entry or domain.ErrNotFound.
	Get(ctx context.Context, tabID string) (*domain.TabCacheEntry, error)

	// Merge deep-merges a patch into the tab's entry.
	Merge(ctx context.Context, tabID string, patch domain.TabCachePatch) error

	// Destroy drops the tab's entry.
	Destroy(ctx context.Context, tabID string) error

	// List returns the identifiers of every tab with an entry.
	List(ctx context.Context) ([]string, error)

	// Options returns the stored options, or the defaults.
	Options(ctx context.Context) (domain.Options, error)

	// SaveOptions persists the options.
	SaveOptions(ctx context.Context, opts domain.Options) error
}
