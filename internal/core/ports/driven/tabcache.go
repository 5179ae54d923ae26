package driven

import (
	"context"

	"github.com/custodia-labs/recap-cli/internal/core/domain"
)

// TabCache holds the identifiers learned by earlier page loads in a tab.
type TabCache interface {
	// Get returns the tab's entry.
	// Returns domain.ErrNotFound if the tab has no entry.
	Get(ctx context.Context, tabID string) (*domain.TabCacheEntry, error)

	// Merge applies a patch to the tab's entry, creating it if needed.
	// Merges for the same tab are serialised.
	Merge(ctx context.Context, tabID string, patch domain.TabCachePatch) error

	// Destroy removes the tab's entry.
	Destroy(ctx context.Context, tabID string) error
}

// OptionsStore holds the user's preferences.
type OptionsStore interface {
	// Options returns the stored options, or the defaults.
	Options(ctx context.Context) (domain.Options, error)

	// SaveOptions persists the options.
	SaveOptions(ctx context.Context, opts domain.Options) error
}
