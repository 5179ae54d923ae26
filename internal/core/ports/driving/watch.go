package driving

import (
	"context"

	"github.com/custodia-labs/recap-cli/internal/core/domain"
	"github.com/custodia-labs/recap-cli/internal/core/ports/driven"
)

// WatchResult is the outcome of watching a page until it becomes
// recognisable.
type WatchResult struct {
	Classification Classification
	Identifiers    domain.Identifiers
}

// WatchService waits for late-rendered pages.
type WatchService interface {
	// Watch classifies the page's current snapshot and, while it is not of
	// the wanted kind, the snapshots the observer reports. An empty want
	// accepts any recognised kind. The observer is disconnected after the
	// first match.
	Watch(ctx context.Context, page PageContext, observer driven.PageObserver, want domain.PageKind) (*WatchResult, error)
}
