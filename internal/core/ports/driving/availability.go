package driving

import (
	"context"

	"github.com/custodia-labs/recap-cli/internal/core/domain"
)

// AvailabilityService asks the archive which of a page's records it holds.
type AvailabilityService interface {
	// Check resolves the page and queries the archive for its docket and
	// linked documents. Returns domain.ErrArchiveUnavailable when no
	// archive client is configured.
	Check(ctx context.Context, page PageContext) (*domain.Availability, error)
}
