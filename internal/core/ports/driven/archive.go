package driven

import (
	"context"

	"github.com/custodia-labs/recap-cli/internal/core/domain"
)

// ArchiveClient queries the public archive for copies of court records.
type ArchiveClient interface {
	// DocketAvailability looks up archived dockets for a case.
	DocketAvailability(ctx context.Context, q domain.DocketQuery) ([]domain.ArchivedDocket, error)

	// DocumentAvailability looks up archived documents by identifier.
	DocumentAvailability(ctx context.Context, q domain.DocumentQuery) ([]domain.ArchivedDocument, error)
}
