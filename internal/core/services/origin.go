package services

import (
	"fmt"
	"sync/atomic"

	"github.com/custodia-labs/recap-cli/internal/core/domain"
	"github.com/custodia-labs/recap-cli/internal/logger"
	"github.com/custodia-labs/recap-cli/internal/pacer"
)

var originLog = logger.Named("origin")

// OriginGuard rejects events that do not come from a court website.
// Every privileged action checks its origin first.
type OriginGuard struct {
	rejected atomic.Int64
}

// NewOriginGuard creates a guard.
func NewOriginGuard() *OriginGuard {
	return &OriginGuard{}
}

// Check returns the origin's court, or domain.ErrUntrustedOrigin.
// Rejections are always logged.
func (g *OriginGuard) Check(origin string) (domain.CourtCode, error) {
	court, ok := pacer.CourtFromURL(origin)
	if !ok {
		g.rejected.Add(1)
		originLog.Warn("rejecting event from untrusted origin %q", origin)
		return "", fmt.Errorf("%w: %s", domain.ErrUntrustedOrigin, origin)
	}
	return court, nil
}

// Rejected returns how many events the guard has turned away.
func (g *OriginGuard) Rejected() int64 {
	return g.rejected.Load()
}
