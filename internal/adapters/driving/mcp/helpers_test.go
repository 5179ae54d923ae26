package mcp

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/recap-cli/internal/adapters/driven/dom"
	"github.com/custodia-labs/recap-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/recap-cli/internal/core/domain"
	"github.com/custodia-labs/recap-cli/internal/core/ports/driven"
	"github.com/custodia-labs/recap-cli/internal/core/ports/driving"
	"github.com/custodia-labs/recap-cli/internal/core/services"
)

const (
	docURL    = "https://ecf.dcd.uscourts.gov/doc1/04513837920"
	docketURL = "https://ecf.dcd.uscourts.gov/cgi-bin/DktRpt.pl?591030040473392-L_1_0-1"

	docketReport = `<input type="hidden" name="caseId" value="178502">
		<table><tr><td>01/02/2020</td><td><a href="/doc1/04513837920">5</a></td><td>Motion</td></tr></table>`
)

// fakeAvailability returns a fixed answer or error.
type fakeAvailability struct {
	result *domain.Availability
	err    error
}

func (f *fakeAvailability) Check(context.Context, driving.PageContext) (*domain.Availability, error) {
	return f.result, f.err
}

var errArchive = errors.New("archive down")

// setupServer builds a server over in-memory services.
func setupServer(t *testing.T, availability *fakeAvailability) (*Server, *services.TabCacheService) {
	t.Helper()
	cache := services.NewTabCacheService(memory.NewKeyValueStore(), time.Second)
	return newServer(t, cache, cache, availability), cache
}

// newServer builds a server whose resolver reads and writes through
// resolverCache and tracks navigations per tab.
func newServer(t *testing.T, resolverCache driven.TabCache, cache *services.TabCacheService,
	availability *fakeAvailability) *Server {
	t.Helper()
	classifier := services.NewClassifier()
	navigation := services.NewNavigationTracker()
	ports := &Ports{
		Classifier: classifier,
		Resolver: services.NewResolver(resolverCache,
			services.WithClassifier(classifier),
			services.WithNavigationTracker(navigation)),
		TabCache:   cache,
		Navigation: navigation,
		Parse:      dom.Parse,
	}
	if availability != nil {
		ports.Availability = availability
	}
	server, err := NewServer(ports)
	require.NoError(t, err)
	return server
}

// gatedCache holds the first read until released, keeping one resolution
// in flight.
type gatedCache struct {
	*services.TabCacheService
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func newGatedCache(cache *services.TabCacheService) *gatedCache {
	return &gatedCache{
		TabCacheService: cache,
		entered:         make(chan struct{}),
		release:         make(chan struct{}),
	}
}

func (g *gatedCache) Get(ctx context.Context, tabID string) (*domain.TabCacheEntry, error) {
	g.once.Do(func() {
		close(g.entered)
		<-g.release
	})
	return g.TabCacheService.Get(ctx, tabID)
}
