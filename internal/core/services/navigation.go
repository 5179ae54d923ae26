package services

import (
	"sync"

	"github.com/custodia-labs/recap-cli/internal/core/ports/driving"
)

// Ensure NavigationTracker implements the interface.
var _ driving.NavigationService = (*NavigationTracker)(nil)

// NavigationTracker counts navigations per tab. A resolution tagged with
// an older generation belongs to a page the tab has already left.
type NavigationTracker struct {
	mu          sync.Mutex
	generations map[string]uint64
}

// NewNavigationTracker creates an empty tracker.
func NewNavigationTracker() *NavigationTracker {
	return &NavigationTracker{generations: make(map[string]uint64)}
}

// Navigate records a new page load in the tab and returns its generation.
func (n *NavigationTracker) Navigate(tabID string) uint64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.generations[tabID]++
	return n.generations[tabID]
}

// Current returns the tab's latest generation, zero if none.
func (n *NavigationTracker) Current(tabID string) uint64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.generations[tabID]
}

// IsCurrent reports whether generation is still the tab's latest.
// Generation zero is untracked and always current.
func (n *NavigationTracker) IsCurrent(tabID string, generation uint64) bool {
	if n == nil || generation == 0 {
		return true
	}
	return n.Current(tabID) == generation
}

// Forget drops a closed tab.
func (n *NavigationTracker) Forget(tabID string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.generations, tabID)
}
