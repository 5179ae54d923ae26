package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigationTracker(t *testing.T) {
	n := NewNavigationTracker()

	assert.Zero(t, n.Current("tab"))

	first := n.Navigate("tab")
	assert.True(t, n.IsCurrent("tab", first))

	second := n.Navigate("tab")
	assert.Greater(t, second, first)
	assert.False(t, n.IsCurrent("tab", first))
	assert.True(t, n.IsCurrent("tab", second))

	// Tabs are independent.
	assert.Equal(t, uint64(1), n.Navigate("other"))
	assert.True(t, n.IsCurrent("tab", second))

	n.Forget("tab")
	assert.Zero(t, n.Current("tab"))
}

func TestNavigationTracker_Untracked(t *testing.T) {
	var n *NavigationTracker
	assert.True(t, n.IsCurrent("tab", 7))

	tracker := NewNavigationTracker()
	tracker.Navigate("tab")
	assert.True(t, tracker.IsCurrent("tab", 0))
}
