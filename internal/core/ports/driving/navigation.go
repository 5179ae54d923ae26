package driving

// NavigationService numbers the page loads of each tab. Surfaces stamp
// PageContext.Generation with Navigate so the resolver can drop work for
// a page the tab has since left.
type NavigationService interface {
	// Navigate records a page load in the tab and returns its generation.
	Navigate(tabID string) uint64

	// Forget drops a closed tab.
	Forget(tabID string)
}
