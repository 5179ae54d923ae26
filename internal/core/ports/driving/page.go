package driving

import (
	"github.com/custodia-labs/recap-cli/internal/core/domain"
	"github.com/custodia-labs/recap-cli/internal/core/ports/driven"
)

// PageContext is everything the engine may read about one page load.
type PageContext struct {
	// TabID identifies the browsing tab. Stable for the tab's lifetime.
	TabID string

	// URL is the page's full URL.
	URL string

	// Path is the URL path, used only for diagnostics.
	Path string

	// Referrer is the URL of the page that linked here, if known.
	Referrer string

	// Cookie is the document's cookie string.
	Cookie string

	// Document is the page's DOM. A nil Document is an empty page.
	Document driven.Document

	// Kind is the page kind when the caller already classified the page.
	// Empty means the resolver classifies it.
	Kind domain.PageKind

	// Generation tags the navigation that produced this page. Zero means
	// the page is not tracked and is never considered stale.
	Generation uint64
}

// WithDocument returns a copy of the context showing a different snapshot.
func (p PageContext) WithDocument(doc driven.Document) PageContext {
	p.Document = doc
	p.Kind = ""
	return p
}
