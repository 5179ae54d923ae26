package driven

// Document is a read-only view of a rendered page.
// Selectors use CSS syntax.
type Document interface {
	// Find returns every element matching the selector in document order.
	// An invalid selector matches nothing.
	Find(selector string) []Element

	// Title returns the text of the document's title element.
	Title() string
}

// Element is a single node of a Document.
type Element interface {
	// Tag returns the lower-case element name.
	Tag() string

	// Attr returns the value of an attribute and whether it is present.
	Attr(name string) (string, bool)

	// Text returns the combined text of the element and its descendants.
	Text() string

	// Find returns descendants matching the selector.
	Find(selector string) []Element

	// Form returns the nearest enclosing form element.
	Form() (Element, bool)

	// Parent returns the parent element.
	Parent() (Element, bool)

	// Children returns the element children only.
	Children() []Element

	// LastChildText returns the text of the last child node that is not
	// blank, bare text nodes included.
	LastChildText() string
}
