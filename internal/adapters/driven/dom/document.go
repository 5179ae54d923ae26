package dom

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"github.com/custodia-labs/recap-cli/internal/core/ports/driven"
)

// Ensure Document implements the interface.
var _ driven.Document = (*Document)(nil)

// Document is a parsed HTML page.
type Document struct {
	doc *goquery.Document
}

// ParseReader parses HTML from r.
func ParseReader(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	return &Document{doc: doc}, nil
}

// ParseString parses an HTML string.
func ParseString(html string) (*Document, error) {
	return ParseReader(strings.NewReader(html))
}

// ParseFile parses the HTML file at path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening html: %w", err)
	}
	defer f.Close()
	return ParseReader(f)
}

// Parse is ParseReader returning the port type, for injection into
// observers.
func Parse(r io.Reader) (driven.Document, error) {
	return ParseReader(r)
}

// Find returns every element matching the selector in document order.
func (d *Document) Find(selector string) []driven.Element {
	return find(d.doc.Selection, selector)
}

// Title returns the trimmed text of the title element.
func (d *Document) Title() string {
	return strings.TrimSpace(d.doc.Find("title").First().Text())
}

// HTML returns the serialised document.
func (d *Document) HTML() (string, error) {
	return d.doc.Html()
}

// element wraps a single-node selection.
type element struct {
	sel *goquery.Selection
}

var _ driven.Element = element{}

func (e element) Tag() string {
	return goquery.NodeName(e.sel)
}

func (e element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

func (e element) Text() string {
	return e.sel.Text()
}

func (e element) Find(selector string) []driven.Element {
	return find(e.sel, selector)
}

func (e element) Form() (driven.Element, bool) {
	form := e.sel.Closest("form")
	if form.Length() == 0 {
		return nil, false
	}
	return element{sel: form.First()}, true
}

func (e element) Parent() (driven.Element, bool) {
	parent := e.sel.Parent()
	if parent.Length() == 0 {
		return nil, false
	}
	return element{sel: parent}, true
}

func (e element) Children() []driven.Element {
	return wrap(e.sel.Children())
}

func (e element) LastChildText() string {
	contents := e.sel.Contents()
	for i := contents.Length() - 1; i >= 0; i-- {
		child := contents.Eq(i)
		if goquery.NodeName(child) == "#comment" {
			continue
		}
		if text := child.Text(); strings.TrimSpace(text) != "" {
			return text
		}
	}
	return ""
}

// selectors caches compiled selectors. Invalid selectors are cached as nil.
var selectors sync.Map

func compile(selector string) cascadia.Selector {
	if cached, ok := selectors.Load(selector); ok {
		return cached.(cascadia.Selector)
	}
	compiled, err := cascadia.Compile(selector)
	if err != nil {
		compiled = nil
	}
	selectors.Store(selector, compiled)
	return compiled
}

func find(sel *goquery.Selection, selector string) []driven.Element {
	matcher := compile(selector)
	if matcher == nil {
		return nil
	}
	return wrap(sel.FindMatcher(matcher))
}

func wrap(sel *goquery.Selection) []driven.Element {
	out := make([]driven.Element, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		out = append(out, element{sel: s})
	})
	return out
}
