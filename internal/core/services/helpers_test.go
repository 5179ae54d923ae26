package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/recap-cli/internal/adapters/driven/dom"
	"github.com/custodia-labs/recap-cli/internal/core/ports/driven"
	"github.com/custodia-labs/recap-cli/internal/core/ports/driving"
)

const testTab = "tab-1"

// parseHTML builds a document from an HTML fragment.
func parseHTML(t *testing.T, html string) driven.Document {
	t.Helper()
	doc, err := dom.ParseString(html)
	require.NoError(t, err)
	return doc
}

// newPage builds a page in the test tab.
func newPage(t *testing.T, url, html string) driving.PageContext {
	t.Helper()
	page := driving.PageContext{TabID: testTab, URL: url}
	if html != "" {
		page.Document = parseHTML(t, html)
	}
	return page
}
