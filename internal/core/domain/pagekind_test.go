package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageKind_IsValid(t *testing.T) {
	for _, k := range AllPageKinds() {
		assert.True(t, k.IsValid(), k)
	}
	assert.False(t, PageKind("docket").IsValid())
	assert.False(t, PageKind("").IsValid())
}

func TestAllPageKinds_Unique(t *testing.T) {
	seen := make(map[PageKind]bool)
	for _, k := range AllPageKinds() {
		assert.False(t, seen[k], "duplicate kind %s", k)
		seen[k] = true
	}
	assert.Len(t, seen, 16)
}

func TestParsePageKind(t *testing.T) {
	assert.Equal(t, PageKindDocketDisplay, ParsePageKind("docket_display"))
	assert.Equal(t, PageKindShowDocMulti, ParsePageKind("show_doc_multi"))
	assert.Equal(t, PageKindUnknown, ParsePageKind("nonsense"))
	assert.Equal(t, PageKindUnknown, ParsePageKind(""))
}

func TestPageKind_String(t *testing.T) {
	assert.Equal(t, "attachment_menu", PageKindAttachmentMenu.String())
}

func TestPageKind_IsDocketPage(t *testing.T) {
	assert.True(t, PageKindDocketQuery.IsDocketPage())
	assert.True(t, PageKindCaseSummary.IsDocketPage())
	assert.False(t, PageKindSingleDocument.IsDocketPage())
	assert.False(t, PageKindUnknown.IsDocketPage())
}

func TestPageKind_IsDocumentPage(t *testing.T) {
	assert.True(t, PageKindAttachmentMenu.IsDocumentPage())
	assert.True(t, PageKindCombinedPdf.IsDocumentPage())
	assert.False(t, PageKindDocketDisplay.IsDocumentPage())
}

func TestPageKind_Description(t *testing.T) {
	for _, k := range AllPageKinds() {
		assert.NotEmpty(t, k.Description(), k)
	}
	assert.Equal(t, "Unknown", PageKind("bogus").Description())
	assert.Equal(t, "Docket report", PageKindDocketDisplay.Description())
}
