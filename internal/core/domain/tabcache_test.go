package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTabCacheEntry_Apply_OverwritesPresentScalars(t *testing.T) {
	entry := &TabCacheEntry{CaseID: "1", DocketNumber: "20-15019"}

	entry.Apply(TabCachePatch{CaseID: CaseIDPtr("318547")})

	assert.Equal(t, CaseID("318547"), entry.CaseID)
	assert.Equal(t, DocketNumber("20-15019"), entry.DocketNumber)
}

func TestTabCacheEntry_Apply_DeepMergesMaps(t *testing.T) {
	entry := &TabCacheEntry{
		DocsToCases: map[DocumentID]CaseID{"034031424909": "531591"},
	}

	entry.Apply(TabCachePatch{
		DocsToCases:             map[DocumentID]CaseID{"034031424910": "531591"},
		DocsToAttachmentNumbers: map[DocumentID]AttachmentNumber{"034031424910": "2"},
	})

	assert.Equal(t, map[DocumentID]CaseID{
		"034031424909": "531591",
		"034031424910": "531591",
	}, entry.DocsToCases)
	assert.Equal(t, AttachmentNumber("2"), entry.DocsToAttachmentNumbers["034031424910"])
}

func TestTabCacheEntry_Apply_DisjointPatchesCommute(t *testing.T) {
	a := TabCachePatch{DocsToCases: map[DocumentID]CaseID{"1": "10"}, DocID: DocumentIDPtr("1")}
	b := TabCachePatch{DocsToCases: map[DocumentID]CaseID{"2": "20"}, CaseID: CaseIDPtr("20")}

	ab := &TabCacheEntry{}
	ab.Apply(a)
	ab.Apply(b)

	ba := &TabCacheEntry{}
	ba.Apply(b)
	ba.Apply(a)

	assert.Equal(t, ab, ba)
}

func TestTabCachePatch_IsEmpty(t *testing.T) {
	assert.True(t, TabCachePatch{}.IsEmpty())
	assert.True(t, TabCachePatch{DocsToCases: map[DocumentID]CaseID{}}.IsEmpty())
	assert.False(t, TabCachePatch{DocID: DocumentIDPtr("1")}.IsEmpty())
}

func TestTabCacheEntry_CaseForDocument(t *testing.T) {
	entry := &TabCacheEntry{DocsToCases: map[DocumentID]CaseID{"034031424909": "531591", "x": ""}}

	c, ok := entry.CaseForDocument("034031424909")
	assert.True(t, ok)
	assert.Equal(t, CaseID("531591"), c)

	_, ok = entry.CaseForDocument("x")
	assert.False(t, ok)

	_, ok = entry.CaseForDocument("")
	assert.False(t, ok)

	var nilEntry *TabCacheEntry
	_, ok = nilEntry.CaseForDocument("034031424909")
	assert.False(t, ok)
}

func TestTabCacheEntry_Clone(t *testing.T) {
	entry := &TabCacheEntry{CaseID: "1", DocsToCases: map[DocumentID]CaseID{"a": "1"}}

	clone := entry.Clone()
	clone.DocsToCases["b"] = "2"

	assert.Len(t, entry.DocsToCases, 1)
	assert.Equal(t, entry.CaseID, clone.CaseID)
	assert.Nil(t, (*TabCacheEntry)(nil).Clone())
}

func TestTabCacheEntry_JSONKeys(t *testing.T) {
	entry := TabCacheEntry{
		CaseID:       "318547",
		DocketNumber: "20-15019",
		DocsToCases:  map[DocumentID]CaseID{"009031427512": "318547"},
		PDFBlob:      "blob:1",
	}

	data, err := json.Marshal(entry)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "318547", raw["caseId"])
	assert.Equal(t, "20-15019", raw["docketNumber"])
	assert.Contains(t, raw, "docsToCases")
	assert.Equal(t, "blob:1", raw["pdf_blob"])
	assert.NotContains(t, raw, "zip_blob")
}

func TestIdentifiers_Has(t *testing.T) {
	ids := Identifiers{Court: "ca9", CaseID: "318547"}

	assert.True(t, ids.HasCaseID())
	assert.False(t, ids.HasDocumentID())
	assert.False(t, ids.HasDocketNumber())
	assert.True(t, ids.Actionable())
	assert.False(t, Identifiers{CaseID: "1"}.Actionable())
}
