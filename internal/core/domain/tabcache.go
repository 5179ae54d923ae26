package domain

// TabCacheEntry is the identifier state shared by every page load in a
// browser tab. It is created lazily on first merge and destroyed once the
// tab's upload workflow completes or the tab closes.
type TabCacheEntry struct {
	// CaseID is the case the tab is currently browsing.
	CaseID CaseID `json:"caseId,omitempty"`

	// DocketNumber is the docket number that CaseID was learned with.
	DocketNumber DocketNumber `json:"docketNumber,omitempty"`

	// DocID is the last document identifier seen in the tab.
	DocID DocumentID `json:"docId,omitempty"`

	// DocsToCases maps document identifiers to the cases they belong to.
	DocsToCases map[DocumentID]CaseID `json:"docsToCases,omitempty"`

	// DocsToAttachmentNumbers maps document identifiers to attachment numbers.
	DocsToAttachmentNumbers map[DocumentID]AttachmentNumber `json:"docsToAttachmentNumbers,omitempty"`

	// PDFBlob stages a downloaded PDF for the upload pipeline. Opaque.
	PDFBlob string `json:"pdf_blob,omitempty"`

	// ZipBlob stages a downloaded zip archive for the upload pipeline. Opaque.
	ZipBlob string `json:"zip_blob,omitempty"`
}

// TabCachePatch is a partial TabCacheEntry. Nil scalar pointers are
// "not present" and leave the stored value untouched. Map entries are
// added to the stored maps; keys absent from the patch are retained.
type TabCachePatch struct {
	CaseID                  *CaseID
	DocketNumber            *DocketNumber
	DocID                   *DocumentID
	DocsToCases             map[DocumentID]CaseID
	DocsToAttachmentNumbers map[DocumentID]AttachmentNumber
	PDFBlob                 *string
	ZipBlob                 *string
}

// IsEmpty returns true if applying the patch would change nothing.
func (p TabCachePatch) IsEmpty() bool {
	return p.CaseID == nil && p.DocketNumber == nil && p.DocID == nil &&
		len(p.DocsToCases) == 0 && len(p.DocsToAttachmentNumbers) == 0 &&
		p.PDFBlob == nil && p.ZipBlob == nil
}

// Apply merges a patch into the entry. Map fields are deep-merged and
// scalar fields present in the patch are overwritten.
func (e *TabCacheEntry) Apply(p TabCachePatch) {
	if p.CaseID != nil {
		e.CaseID = *p.CaseID
	}
	if p.DocketNumber != nil {
		e.DocketNumber = *p.DocketNumber
	}
	if p.DocID != nil {
		e.DocID = *p.DocID
	}
	if p.PDFBlob != nil {
		e.PDFBlob = *p.PDFBlob
	}
	if p.ZipBlob != nil {
		e.ZipBlob = *p.ZipBlob
	}
	if len(p.DocsToCases) > 0 {
		if e.DocsToCases == nil {
			e.DocsToCases = make(map[DocumentID]CaseID, len(p.DocsToCases))
		}
		for doc, c := range p.DocsToCases {
			e.DocsToCases[doc] = c
		}
	}
	if len(p.DocsToAttachmentNumbers) > 0 {
		if e.DocsToAttachmentNumbers == nil {
			e.DocsToAttachmentNumbers = make(map[DocumentID]AttachmentNumber, len(p.DocsToAttachmentNumbers))
		}
		for doc, att := range p.DocsToAttachmentNumbers {
			e.DocsToAttachmentNumbers[doc] = att
		}
	}
}

// CaseForDocument returns the case a document was last seen under.
func (e *TabCacheEntry) CaseForDocument(doc DocumentID) (CaseID, bool) {
	if e == nil || doc == "" {
		return "", false
	}
	c, ok := e.DocsToCases[doc]
	if !ok || c == "" {
		return "", false
	}
	return c, true
}

// Clone returns a deep copy of the entry.
func (e *TabCacheEntry) Clone() *TabCacheEntry {
	if e == nil {
		return nil
	}
	out := *e
	out.DocsToCases = nil
	out.DocsToAttachmentNumbers = nil
	out.Apply(TabCachePatch{
		DocsToCases:             e.DocsToCases,
		DocsToAttachmentNumbers: e.DocsToAttachmentNumbers,
	})
	return &out
}

// Helpers for building patches from values.

// CaseIDPtr returns a pointer to id.
func CaseIDPtr(id CaseID) *CaseID { return &id }

// DocketNumberPtr returns a pointer to dn.
func DocketNumberPtr(dn DocketNumber) *DocketNumber { return &dn }

// DocumentIDPtr returns a pointer to id.
func DocumentIDPtr(id DocumentID) *DocumentID { return &id }
