package domain

// DocumentID is the numeric identifier of a document within a court system
// (the "pacer_doc_id"). The canonical form has its fourth digit set to '0'.
type DocumentID string

// CaseID is the court system's internal numeric case identifier
// (the "pacer_case_id").
type CaseID string

// DocketNumber is the human-readable case number, e.g. "20-15019" or
// "1:19-cv-01561-AWI-SKO".
type DocketNumber string

// DocketNumberCore is the normalised numeric form of a DocketNumber used to
// join appellate and district records for the same case.
type DocketNumberCore string

// AttachmentNumber is the position of an attachment within a docket entry.
type AttachmentNumber string

// Identifiers is the canonical identifier tuple produced by resolution.
// An empty field means the identifier could not be resolved.
type Identifiers struct {
	// Court is the court website code the page belongs to.
	Court CourtCode

	// CaseID is the internal case identifier.
	CaseID CaseID

	// DocumentID is the normalised document identifier.
	DocumentID DocumentID

	// DocketNumber is the human-readable docket number.
	DocketNumber DocketNumber

	// DocNumber is the docket entry number, when the page exposes it.
	DocNumber string

	// AttachmentNumber is the attachment position, when the page exposes it.
	AttachmentNumber AttachmentNumber
}

// HasCaseID returns true if a case identifier was resolved.
func (i Identifiers) HasCaseID() bool {
	return i.CaseID != ""
}

// HasDocumentID returns true if a document identifier was resolved.
func (i Identifiers) HasDocumentID() bool {
	return i.DocumentID != ""
}

// HasDocketNumber returns true if a docket number was resolved.
func (i Identifiers) HasDocketNumber() bool {
	return i.DocketNumber != ""
}

// Actionable returns true if the identifiers are sufficient for a
// downstream upload or availability lookup.
func (i Identifiers) Actionable() bool {
	return i.Court != "" && i.HasCaseID()
}
