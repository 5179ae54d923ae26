package domain

// PageKind identifies which logical court-site page is displayed.
// Exactly one kind applies to a page at a given time.
type PageKind string

// Available page kinds.
const (
	// PageKindUnknown means no rule matched. This is not an error.
	PageKindUnknown PageKind = "unknown"

	// District and bankruptcy pages.
	PageKindDocketQuery          PageKind = "docket_query"
	PageKindDocketDisplay        PageKind = "docket_display"
	PageKindDocketHistoryDisplay PageKind = "docket_history_display"
	PageKindAttachmentMenu       PageKind = "attachment_menu"
	PageKindSingleDocument       PageKind = "single_document"
	PageKindDownloadAllDocuments PageKind = "download_all_documents"
	PageKindCombinedPdf          PageKind = "combined_pdf"
	PageKindClaimsRegister       PageKind = "claims_register"
	PageKindCaseQuerySummary     PageKind = "case_query_summary"

	// Appellate pages.
	PageKindCaseSummary        PageKind = "case_summary"
	PageKindCaseSelection      PageKind = "case_selection"
	PageKindCaseSearch         PageKind = "case_search"
	PageKindCaseQuery          PageKind = "case_query"
	PageKindDocketReportFilter PageKind = "docket_report_filter"
	PageKindShowDocMulti       PageKind = "show_doc_multi"
)

// AllPageKinds returns every page kind in declaration order.
func AllPageKinds() []PageKind {
	return []PageKind{
		PageKindUnknown,
		PageKindDocketQuery,
		PageKindDocketDisplay,
		PageKindDocketHistoryDisplay,
		PageKindAttachmentMenu,
		PageKindSingleDocument,
		PageKindDownloadAllDocuments,
		PageKindCombinedPdf,
		PageKindClaimsRegister,
		PageKindCaseQuerySummary,
		PageKindCaseSummary,
		PageKindCaseSelection,
		PageKindCaseSearch,
		PageKindCaseQuery,
		PageKindDocketReportFilter,
		PageKindShowDocMulti,
	}
}

// IsValid returns true if the page kind is recognised.
func (k PageKind) IsValid() bool {
	for _, kind := range AllPageKinds() {
		if k == kind {
			return true
		}
	}
	return false
}

// String returns the string representation.
func (k PageKind) String() string {
	return string(k)
}

// ParsePageKind converts a string to a PageKind.
// Unrecognised values map to PageKindUnknown.
func ParsePageKind(s string) PageKind {
	k := PageKind(s)
	if !k.IsValid() {
		return PageKindUnknown
	}
	return k
}

// IsDocketPage returns true for pages that list a case's entries and so
// establish the tab's current case.
func (k PageKind) IsDocketPage() bool {
	switch k {
	case PageKindDocketQuery, PageKindDocketDisplay, PageKindDocketHistoryDisplay,
		PageKindCaseSummary, PageKindCaseQuery, PageKindDocketReportFilter:
		return true
	default:
		return false
	}
}

// IsDocumentPage returns true for pages that offer one or more documents.
func (k PageKind) IsDocumentPage() bool {
	switch k {
	case PageKindAttachmentMenu, PageKindSingleDocument, PageKindDownloadAllDocuments,
		PageKindCombinedPdf, PageKindShowDocMulti:
		return true
	default:
		return false
	}
}

// Description returns a human-readable description of the page kind.
func (k PageKind) Description() string {
	switch k {
	case PageKindDocketQuery:
		return "Docket query form"
	case PageKindDocketDisplay:
		return "Docket report"
	case PageKindDocketHistoryDisplay:
		return "Docket history report"
	case PageKindAttachmentMenu:
		return "Attachment menu"
	case PageKindSingleDocument:
		return "Single document receipt"
	case PageKindDownloadAllDocuments:
		return "Download all documents"
	case PageKindCombinedPdf:
		return "Combined PDF receipt"
	case PageKindClaimsRegister:
		return "Claims register"
	case PageKindCaseQuerySummary:
		return "Case query summary"
	case PageKindCaseSummary:
		return "Appellate case summary"
	case PageKindCaseSelection:
		return "Appellate case selection"
	case PageKindCaseSearch:
		return "Appellate case search"
	case PageKindCaseQuery:
		return "Appellate case query"
	case PageKindDocketReportFilter:
		return "Appellate docket report filter"
	case PageKindShowDocMulti:
		return "Appellate combined documents"
	default:
		return unknownDescription
	}
}

const unknownDescription = "Unknown"
