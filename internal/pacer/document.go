package pacer

import (
	"regexp"

	"github.com/custodia-labs/recap-cli/internal/core/domain"
)

var (
	reDoc1Path    = regexp.MustCompile(`/(?:doc1|docs1)/(\d+)`)
	reShowDoc     = regexp.MustCompile(`/cgi-bin/show_doc`)
	reShowDocSrv  = regexp.MustCompile(`servlet=ShowDoc`)
	reServletDoc  = regexp.MustCompile(`^ShowDoc/(\d+)`)
	reDigitsOnly  = regexp.MustCompile(`^\d+$`)
	reDocLinkText = regexp.MustCompile(`(?:\s*(?:&nbsp;)?\s*)(\d+)(?:\s*(?:&nbsp;)?\s*)`)
)

// receiptFlagIndex is the position of the digit the court system uses to
// flag whether a receipt page has been shown.
const receiptFlagIndex = 3

// CleanDocumentID coerces the receipt flag digit to '0'. Two identifiers
// differing only in that digit name the same document. Identifiers shorter
// than four characters are returned unchanged.
func CleanDocumentID(id string) domain.DocumentID {
	if len(id) <= receiptFlagIndex {
		return domain.DocumentID(id)
	}
	return domain.DocumentID(id[:receiptFlagIndex] + "0" + id[receiptFlagIndex+1:])
}

// DocumentIDFromURL returns the normalised document identifier embedded in a
// /doc1/ or /docs1/ path.
func DocumentIDFromURL(rawURL string) (domain.DocumentID, bool) {
	m := reDoc1Path.FindStringSubmatch(rawURL)
	if m == nil {
		return "", false
	}
	return CleanDocumentID(m[1]), true
}

// IsDocumentURL returns true if the URL links to a court document:
// doc1/docs1 paths, show_doc.pl claims and entries, or the appellate
// ShowDoc servlet. The URL must also belong to a court website.
func IsDocumentURL(rawURL string) bool {
	if !reDoc1Path.MatchString(rawURL) && !reShowDoc.MatchString(rawURL) && !reShowDocSrv.MatchString(rawURL) {
		return false
	}
	_, ok := CourtFromURL(rawURL)
	return ok
}

// DocumentIDFromServlet extracts the identifier from an appellate servlet
// value such as "ShowDoc/009032127512".
func DocumentIDFromServlet(servlet string) (domain.DocumentID, bool) {
	m := reServletDoc.FindStringSubmatch(servlet)
	if m == nil {
		return "", false
	}
	return CleanDocumentID(m[1]), true
}

// AppellateDocumentIDFromURL returns the document identifier of an appellate
// attachment or single document page. The dls_id parameter takes precedence
// over a path appended to the ShowDoc servlet.
func AppellateDocumentIDFromURL(rawURL string) (domain.DocumentID, bool) {
	params := AppellateQueryParameters(rawURL)
	if dls := params.Get("dls_id"); dls != "" {
		return CleanDocumentID(dls), true
	}
	return DocumentIDFromServlet(params.Get("servlet"))
}

// CleanDocLinkNumber extracts the number from document link text such as
// "&nbsp;89&nbsp;".
func CleanDocLinkNumber(text string) (string, bool) {
	m := reDocLinkText.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// isNumeric returns true for a non-empty string of ASCII digits.
func isNumeric(s string) bool {
	return reDigitsOnly.MatchString(s)
}

// IsCaseIDShaped returns true if s looks like an internal case identifier:
// all digits and not the "0" placeholder some pages stamp.
func IsCaseIDShaped(s string) bool {
	return isNumeric(s) && s != "0"
}
