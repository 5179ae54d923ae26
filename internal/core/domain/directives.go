package domain

// DirectiveFormat identifies which goDLS argument layout was parsed.
type DirectiveFormat string

// Available goDLS layouts.
const (
	// DirectiveFormatDistrict is the district court layout (8 or 9 arguments).
	DirectiveFormatDistrict DirectiveFormat = "district"

	// DirectiveFormatBankruptcy is the bankruptcy court layout (10 arguments).
	DirectiveFormatBankruptcy DirectiveFormat = "bankruptcy"
)

// GoDLSDirective is the parsed form of a CM/ECF goDLS(...) call found in
// onclick and onsubmit handlers of document links and receipt forms.
type GoDLSDirective struct {
	Format DirectiveFormat

	Hyperlink         string
	CaseID            string
	SequenceNumber    string
	ReceiptShown      string
	PDFHeader         string
	PDFTogglePossible string
	MagicNumber       string

	// Header is set for district directives.
	Header string

	// PSFReport is set for nine-argument district directives.
	PSFReport string

	// Claim fields are set for bankruptcy directives.
	ClaimID     string
	ClaimNumber string
	ClaimDocSeq string
}

// DoDocPostDirective is the parsed form of an appellate doDocPostURL(...)
// onclick handler.
type DoDocPostDirective struct {
	// DocID is the document identifier exactly as written in the handler.
	DocID string

	// CaseID is empty on attachment pages, which only pass the document.
	CaseID string
}

// ReceiptTitle holds the fields parsed from an appellate receipt title such
// as "Document: PDF Document (Case: 20-15019, Document: 1-1)".
type ReceiptTitle struct {
	DocketNumber DocketNumber
	DocNumber    string

	// AttNumber is empty for single documents.
	AttNumber AttachmentNumber
}
