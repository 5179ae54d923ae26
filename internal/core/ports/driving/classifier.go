package driving

import "github.com/custodia-labs/recap-cli/internal/core/domain"

// ClassifierService classifies court-site pages.
type ClassifierService interface {
	// Classify returns the page's kind. PageKindUnknown when no rule
	// matches.
	Classify(page PageContext) domain.PageKind

	// Explain classifies the page and reports the matching rule and
	// diagnostics.
	Explain(page PageContext) Classification
}

// Classification is the result of classifying a page.
type Classification struct {
	// Kind is the page kind. PageKindUnknown when no rule matched.
	Kind domain.PageKind

	// Rule names the rule that matched. Empty when none did.
	Rule string

	// Restricted is set for single document pages the court marks as
	// sealed or restricted to case participants.
	Restricted bool

	// Session is the login state read from the page's cookies.
	Session Session

	// Notes are diagnostics about pages no rule covers, such as the login
	// and account pages.
	Notes []string `json:",omitempty"`
}

// Session describes the court website account a page was loaded with.
type Session struct {
	// Known is set when the page came with a cookie string. The other
	// fields are meaningful only then.
	Known bool

	// LoggedIn is set for a validated PACER session.
	LoggedIn bool

	// FilingAccount is set for accounts with filing rights.
	FilingAccount bool

	// ReceiptsDisabled is set when the account suppresses transaction
	// receipts.
	ReceiptsDisabled bool
}
