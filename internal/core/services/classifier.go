package services

import (
	"strings"

	"github.com/custodia-labs/recap-cli/internal/core/domain"
	"github.com/custodia-labs/recap-cli/internal/core/ports/driving"
	"github.com/custodia-labs/recap-cli/internal/pacer"
)

// Ensure Classifier implements the interface.
var _ driving.ClassifierService = (*Classifier)(nil)

// ClassificationRule maps a page to a kind when it matches.
type ClassificationRule struct {
	// Name identifies the rule in diagnostics.
	Name string

	// Match returns the page kind and true when the rule applies.
	Match func(page driving.PageContext) (domain.PageKind, bool)
}

// Classifier evaluates rules in order; the first match wins.
type Classifier struct {
	rules []ClassificationRule
}

// NewClassifier creates a classifier. Without rules it uses DefaultRules.
func NewClassifier(rules ...ClassificationRule) *Classifier {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Classifier{rules: rules}
}

// Rules returns the rules in evaluation order.
func (c *Classifier) Rules() []ClassificationRule {
	out := make([]ClassificationRule, len(c.rules))
	copy(out, c.rules)
	return out
}

// Classify returns the page kind.
func (c *Classifier) Classify(page driving.PageContext) domain.PageKind {
	return c.Explain(page).Kind
}

// Explain classifies the page and names the deciding rule.
func (c *Classifier) Explain(page driving.PageContext) driving.Classification {
	page = withDocketQueryURL(page)
	out := driving.Classification{
		Kind:    domain.PageKindUnknown,
		Session: SessionFromCookie(page.Cookie),
		Notes:   pageNotes(page),
	}
	for _, rule := range c.rules {
		if kind, ok := rule.Match(page); ok {
			out.Kind = kind
			out.Rule = rule.Name
			out.Restricted = kind == domain.PageKindSingleDocument && IsRestricted(page)
			break
		}
	}
	return out
}

// Rule names.
const (
	RuleDocketQuery      = "docket-query"
	RuleDocketDisplay    = "docket-display"
	RuleAttachmentMenu   = "attachment-menu"
	RuleSingleDocument   = "single-document"
	RuleDownloadAll      = "download-all-documents"
	RuleCombinedPdf      = "combined-pdf"
	RuleClaimsRegister   = "claims-register"
	RuleCaseQuerySummary = "case-query-summary"
	RuleAppellate        = "appellate"
)

// DefaultRules returns the court page rules in evaluation order. The
// order matters: a page may satisfy several shape checks.
func DefaultRules() []ClassificationRule {
	return []ClassificationRule{
		{Name: RuleDocketQuery, Match: matchDocketQuery},
		{Name: RuleDocketDisplay, Match: matchDocketDisplay},
		{Name: RuleAttachmentMenu, Match: matchAttachmentMenu},
		{Name: RuleSingleDocument, Match: matchSingleDocument},
		{Name: RuleDownloadAll, Match: matchDownloadAll},
		{Name: RuleCombinedPdf, Match: matchCombinedPdf},
		{Name: RuleClaimsRegister, Match: matchClaimsRegister},
		{Name: RuleCaseQuerySummary, Match: matchCaseQuerySummary},
		{Name: RuleAppellate, Match: matchAppellate},
	}
}

func matchDocketQuery(page driving.PageContext) (domain.PageKind, bool) {
	return domain.PageKindDocketQuery, pacer.IsDocketQueryURL(page.URL)
}

func matchDocketDisplay(page driving.PageContext) (domain.PageKind, bool) {
	switch {
	case pacer.IsDocketDisplayURL(page.URL):
		return domain.PageKindDocketDisplay, true
	case pacer.IsDocketHistoryDisplayURL(page.URL):
		return domain.PageKindDocketHistoryDisplay, true
	}

	servlet, ok := pacer.TransportRoomServlet(page.URL)
	if !ok || !pacer.IsAppellateDocketServlet(servlet) {
		return "", false
	}
	// The bare endpoint also serves other pages, which name themselves
	// with a hidden servlet input.
	if servlet == "" && inputValue(page, "servlet") != "" {
		return "", false
	}
	return domain.PageKindDocketDisplay, true
}

func matchAttachmentMenu(page driving.PageContext) (domain.PageKind, bool) {
	if !pacer.IsDocumentURL(page.URL) {
		return "", false
	}
	if lastInputValue(page) == "Download All" {
		return domain.PageKindAttachmentMenu, true
	}
	if btn, ok := last(page, "input[type=button]"); ok && strings.Contains(value(btn), "Download") {
		return domain.PageKindAttachmentMenu, true
	}
	if exists(page, "#file_too_big") {
		return domain.PageKindAttachmentMenu, true
	}

	content, ok := first(page, "#cmecfMainContent")
	if !ok {
		return "", false
	}
	if ps := content.Find("p"); len(ps) > 0 && strings.Contains(ps[0].Text(), "Document Selection Menu") {
		return domain.PageKindAttachmentMenu, true
	}
	if strings.Contains(content.LastChildText(), "view each document individually") {
		return domain.PageKindAttachmentMenu, true
	}
	return "", false
}

func matchSingleDocument(page driving.PageContext) (domain.PageKind, bool) {
	if !pacer.IsDocumentURL(page.URL) {
		return "", false
	}
	switch lastInputValue(page) {
	case "View Document", "Accept Charges and Retrieve":
	default:
		return "", false
	}
	// Other receipt types, such as some bankruptcy claims, are not
	// supported downstream.
	return domain.PageKindSingleDocument, anyContains(page, "td", "Image", "AUDIO", "TRANSCRIPT")
}

func matchDownloadAll(page driving.PageContext) (domain.PageKind, bool) {
	if !pacer.IsShowMultidocsURL(page.URL) || strings.Contains(page.URL, "create_appendix=1") {
		return "", false
	}
	return domain.PageKindDownloadAllDocuments, lastInputValue(page) == "Download Documents"
}

func matchCombinedPdf(page driving.PageContext) (domain.PageKind, bool) {
	receipts := 0
	for _, c := range find(page, "center") {
		if strings.Contains(c.Text(), "Transaction Receipt") {
			receipts++
		}
	}
	if receipts > 1 {
		return domain.PageKindCombinedPdf, true
	}

	if !pacer.IsShowMultidocsURL(page.URL) || pacer.QueryParameters(page.URL).Get("zipit") != "0" {
		return "", false
	}
	inputs := find(page, "input")
	ok := len(inputs) > 1 && value(inputs[len(inputs)-1]) == "View Document"
	return domain.PageKindCombinedPdf, ok
}

func matchClaimsRegister(page driving.PageContext) (domain.PageKind, bool) {
	if !pacer.IsSearchClaimsURL(page.URL) {
		return "", false
	}
	return domain.PageKindClaimsRegister, anyContains(page, "h2", "Claims Register")
}

func matchCaseQuerySummary(page driving.PageContext) (domain.PageKind, bool) {
	return domain.PageKindCaseQuerySummary, pacer.IsIQuerySummaryURL(page.URL)
}

// appellateServlets maps servlet names to the pages they render.
var appellateServlets = map[string]domain.PageKind{
	"CaseSummary.jsp":        domain.PageKindCaseSummary,
	"CaseSelectionTable.jsp": domain.PageKindCaseSelection,
	"CaseSearch.jsp":         domain.PageKindCaseSearch,
	"DocketReportFilter.jsp": domain.PageKindDocketReportFilter,
	"CaseQuery.jsp":          domain.PageKindCaseQuery,
	"ShowDocMulti":           domain.PageKindShowDocMulti,
}

func matchAppellate(page driving.PageContext) (domain.PageKind, bool) {
	court, ok := pacer.CourtFromURL(page.URL)
	if !ok || (!domain.IsAppellateCourt(court) && !pacer.IsACMSWebsite(page.URL)) {
		return "", false
	}

	servlet := pacer.AppellateQueryParameters(page.URL).Get("servlet")
	if servlet == "" {
		servlet = inputValue(page, "servlet")
	}
	if kind, ok := appellateServlets[servlet]; ok {
		return kind, true
	}

	if exists(page, "form[name=dktEntry]") || isAppellateAttachmentTable(page) {
		return domain.PageKindAttachmentMenu, true
	}
	if exists(page, "form[name=AccCharge]") {
		return domain.PageKindSingleDocument, true
	}
	return "", false
}

func isAppellateAttachmentTable(page driving.PageContext) bool {
	table, ok := first(page, "table")
	if !ok {
		return false
	}
	headers := table.Find("th")
	return len(headers) > 0 && strings.Contains(headers[0].Text(), "Documents are attached to this filing")
}
