package services

import (
	"context"
	"errors"
	"strings"

	"github.com/custodia-labs/recap-cli/internal/core/domain"
	"github.com/custodia-labs/recap-cli/internal/core/ports/driven"
	"github.com/custodia-labs/recap-cli/internal/core/ports/driving"
	"github.com/custodia-labs/recap-cli/internal/logger"
	"github.com/custodia-labs/recap-cli/internal/pacer"
)

var resolveLog = logger.Named("resolve")

// Ensure Resolver implements the interface.
var _ driving.ResolverService = (*Resolver)(nil)

// Resolver reconciles the identifiers a page shows with those the tab
// learned on earlier pages.
type Resolver struct {
	cache      driven.TabCache
	classifier *Classifier
	harvester  *LinkHarvester
	guard      *OriginGuard
	navigation *NavigationTracker
	options    driven.OptionsStore
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithNavigationTracker drops resolutions for pages the tab has left.
func WithNavigationTracker(n *NavigationTracker) ResolverOption {
	return func(r *Resolver) { r.navigation = n }
}

// WithOptionsStore keeps the stored receipt preference in step with the
// PacerPref cookie of resolved pages.
func WithOptionsStore(o driven.OptionsStore) ResolverOption {
	return func(r *Resolver) { r.options = o }
}

// WithClassifier replaces the default classifier.
func WithClassifier(c *Classifier) ResolverOption {
	return func(r *Resolver) { r.classifier = c }
}

// WithOriginGuard replaces the default origin guard.
func WithOriginGuard(g *OriginGuard) ResolverOption {
	return func(r *Resolver) { r.guard = g }
}

// NewResolver creates a resolver over the tab cache.
func NewResolver(cache driven.TabCache, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		cache:      cache,
		classifier: NewClassifier(),
		harvester:  NewLinkHarvester(),
		guard:      NewOriginGuard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the page's identifiers and records what it learned.
// Identifiers that cannot be found are left empty. A page whose tab has
// since navigated elsewhere resolves to nothing and writes nothing. A
// page whose cookies show no PACER session is resolved but not recorded.
func (r *Resolver) Resolve(ctx context.Context, page driving.PageContext) (domain.Identifiers, error) {
	court, err := r.guard.Check(page.URL)
	if err != nil {
		return domain.Identifiers{}, err
	}
	page = withDocketQueryURL(page)
	if !r.navigation.IsCurrent(page.TabID, page.Generation) {
		resolveLog.Debug("tab %s generation %d is stale", page.TabID, page.Generation)
		return domain.Identifiers{}, nil
	}

	kind := page.Kind
	if kind == "" {
		kind = r.classifier.Classify(page)
	}

	ids := domain.Identifiers{
		Court:      court,
		DocumentID: documentID(page),
	}
	receipt, hasReceipt := receiptTitle(page)
	if !hasReceipt && kind == domain.PageKindSingleDocument && !domain.IsAppellateCourt(court) {
		receipt, hasReceipt = districtReceipt(page)
	}
	if hasReceipt {
		ids.DocNumber = receipt.DocNumber
		ids.AttachmentNumber = receipt.AttNumber
	}
	ids.DocketNumber = docketNumber(page, receipt)

	cached := r.lookup(ctx, page.TabID)

	caseID, source := r.caseID(page, kind, ids, cached)
	ids.CaseID = caseID
	if ids.AttachmentNumber == "" && cached != nil && ids.DocumentID != "" {
		ids.AttachmentNumber = cached.DocsToAttachmentNumbers[ids.DocumentID]
	}
	resolveLog.Debug("%s kind=%s case=%q (%s) doc=%q docket=%q",
		page.TabID, kind, ids.CaseID, source, ids.DocumentID, ids.DocketNumber)

	if !r.navigation.IsCurrent(page.TabID, page.Generation) {
		resolveLog.Debug("tab %s navigated during resolution", page.TabID)
		return domain.Identifiers{}, nil
	}

	if loggedOut(page) {
		resolveLog.Debug("tab %s is not logged in, nothing recorded", page.TabID)
		return ids, nil
	}
	patch := r.learned(page, kind, ids, cached)
	if !patch.IsEmpty() {
		if err := r.Record(ctx, page.TabID, patch); err != nil {
			resolveLog.Debug("write-back for tab %s failed: %v", page.TabID, err)
		}
	}
	r.syncReceiptPreference(ctx, page.Cookie)
	return ids, nil
}

// syncReceiptPreference records whether the account suppresses
// transaction receipts. Pages without a PacerPref cookie change nothing.
func (r *Resolver) syncReceiptPreference(ctx context.Context, cookie string) {
	if r.options == nil || !pacer.HasPreferenceCookie(cookie) {
		return
	}
	disabled := pacer.ReceiptsDisabled(cookie)
	opts, err := r.options.Options(ctx)
	if err != nil {
		resolveLog.Debug("reading options: %v", err)
		return
	}
	if opts.ReceiptsDisabled == disabled {
		return
	}
	opts.ReceiptsDisabled = disabled
	if err := r.options.SaveOptions(ctx, opts); err != nil {
		resolveLog.Debug("saving options: %v", err)
	}
}

// Record merges a patch into the tab cache.
func (r *Resolver) Record(ctx context.Context, tabID string, patch domain.TabCachePatch) error {
	if r.cache == nil || tabID == "" {
		return nil
	}
	return r.cache.Merge(ctx, tabID, patch)
}

// lookup reads the tab's entry. Failures are treated as an empty cache.
func (r *Resolver) lookup(ctx context.Context, tabID string) *domain.TabCacheEntry {
	if r.cache == nil || tabID == "" {
		return nil
	}
	entry, err := r.cache.Get(ctx, tabID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			resolveLog.Debug("tab cache read for %s failed: %v", tabID, err)
		}
		return nil
	}
	return entry
}

// Case identifier sources, reported in diagnostics.
const (
	sourcePage      = "page"
	sourceDirective = "directive"
	sourceCacheDoc  = "cache:document"
	sourceCacheDkt  = "cache:docket"
	sourceNone      = "none"
)

// caseID applies the sources in precedence order, stopping at the first
// that yields an identifier.
func (r *Resolver) caseID(page driving.PageContext, kind domain.PageKind, ids domain.Identifiers,
	cached *domain.TabCacheEntry) (domain.CaseID, string) {
	if id, ok := pageCaseID(page, kind); ok {
		return id, sourcePage
	}
	if id, ok := directiveCaseID(page); ok {
		return id, sourceDirective
	}
	if id, ok := cached.CaseForDocument(ids.DocumentID); ok {
		return id, sourceCacheDoc
	}
	if cached != nil && cached.CaseID != "" && ids.DocketNumber != "" &&
		strings.TrimSpace(string(cached.DocketNumber)) == strings.TrimSpace(string(ids.DocketNumber)) {
		return cached.CaseID, sourceCacheDkt
	}
	return "", sourceNone
}

// learned builds the write-back patch holding only what the cache lacks.
func (r *Resolver) learned(page driving.PageContext, kind domain.PageKind, ids domain.Identifiers,
	cached *domain.TabCacheEntry) domain.TabCachePatch {
	if cached == nil {
		cached = &domain.TabCacheEntry{}
	}
	harvest := r.harvester.Harvest(page, ids.CaseID)

	var patch domain.TabCachePatch
	docs := harvest.DocsToCases
	if ids.DocumentID != "" && ids.CaseID != "" {
		docs[ids.DocumentID] = ids.CaseID
	}
	for doc, c := range docs {
		if cached.DocsToCases[doc] == c {
			continue
		}
		if patch.DocsToCases == nil {
			patch.DocsToCases = make(map[domain.DocumentID]domain.CaseID)
		}
		patch.DocsToCases[doc] = c
	}

	atts := harvest.DocsToAttachmentNumbers
	if ids.DocumentID != "" && ids.AttachmentNumber != "" {
		atts[ids.DocumentID] = ids.AttachmentNumber
	}
	for doc, att := range atts {
		if cached.DocsToAttachmentNumbers[doc] == att {
			continue
		}
		if patch.DocsToAttachmentNumbers == nil {
			patch.DocsToAttachmentNumbers = make(map[domain.DocumentID]domain.AttachmentNumber)
		}
		patch.DocsToAttachmentNumbers[doc] = att
	}

	if ids.DocumentID != "" && cached.DocID != ids.DocumentID {
		patch.DocID = domain.DocumentIDPtr(ids.DocumentID)
	}

	// Docket pages establish the tab's current case.
	if kind.IsDocketPage() && ids.CaseID != "" {
		if cached.CaseID != ids.CaseID {
			patch.CaseID = domain.CaseIDPtr(ids.CaseID)
		}
		if ids.DocketNumber != "" && cached.DocketNumber != ids.DocketNumber {
			patch.DocketNumber = domain.DocketNumberPtr(ids.DocketNumber)
		}
	}
	return patch
}

// caseIDParams are the URL parameters that may carry a case identifier.
var caseIDParams = []string{"caseid", "caseId", "casenum", "caseNum", "recapCaseNum"}

// pageCaseID reads a case identifier the page states explicitly.
func pageCaseID(page driving.PageContext, kind domain.PageKind) (domain.CaseID, bool) {
	for _, name := range []string{"caseId", "caseNum", "csnum1"} {
		if v := inputValue(page, name); pacer.IsCaseIDShaped(v) {
			return domain.CaseID(v), true
		}
	}
	if id, ok := allCaseIDs(page); ok {
		return id, true
	}

	params := pacer.QueryParameters(page.URL)
	for _, name := range caseIDParams {
		if v := strings.TrimSpace(params.Get(name)); pacer.IsCaseIDShaped(v) {
			return domain.CaseID(v), true
		}
	}

	switch kind {
	case domain.PageKindClaimsRegister:
		if id, ok := claimsPageCaseID(page); ok {
			return id, true
		}
	case domain.PageKindCaseQuerySummary:
		if id, ok := iquerySummaryCaseID(page); ok {
			return id, true
		}
	}

	return pacer.CaseNumberFromURLs([]string{page.URL, page.Referrer})
}

// directiveCaseID reads the case identifier from the inline handlers of
// the page's action button and its form.
func directiveCaseID(page driving.PageContext) (domain.CaseID, bool) {
	if btn, ok := last(page, "input[type=button]"); ok && strings.Contains(value(btn), "Download") {
		onclick, _ := btn.Attr("onclick")
		if id, ok := pacer.CaseIDFromHandler(onclick); ok {
			return id, true
		}
	}

	input, ok := last(page, "input")
	if !ok {
		return "", false
	}
	onclick, _ := input.Attr("onclick")
	if d, ok := pacer.ParseGoDLS(onclick); ok && pacer.IsCaseIDShaped(d.CaseID) {
		return domain.CaseID(d.CaseID), true
	}
	if d, ok := pacer.ParseDoDocPost(onclick); ok && pacer.IsCaseIDShaped(d.CaseID) {
		return domain.CaseID(d.CaseID), true
	}

	form, ok := input.Form()
	if !ok {
		return "", false
	}
	onsubmit, _ := form.Attr("onsubmit")
	if d, ok := pacer.ParseGoDLS(onsubmit); ok && pacer.IsCaseIDShaped(d.CaseID) {
		return domain.CaseID(d.CaseID), true
	}
	return "", false
}

// claimsPageCaseID reads the case from the claims register's docket link.
func claimsPageCaseID(page driving.PageContext) (domain.CaseID, bool) {
	for _, a := range find(page, "a[href]") {
		href, _ := a.Attr("href")
		if !strings.Contains(href, "DktRpt.pl") {
			continue
		}
		if i := strings.Index(href, "?"); i >= 0 {
			if id := leadingDigits(href[i+1:]); pacer.IsCaseIDShaped(id) {
				return domain.CaseID(id), true
			}
		}
	}
	return "", false
}

// iquerySummaryCaseID reads the trailing digits of the summary table's
// last report link.
func iquerySummaryCaseID(page driving.PageContext) (domain.CaseID, bool) {
	anchors := find(page, "#cmecfMainContent table a[href]")
	if len(anchors) == 0 {
		return "", false
	}
	href, _ := anchors[len(anchors)-1].Attr("href")
	if id := trailingDigits(href); pacer.IsCaseIDShaped(id) {
		return domain.CaseID(id), true
	}
	return "", false
}

// documentID reads the page's document identifier.
func documentID(page driving.PageContext) domain.DocumentID {
	if pacer.IsDocumentURL(page.URL) {
		if input, ok := last(page, "input"); ok && value(input) == "View Document" {
			if form, ok := input.Form(); ok {
				onsubmit, _ := form.Attr("onsubmit")
				if d, ok := pacer.ParseGoDLS(onsubmit); ok {
					if id, ok := pacer.DocumentIDFromURL(d.Hyperlink); ok {
						return id
					}
				}
			}
		}
	}
	if id, ok := pacer.DocumentIDFromURL(page.URL); ok {
		return id
	}
	if id, ok := pacer.AppellateDocumentIDFromURL(page.URL); ok {
		return id
	}
	return ""
}

// docketNumber reads the page's human-readable docket number: URL and
// form values first, then the receipt, then a receipt table cell, then a
// district receipt's Case Number row.
func docketNumber(page driving.PageContext, receipt domain.ReceiptTitle) domain.DocketNumber {
	params := pacer.QueryParameters(page.URL)
	candidates := []string{
		params.Get("casenum"),
		params.Get("caseNum"),
		inputValue(page, "csnum1"),
		inputValue(page, "caseNum"),
		params.Get("recapCaseNum"),
	}
	for _, c := range candidates {
		c = pacer.NormalizeDashes(strings.TrimSpace(c))
		// Numeric values are case identifiers, not docket numbers.
		if c != "" && strings.Trim(c, "0123456789") != "" {
			return domain.DocketNumber(c)
		}
	}
	if receipt.DocketNumber != "" {
		return receipt.DocketNumber
	}

	for _, td := range find(page, "td") {
		text := td.Text()
		if !strings.Contains(text, "Case:") {
			continue
		}
		if receipt, ok := pacer.ParseReceiptTable(text); ok && receipt.DocketNumber != "" {
			return receipt.DocketNumber
		}
	}
	return caseNumberRow(page)
}

// receiptDescriptions are the district receipt cells naming the billed
// item, in the order they are tried.
var receiptDescriptions = []string{"Image", "AUDIO", "TRANSCRIPT"}

// districtReceipt reads a district transaction receipt: the document and
// attachment numbers from the "Image 12-0" description cell and the docket
// number from the Case Number row.
func districtReceipt(page driving.PageContext) (domain.ReceiptTitle, bool) {
	for _, needle := range receiptDescriptions {
		var text strings.Builder
		for _, td := range innerCells(page) {
			if t := td.Text(); strings.Contains(t, needle) {
				text.WriteString(t)
			}
		}
		if text.Len() == 0 {
			continue
		}
		doc, att, ok := pacer.ParseReceiptDescription(text.String())
		if !ok {
			return domain.ReceiptTitle{}, false
		}
		return domain.ReceiptTitle{
			DocketNumber: caseNumberRow(page),
			DocNumber:    doc,
			AttNumber:    att,
		}, true
	}
	return domain.ReceiptTitle{}, false
}

// caseNumberRow returns the cell after "Case Number" in a receipt row.
func caseNumberRow(page driving.PageContext) domain.DocketNumber {
	for _, row := range find(page, "tr") {
		cells := row.Children()
		for i := 0; i+1 < len(cells); i++ {
			c := cells[i]
			if len(c.Find("td")) > 0 || !strings.Contains(c.Text(), "Case Number") {
				continue
			}
			if dn := pacer.NormalizeDashes(strings.TrimSpace(cells[i+1].Text())); dn != "" {
				return domain.DocketNumber(dn)
			}
		}
	}
	return ""
}

// innerCells returns the table cells that hold no nested cells, so layout
// tables wrapping a receipt are not read twice.
func innerCells(page driving.PageContext) []driven.Element {
	var cells []driven.Element
	for _, td := range find(page, "td") {
		if len(td.Find("td")) == 0 {
			cells = append(cells, td)
		}
	}
	return cells
}

// receiptTitle reads the title of an appellate download confirmation.
func receiptTitle(page driving.PageContext) (domain.ReceiptTitle, bool) {
	for _, sel := range []string{"strong", "p.font-weight-bold"} {
		for _, el := range find(page, sel) {
			if receipt, ok := pacer.ParseReceiptTitle(el.Text()); ok {
				return receipt, true
			}
		}
	}
	if page.Document != nil {
		return pacer.ParseReceiptTitle(page.Document.Title())
	}
	return domain.ReceiptTitle{}, false
}

func leadingDigits(s string) string {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end]
}

func trailingDigits(s string) string {
	start := len(s)
	for start > 0 && s[start-1] >= '0' && s[start-1] <= '9' {
		start--
	}
	return s[start:]
}
