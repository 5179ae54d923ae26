package services

import (
	"net/url"

	"github.com/custodia-labs/recap-cli/internal/core/domain"
	"github.com/custodia-labs/recap-cli/internal/core/ports/driven"
	"github.com/custodia-labs/recap-cli/internal/core/ports/driving"
	"github.com/custodia-labs/recap-cli/internal/pacer"
)

// Harvest holds the document links found on a page.
type Harvest struct {
	// DocumentIDs lists linked documents in page order, without duplicates.
	DocumentIDs []domain.DocumentID

	// DocsToCases maps each linked document to its case, when known.
	DocsToCases map[domain.DocumentID]domain.CaseID

	// DocsToAttachmentNumbers maps attachment menu links to their numbers.
	DocsToAttachmentNumbers map[domain.DocumentID]domain.AttachmentNumber
}

// LinkHarvester collects document identifiers from a page's links.
type LinkHarvester struct{}

// NewLinkHarvester creates a harvester.
func NewLinkHarvester() *LinkHarvester {
	return &LinkHarvester{}
}

// Harvest walks every link to a court document. A link's goDLS handler
// names its case; otherwise the page's case is assumed.
func (h *LinkHarvester) Harvest(page driving.PageContext, pageCase domain.CaseID) Harvest {
	out := Harvest{
		DocsToCases:             make(map[domain.DocumentID]domain.CaseID),
		DocsToAttachmentNumbers: make(map[domain.DocumentID]domain.AttachmentNumber),
	}
	base, _ := url.Parse(page.URL)
	seen := make(map[domain.DocumentID]bool)

	for _, a := range find(page, "a[href]") {
		href, _ := a.Attr("href")
		href = absoluteURL(base, href)
		if !pacer.IsDocumentURL(href) {
			continue
		}
		docID, ok := pacer.DocumentIDFromURL(href)
		if !ok {
			continue
		}
		if !seen[docID] {
			seen[docID] = true
			out.DocumentIDs = append(out.DocumentIDs, docID)
		}

		onclick, _ := a.Attr("onclick")
		if d, ok := pacer.ParseGoDLS(onclick); ok && pacer.IsCaseIDShaped(d.CaseID) {
			out.DocsToCases[docID] = domain.CaseID(d.CaseID)
		} else if pageCase != "" {
			out.DocsToCases[docID] = pageCase
		}

		if att, ok := attachmentNumber(a); ok {
			out.DocsToAttachmentNumbers[docID] = att
		}
	}
	return out
}

// attachmentNumber reads the attachment number from the table row holding
// a link. Docket report rows have at most three cells; attachment menu
// rows have more, with a leading checkbox cell when they have five or six.
func attachmentNumber(a driven.Element) (domain.AttachmentNumber, bool) {
	cell, ok := a.Parent()
	if !ok {
		return "", false
	}
	row, ok := cell.Parent()
	if !ok {
		return "", false
	}
	cells := row.Children()
	if len(cells) <= 3 {
		return "", false
	}

	numberCell := cells[0]
	if len(cells) == 5 || len(cells) == 6 {
		numberCell = cells[1]
	}
	n, ok := pacer.CleanDocLinkNumber(numberCell.Text())
	if !ok {
		return "", false
	}
	return domain.AttachmentNumber(n), true
}

// absoluteURL resolves href against the page URL.
func absoluteURL(base *url.URL, href string) string {
	if base == nil || href == "" {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
