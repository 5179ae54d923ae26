package pacer

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/recap-cli/internal/core/domain"
)

var (
	reReceiptAttachment = regexp.MustCompile(`^Document: PDF Document \(Case: ([^']*), Document: (\d+)[-.]+(\d+)\)`)
	reReceiptSingle     = regexp.MustCompile(`^Document: PDF Document \(Case: ([^']*), Document: (\d+)\)`)
	reReceiptTable      = regexp.MustCompile(`Case: ([^',]*), Document: (\d+)(?:-(\d+))?`)
	reReceiptDocAtt     = regexp.MustCompile(`(\d+)-(\d+)`)
)

// ParseReceiptTitle parses the title of an appellate download confirmation
// page. Both forms are recognised:
//
//	Document: PDF Document (Case: 20-15019, Document: 11)
//	Document: PDF Document (Case: 20-15019, Document: 1-1)
//
// ACMS writes attachments as "1.1".
func ParseReceiptTitle(title string) (domain.ReceiptTitle, bool) {
	title = strings.TrimSpace(title)
	if m := reReceiptAttachment.FindStringSubmatch(title); m != nil {
		return domain.ReceiptTitle{
			DocketNumber: domain.DocketNumber(m[1]),
			DocNumber:    m[2],
			AttNumber:    domain.AttachmentNumber(m[3]),
		}, true
	}
	if m := reReceiptSingle.FindStringSubmatch(title); m != nil {
		return domain.ReceiptTitle{
			DocketNumber: domain.DocketNumber(m[1]),
			DocNumber:    m[2],
		}, true
	}
	return domain.ReceiptTitle{}, false
}

// ParseReceiptTable parses the "Case: X, Document: N-M" text of an appellate
// receipt table cell. A missing attachment number is reported as "0".
func ParseReceiptTable(text string) (domain.ReceiptTitle, bool) {
	m := reReceiptTable.FindStringSubmatch(text)
	if m == nil {
		return domain.ReceiptTitle{}, false
	}
	att := m[3]
	if att == "" {
		att = "0"
	}
	return domain.ReceiptTitle{
		DocketNumber: domain.DocketNumber(strings.TrimSpace(m[1])),
		DocNumber:    m[2],
		AttNumber:    domain.AttachmentNumber(att),
	}, true
}

// ParseReceiptDescription extracts the document and attachment numbers from
// a district receipt description such as "Image 1234-9876".
func ParseReceiptDescription(description string) (docNumber string, att domain.AttachmentNumber, ok bool) {
	m := reReceiptDocAtt.FindStringSubmatch(description)
	if m == nil {
		return "", "", false
	}
	return m[1], domain.AttachmentNumber(m[2]), true
}
