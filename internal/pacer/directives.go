package pacer

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/recap-cli/internal/core/domain"
)

// goDLSPattern builds the anchored pattern for a goDLS call with n quoted
// arguments. The argument count is fixed per layout.
func goDLSPattern(n int) *regexp.Regexp {
	args := strings.TrimSuffix(strings.Repeat(`'([^']*)',`, n), ",")
	return regexp.MustCompile(`^goDLS\(` + args + `\)`)
}

var (
	reGoDLSBankruptcy = goDLSPattern(10)
	reGoDLSDistrictPS = goDLSPattern(9)
	reGoDLSDistrict   = goDLSPattern(8)

	reDoDocPost           = regexp.MustCompile(`^return doDocPostURL\('([^']*)','([^']*)'\);`)
	reDoDocPostAttachment = regexp.MustCompile(`^return doDocPostURL\('([^']*)'\)`)
)

// ParseGoDLS parses a goDLS(...) handler as found in document link onclick
// and receipt form onsubmit attributes:
//
//	goDLS('/doc1/09518360046','153992','264','','','1','','');
//
// The ten-argument bankruptcy layout is tried first, then the district
// layouts. Anything else returns false.
func ParseGoDLS(s string) (domain.GoDLSDirective, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return domain.GoDLSDirective{}, false
	}

	if m := reGoDLSBankruptcy.FindStringSubmatch(s); m != nil {
		d := goDLSCommon(m, domain.DirectiveFormatBankruptcy)
		d.ClaimID, d.ClaimNumber, d.ClaimDocSeq = m[8], m[9], m[10]
		return d, true
	}
	if m := reGoDLSDistrictPS.FindStringSubmatch(s); m != nil {
		d := goDLSCommon(m, domain.DirectiveFormatDistrict)
		d.Header, d.PSFReport = m[8], m[9]
		return d, true
	}
	if m := reGoDLSDistrict.FindStringSubmatch(s); m != nil {
		d := goDLSCommon(m, domain.DirectiveFormatDistrict)
		d.Header = m[8]
		return d, true
	}
	return domain.GoDLSDirective{}, false
}

func goDLSCommon(m []string, format domain.DirectiveFormat) domain.GoDLSDirective {
	return domain.GoDLSDirective{
		Format:            format,
		Hyperlink:         m[1],
		CaseID:            m[2],
		SequenceNumber:    m[3],
		ReceiptShown:      m[4],
		PDFHeader:         m[5],
		PDFTogglePossible: m[6],
		MagicNumber:       m[7],
	}
}

// ParseDoDocPost parses an appellate doDocPostURL(...) onclick handler.
// Docket reports pass the document and case; attachment pages pass only the
// document.
func ParseDoDocPost(s string) (domain.DoDocPostDirective, bool) {
	s = strings.TrimSpace(s)
	if m := reDoDocPost.FindStringSubmatch(s); m != nil {
		return domain.DoDocPostDirective{DocID: m[1], CaseID: m[2]}, true
	}
	if m := reDoDocPostAttachment.FindStringSubmatch(s); m != nil {
		return domain.DoDocPostDirective{DocID: m[1]}, true
	}
	return domain.DoDocPostDirective{}, false
}

// CaseIDFromHandler returns a caseid=<digits> parameter embedded in an
// onclick handler, as used by "Download All" buttons.
func CaseIDFromHandler(handler string) (domain.CaseID, bool) {
	m := caseIDPatterns[0].FindStringSubmatch(handler)
	if m == nil || m[1] == "0" {
		return "", false
	}
	return domain.CaseID(m[1]), true
}
