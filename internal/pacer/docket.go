package pacer

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/recap-cli/internal/core/domain"
)

var (
	reDashes         = regexp.MustCompile("[–—‐‑‒―]+")
	reDistrictDocket = regexp.MustCompile(`(?:\d:)?(\d\d)-..-(\d+)`)
	reBankrDocket    = regexp.MustCompile(`(\d\d)-(\d+)`)
)

// NormalizeDashes converts en dashes, em dashes and the other Unicode dash
// variants to a plain hyphen.
func NormalizeDashes(text string) string {
	return reDashes.ReplaceAllString(text, "-")
}

// DocketNumberCore reduces a docket number to its numeric core:
//
//	2:12-cv-01032-JKG-MJL -> 1201032
//	12-33112              -> 12033112
//
// District numbers pad the sequence to five digits, bankruptcy numbers to
// six. Unrecognised input yields "".
func DocketNumberCore(docketNumber domain.DocketNumber) domain.DocketNumberCore {
	dn := NormalizeDashes(strings.TrimSpace(string(docketNumber)))
	if dn == "" {
		return ""
	}
	if m := reDistrictDocket.FindStringSubmatch(dn); m != nil {
		return domain.DocketNumberCore(m[1] + leftPad(m[2], 5))
	}
	if m := reBankrDocket.FindStringSubmatch(dn); m != nil {
		return domain.DocketNumberCore(m[1] + leftPad(m[2], 6))
	}
	return ""
}

// DistrictLink identifies the district case an appellate docket links to.
type DistrictLink struct {
	Court domain.CourtCode
	Core  domain.DocketNumberCore
}

// DistrictLinkData extracts the court and docket number core from a link to
// a district court, e.g. ".../cgi-bin/iquery.pl?caseNumber=1:16-cv-00745-ESH".
func DistrictLinkData(rawURL string) (DistrictLink, bool) {
	court, ok := CourtFromURL(rawURL)
	if !ok {
		return DistrictLink{}, false
	}
	params := QueryParameters(rawURL)
	dn := params.Get("caseNumber")
	if dn == "" {
		dn = params.Get("casenumber")
	}
	link := DistrictLink{Court: court}
	if dn != "" {
		link.Core = DocketNumberCore(domain.DocketNumber(dn))
	}
	return link, true
}

func leftPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
