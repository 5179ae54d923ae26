package pacer

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/custodia-labs/recap-cli/internal/core/domain"
)

var (
	reDocketQuery    = regexp.MustCompile(`/(?:DktRpt|HistDocQry)\.pl\?(?:\d+|(?:&?\w+=[^&=\n]+)+)$`)
	reDocketDisplay  = regexp.MustCompile(`/DktRpt\.pl\?\w+-[\w-]+$`)
	reHistoryDisplay = regexp.MustCompile(`/HistDocQry\.pl\?\w+-[\w-]+$`)
	reTransportRoom  = regexp.MustCompile(`servlet/TransportRoom(?:\?servlet=([^?&]+)(?:[/&#;].*)?)?$`)
	reTransportQuery = regexp.MustCompile(`TransportRoom\?((?:&?\w+=[^&=\n]+)+)`)
	reIQuery         = regexp.MustCompile(`iquery\.pl`)
	reIQuerySummary  = regexp.MustCompile(`[\d_-]+[A-Z]+[\d_-]+`)
	reShowMultidocs  = regexp.MustCompile(`/show_multidocs\.pl\?`)
	reSearchClaims   = regexp.MustCompile(`/SearchClaims\.pl\?`)
	reDktRpt         = regexp.MustCompile(`DktRpt\.pl`)
)

// Case identifier patterns, tried in order for each URL.
var caseIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)[?&]caseid=(\d+)`),
	regexp.MustCompile(`\?(\d+)(?:&.*)?$`),
	regexp.MustCompile(`[?&]caseNum=(\d+)(?:&|$)`),
	regexp.MustCompile(`[?&]caseId=(\d+)(?:&|$)`),
}

// Hostname returns the lower-cased host of a URL without its port.
func Hostname(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}

// CaseNumberFromURLs returns the case identifier embedded in the first URL
// that carries one. Only hosts ending in uscourts.gov are considered, since
// callers pass referrers as well as page URLs. A "0" placeholder is skipped
// rather than accepted.
func CaseNumberFromURLs(urls []string) (domain.CaseID, bool) {
	for _, u := range urls {
		if !strings.HasSuffix(Hostname(u), "uscourts.gov") {
			continue
		}
		for _, re := range caseIDPatterns {
			m := re.FindStringSubmatch(u)
			if m == nil || m[1] == "0" {
				continue
			}
			return domain.CaseID(m[1]), true
		}
	}
	return "", false
}

// IsDocketQueryURL returns true for the docket and history query forms:
// a digits-only query string, or one made of key=value parameters.
// The docket report itself ("?591030040473392-L_1_0-1") does not match.
func IsDocketQueryURL(rawURL string) bool {
	return reDocketQuery.MatchString(rawURL)
}

// IsDocketDisplayURL returns true for a district docket report URL.
func IsDocketDisplayURL(rawURL string) bool {
	return reDocketDisplay.MatchString(rawURL)
}

// IsDocketHistoryDisplayURL returns true for a docket history report URL.
func IsDocketHistoryDisplayURL(rawURL string) bool {
	return reHistoryDisplay.MatchString(rawURL)
}

// TransportRoomServlet reports whether the URL is an appellate TransportRoom
// URL whose first parameter (if any) is servlet, and returns that servlet.
func TransportRoomServlet(rawURL string) (servlet string, ok bool) {
	m := reTransportRoom.FindStringSubmatch(rawURL)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// IsAppellateDocketServlet returns true for servlet values that render an
// appellate docket. An empty servlet is the bare TransportRoom endpoint.
func IsAppellateDocketServlet(servlet string) bool {
	switch servlet {
	case "CaseSummary.jsp", "ShowPage", "":
		return true
	default:
		return false
	}
}

// AppellateQueryParameters returns the TransportRoom query parameters, or
// empty values when the URL has none.
func AppellateQueryParameters(rawURL string) url.Values {
	m := reTransportQuery.FindStringSubmatch(rawURL)
	if m == nil {
		return url.Values{}
	}
	values, err := url.ParseQuery(strings.TrimPrefix(m[1], "&"))
	if err != nil {
		return url.Values{}
	}
	return values
}

// QueryParameters returns the parsed query string of any URL.
func QueryParameters(rawURL string) url.Values {
	u, err := url.Parse(rawURL)
	if err != nil {
		return url.Values{}
	}
	return u.Query()
}

// IsIQuerySummaryURL returns true for the iquery page listing the reports
// available for a case.
func IsIQuerySummaryURL(rawURL string) bool {
	return reIQuery.MatchString(rawURL) && reIQuerySummary.MatchString(rawURL)
}

// IsBlankQueryReportURL returns true for the empty iquery search form.
func IsBlankQueryReportURL(rawURL string) bool {
	return reIQuery.MatchString(rawURL) && !strings.ContainsAny(rawURL, "?&")
}

// IsShowMultidocsURL returns true for the multi-document download endpoint.
func IsShowMultidocsURL(rawURL string) bool {
	return reShowMultidocs.MatchString(rawURL)
}

// IsSearchClaimsURL returns true for the claims register endpoint.
func IsSearchClaimsURL(rawURL string) bool {
	return reSearchClaims.MatchString(rawURL)
}

// FormatDocketQueryURL appends the case identifier to a bare DktRpt.pl URL
// so every docket query URL has the "DktRpt.pl?<caseid>" shape.
func FormatDocketQueryURL(rawURL string, caseID domain.CaseID) string {
	if !reDktRpt.MatchString(rawURL) || strings.ContainsAny(rawURL, "?&") {
		return rawURL
	}
	return rawURL + "?" + string(caseID)
}

