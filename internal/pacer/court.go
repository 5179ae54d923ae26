package pacer

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/recap-cli/internal/core/domain"
)

var (
	reECFHost  = regexp.MustCompile(`^\w+://(ecf|pacer)\.(\w+)(?:\.audio)?\.uscourts\.gov(?:/.*)?$`)
	reACMSHost = regexp.MustCompile(`^\w+://(\w+)-showdoc\.azurewebsites\.us(?:/.*)?$`)
)

// CourtFromURL returns the court code for a CM/ECF, PACER or ACMS URL.
// Any other host, including look-alikes such as
// "ecf.canb.uscourts.gov.evil.example", yields false.
func CourtFromURL(rawURL string) (domain.CourtCode, bool) {
	if rawURL == "" {
		return "", false
	}
	lower := strings.ToLower(rawURL)

	if m := reECFHost.FindStringSubmatch(lower); m != nil {
		return domain.CourtCode(m[2]), true
	}
	if m := reACMSHost.FindStringSubmatch(lower); m != nil {
		return domain.CourtCode(m[1]), true
	}
	return "", false
}

// IsACMSWebsite returns true if the URL is served by the ACMS system.
func IsACMSWebsite(rawURL string) bool {
	return strings.Contains(strings.ToLower(rawURL), "azurewebsites.us")
}

// IsLoginPage returns true for the central PACER login and the
// "Manage My Account" login.
func IsLoginPage(rawURL string) bool {
	court, ok := CourtFromURL(rawURL)
	if !ok {
		return false
	}
	pacerLogin := court == "login" && strings.Contains(rawURL, "csologin/login.jsf")
	accountLogin := court == "psc" && strings.Contains(rawURL, "pscof/login.xhtml")
	return pacerLogin || accountLogin
}

// IsManageAccountPage returns true for the PACER "Manage My Account" pages.
func IsManageAccountPage(rawURL string) bool {
	return strings.Contains(rawURL, "pacer.") && strings.Contains(rawURL, "manage")
}
