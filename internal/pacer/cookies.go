package pacer

import (
	"regexp"
	"strings"
)

var reCookiePair = regexp.MustCompile(`\s*([^=;]+)=([^;]*)`)

// parseCookies splits a document.cookie style string into name/value pairs.
func parseCookies(cookieString string) map[string]string {
	cookies := make(map[string]string)
	for _, m := range reCookiePair.FindAllStringSubmatch(cookieString, -1) {
		cookies[strings.TrimSpace(m[1])] = strings.TrimSpace(m[2])
	}
	return cookies
}

// HasPacerCookie returns true if the cookie string carries a validated
// PACER session.
func HasPacerCookie(cookieString string) bool {
	cookies := parseCookies(cookieString)
	session := cookies["PacerUser"]
	if session == "" {
		session = cookies["PacerSession"]
	}
	return session != "" && !strings.Contains(session, "unvalidated")
}

// HasFilingCookie returns true if the user has filing rights.
func HasFilingCookie(cookieString string) bool {
	return strings.Contains(parseCookies(cookieString)["isFilingAccount"], "true")
}

// HasPreferenceCookie returns true if the cookie string carries the
// account's PacerPref preferences.
func HasPreferenceCookie(cookieString string) bool {
	_, ok := parseCookies(cookieString)["PacerPref"]
	return ok
}

// ReceiptsDisabled returns true if the account suppresses transaction
// receipts ("receipt=N" in the PacerPref cookie).
func ReceiptsDisabled(cookieString string) bool {
	return strings.Contains(parseCookies(cookieString)["PacerPref"], "receipt=N")
}
