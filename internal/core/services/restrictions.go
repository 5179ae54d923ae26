package services

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/recap-cli/internal/core/ports/driving"
)

var reRestrictedNotice = regexp.MustCompile(`(?i)document is restricted|SEALED|do not allow it to be seen`)

// IsRestricted reports whether a document page warns that the document is
// sealed or limited to case participants. Such documents must not be
// uploaded.
func IsRestricted(page driving.PageContext) bool {
	for _, td := range find(page, "table td:first-child") {
		if strings.Contains(td.Text(), "Warning!") {
			return true
		}
	}
	for _, b := range find(page, "b") {
		if reRestrictedNotice.MatchString(b.Text()) {
			return true
		}
	}
	return false
}
