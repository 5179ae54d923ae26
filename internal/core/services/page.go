package services

import (
	"strings"

	"github.com/custodia-labs/recap-cli/internal/core/domain"
	"github.com/custodia-labs/recap-cli/internal/core/ports/driven"
	"github.com/custodia-labs/recap-cli/internal/core/ports/driving"
	"github.com/custodia-labs/recap-cli/internal/pacer"
)

// find runs a selector against the page, treating a missing document as
// an empty page.
func find(page driving.PageContext, selector string) []driven.Element {
	if page.Document == nil {
		return nil
	}
	return page.Document.Find(selector)
}

// first returns the first element matching the selector.
func first(page driving.PageContext, selector string) (driven.Element, bool) {
	els := find(page, selector)
	if len(els) == 0 {
		return nil, false
	}
	return els[0], true
}

// last returns the last element matching the selector.
func last(page driving.PageContext, selector string) (driven.Element, bool) {
	els := find(page, selector)
	if len(els) == 0 {
		return nil, false
	}
	return els[len(els)-1], true
}

// value returns an element's value attribute.
func value(el driven.Element) string {
	v, _ := el.Attr("value")
	return v
}

// lastInputValue returns the value of the page's last input element.
func lastInputValue(page driving.PageContext) string {
	el, ok := last(page, "input")
	if !ok {
		return ""
	}
	return value(el)
}

// inputValue returns the value of the first input with the given name.
func inputValue(page driving.PageContext, name string) string {
	el, ok := first(page, "input[name="+name+"]")
	if !ok {
		return ""
	}
	return strings.TrimSpace(value(el))
}

// anyContains reports whether any element matching the selector has text
// containing one of the needles.
func anyContains(page driving.PageContext, selector string, needles ...string) bool {
	for _, el := range find(page, selector) {
		text := el.Text()
		for _, n := range needles {
			if strings.Contains(text, n) {
				return true
			}
		}
	}
	return false
}

func exists(page driving.PageContext, selector string) bool {
	return len(find(page, selector)) > 0
}

// allCaseIDs reads the case chosen in the docket report form's
// all_case_ids input. Zero means no case is chosen yet.
func allCaseIDs(page driving.PageContext) (domain.CaseID, bool) {
	el, ok := first(page, "#all_case_ids")
	if !ok {
		return "", false
	}
	v := strings.TrimSpace(value(el))
	if !pacer.IsCaseIDShaped(v) {
		return "", false
	}
	return domain.CaseID(v), true
}

// withDocketQueryURL gives the docket report form reached from the
// reports menu, served at a bare DktRpt.pl URL, the "DktRpt.pl?<caseid>"
// URL of the case chosen in it.
func withDocketQueryURL(page driving.PageContext) driving.PageContext {
	if id, ok := allCaseIDs(page); ok {
		page.URL = pacer.FormatDocketQueryURL(page.URL, id)
	}
	return page
}
