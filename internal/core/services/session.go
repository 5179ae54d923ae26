package services

import (
	"github.com/custodia-labs/recap-cli/internal/core/ports/driving"
	"github.com/custodia-labs/recap-cli/internal/pacer"
)

// SessionFromCookie reads the login state from a document cookie string.
// An empty string means the caller did not send one.
func SessionFromCookie(cookie string) driving.Session {
	if cookie == "" {
		return driving.Session{}
	}
	return driving.Session{
		Known:            true,
		LoggedIn:         pacer.HasPacerCookie(cookie),
		FilingAccount:    pacer.HasFilingCookie(cookie),
		ReceiptsDisabled: pacer.ReceiptsDisabled(cookie),
	}
}

// loggedOut reports whether the page was loaded without a PACER session.
// Logged-out users are shown a login form in place of the requested page,
// so nothing on it describes their tab's case.
func loggedOut(page driving.PageContext) bool {
	s := SessionFromCookie(page.Cookie)
	return s.Known && !s.LoggedIn
}

// Page notes.
const (
	NoteLoginPage        = "login page"
	NoteAccountPage      = "account management page"
	NoteBlankQueryReport = "blank query report form"
	NoteLoggedOut        = "not logged in to PACER"
)

// pageNotes describes pages that carry no identifiers of their own.
func pageNotes(page driving.PageContext) []string {
	var notes []string
	switch {
	case pacer.IsLoginPage(page.URL):
		notes = append(notes, NoteLoginPage)
	case pacer.IsManageAccountPage(page.URL):
		notes = append(notes, NoteAccountPage)
	case pacer.IsBlankQueryReportURL(page.URL):
		notes = append(notes, NoteBlankQueryReport)
	}
	if loggedOut(page) {
		notes = append(notes, NoteLoggedOut)
	}
	return notes
}
