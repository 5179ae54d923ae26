package domain

import "time"

// DocketQuery asks the archive for a case's docket.
// Either CaseID or DocketNumberCore is set.
type DocketQuery struct {
	// Court is the archive's court code.
	Court            string
	CaseID           CaseID
	DocketNumberCore DocketNumberCore
}

// DocumentQuery asks the archive for a set of documents in one court.
type DocumentQuery struct {
	// Court is the archive's court code.
	Court       string
	DocumentIDs []DocumentID
}

// ArchivedDocket is a docket the archive holds a copy of.
type ArchivedDocket struct {
	AbsoluteURL    string     `json:"absolute_url"`
	DateModified   *time.Time `json:"date_modified,omitempty"`
	DateLastFiling string     `json:"date_last_filing,omitempty"`
}

// ArchivedDocument is a document the archive holds a copy of.
type ArchivedDocument struct {
	DocumentID    DocumentID `json:"pacer_doc_id"`
	FilepathLocal string     `json:"filepath_local"`
}

// Availability combines the archive's answers for one page.
type Availability struct {
	Identifiers Identifiers
	Dockets     []ArchivedDocket
	Documents   []ArchivedDocument

	// DistrictDockets holds the archived dockets of the district case an
	// appellate docket originates from.
	DistrictDockets []ArchivedDocket `json:",omitempty"`
}

// HasDocket returns true if the archive holds the page's docket.
func (a Availability) HasDocket() bool {
	return len(a.Dockets) > 0
}
