// Package courtlistener implements driven.ArchiveClient against the
// CourtListener REST API, the public archive of uploaded court records.
//
// Requests are throttled proactively with a token bucket and back off when
// the API answers 429 with a Retry-After header.
package courtlistener
