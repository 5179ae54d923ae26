package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Resolution Errors.

	// ErrNoMatch indicates a parser or classifier found no applicable pattern.
	// Callers proceed with "do nothing for this page".
	ErrNoMatch = errors.New("no match")

	// ErrMissingIdentifier indicates resolution exhausted every source
	// without producing the requested identifier.
	ErrMissingIdentifier = errors.New("identifier unavailable")

	// ErrUntrustedOrigin indicates an event origin is not a court website.
	// This is the only resolution failure surfaced to callers.
	ErrUntrustedOrigin = errors.New("untrusted origin")

	// ErrCacheUnavailable indicates the persistent store failed or timed out.
	// Treated as a miss for the current attempt.
	ErrCacheUnavailable = errors.New("tab cache unavailable")

	// ErrStaleNavigation indicates the page navigated away before a
	// resolution finished. Results of a stale attempt are discarded.
	ErrStaleNavigation = errors.New("stale navigation")

	// Archive Errors.

	// ErrArchiveUnavailable indicates the archive client is not configured.
	ErrArchiveUnavailable = errors.New("archive service unavailable")

	// ErrRateLimited indicates the archive API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
