// Package pacer provides pure parsers for court website URLs, inline link
// handlers, receipt titles and docket numbers.
//
// Every function is total: malformed input yields a false "ok" result and
// never panics. Results are returned comma-ok style, so "no match" is never
// confused with an empty identifier.
//
// The court host check in CourtFromURL doubles as the security boundary for
// privileged actions; see services.OriginGuard.
package pacer
