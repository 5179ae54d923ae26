// Package domain defines the core entities for the RECAP page engine.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - CourtCode: A court identifier plus the static court tables
//   - PageKind: The closed set of court-site pages the engine recognises
//   - Identifiers: The canonical (court, case, document, docket) tuple
//   - TabCacheEntry: Per-tab identifier state shared across page loads
//   - GoDLSDirective: The parsed form of CM/ECF inline document links
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
