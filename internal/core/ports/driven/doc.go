// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Document / Element: Read-only view of a page's DOM
//   - KeyValueStore: Persistent string-keyed blob storage
//   - TabCache: Per-tab identifier cache used by the resolver
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - PageObserver: Change notifications for pages that render late. Without it,
//     only the initial snapshot is classified.
//   - ArchiveClient: Availability lookups. Without it, availability is reported
//     as unknown.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
