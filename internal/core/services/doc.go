// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The Classifier decides which court page is displayed, the Resolver
// reconciles the page's identifiers with the tab's cache, and the
// TabCacheService owns that cache's read-modify-write discipline.
//
// Services are pure Go with no CGO or external dependencies.
package services
