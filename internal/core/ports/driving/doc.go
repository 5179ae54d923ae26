// Package driving defines interfaces that external actors (UI, CLI) use
// to interact with core services. These are the "driving" ports in hexagonal
// architecture terminology - they drive the application.
//
// PageContext is the unit of input: one page load in one tab.
//
// Implementations of these interfaces live in internal/core/services.
package driving
