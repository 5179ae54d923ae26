// Package observer provides driven.PageObserver implementations.
//
//   - MemoryObserver: snapshots pushed by the caller, used by tests and
//     embedders that already own a DOM
//   - FileObserver: re-parses a saved HTML file whenever it changes on disk
package observer
