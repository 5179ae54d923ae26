// Package memory provides in-memory implementations of the storage ports.
// They back the --in-memory CLI mode and serve as fakes in tests.
package memory
