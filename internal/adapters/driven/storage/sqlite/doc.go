// Package sqlite provides a SQLite-based implementation of driven.KeyValueStore.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. Tab cache entries and user options are
// stored as JSON values in a single key-value table, so a cache survives restarts of
// the CLI. Merges are serialised per tab by the tab cache within one process;
// separate processes sharing a database only get SQLite's statement atomicity.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each applied version is recorded in schema_migrations.
//
// # Data Location
//
// By default, the database is stored at ~/.recap/data/recap.db
//
// # Thread Safety
//
// All operations are safe for concurrent use. The store runs SQLite in WAL mode
// with a busy timeout.
package sqlite
