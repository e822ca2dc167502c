// Package storage is the durable store adapter of the journal: a single
// SQLite database holding one entries table.
//
// A Store is created once at process start and handed to the journal
// service. The underlying *sql.DB is opened lazily on first use; concurrent
// first calls share one open attempt, and every later call reuses the same
// handle until Close. A failed open is not cached, so the next operation
// tries again.
//
// Every error returned by a Store wraps common.ErrStoreUnavailable.
package storage
