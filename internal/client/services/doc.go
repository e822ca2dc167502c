// Package services holds the journal's synchronization controller.
//
// JournalService owns the lifecycle of the journal:
//
//	Uninitialized ──Initialize──▶ Loading ──▶ Ready ──Close──▶ Closed
//
// Initialize opens the store and loads every entry. An empty store is
// seeded with the welcome content, which is persisted before Initialize
// returns; a non-empty store is never seeded.
//
// Once Ready, every accepted mutation swaps in a new immutable snapshot of
// the log, notifies subscribers and hands the full log to a single
// persistence worker, which overwrites the store with it (ReplaceAll). The
// worker has at most one store call in flight and keeps only the latest
// pending operation: because each ReplaceAll is a full overwrite, skipping
// an intermediate snapshot never changes the final result, and the state of
// the last-issued mutation is always the one that lands.
//
// Rejected mutations (empty content, unknown id, not ready, closed) leave
// the log untouched, are never persisted, are logged at warn level and are
// delivered to subscribers with Change.Err set.
//
// If the store cannot be opened, read or seeded, Initialize returns an
// error wrapping common.ErrStoreUnavailable and the service enters degraded
// mode: it is Ready with the seed content in memory, but nothing is written
// back, so data that could not be read is never overwritten.
package services
