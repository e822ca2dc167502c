// Package journal is the entry log model: pure, side-effect-free
// transformations over an immutable snapshot of the journal.
//
// Every operation takes a Log and returns a new Log; the input is never
// modified, so a snapshot handed to a reader stays valid while later
// mutations produce new versions. Entries are kept in insertion order
// (oldest first) and replies in insertion order under their entry; nothing
// in this package re-sorts them.
//
// Rejected operations return the input log unchanged together with one of
// the sentinel errors from internal/common:
//
//   - common.ErrEmptyContent: neither text nor image, or a blank edit
//   - common.ErrNotFound: the addressed entry or reply does not exist
//
// The package never touches storage; persistence is the job of
// services.JournalService.
package journal
