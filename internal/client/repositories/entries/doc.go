// Package entries provides the SQLite table that holds journal entries.
//
// # Data Model
//
// One row per top-level entry:
//
//	id       INTEGER PRIMARY KEY  -- entry id (creation time in Unix ms)
//	position INTEGER NOT NULL     -- index of the entry in the journal log
//	record   BLOB NOT NULL        -- msgpack-encoded models.Entry, replies included
//
// Replies are stored inside their entry's record; there is no replies table.
// The position column lets GetAll return entries in exactly the order they
// were written, independent of id order.
//
// # Transactions
//
// The repository works on a dbx.DBTX, so callers decide the transaction
// scope. storage.Store runs DeleteAll followed by one Insert per entry inside
// a single transaction to get all-or-nothing replace semantics.
//
// Typical Usage
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    repo := entries.NewSQLiteRepository(tx)
//	    if err := repo.DeleteAll(ctx); err != nil {
//	        return err
//	    }
//	    for i, e := range log {
//	        if err := repo.Insert(ctx, i, e); err != nil {
//	            return err
//	        }
//	    }
//	    return nil
//	})
package entries
