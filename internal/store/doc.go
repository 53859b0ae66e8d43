// Package store owns the embedded SQLite database: connection lifecycle,
// schema migrations, transactions, constraint-error classification and the
// timestamp format used by every table.
//
// # Lifecycle
//
// New does not touch the disk. Open connects, applies pragmas (foreign keys,
// WAL journal, busy timeout) through the DSN, and runs the embedded goose
// migrations; repeated calls return the same *sql.DB. Close is safe to call
// when the store was never opened or is already closed.
//
// # Transactions
//
// Repositories accept a DBTX, satisfied by both *sql.DB and *sql.Tx, so the
// same repository code runs inside or outside Store.WithTx.
//
// # Timestamps
//
// All timestamps are TEXT in the "2006-01-02 15:04:05" UTC layout, the shape
// SQLite's datetime('now') produces, so string comparison orders them.
package store
