// Package users persists operator accounts.
//
// Repository is the interface used by services; SQLiteRepository implements
// it over a store.DBTX so it works on *sql.DB or inside a transaction.
// Lookups that find nothing return (nil, nil). Service numbers are stored as
// given; callers uppercase them before writing or querying.
package users
