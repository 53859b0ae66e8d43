// Package storetest opens throwaway migrated stores for package tests.
package storetest

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/sparekeeper/internal/logging"
	"github.com/dmitrijs2005/sparekeeper/internal/store"
	"github.com/stretchr/testify/require"
)

// Open creates a migrated store in a fresh temp directory and closes it when
// the test ends. A file is used rather than :memory: so every pooled
// connection sees the same database.
func Open(t testing.TB) (*store.Store, *sql.DB) {
	t.Helper()
	s := store.New(filepath.Join(t.TempDir(), "inventory.db"), logging.NewNop())
	db, err := s.Open(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, db
}

// SeedUser inserts a user row directly and returns its id.
func SeedUser(t testing.TB, db *sql.DB, serviceNumber, role string) int64 {
	t.Helper()
	res, err := db.Exec(`INSERT INTO users (service_number, name, password_hash, role) VALUES (?, ?, 'x', ?)`,
		serviceNumber, serviceNumber+" name", role)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

// SeedCategory inserts a category row directly and returns its id.
func SeedCategory(t testing.TB, db *sql.DB, name, typ string) int64 {
	t.Helper()
	res, err := db.Exec(`INSERT INTO categories (name, type) VALUES (?, ?)`, name, typ)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

// SeedPart inserts a part row directly with the given quantity and threshold
// and returns its id. Status is stored as given.
func SeedPart(t testing.TB, db *sql.DB, name, partNumber string, quantity, minQuantity int, status string, categoryID, userID int64) int64 {
	t.Helper()
	res, err := db.Exec(`INSERT INTO parts (name, part_number, box_number, quantity, status, category_id, min_quantity, created_by)
		VALUES (?, ?, 'A1-01', ?, ?, ?, ?, ?)`, name, partNumber, quantity, status, categoryID, minQuantity, userID)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}
