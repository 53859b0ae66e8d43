package app

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/sparekeeper/internal/config"
	"github.com/dmitrijs2005/sparekeeper/internal/logging"
	"github.com/dmitrijs2005/sparekeeper/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	var c config.Config
	c.LoadDefaults()
	dir := t.TempDir()
	c.DatabasePath = filepath.Join(dir, "inventory.db")
	c.LogDir = filepath.Join(dir, "logs")
	c.LogBackend = "slog"
	c.ExportDir = filepath.Join(dir, "exports")
	c.SessionPurgeInterval = 0
	c.Argon2MemoryKiB = 64
	c.Argon2Threads = 1
	return &c
}

func count(t *testing.T, path, table string) int {
	t.Helper()
	st := store.New(path, logging.NewNop())
	db, err := st.Open(context.Background())
	require.NoError(t, err)
	defer st.Close()

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
	return n
}

func TestNewApp_SeedsOnceAndRuns(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	var out bytes.Buffer
	a, err := NewApp(ctx, cfg, strings.NewReader("help\nexit\n"), &out)
	require.NoError(t, err)
	a.Run(ctx)

	assert.Contains(t, out.String(), "Sparekeeper inventory")
	assert.Equal(t, 3, count(t, cfg.DatabasePath, "users"))
	assert.Equal(t, 33, count(t, cfg.DatabasePath, "categories"))
	assert.Equal(t, 18, count(t, cfg.DatabasePath, "parts"))
	assert.FileExists(t, filepath.Join(cfg.LogDir, "sparekeeper.log"))
	assert.DirExists(t, cfg.ExportDir)

	b, err := NewApp(ctx, cfg, strings.NewReader(""), &out)
	require.NoError(t, err)
	b.Run(ctx)

	assert.Equal(t, 3, count(t, cfg.DatabasePath, "users"))
	assert.Equal(t, 33, count(t, cfg.DatabasePath, "categories"))
}

func TestNewApp_WithoutSampleParts(t *testing.T) {
	cfg := testConfig(t)
	cfg.SeedDemoData = false
	ctx := context.Background()

	a, err := NewApp(ctx, cfg, strings.NewReader(""), &bytes.Buffer{})
	require.NoError(t, err)
	a.Close(ctx)
	a.Close(ctx)

	assert.Equal(t, 3, count(t, cfg.DatabasePath, "users"))
	assert.Equal(t, 0, count(t, cfg.DatabasePath, "parts"))
}

func TestNewApp_BadDatabasePath(t *testing.T) {
	cfg := testConfig(t)
	cfg.DatabasePath = filepath.Join(t.TempDir(), "missing", "dir", "inventory.db")

	_, err := NewApp(context.Background(), cfg, strings.NewReader(""), &bytes.Buffer{})
	assert.ErrorContains(t, err, "db init error")
}
