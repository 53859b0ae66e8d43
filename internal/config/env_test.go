package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapLookup(m map[string]string) lookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestParseEnv_OverridesEverything(t *testing.T) {
	var c Config
	c.LoadDefaults()

	err := parseEnv(&c, mapLookup(map[string]string{
		"SPAREKEEPER_DB_PATH":                "/var/lib/sk.db",
		"SPAREKEEPER_LOG_DIR":                "/var/log/sk",
		"SPAREKEEPER_LOG_BACKEND":            "slog",
		"SPAREKEEPER_SESSION_TTL":            "12h",
		"SPAREKEEPER_SESSION_PURGE_INTERVAL": "5m",
		"SPAREKEEPER_SEED_DEMO":              "false",
		"SPAREKEEPER_DEFAULT_MIN_QUANTITY":   "0",
		"SPAREKEEPER_S3_BUCKET":              "inventory",
		"SPAREKEEPER_S3_ENDPOINT":            "http://localhost:9000",
		"SPAREKEEPER_ARGON2_TIME":            "3",
		"SPAREKEEPER_ARGON2_MEMORY_KIB":      "19456",
		"SPAREKEEPER_ARGON2_THREADS":         "2",
	}))
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/sk.db", c.DatabasePath)
	assert.Equal(t, "/var/log/sk", c.LogDir)
	assert.Equal(t, "slog", c.LogBackend)
	assert.Equal(t, 12*time.Hour, c.SessionTTL)
	assert.Equal(t, 5*time.Minute, c.SessionPurgeInterval)
	assert.False(t, c.SeedDemoData)
	assert.Equal(t, 0, c.DefaultMinQuantity)
	assert.Equal(t, "inventory", c.S3Bucket)
	assert.Equal(t, "http://localhost:9000", c.S3Endpoint)
	assert.Equal(t, uint32(3), c.Argon2Time)
	assert.Equal(t, uint32(19456), c.Argon2MemoryKiB)
	assert.Equal(t, uint8(2), c.Argon2Threads)
}

func TestParseEnv_EmptyValuesIgnored(t *testing.T) {
	var c Config
	c.LoadDefaults()

	require.NoError(t, parseEnv(&c, mapLookup(map[string]string{
		"SPAREKEEPER_DB_PATH":     "",
		"SPAREKEEPER_SESSION_TTL": "",
	})))
	assert.Equal(t, "sparekeeper.db", c.DatabasePath)
	assert.Equal(t, 7*24*time.Hour, c.SessionTTL)
}

func TestParseEnv_Malformed(t *testing.T) {
	tests := map[string]string{
		"SPAREKEEPER_SESSION_TTL":          "a week",
		"SPAREKEEPER_SEED_DEMO":            "maybe",
		"SPAREKEEPER_DEFAULT_MIN_QUANTITY": "five",
		"SPAREKEEPER_ARGON2_THREADS":       "300",
	}
	for key, val := range tests {
		t.Run(key, func(t *testing.T) {
			var c Config
			c.LoadDefaults()
			err := parseEnv(&c, mapLookup(map[string]string{key: val}))
			assert.ErrorContains(t, err, key)
		})
	}
}
