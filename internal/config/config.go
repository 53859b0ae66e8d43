package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for sparekeeper.
type Config struct {
	DatabasePath string

	LogDir     string
	LogLevel   string
	LogBackend string

	SessionTTL           time.Duration
	SessionPurgeInterval time.Duration

	SeedDemoData       bool
	DefaultMinQuantity int
	ExportDir          string

	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string

	Argon2Time      uint32
	Argon2MemoryKiB uint32
	Argon2Threads   uint8
}

// LoadDefaults populates c with defaults suitable for a single workstation.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "sparekeeper.db"
	c.LogLevel = "info"
	c.LogBackend = "zap"
	c.SessionTTL = 7 * 24 * time.Hour
	c.SessionPurgeInterval = time.Hour
	c.SeedDemoData = true
	c.DefaultMinQuantity = 5
	c.S3Region = "us-east-1"
	c.Argon2Time = 1
	c.Argon2MemoryKiB = 64 * 1024
	c.Argon2Threads = 4
}

// LoadConfig builds a Config from defaults, the JSON file, the environment
// and flags, in that order.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	args := os.Args[1:]
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}

	_ = godotenv.Load()
	if err := parseEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}

	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the application cannot start with.
func (c *Config) Validate() error {
	switch {
	case c.DatabasePath == "":
		return fmt.Errorf("config: database path is empty")
	case c.SessionTTL <= 0:
		return fmt.Errorf("config: session ttl must be positive, got %s", c.SessionTTL)
	case c.DefaultMinQuantity < 0:
		return fmt.Errorf("config: default min quantity must not be negative, got %d", c.DefaultMinQuantity)
	case c.LogBackend != "zap" && c.LogBackend != "slog":
		return fmt.Errorf("config: unknown log backend %q", c.LogBackend)
	}
	return nil
}
