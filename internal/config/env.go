package config

import (
	"fmt"
	"strconv"
	"time"
)

const envPrefix = "SPAREKEEPER_"

type lookupFunc func(key string) (string, bool)

// parseEnv overlays cfg with SPAREKEEPER_* variables. Malformed numbers,
// booleans and durations are reported rather than ignored.
func parseEnv(cfg *Config, lookup lookupFunc) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(envPrefix + name); ok && v != "" {
			*dst = v
		}
	}
	str("DB_PATH", &cfg.DatabasePath)
	str("LOG_DIR", &cfg.LogDir)
	str("LOG_LEVEL", &cfg.LogLevel)
	str("LOG_BACKEND", &cfg.LogBackend)
	str("EXPORT_DIR", &cfg.ExportDir)
	str("S3_BUCKET", &cfg.S3Bucket)
	str("S3_REGION", &cfg.S3Region)
	str("S3_ENDPOINT", &cfg.S3Endpoint)
	str("S3_ACCESS_KEY", &cfg.S3AccessKey)
	str("S3_SECRET_KEY", &cfg.S3SecretKey)

	var errs []error
	parse := func(name string, fn func(string) error) {
		v, ok := lookup(envPrefix + name)
		if !ok || v == "" {
			return
		}
		if err := fn(v); err != nil {
			errs = append(errs, fmt.Errorf("config: %s%s=%q: %w", envPrefix, name, v, err))
		}
	}
	duration := func(dst *time.Duration) func(string) error {
		return func(v string) (err error) {
			*dst, err = time.ParseDuration(v)
			return err
		}
	}
	uint32v := func(dst *uint32) func(string) error {
		return func(v string) error {
			n, err := strconv.ParseUint(v, 10, 32)
			*dst = uint32(n)
			return err
		}
	}

	parse("SESSION_TTL", duration(&cfg.SessionTTL))
	parse("SESSION_PURGE_INTERVAL", duration(&cfg.SessionPurgeInterval))
	parse("SEED_DEMO", func(v string) (err error) {
		cfg.SeedDemoData, err = strconv.ParseBool(v)
		return err
	})
	parse("DEFAULT_MIN_QUANTITY", func(v string) (err error) {
		cfg.DefaultMinQuantity, err = strconv.Atoi(v)
		return err
	})
	parse("ARGON2_TIME", uint32v(&cfg.Argon2Time))
	parse("ARGON2_MEMORY_KIB", uint32v(&cfg.Argon2MemoryKiB))
	parse("ARGON2_THREADS", func(v string) error {
		n, err := strconv.ParseUint(v, 10, 8)
		cfg.Argon2Threads = uint8(n)
		return err
	})

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
