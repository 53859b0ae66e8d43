package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/sparekeeper/internal/flagx"
	"github.com/dmitrijs2005/sparekeeper/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Absent fields keep
// their current values.
type JsonConfig struct {
	DatabasePath         string         `json:"database_path"`
	LogDir               string         `json:"log_dir"`
	LogLevel             string         `json:"log_level"`
	LogBackend           string         `json:"log_backend"`
	SessionTTL           timex.Duration `json:"session_ttl"`
	SessionPurgeInterval timex.Duration `json:"session_purge_interval"`
	SeedDemoData         *bool          `json:"seed_demo_data"`
	DefaultMinQuantity   *int           `json:"default_min_quantity"`
	ExportDir            string         `json:"export_dir"`
	S3Bucket             string         `json:"s3_bucket"`
	S3Region             string         `json:"s3_region"`
	S3Endpoint           string         `json:"s3_endpoint"`
	S3AccessKey          string         `json:"s3_access_key"`
	S3SecretKey          string         `json:"s3_secret_key"`
	Argon2Time           uint32         `json:"argon2_time"`
	Argon2MemoryKiB      uint32         `json:"argon2_memory_kib"`
	Argon2Threads        uint8          `json:"argon2_threads"`
}

func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}
	return loadJsonFile(cfg, path)
}

func loadJsonFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	jc.apply(cfg)
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v timex.Duration) {
	if v.Duration != 0 {
		*dst = v.Duration
	}
}

func (jc *JsonConfig) apply(cfg *Config) {
	setString(&cfg.DatabasePath, jc.DatabasePath)
	setString(&cfg.LogDir, jc.LogDir)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogBackend, jc.LogBackend)
	setDuration(&cfg.SessionTTL, jc.SessionTTL)
	setDuration(&cfg.SessionPurgeInterval, jc.SessionPurgeInterval)
	if jc.SeedDemoData != nil {
		cfg.SeedDemoData = *jc.SeedDemoData
	}
	if jc.DefaultMinQuantity != nil {
		cfg.DefaultMinQuantity = *jc.DefaultMinQuantity
	}
	setString(&cfg.ExportDir, jc.ExportDir)
	setString(&cfg.S3Bucket, jc.S3Bucket)
	setString(&cfg.S3Region, jc.S3Region)
	setString(&cfg.S3Endpoint, jc.S3Endpoint)
	setString(&cfg.S3AccessKey, jc.S3AccessKey)
	setString(&cfg.S3SecretKey, jc.S3SecretKey)
	if jc.Argon2Time != 0 {
		cfg.Argon2Time = jc.Argon2Time
	}
	if jc.Argon2MemoryKiB != 0 {
		cfg.Argon2MemoryKiB = jc.Argon2MemoryKiB
	}
	if jc.Argon2Threads != 0 {
		cfg.Argon2Threads = jc.Argon2Threads
	}
}
