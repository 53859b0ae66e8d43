// Package config loads runtime configuration for sparekeeper.
//
// # Precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables prefixed SPAREKEEPER_, after a best-effort load
//     of a .env file from the working directory.
//  4. Command-line flags, which override everything else.
//
// # Flags
//
//	-d string     path to the SQLite database file
//	-l string     log level (debug, info, warn, error)
//	-log-dir dir  write rotated log files to dir instead of stderr
//	-e dir        directory for relative export paths
//	-ttl dur      session lifetime, e.g. 168h
//
// # JSON schema
//
// Durations use timex.Duration, so they may be strings like "168h" or
// integer nanoseconds:
//
//	{
//	  "database_path": "data/sparekeeper.db",
//	  "log_backend": "zap",
//	  "session_ttl": "168h",
//	  "s3_bucket": "inventory"
//	}
package config
