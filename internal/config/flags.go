package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/sparekeeper/internal/flagx"
)

var knownFlags = []string{"-d", "-l", "-log-dir", "-e", "-ttl"}

// parseFlags applies the flags this package owns and ignores the rest.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, knownFlags)

	fs := flag.NewFlagSet("sparekeeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the SQLite database file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogDir, "log-dir", cfg.LogDir, "directory for rotated log files")
	fs.StringVar(&cfg.ExportDir, "e", cfg.ExportDir, "directory for relative export paths")
	fs.DurationVar(&cfg.SessionTTL, "ttl", cfg.SessionTTL, "session lifetime")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
