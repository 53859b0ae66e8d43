// Package logging defines the structured-logging interface used across the
// inventory core, with slog and zap implementations selected by configuration.
package logging

import "context"

// Logger is a context-aware structured logger. Args are alternating keys and
// values:
//
//	log.Info(ctx, "part created", "part_id", id, "user_id", userID)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that adds args to every entry.
	With(args ...any) Logger
}

// Named tags every entry of the returned logger with component=name.
func Named(l Logger, name string) Logger {
	return l.With("component", name)
}
