package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	BackendZap  = "zap"
	BackendSlog = "slog"
)

// Options selects the backend, level and destination of the process logger.
// With an empty Dir logs go to stderr; otherwise to a daily-rotated file
// sparekeeper.YYYYMMDD.log with a sparekeeper.log symlink to the current one.
type Options struct {
	Backend string
	Level   string
	Dir     string
	MaxAge  time.Duration
}

func zapLevel(l string) zapcore.Level {
	switch l {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func slogLevel(l string) slog.Level {
	switch l {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func output(opts Options) (io.Writer, func() error, error) {
	if opts.Dir == "" {
		return os.Stderr, func() error { return nil }, nil
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, nil, err
	}
	maxAge := opts.MaxAge
	if maxAge <= 0 {
		maxAge = 14 * 24 * time.Hour
	}
	rl, err := rotatelogs.New(
		filepath.Join(opts.Dir, "sparekeeper.%Y%m%d.log"),
		rotatelogs.WithLinkName(filepath.Join(opts.Dir, "sparekeeper.log")),
		rotatelogs.WithRotationTime(24*time.Hour),
		rotatelogs.WithMaxAge(maxAge),
	)
	if err != nil {
		return nil, nil, err
	}
	return rl, rl.Close, nil
}

// Init builds the process logger. The returned closer flushes and releases
// the log file and must be called on shutdown.
func Init(opts Options) (Logger, func() error, error) {
	w, closeOut, err := output(opts)
	if err != nil {
		return nil, nil, err
	}

	if opts.Backend == BackendSlog {
		return NewTextLogger(w, opts.Level), closeOut, nil
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(w), zapLevel(opts.Level))
	zl := NewZapLogger(zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel)))

	closer := func() error {
		_ = zl.Sync()
		return closeOut()
	}
	return zl, closer, nil
}
