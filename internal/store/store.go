package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"sync"

	"github.com/dmitrijs2005/sparekeeper/internal/logging"
	"github.com/dmitrijs2005/sparekeeper/internal/store/migrations"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

// gooseMu serializes use of goose's package-level configuration.
var gooseMu sync.Mutex

type Store struct {
	path   string
	logger logging.Logger

	mu sync.Mutex
	db *sql.DB
	x  *sqlx.DB
}

func New(path string, logger logging.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// DSN builds the modernc.org/sqlite connection string for path with the
// pragmas every connection in the pool needs.
func DSN(path string) string {
	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", "journal_mode(WAL)")
	q.Add("_pragma", "busy_timeout(5000)")
	return "file:" + path + "?" + q.Encode()
}

// Open connects and migrates the database once; later calls return the same
// handle.
func (s *Store) Open(ctx context.Context) (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db, nil
	}

	db, err := sql.Open(driverName, DSN(s.path))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}

	if err := RunMigrations(ctx, db, s.logger); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate %s: %w", s.path, err)
	}

	s.db = db
	s.x = sqlx.NewDb(db, driverName)
	s.logger.Info(ctx, "store opened", "path", s.path)
	return db, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	s.x = nil
	return err
}

// DB returns the open handle, or nil before Open.
func (s *Store) DB() *sql.DB {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db
}

// X returns an sqlx view over the open handle for struct-scanning queries.
func (s *Store) X() *sqlx.DB {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.x
}

// WithTx runs fn inside a transaction on the open handle.
func (s *Store) WithTx(ctx context.Context, fn TxFunc) error {
	db := s.DB()
	if db == nil {
		return fmt.Errorf("store %s is not open", s.path)
	}
	return WithTx(ctx, db, nil, fn)
}

// RunMigrations applies the embedded migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB, logger logging.Logger) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(&gooseLogger{ctx: ctx, l: logging.Named(logger, "migrations")})
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// gooseLogger routes goose output through the application logger.
type gooseLogger struct {
	ctx context.Context
	l   logging.Logger
}

func (g *gooseLogger) Printf(format string, v ...any) {
	g.l.Debug(g.ctx, fmt.Sprintf(format, v...))
}

func (g *gooseLogger) Fatalf(format string, v ...any) {
	g.l.Error(g.ctx, fmt.Sprintf(format, v...))
}
