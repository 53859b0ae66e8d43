// Package app wires configuration, storage, services and the terminal front
// end into one runnable process and handles graceful shutdown.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/sparekeeper/internal/api"
	"github.com/dmitrijs2005/sparekeeper/internal/cli"
	"github.com/dmitrijs2005/sparekeeper/internal/config"
	"github.com/dmitrijs2005/sparekeeper/internal/cryptox"
	"github.com/dmitrijs2005/sparekeeper/internal/filex"
	"github.com/dmitrijs2005/sparekeeper/internal/logging"
	"github.com/dmitrijs2005/sparekeeper/internal/repositories/repomanager"
	"github.com/dmitrijs2005/sparekeeper/internal/seed"
	"github.com/dmitrijs2005/sparekeeper/internal/services"
	"github.com/dmitrijs2005/sparekeeper/internal/storage"
	"github.com/dmitrijs2005/sparekeeper/internal/store"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	closeLogger func() error
	store       *store.Store
	auth        *services.AuthService
	bridge      *api.Bridge
	cli         *cli.App
}

// NewApp opens and migrates the database, seeds it when empty and builds the
// service graph. The terminal front end reads from in and writes to out.
func NewApp(ctx context.Context, c *config.Config, in io.Reader, out io.Writer) (*App, error) {
	logger, closeLogger, err := logging.Init(logging.Options{Backend: c.LogBackend, Level: c.LogLevel, Dir: c.LogDir})
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	st := store.New(c.DatabasePath, logger)
	if _, err := st.Open(ctx); err != nil {
		_ = closeLogger()
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewSQLiteRepositoryManager()
	hasher := cryptox.NewArgon2Hasher(cryptox.Params{
		Time:      c.Argon2Time,
		MemoryKiB: c.Argon2MemoryKiB,
		Threads:   c.Argon2Threads,
	})

	if err := prepareData(ctx, st, rm, hasher, c.SeedDemoData, logger); err != nil {
		_ = st.Close()
		_ = closeLogger()
		return nil, err
	}

	exportDir := c.ExportDir
	if exportDir != "" {
		if exportDir, err = filex.EnsureDir(exportDir); err != nil {
			_ = st.Close()
			_ = closeLogger()
			return nil, fmt.Errorf("export dir error: %w", err)
		}
	}

	sink := storage.NewRouter(storage.S3Config{
		Bucket:    c.S3Bucket,
		Region:    c.S3Region,
		Endpoint:  c.S3Endpoint,
		AccessKey: c.S3AccessKey,
		SecretKey: c.S3SecretKey,
	})

	auth := services.NewAuthService(st, rm, hasher, c.SessionTTL, logger)
	bridge := api.New(api.Services{
		Auth:       auth,
		Users:      services.NewUserService(st, rm, auth, logger),
		Parts:      services.NewPartService(st, rm, auth, logger),
		Categories: services.NewCategoryService(st, rm, auth, logger),
		Dashboard:  services.NewDashboardService(st, rm, logger),
		Transfer:   services.NewTransferService(st, rm, auth, sink, exportDir, c.DefaultMinQuantity, logger),
	}, logger)

	return &App{
		config:      c,
		logger:      logger,
		closeLogger: closeLogger,
		store:       st,
		auth:        auth,
		bridge:      bridge,
		cli:         cli.NewApp(bridge, in, out),
	}, nil
}

// prepareData adds missing catalogue categories and seeds a fresh database.
func prepareData(ctx context.Context, st *store.Store, rm repomanager.RepositoryManager, hasher cryptox.PasswordHasher, sampleParts bool, logger logging.Logger) error {
	added, err := seed.EnsureCategories(ctx, rm.Categories(st.DB()), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("category catalogue error: %w", err)
	}
	if len(added) > 0 {
		logger.Info(ctx, "catalogue categories added", "count", len(added))
	}

	if _, err := seed.Run(ctx, seed.Deps{Store: st, Repos: rm, Hasher: hasher, Logger: logger, SampleParts: sampleParts}); err != nil {
		return fmt.Errorf("seed error: %w", err)
	}
	return nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves the REPL until it exits or the process is signalled, then
// stops the session janitor and releases the database and log files.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "db", app.config.DatabasePath)
	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.auth.RunSessionJanitor(ctx, app.config.SessionPurgeInterval)
	}()

	done := make(chan struct{})
	go func() {
		defer close(done)
		app.cli.Run(ctx)
	}()

	select {
	case <-done:
	case <-ctx.Done():
	}
	cancelFunc()
	wg.Wait()

	app.Close(ctx)
}

// Close releases the store and the log output. It is safe to call twice.
func (app *App) Close(ctx context.Context) {
	if err := app.store.Close(); err != nil {
		app.logger.Error(ctx, "failed to close store", "error", err)
	}
	app.logger.Info(ctx, "Stopped")
	if app.closeLogger != nil {
		_ = app.closeLogger()
		app.closeLogger = nil
	}
}
