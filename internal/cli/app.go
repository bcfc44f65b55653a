// Package cli wires configuration, logging and storage for the workbench
// commands and runs the terminal workspace.
package cli

import (
	"context"
	"fmt"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/domain/build"
	"github.com/bnema/workbench/internal/domain/repository"
	"github.com/bnema/workbench/internal/infrastructure/config"
	"github.com/bnema/workbench/internal/infrastructure/persistence/file"
	"github.com/bnema/workbench/internal/infrastructure/persistence/memory"
	"github.com/bnema/workbench/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/workbench/internal/logging"
	"github.com/bnema/workbench/internal/ui/styles"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info
	Store     repository.KeyValueStore

	db port.DatabaseProvider

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp loads the configuration from the XDG config dir and prepares the
// configured layout store.
func NewApp() (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, err
	}
	return NewAppWithManager(mgr)
}

// NewAppWithManager is NewApp with an explicit configuration manager.
func NewAppWithManager(mgr *config.Manager) (*App, error) {
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	// The terminal belongs to the UI, so nothing is written to stderr.
	logger, logCleanup, err := logging.NewWithFile(
		logging.Config{
			Level:      logging.ParseLevel(cfg.Logging.Level),
			Format:     cfg.Logging.Format,
			TimeFormat: "15:04:05",
		},
		logging.FileConfig{
			Enabled: cfg.Logging.EnableFileLog,
			LogDir:  cfg.Logging.LogDir,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	ctx := logging.WithContext(context.Background(), logger)

	store, db := openStore(cfg.Storage)

	logger.Debug().
		Str("backend", string(cfg.Storage.Backend)).
		Str("path", cfg.Storage.Path).
		Msg("layout store ready")

	return &App{
		Config:     cfg,
		Manager:    mgr,
		Theme:      styles.NewTheme(cfg),
		Store:      store,
		db:         db,
		ctx:        ctx,
		logCleanup: logCleanup,
	}, nil
}

// openStore selects the layout backend. The sqlite file is opened on first
// use so commands that never read the layout leave it alone.
func openStore(cfg config.StorageConfig) (repository.KeyValueStore, port.DatabaseProvider) {
	switch cfg.Backend {
	case config.StorageMemory:
		return memory.NewKVStore(), nil
	case config.StorageFile:
		return file.NewKVStore(cfg.Path), nil
	default:
		db := sqlite.NewLazyDB(cfg.Path)
		return sqlite.NewLazyKVStore(db), db
	}
}

// Close releases all resources.
func (a *App) Close() error {
	var err error
	if a.db != nil {
		err = a.db.Close()
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Paths lists the files the application reads and writes.
func (a *App) Paths() []Path {
	logDir := ""
	if a.Config.Logging.EnableFileLog {
		logDir = a.Config.Logging.LogDir
	}
	return []Path{
		{Label: "config", Value: a.Manager.GetConfigFile()},
		{Label: "storage", Value: a.Config.Storage.Path},
		{Label: "logs", Value: logDir},
	}
}
