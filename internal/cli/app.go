// Package cli provides the command-line side of gridterm.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/gridterm/internal/application/usecase"
	"github.com/bnema/gridterm/internal/cli/styles"
	"github.com/bnema/gridterm/internal/domain/build"
	"github.com/bnema/gridterm/internal/infrastructure/config"
	"github.com/bnema/gridterm/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/gridterm/internal/logging"
	"github.com/google/uuid"
)

// LogLevelEnv overrides the CLI log level.
const LogLevelEnv = "GRIDTERM_LOG_LEVEL"

// App holds CLI dependencies.
type App struct {
	Config     *config.Config
	ConfigDir  string
	ConfigFile string
	Theme      *styles.Theme
	BuildInfo  build.Info

	// Layouts reads and deletes saved layouts. It never spawns sessions.
	Layouts *usecase.SnapshotLayoutUseCase

	db  *sqlite.LazyDB
	ctx context.Context
}

// NewApp loads the configuration from configDir (XDG when empty) and wires
// the layout store. The database opens on first use.
func NewApp(configDir string) (*App, error) {
	mgr, err := newManager(configDir)
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	// The CLI stays quiet unless asked otherwise.
	logLevel := "warn"
	if envLevel := os.Getenv(LogLevelEnv); envLevel != "" {
		logLevel = envLevel
	}
	logger := logging.NewFromConfigValues(logLevel, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)

	db := sqlite.NewLazyDB(cfg.Database.Path)
	layouts := usecase.NewSnapshotLayoutUseCase(sqlite.NewLazyLayoutRepository(db), nil, mgr, uuid.NewString)

	logger.Debug().Str("db_path", db.Path()).Str("config", mgr.GetConfigFile()).Msg("cli initialized")

	return &App{
		Config:     cfg,
		ConfigDir:  filepath.Dir(mgr.GetConfigFile()),
		ConfigFile: mgr.GetConfigFile(),
		Theme:      styles.NewTheme(cfg),
		Layouts:    layouts,
		db:         db,
		ctx:        ctx,
	}, nil
}

func newManager(configDir string) (*config.Manager, error) {
	if configDir != "" {
		return config.NewManagerAt(configDir)
	}
	return config.NewManager()
}

// Close releases all resources.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
