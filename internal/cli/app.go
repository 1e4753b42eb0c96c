// Package cli wires the keyroute components for the command-line host.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/keyroute/internal/application/usecase"
	"github.com/bnema/keyroute/internal/cli/styles"
	"github.com/bnema/keyroute/internal/domain/build"
	"github.com/bnema/keyroute/internal/domain/entity"
	"github.com/bnema/keyroute/internal/domain/repository"
	"github.com/bnema/keyroute/internal/infrastructure/catalog"
	"github.com/bnema/keyroute/internal/infrastructure/config"
	"github.com/bnema/keyroute/internal/infrastructure/metrics"
	"github.com/bnema/keyroute/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/keyroute/internal/infrastructure/platform"
	"github.com/bnema/keyroute/internal/logging"
	"github.com/bnema/keyroute/internal/ui/dialog"
	"github.com/bnema/keyroute/internal/ui/focus"
	"github.com/bnema/keyroute/internal/ui/input"
	"github.com/bnema/keyroute/internal/ui/state"
)

// Panels are the values the "panel" context flag cycles through.
var Panels = []string{"sources", "console", "elements"}

// Notifier receives the messages printed by demo actions.
type Notifier func(actionID, message string)

// AppOptions configures NewApp.
type AppOptions struct {
	// ConfigFile overrides the XDG config location.
	ConfigFile string
	// LogToFile sends logs to the log file instead of stderr. The
	// playground needs this because it owns the terminal.
	LogToFile bool
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info
	db        *sql.DB
	Usage     repository.ShortcutUsageRepository

	Platform *platform.Detector
	Catalog  *catalog.Catalog
	Registry *input.ShortcutRegistry
	Bindings *config.BindingsGateway
	Dialogs  *dialog.Stack
	Focus    *focus.Provider
	Contexts *state.ContextStore
	Recorder *metrics.UsageRecorder

	// Use cases
	ListBindingsUC    *usecase.ListBindingsUseCase
	ResolveShortcutUC *usecase.ResolveShortcutUseCase
	ShortcutStatsUC   *usecase.ShortcutStatsUseCase

	notifyMu sync.RWMutex
	notify   Notifier

	// Context with logger
	ctx        context.Context
	logPath    string
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
func NewApp(opts AppOptions) (*App, error) {
	const dataDirPerm = 0o755

	mgr, err := config.NewManager(opts.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger, logPath, logCleanup, err := newLogger(cfg, opts.LogToFile)
	if err != nil {
		return nil, err
	}
	ctx := logging.WithContext(context.Background(), logger)
	if mgr.Created() {
		logger.Info().Str("path", mgr.GetConfigFile()).Msg("created default config")
	}

	app := &App{
		Config:     cfg,
		Manager:    mgr,
		Theme:      styles.NewTheme(cfg),
		ctx:        ctx,
		logPath:    logPath,
		logCleanup: logCleanup,
		notify:     printNotifier(os.Stdout),
	}

	if err = os.MkdirAll(filepath.Dir(cfg.Database.Path), dataDirPerm); err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	app.db, err = sqlite.NewConnection(ctx, cfg.Database.Path)
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("open database: %w", err)
	}
	logger.Debug().Str("db_path", cfg.Database.Path).Msg("database connected")

	if err = app.wire(ctx); err != nil {
		_ = app.Close()
		return nil, err
	}
	return app, nil
}

// wire builds the shortcut stack on top of the loaded config and database.
func (a *App) wire(ctx context.Context) error {
	var err error

	a.Usage = sqlite.NewShortcutUsageRepository(a.db)
	a.Recorder = metrics.NewUsageRecorder(a.Usage, a.Config.Telemetry.Enabled)

	a.Platform, err = platform.NewDetector(ctx, a.Config.Platform)
	if err != nil {
		return fmt.Errorf("detect platform: %w", err)
	}

	a.Dialogs = dialog.NewStack(ctx)
	a.Focus = focus.NewProvider()
	a.Contexts = state.NewContextStore(entity.NewUIContext().With("panel", Panels[0]))

	a.Catalog, err = a.buildCatalog(ctx, a.Config.Actions)
	if err != nil {
		return err
	}

	a.Bindings = config.NewBindingsGateway(a.Manager)
	a.Registry, err = input.NewShortcutRegistry(logging.WithComponent(ctx, "shortcuts"), input.RegistryDeps{
		Catalog:  a.Catalog,
		Platform: a.Platform,
		Bindings: a.Bindings,
		Dialogs:  a.Dialogs,
		Focus:    a.Focus,
		Contexts: a.Contexts,
		Metrics:  a.Recorder,
	})
	if err != nil {
		return fmt.Errorf("create shortcut registry: %w", err)
	}

	a.ListBindingsUC = usecase.NewListBindingsUseCase(a.Registry, a.Catalog)
	a.ResolveShortcutUC = usecase.NewResolveShortcutUseCase(usecase.ResolveShortcutDeps{
		Dispatcher: a.Registry,
		Focus:      a.Focus,
		Dialogs:    a.Dialogs,
		Contexts:   a.Contexts,
	})
	a.ShortcutStatsUC = usecase.NewShortcutStatsUseCase(a.Usage, a.Catalog)
	return nil
}

// SetNotifier replaces where action messages go. A nil notifier drops them.
func (a *App) SetNotifier(n Notifier) {
	a.notifyMu.Lock()
	defer a.notifyMu.Unlock()
	a.notify = n
}

func (a *App) notifyAction(actionID, message string) {
	a.notifyMu.RLock()
	n := a.notify
	a.notifyMu.RUnlock()
	if n != nil {
		n(actionID, message)
	}
}

// FollowConfig appends bindings added to the config file while ctx lives.
func (a *App) FollowConfig(ctx context.Context) error {
	return a.Bindings.FollowChanges(logging.WithComponent(ctx, "config"), a.Registry)
}

// Close releases all resources.
func (a *App) Close() error {
	var err error
	if a.db != nil {
		err = sqlite.Close(a.db)
		a.db = nil
	}
	if a.logCleanup != nil {
		a.logCleanup()
		a.logCleanup = nil
	}
	return err
}

// SchemaVersion returns the migration version of the usage database.
func (a *App) SchemaVersion(ctx context.Context) (int64, error) {
	if a.db == nil {
		return 0, fmt.Errorf("database is closed")
	}
	return sqlite.GetMigrationStatus(ctx, a.db)
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// LogPath returns the log file path, or "" when logs go to stderr.
func (a *App) LogPath() string {
	return a.logPath
}

func newLogger(cfg *config.Config, toFile bool) (zerolog.Logger, string, func(), error) {
	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logCfg := logging.ApplyEnv(logging.Config{
		Level:      level,
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	})

	var path string
	cleanup := func() {}
	if toFile || cfg.Logging.EnableFileLog {
		dir, err := logDir(cfg)
		if err != nil {
			return zerolog.Nop(), "", nil, err
		}
		file, err := logging.OpenLogFile(dir, cfg.Logging.MaxSizeMB)
		if err != nil {
			return zerolog.Nop(), "", nil, err
		}
		logCfg.Output = file
		path = logging.LogFilePath(dir)
		cleanup = func() { _ = file.Close() }
	}

	logger := logging.New(logCfg).With().Str("run_id", logging.GenerateRunID()).Logger()
	return logger, path, cleanup, nil
}

func logDir(cfg *config.Config) (string, error) {
	if cfg.Logging.LogDir != "" {
		return cfg.Logging.LogDir, nil
	}
	dir, err := config.GetLogDir()
	if err != nil {
		return "", fmt.Errorf("get log dir: %w", err)
	}
	return dir, nil
}

func printNotifier(w io.Writer) Notifier {
	return func(actionID, message string) {
		fmt.Fprintf(w, "  %s: %s\n", actionID, message)
	}
}
