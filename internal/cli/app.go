// Package cli wires configuration, logging and the system theme for the
// command line tool.
package cli

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/bnema/systheme/internal/cli/styles"
	"github.com/bnema/systheme/internal/colorscheme"
	"github.com/bnema/systheme/internal/config"
	"github.com/bnema/systheme/internal/domain/build"
	"github.com/bnema/systheme/internal/logging"
	"github.com/bnema/systheme/pkg/systheme"
)

const logTimeFormat = "15:04:05"

// ErrNoConfig is returned by commands that need a loaded config file.
var ErrNoConfig = errors.New("configuration could not be loaded")

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	system    *systheme.SystemTheme
	systemErr error

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// SystemOpener opens the system theme an App reports on.
type SystemOpener func(context.Context) (*systheme.SystemTheme, error)

// NewApp loads config, sets up logging and opens the system theme with open.
// A missing appearance backend is not fatal: System reports the error to
// the commands that need it.
func NewApp(open SystemOpener) *App {
	mgr, cfg := loadConfig()
	trace := logging.NewStartupTrace(cfg.Logging.Level)
	trace.Mark("config_loaded")

	logger, logCleanup, logErr := newLogger(cfg)
	ctx := logging.WithContext(context.Background(), logger)
	trace.SetLogger(&logger)
	if logErr != nil {
		logger.Warn().Err(logErr).Msg("file logging disabled")
	}
	if mgr == nil {
		logger.Warn().Msg("using default configuration")
	}
	trace.Mark("logger_ready")

	st, err := open(ctx)
	if err != nil {
		logger.Debug().Err(err).Msg("system theme unavailable")
	} else {
		logger.Debug().Str("id", st.ID().String()).Msg("system theme ready")
	}
	trace.Mark("backend_ready")

	theme := styles.DefaultTheme()
	if st != nil {
		theme = styles.NewTheme(st.Theme())
	}
	trace.Mark("theme_derived")
	trace.Finish()

	return &App{
		Config:     cfg,
		Manager:    mgr,
		Theme:      theme,
		system:     st,
		systemErr:  err,
		ctx:        ctx,
		logCleanup: logCleanup,
	}
}

// newLogger builds the CLI logger. Console output goes to stderr so it
// never mixes with command output.
func newLogger(cfg *config.Config) (zerolog.Logger, func(), error) {
	fileCfg := logging.FileConfig{WriteToStderr: true}
	if cfg.Logging.File {
		dir, err := config.GetLogDir()
		if err != nil {
			return logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format), func() {}, err
		}
		fileCfg.Enabled = true
		fileCfg.Rotator = logging.RotatorConfig{
			Dir:        dir,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
			Compress:   true,
		}
	}

	return logging.NewWithFile(
		logging.Config{
			Level:      logging.ParseLevel(cfg.Logging.Level),
			Format:     cfg.Logging.Format,
			TimeFormat: logTimeFormat,
		},
		fileCfg,
	)
}

// System returns the system theme, or why it could not be opened.
func (a *App) System() (*systheme.SystemTheme, error) {
	if a.system == nil {
		return nil, a.systemErr
	}
	return a.system, nil
}

// Resolver builds a color scheme resolver over the user config and every
// detector this machine offers.
func (a *App) Resolver() *colorscheme.Resolver {
	r := colorscheme.NewResolver(colorscheme.NewConfigAdapter(a.Manager))
	if a.system != nil {
		r.RegisterDetector(colorscheme.NewSystemThemeDetector(a.system))
	}
	r.RegisterDetector(colorscheme.NewGsettingsDetector())
	r.RegisterDetector(colorscheme.NewEnvDetector())
	return r
}

// JSONOutput reports whether commands should print JSON.
func (a *App) JSONOutput() bool {
	return a.Config.Output.Format == config.OutputJSON
}

// Close releases all resources.
func (a *App) Close() error {
	var err error
	if a.system != nil {
		err = a.system.Close()
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

// loadConfig loads configuration from standard locations. On failure the
// manager is nil and the defaults are returned.
func loadConfig() (*config.Manager, *config.Config) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, config.DefaultConfig()
	}

	if err := mgr.Load(); err != nil {
		return nil, config.DefaultConfig()
	}

	return mgr, mgr.Get()
}
