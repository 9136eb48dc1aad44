package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/vk/axisdefaults/internal/axis"
	"github.com/vk/axisdefaults/internal/config"
	"github.com/vk/axisdefaults/internal/ctxlog"
	"github.com/vk/axisdefaults/internal/datafile"
	"github.com/vk/axisdefaults/internal/hcl"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader config.Loader
	warner axis.Warner
}

// DefaultLoader reads every supported layout format: HCL, JSON, YAML and
// TOML.
func DefaultLoader() *config.FileLoader {
	return datafile.Register(hcl.Register(config.NewFileLoader()))
}

// NewApp is the constructor for the main application. Resolved layouts are
// written to outW and logs to logW. A nil loader uses DefaultLoader.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	if loader == nil {
		loader = DefaultLoader()
	}
	return &App{
		outW:   outW,
		logger: logger,
		config: appConfig,
		loader: loader,
	}
}

// WithWarner routes resolution warnings to w instead of the log.
func (a *App) WithWarner(w axis.Warner) *App {
	a.warner = w
	return a
}

// Logger returns the application's logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

func (a *App) withLogger(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
