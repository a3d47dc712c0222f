package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/0xalexb/keypath/logging"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var errAppNotInitialized = errors.New("app not initialized")

// App runs a key path service: an optional document loaded by WithDocument,
// the listeners that serve lookups over it and any extra Fx modules.
type App struct {
	app *fx.App
}

// NewApp builds the Fx graph from opts. Graph errors, such as an unreadable
// document, are reported by Err and again by Start.
func NewApp(opts ...Option) *App {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	return &App{
		app: configure(&options),
	}
}

func configure(options *Options) *fx.App {
	loggerConfig := logging.LoggerConfig{Level: options.LogLevel, Format: options.LogFormat}
	logger := logging.NewLogger(loggerConfig, logOutput(options))
	slog.SetDefault(logger)

	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Supply(loggerConfig),
		fx.Supply(logger),
		fx.Invoke(func(lifecycle fx.Lifecycle) {
			lifecycle.Append(fx.StartHook(func() {
				logger.Info("keypath service started", serviceAttrs(options)...)
			}))
		}),
		fx.Options(options.Modules...),
	)
}

func logOutput(options *Options) io.Writer {
	if options.LogOutput != nil {
		return options.LogOutput
	}

	return os.Stderr
}

func serviceAttrs(options *Options) []any {
	attrs := BuildInfo()
	if options.Document != "" {
		attrs = append(attrs, "document", options.Document)
	}

	return attrs
}

// Err returns the error, if any, that occurred while building the dependency graph.
func (app *App) Err() error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	return app.app.Err() //nolint:wrapcheck // fx errors carry their own context
}

// Start loads the document and opens every listener, bounded by Fx's start timeout.
func (app *App) Start() error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	ctx, cancel := context.WithTimeout(context.Background(), app.app.StartTimeout())
	defer cancel()

	err := app.app.Start(ctx)
	if err != nil {
		return fmt.Errorf("failed to start app: %w", err)
	}

	return nil
}

// Run starts the service and blocks until an OS signal or a listener failure, then shuts down gracefully.
func (app *App) Run() {
	if app == nil || app.app == nil {
		slog.Error("attempted to run an uninitialized app")

		return
	}

	app.app.Run()
}

// Stop closes the listeners, bounded by Fx's stop timeout.
func (app *App) Stop() error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	ctx, cancel := context.WithTimeout(context.Background(), app.app.StopTimeout())
	defer cancel()

	err := app.app.Stop(ctx)
	if err != nil {
		return fmt.Errorf("failed to stop app: %w", err)
	}

	return nil
}
