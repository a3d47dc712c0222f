package app

import (
	"io"

	"github.com/0xalexb/keypath/config"
	filefetcher "github.com/0xalexb/keypath/config/fetcher/file"
	jsonparser "github.com/0xalexb/keypath/config/parser/json"
	yamlparser "github.com/0xalexb/keypath/config/parser/yaml"
	"github.com/0xalexb/keypath/listener"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	LogFormat string
	LogOutput io.Writer

	// Document is the path given to WithDocument, logged at startup.
	Document string
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithDocument loads the file at fpath once at startup and supplies it to DI as
// *config.Document, together with the config.Parser and config.DataFetcher used to read it.
// Files ending in .json use the JSON parser; everything else is read as YAML.
func WithDocument(fpath string) Option {
	return func(opts *Options) {
		opts.Document = fpath
		opts.Modules = append(opts.Modules, fx.Module("document",
			fx.Provide(
				fx.Annotate(
					filefetcher.NewFetcher(fpath),
					fx.As(new(config.DataFetcher)),
					fx.As(fx.Self()),
				),
			),
			fx.Provide(parserFor),
			fx.Provide(config.DocumentProvider()),
		))
	}
}

//nolint:ireturn // the parser is selected at runtime
func parserFor(fetcher *filefetcher.Fetcher) config.Parser {
	if fetcher.Ext() == ".json" {
		return jsonparser.NewParser()
	}

	return yamlparser.NewParser()
}

// WithHTTPListener adds a named HTTP listener module to the application.
// The name is used as both the Fx module name and the DI named tag for http.Handler and Config.
// When options are provided (e.g., WithAddress), Config is supplied to DI automatically.
// Call multiple times with different names to create multiple listeners.
func WithHTTPListener(name string, opts ...listener.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, listener.NewModule(name, opts...))
	}
}

// WithLookupListener adds a named listener serving key path lookups over the
// *config.Document in the container, usually supplied by WithDocument.
func WithLookupListener(name string, opts ...listener.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, listener.NewLookupModule(name, opts...))
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat selects "json" (default) or "text" log output.
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

// WithLogOutput sends logs to w instead of os.Stderr.
func WithLogOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.LogOutput = w
	}
}
