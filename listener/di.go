package listener

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/0xalexb/keypath/config"
	"github.com/0xalexb/keypath/listener/middleware"

	"go.uber.org/fx"
)

func nameTag(name string) string {
	return fmt.Sprintf(`name:"%s"`, name)
}

// NewModule creates an Fx module for a named HTTP listener.
// The name is used as both the module name and the DI named tag for http.Handler and Config.
// The resulting *Server is provided under the same tag.
// If any options are passed, the module supplies Config to DI from those options.
// Otherwise, Config must be provided externally (e.g., via config.Provider).
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	return fx.Module(name, listenerOptions(name, opts)...)
}

// NewLookupModule creates an Fx module serving key path lookups over the *config.Document
// found in the container. The handler is wrapped with middleware.Default and registered
// under the listener name, so no http.Handler needs to be supplied.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewLookupModule(name string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	moduleOpts := []fx.Option{
		fx.Provide(fx.Annotate(
			func(doc *config.Document) (http.Handler, error) {
				handler, err := NewLookupHandler(doc)
				if err != nil {
					return nil, err
				}

				return middleware.Chain(handler, middleware.Default()...), nil
			},
			fx.ResultTags(nameTag(name)),
		)),
	}

	moduleOpts = append(moduleOpts, listenerOptions(name, opts)...)

	return fx.Module(name, moduleOpts...)
}

func listenerOptions(name string, opts []Option) []fx.Option {
	var cfg Config

	for _, apply := range opts {
		apply(&cfg)
	}

	var moduleOpts []fx.Option

	if len(opts) > 0 {
		moduleOpts = append(moduleOpts, fx.Supply(
			fx.Annotate(cfg, fx.ResultTags(nameTag(name))),
		))
	}

	moduleOpts = append(moduleOpts,
		fx.Provide(fx.Annotate(
			func(shutdowner fx.Shutdowner, handler http.Handler, listenerCfg Config) (*Server, error) {
				return NewServer(name, handler, listenerCfg, func() {
					shutdownErr := shutdowner.Shutdown()
					if shutdownErr != nil {
						slog.Error("failed to trigger shutdown", "name", name, "error", shutdownErr)
					}
				})
			},
			fx.ParamTags("", nameTag(name), nameTag(name)),
			fx.ResultTags(nameTag(name)),
		)),
		fx.Invoke(fx.Annotate(
			func(lifecycle fx.Lifecycle, srv *Server) {
				lifecycle.Append(fx.Hook{
					OnStart: srv.Start,
					OnStop:  srv.Stop,
				})
			},
			fx.ParamTags("", nameTag(name)),
		)),
	)

	return moduleOpts
}
