package app

//nolint:gochecknoglobals // set via ldflags at build time.
var (
	// Version is the application version, set via ldflags.
	Version = "dev"
	// CompiledAt is the build timestamp, set via ldflags.
	CompiledAt = "unknown"
)

// BuildInfo returns the version and build timestamp as slog-friendly key/value pairs.
func BuildInfo() []any {
	return []any{"version", Version, "compiled_at", CompiledAt}
}
