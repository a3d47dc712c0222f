// Package logging builds the structured log/slog logger used across the module.
// Output is JSON by default, or text when LoggerConfig.Format is "text".
package logging
