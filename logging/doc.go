// Package logging provides types.Logger adapters for common structured loggers.
//
//   - NewSlog / NewSlogDefault wrap a *slog.Logger
//   - NewZap wraps a *zap.Logger through its sugared key-value methods
package logging
