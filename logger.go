package ezstd

// Logger defines the interface for aggregator logging.
// The aggregator uses structured logging with key-value pairs so that
// composition activity (role registration, enabling, reference generation)
// is parseable regardless of the backing logger.
//
// The interface uses variadic arguments in key-value pairs:
//
//	logger.Info("role enabled", "role", "fs", "exports", 6)
//
// which is compatible with slog, zerolog, zap and similar libraries.
// An slog-backed implementation is one method per level:
//
//	type SlogLogger struct{ logger *slog.Logger }
//
//	func (l *SlogLogger) Info(msg string, args ...any) { l.logger.Info(msg, args...) }
type Logger interface {
	// Info logs normal composition events: roles enabled, surface frozen.
	Info(msg string, args ...any)

	// Error logs failures worth operator attention.
	Error(msg string, args ...any)

	// Warn logs unusual but non-fatal conditions.
	Warn(msg string, args ...any)

	// Debug logs diagnostic detail such as individual export registration
	// and resolution misses.
	Debug(msg string, args ...any)
}
