package eventbus

import "log/slog"

// Option configures a Bus.
type Option func(*Bus)

// WithLogger sets the logger used for diagnostic and error output.
// Use slog.New(slog.NewTextHandler(io.Discard, nil)) to disable logging;
// this is the default.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bus) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithVerboseLogging sets the initial verbose-tracing state. Verbose tracing
// can also be toggled later with SetVerboseLogging.
func WithVerboseLogging(enabled bool) Option {
	return func(b *Bus) {
		b.verbose.Store(enabled)
	}
}
