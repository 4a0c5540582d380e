package l10n

import "log/slog"

// ErrorHandler receives every recoverable error together with its kind.
// Handlers may be called from several goroutines at once.
type ErrorHandler func(kind ErrorKind, err error)

// Option configures an Env.
type Option func(*Env)

// WithLogger sets the logger used to record errors and cache activity.
// If not specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Env) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithErrorHandler registers an error handler. It may be given several times;
// handlers run in registration order.
func WithErrorHandler(h ErrorHandler) Option {
	return func(e *Env) {
		if h != nil {
			e.handlers = append(e.handlers, h)
		}
	}
}
