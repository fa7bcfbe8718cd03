package binding

import "log/slog"

// Option configures a Driver.
type Option func(*Driver)

// WithUnconsumedSink sets the function receiving, after each Consume call,
// the messages no wrapper took. It is not called when every message was
// routed.
func WithUnconsumedSink(sink func([]Message)) Option {
	return func(d *Driver) {
		d.sink = sink
	}
}

// WithLogger sets the logger used for routing diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Driver) {
		d.logger = logger
	}
}

// WithTextFilter sets a function applied to message text before it reaches
// FormElement.Invalidate.
func WithTextFilter(filter func(string) string) Option {
	return func(d *Driver) {
		d.filter = filter
	}
}
