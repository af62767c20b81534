package riot

import "log/slog"

// Option configures an Engine.
//
// Example:
//
//	e := riot.New(
//	    riot.WithLogger(slog.Default()),
//	    riot.WithClearColor(0, 0, 0, 1),
//	)
type Option func(*options)

type options struct {
	logger     *slog.Logger
	clearColor [4]float32
	clearDepth float32
}

// DefaultClearColor is applied to every device created by the engine unless
// WithClearColor overrides it.
var DefaultClearColor = [4]float32{0, 0.3, 0.4, 1}

// DefaultClearDepth is the depth buffer clear value.
const DefaultClearDepth = 1

func defaultOptions() options {
	return options{
		logger:     newNopLogger(),
		clearColor: DefaultClearColor,
		clearDepth: DefaultClearDepth,
	}
}

// WithLogger sets the engine logger. It is handed on to every device that
// accepts one. By default the engine logs nothing.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithClearColor sets the color devices clear the surface to.
func WithClearColor(r, g, b, a float32) Option {
	return func(o *options) {
		o.clearColor = [4]float32{r, g, b, a}
	}
}

// WithClearDepth sets the depth buffer clear value.
func WithClearDepth(d float32) Option {
	return func(o *options) {
		o.clearDepth = d
	}
}
