package seamark

import "log/slog"

// Option configures a Builder during creation.
//
// Example:
//
//	// Default chart style
//	b := seamark.NewBuilder()
//
//	// Larger symbols for a harbour plan
//	b := seamark.NewBuilder(seamark.WithMarkerSize(50))
type Option func(*builderOptions)

// builderOptions holds optional configuration for Builder creation.
type builderOptions struct {
	config Config
	logger *slog.Logger
}

// defaultOptions returns the default builder options.
func defaultOptions() builderOptions {
	return builderOptions{
		config: DefaultConfig(),
		logger: nil, // Falls back to the package logger
	}
}

// WithConfig replaces the whole style configuration.
func WithConfig(c Config) Option {
	return func(o *builderOptions) {
		o.config = c
	}
}

// WithMarkerSize sets the nominal marker size in points.
func WithMarkerSize(size float64) Option {
	return func(o *builderOptions) {
		o.config.MarkerSize = size
	}
}

// WithTextShift sets the label offset in chart units.
func WithTextShift(shift float64) Option {
	return func(o *builderOptions) {
		o.config.TextShift = shift
	}
}

// WithFloatingAngle sets the tilt applied to floating marks.
func WithFloatingAngle(angle float64) Option {
	return func(o *builderOptions) {
		o.config.FloatingAngle = angle
	}
}

// WithLightAngle sets the default bearing of light flares.
func WithLightAngle(angle float64) Option {
	return func(o *builderOptions) {
		o.config.LightAngle = angle
	}
}

// WithLogger sets a logger for this Builder only. Without it the Builder
// logs through the package logger configured by SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *builderOptions) {
		o.logger = l
	}
}
