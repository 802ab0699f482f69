package seamark

// Config is the default style shared by every symbol a Builder produces.
// It is passed explicitly; builders never read package-level style state.
type Config struct {
	// MarkerSize is the nominal marker size in points. Every layer's Style.Size
	// is derived from it.
	MarkerSize float64

	// TextShift offsets labels from the mark position along both axes, in
	// chart units.
	TextShift float64

	ShapeHeight float64 // hull height in mark-local units
	TopmarkSize float64 // topmark glyph half-width in mark-local units

	EdgeWidth     float64 // outline width of hulls and glyphs
	RingEdgeWidth float64 // outline width of the white position ring

	// FloatingAngle tilts floating marks (radians, counter-clockwise).
	FloatingAngle float64

	// LightAngle is the bearing of the light flare when MarkSpec.LightAngle is nil.
	LightAngle float64
}

// DefaultConfig returns the default symbol style.
func DefaultConfig() Config {
	return Config{
		MarkerSize:    30,
		TextShift:     0.0002,
		ShapeHeight:   12,
		TopmarkSize:   2,
		EdgeWidth:     0.5,
		RingEdgeWidth: 0.2,
		FloatingAngle: -0.3,
		LightAngle:    -0.45,
	}
}
