package seamark

// Ring tells where the white position ring is drawn relative to a glyph.
type Ring uint8

const (
	RingNone  Ring = iota
	RingBelow      // drawn before the glyph
	RingAbove      // drawn after the glyph
)

// Glyph is a flat-table symbol: a single path with its paint and size.
type Glyph struct {
	Path  *Path
	Fill  Paint
	Scale float64 // fraction of the nominal marker size
	Ring  Ring
}

type glyphEntry struct {
	build func() *Path
	fill  Paint
	scale float64
	ring  Ring
}

func (e glyphEntry) glyph() Glyph {
	return Glyph{Path: e.build(), Fill: e.fill, Scale: e.scale, Ring: e.ring}
}
