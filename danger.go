package seamark

import "math"

var dangers = map[Danger]glyphEntry{
	DangerWreck:      {build: wreck, fill: Black, scale: 1. / 2, ring: RingAbove},
	DangerWreckDepth: {build: wreckDepth, fill: Black, scale: 1. / 2},
	DangerGeneric:    {build: func() *Path { return Circle(1, 0) }, fill: SkyBlue, scale: 1. / 2},
	DangerRockCovers: {build: rockCovers, fill: Black, scale: 1. / 4},
	DangerRockDepth:  {build: rockDepth, fill: Black, scale: 1. / 4},
}

// SelectDanger returns the hazard glyph for d. Unknown categories return a
// *CategoryError wrapping ErrUnknownDanger.
func SelectDanger(d Danger) (Glyph, error) {
	e, ok := dangers[d]
	if !ok {
		return Glyph{}, &CategoryError{Part: "danger", Value: d.String(), Err: ErrUnknownDanger}
	}
	return e.glyph(), nil
}

// wreck is a sunken hull with its mast and the waterline.
func wreck() *Path {
	hull := NewPath()
	hull.MoveTo(-2, 0)
	hull.LineTo(-3, 2)
	hull.LineTo(3, 0)
	hull.Close()
	return Compose(hull, Line(0, 0, 1, 3), Line(-3, 0, 3.5, 0))
}

// wreckDepth is the dangerous-wreck outline: a keel crossed by three ribs.
func wreckDepth() *Path {
	return Compose(
		Line(-2, 0, 2, 0),
		Line(0, 1, 0, -1),
		Line(-1, 0.5, -1, -0.5),
		Line(1, 0.5, 1, -0.5),
	)
}

// rockCovers is an eight-spoke asterisk, turned half a degree.
func rockCovers() *Path {
	return Star(8, 0).Rotate(0.5 * math.Pi / 180)
}

// rockDepth is a plus sign.
func rockDepth() *Path {
	return Compose(Line(-1, 0, 1, 0), Line(0, -1, 0, 1))
}
