package seamark

// lighthouseScale sizes the light dot of a major lighthouse relative to its star.
const lighthouseScale = 1. / 6

var landmarks = map[Landmark]glyphEntry{
	LandmarkLighthouse:      {build: lighthouse, fill: Black, scale: 1. / 4},
	LandmarkMajorLighthouse: {build: lighthouse, fill: Black, scale: 1. / 3},
	LandmarkLandTower:       {build: func() *Path { return tower(10, 3, 3) }, fill: NoPaint, scale: 1, ring: RingBelow},
	LandmarkWaterTower:      {build: func() *Path { return tower(10, 3, 6) }, fill: NoPaint, scale: 1, ring: RingBelow},
	LandmarkChurch:          {build: church, fill: Black, scale: 1. / 4},
}

// SelectLandmark returns the glyph for l. Unknown categories return a
// *CategoryError wrapping ErrUnknownLandmark.
func SelectLandmark(l Landmark) (Glyph, error) {
	e, ok := landmarks[l]
	if !ok {
		return Glyph{}, &CategoryError{Part: "landmark", Value: l.String(), Err: ErrUnknownLandmark}
	}
	return e.glyph(), nil
}

func lighthouse() *Path {
	return Star(5, 0.3)
}

// tower is a tapering shaft topped by a block of the given width.
func tower(height, width, top float64) *Path {
	return Compose(
		Tower(height*3/4, width, width/2, 0),
		Rectangle(height/4, top, height*3/4),
	)
}

// churchArms holds, per lobe, the curve control point and the two tips.
var churchArms = [4][3]Point{
	{{0, 2}, {-1, 3}, {1, 3}},
	{{2, 0}, {3, 1}, {3, -1}},
	{{0, -2}, {1, -3}, {-1, -3}},
	{{-2, 0}, {-3, -1}, {-3, 1}},
}

// church is the four-lobed cross glyph.
func church() *Path {
	p := NewPath()
	p.MoveTo(0, 0)
	for _, arm := range churchArms {
		ctrl, left, right := arm[0], arm[1], arm[2]
		p.QuadTo(ctrl.X, ctrl.Y, left.X, left.Y)
		p.LineTo(right.X, right.Y)
		p.QuadTo(ctrl.X, ctrl.Y, 0, 0)
	}
	p.Close()
	return p
}
