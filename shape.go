package seamark

// shapeWidth is the nominal hull width in mark-local units.
const shapeWidth = 10

// band identifies how a topmark family splits the hull into two paint regions.
type band uint8

const (
	bandPlain  band = iota // single color, banded body equals base body
	bandThirds             // top and bottom thirds
	bandUpper              // upper half
	bandLower              // lower half
	bandMiddle             // middle third
	bandStripe             // thin full-height vertical stripe
	bandCount
)

// bandOf maps a topmark onto its paint-split family.
func bandOf(t Topmark) band {
	switch t {
	case TopmarkGreenBis, TopmarkRedBis, TopmarkDanger, TopmarkEast:
		return bandThirds
	case TopmarkNorth:
		return bandUpper
	case TopmarkSouth:
		return bandLower
	case TopmarkWest:
		return bandMiddle
	case TopmarkSafeWater, TopmarkEmergency:
		return bandStripe
	default:
		return bandPlain
	}
}

type bodyFunc func(h float64) *Path

// bodies is the (shape, band) lookup table. Column bandPlain holds the base
// body of each shape; every other column holds the region painted with the
// secondary color.
var bodies [ShapeTower + 1][bandCount]bodyFunc

func init() {
	const w = shapeWidth

	bodies[ShapeSpar] = [bandCount]bodyFunc{
		bandPlain:  func(h float64) *Path { return Rectangle(h, w/5., 0) },
		bandThirds: func(h float64) *Path { return Compose(Rectangle(h/3, w/5., 0), Rectangle(h/3, w/5., 2*h/3)) },
		bandUpper:  func(h float64) *Path { return Rectangle(h/2, w/5., h/2) },
		bandLower:  func(h float64) *Path { return Rectangle(h/2, w/5., 0) },
		bandMiddle: func(h float64) *Path { return Rectangle(h/3, w/5., h/3) },
		bandStripe: func(h float64) *Path { return Rectangle(h, w/15., 0) },
	}

	bodies[ShapeCan] = [bandCount]bodyFunc{
		bandPlain:  func(h float64) *Path { return Rectangle(h, w, 0) },
		bandThirds: func(h float64) *Path { return Compose(Rectangle(h/3, w, 0), Rectangle(h/3, w, 2*h/3)) },
		bandUpper:  func(h float64) *Path { return Rectangle(h/2, w, h/2) },
		bandLower:  func(h float64) *Path { return Rectangle(h/2, w, 0) },
		bandMiddle: func(h float64) *Path { return Rectangle(h/3, w, h/3) },
		bandStripe: func(h float64) *Path { return Rectangle(h, w/3., 0) },
	}

	// The sphere is sized by its width alone; only the stripe follows h.
	const r, c = w * 3. / 4, w * 3. / 8
	bodies[ShapeSpherical] = [bandCount]bodyFunc{
		bandPlain:  func(float64) *Path { return sphere(r, c) },
		bandThirds: func(float64) *Path { return Compose(sphereCap(r, 30, 150, c), Tower(w/3., 5*w/8., r, 0)) },
		bandUpper:  func(float64) *Path { return sphereCap(r, 0, 180, c) },
		bandLower:  func(float64) *Path { return Tower(w/3., 5*w/8., r, 0) },
		bandMiddle: func(float64) *Path { return Tower(w/3., r, 5*w/8., w/3.) },
		bandStripe: func(h float64) *Path { return Triangle(w/2., h, 0) },
	}

	bodies[ShapeConical] = [bandCount]bodyFunc{
		bandPlain:  func(h float64) *Path { return Conical(h, w) },
		bandThirds: func(h float64) *Path { return Compose(Tower(h/3, w/2., 3*w/8., 0), Triangle(w/2., h/3, 2*h/3)) },
		bandUpper:  func(h float64) *Path { return Triangle(3*w/4., 2*h/3, h/3) },
		bandLower:  func(h float64) *Path { return Tower(h/3, w/2., 3*w/8., 0) },
		bandMiddle: func(h float64) *Path { return Tower(h/3, w/2., w/4., h/4) },
		bandStripe: func(h float64) *Path { return Triangle(h/2, h, 0) },
	}

	bodies[ShapePillar] = [bandCount]bodyFunc{
		bandPlain:  func(h float64) *Path { return Pillar(h, w) },
		bandThirds: func(h float64) *Path { return Compose(Tower(h/3, w/2., w/4., 0), Tower(h/3, w/6., w/8., 2*h/3)) },
		bandUpper:  func(h float64) *Path { return Tower(2*h/3, w/4., w/8., h/3) },
		bandLower:  func(h float64) *Path { return Tower(h/3, w/2., w/4., 0) },
		bandMiddle: func(h float64) *Path { return Tower(h/3, w/4., w/6., h/3) },
		bandStripe: func(h float64) *Path { return Rectangle(h, w/8., 0) },
	}

	bodies[ShapeTower] = [bandCount]bodyFunc{
		bandPlain:  func(h float64) *Path { return Tower(h, w, 3*w/4., 0) },
		bandThirds: func(h float64) *Path { return Compose(Tower(h/3, w, 10*w/12., 0), Tower(h/3, 10*w/12., 3*w/4., 2*h/3)) },
		bandUpper:  func(h float64) *Path { return Tower(h/2, 10*w/12., 3*w/4., h/2) },
		bandLower:  func(h float64) *Path { return Tower(h/2, w, 10*w/12., 0) },
		bandMiddle: func(h float64) *Path { return Tower(h/3, 11*w/12., 10*w/12., h/3) },
		bandStripe: func(h float64) *Path { return Rectangle(h, w/3., 0) },
	}
}

// sphere is the spherical hull: two arc halves meeting at the top, closed by
// a chord across the waterline.
func sphere(radius, shiftUp float64) *Path {
	p := NewPath()
	p.arc(radius, -30, 90, shiftUp, false)
	p.arc(radius, 90, 210, shiftUp, true)
	p.Close()
	return p
}

// sphereCap is a closed circular segment of the spherical hull.
func sphereCap(radius, deg1, deg2, shiftUp float64) *Path {
	p := Arc(radius, deg1, deg2, shiftUp)
	p.Close()
	return p
}

// SelectShape returns the hull body of a sea mark and the region painted with
// the secondary color for the given topmark family. Topmarks without a band
// (green, red, special, unknown) return a banded body equal to the base body.
// Unknown shapes return a *CategoryError wrapping ErrUnknownShape.
func SelectShape(s Shape, t Topmark, height float64) (base, banded *Path, err error) {
	if s == ShapeUnknown || int(s) >= len(bodies) {
		return nil, nil, &CategoryError{Part: "shape", Value: s.String(), Err: ErrUnknownShape}
	}
	row := bodies[s]
	base = row[bandPlain](height)
	b := bandOf(t)
	if b == bandPlain {
		return base, base.Clone(), nil
	}
	return base, row[b](height), nil
}
