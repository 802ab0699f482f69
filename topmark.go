package seamark

// topmarkGap separates the two glyphs of a cardinal or danger topmark.
const topmarkGap = 2

// SelectTopmark builds the glyph mounted above a hull. size is the half-width
// of a single glyph and shiftUp the height of its base.
//
// Cardinal topmarks stack two cones whose points encode the compass
// direction: north both up, south both down, east down then up (points
// apart), west up then down (points together).
//
// Unknown categories return a *CategoryError wrapping ErrUnknownTopmark;
// there is no fallback glyph.
func SelectTopmark(t Topmark, size, shiftUp float64) (*Path, error) {
	upper := shiftUp + 2*size + topmarkGap
	switch t {
	case TopmarkGreen, TopmarkGreenBis:
		return Triangle(2*size, 2*size, shiftUp), nil
	case TopmarkRed, TopmarkRedBis:
		return Rectangle(2*size, 2*size, shiftUp), nil
	case TopmarkNorth:
		return Compose(Triangle(2*size, 2*size, shiftUp), Triangle(2*size, 2*size, upper)), nil
	case TopmarkSouth:
		return Compose(TriangleDown(size, shiftUp), TriangleDown(size, upper)), nil
	case TopmarkEast:
		return Compose(TriangleDown(size, shiftUp), Triangle(2*size, 2*size, upper)), nil
	case TopmarkWest:
		return Compose(Triangle(2*size, 2*size, shiftUp), TriangleDown(size, upper)), nil
	case TopmarkDanger:
		return Compose(Circle(size, shiftUp+size), Circle(size, shiftUp+3*size+topmarkGap)), nil
	case TopmarkSpecial:
		return DiagonalCross(shiftUp+size, size), nil
	case TopmarkSafeWater:
		return Circle(size, shiftUp+size), nil
	case TopmarkEmergency:
		return OrthogonalCross(shiftUp+size, size), nil
	default:
		return nil, &CategoryError{Part: "topmark", Value: t.String(), Err: ErrUnknownTopmark}
	}
}
