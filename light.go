package seamark

// LightSector returns the light flare glyph: a teardrop pointing away from the
// mark, rotated by angle radians about the mark-local origin.
func LightSector(angle float64) *Path {
	p := NewPath()
	p.MoveTo(1, 0)
	p.LineTo(6, 1)
	p.QuadTo(6.5, 0.9, 6.8, 0.7)
	p.LineTo(7, 0)
	p.QuadTo(6.8, -0.7, 6.5, -0.9)
	p.LineTo(6, -1)
	p.Close()
	if angle == 0 {
		return p
	}
	return p.Rotate(angle)
}
