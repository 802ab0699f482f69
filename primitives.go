package seamark

import "math"

// Rectangle returns a w×h rectangle centered on the Y axis with its base at shiftUp.
func Rectangle(height, width, shiftUp float64) *Path {
	p := NewPath()
	p.MoveTo(-width/2, shiftUp)
	p.LineTo(-width/2, height+shiftUp)
	p.LineTo(width/2, height+shiftUp)
	p.LineTo(width/2, shiftUp)
	p.Close()
	return p
}

// Triangle returns an apex-up triangle with its base at shiftUp.
func Triangle(width, height, shiftUp float64) *Path {
	p := NewPath()
	p.MoveTo(-width/2, shiftUp)
	p.LineTo(0, shiftUp+height)
	p.LineTo(width/2, shiftUp)
	p.Close()
	return p
}

// TriangleDown returns an apex-down triangle with its apex at shiftUp.
// The triangle is 2*size wide and 2*size tall.
func TriangleDown(size, shiftUp float64) *Path {
	p := NewPath()
	p.MoveTo(0, shiftUp)
	p.LineTo(-size, shiftUp+2*size)
	p.LineTo(size, shiftUp+2*size)
	p.Close()
	return p
}

// Tower returns a trapezoid with the given bottom and top half-widths.
func Tower(height, bottom, top, shiftUp float64) *Path {
	p := NewPath()
	p.MoveTo(-bottom, shiftUp)
	p.LineTo(-top, height+shiftUp)
	p.LineTo(top, height+shiftUp)
	p.LineTo(bottom, shiftUp)
	p.Close()
	return p
}

// Conical returns the nun-buoy silhouette: curved shoulders rising to an apex.
func Conical(height, width float64) *Path {
	p := NewPath()
	p.MoveTo(-width/2, 0)
	p.QuadTo(-width/2, height/3, 0, height)
	p.QuadTo(width/2, height/3, width/2, 0)
	p.Close()
	return p
}

// Pillar returns the stepped pillar-buoy profile.
func Pillar(height, width float64) *Path {
	p := NewPath()
	p.MoveTo(-width/2, 0)
	p.LineTo(-width/4, height/3)
	p.LineTo(-width/8, height)
	p.LineTo(width/8, height)
	p.LineTo(width/4, height/3)
	p.LineTo(width/2, 0)
	p.Close()
	return p
}

// diagonalCross is the X outline in units of width/3, starting at the top notch.
var diagonalCross = [...]Point{
	{0, 1}, {2, 3}, {3, 2}, {1, 0}, {3, -2}, {2, -3},
	{0, -1}, {-2, -3}, {-3, -2}, {-1, 0}, {-3, 2}, {-2, 3},
}

// DiagonalCross returns an X-shaped outline centered at (0, centerY).
func DiagonalCross(centerY, width float64) *Path {
	u := width / 3
	p := NewPath()
	for i, c := range diagonalCross {
		if i == 0 {
			p.MoveTo(c.X*u, c.Y*u+centerY)
			continue
		}
		p.LineTo(c.X*u, c.Y*u+centerY)
	}
	p.Close()
	return p
}

// orthogonalCross is the + outline in units of width/4.
var orthogonalCross = [...]Point{
	{1, 1}, {4, 1}, {4, -1}, {1, -1}, {1, -4}, {-1, -4},
	{-1, -1}, {-4, -1}, {-4, 1}, {-1, 1}, {-1, 4}, {1, 4},
}

// OrthogonalCross returns a +-shaped outline centered at (0, centerY).
// Arms reach width from the center and are width/2 thick.
func OrthogonalCross(centerY, width float64) *Path {
	u := width / 4
	p := NewPath()
	for i, c := range orthogonalCross {
		if i == 0 {
			p.MoveTo(c.X*u, c.Y*u+centerY)
			continue
		}
		p.LineTo(c.X*u, c.Y*u+centerY)
	}
	p.Close()
	return p
}

// Arc returns an open circular arc of the given radius from deg1 to deg2
// (degrees, counter-clockwise), centered at (0, shiftUp).
func Arc(radius, deg1, deg2, shiftUp float64) *Path {
	p := NewPath()
	p.arc(radius, deg1, deg2, shiftUp, false)
	return p
}

// Circle returns a closed circle of the given radius centered at (0, centerY).
func Circle(radius, centerY float64) *Path {
	p := NewPath()
	p.arc(radius, 0, 360, centerY, false)
	p.Close()
	return p
}

// arc appends an arc made of cubic segments. The number of segments is
// 2^ceil(span/90°) and each control point follows the tangent formula from
// "Drawing an elliptical arc using polylines, quadratic or cubic Bezier curves".
// When join is set the arc continues the current subpath instead of starting one.
func (p *Path) arc(radius, deg1, deg2, shiftUp float64, join bool) {
	// Span in degrees, in (0, 360] unless the angles are equal.
	span := math.Mod(deg2-deg1, 360)
	if span < 0 {
		span += 360
	}
	if span == 0 && deg2 != deg1 {
		span = 360
	}

	n := 1 << int(math.Ceil(span/90))
	eta1 := deg1 * math.Pi / 180
	deta := span * math.Pi / 180 / float64(n)
	t := math.Tan(deta / 2)
	alpha := math.Sin(deta) * (math.Sqrt(4+3*t*t) - 1) / 3

	at := func(x, y float64) (float64, float64) { return x * radius, y*radius + shiftUp }

	sinA, cosA := math.Sincos(eta1)
	if !join || len(p.subpaths) == 0 {
		p.MoveTo(at(cosA, sinA))
	}
	for i := 1; i <= n; i++ {
		sinB, cosB := math.Sincos(eta1 + float64(i)*deta)
		c1x, c1y := at(cosA-alpha*sinA, sinA+alpha*cosA)
		c2x, c2y := at(cosB+alpha*sinB, sinB-alpha*cosB)
		x, y := at(cosB, sinB)
		p.CubicTo(c1x, c1y, c2x, c2y, x, y)
		sinA, cosA = sinB, cosB
	}
}

// Star returns a closed unit regular star with the first point straight up.
func Star(points int, inner float64) *Path {
	p := NewPath()
	if points < 2 {
		return p
	}
	step := math.Pi / float64(points)
	for i := 0; i < 2*points; i++ {
		r := 1.0
		if i%2 == 1 {
			r = inner
		}
		sin, cos := math.Sincos(math.Pi/2 + float64(i)*step)
		if i == 0 {
			p.MoveTo(r*cos, r*sin)
			continue
		}
		p.LineTo(r*cos, r*sin)
	}
	p.Close()
	return p
}

// Line returns an open two-vertex path.
func Line(x0, y0, x1, y1 float64) *Path {
	p := NewPath()
	p.MoveTo(x0, y0)
	p.LineTo(x1, y1)
	return p
}
