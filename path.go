package seamark

import (
	"fmt"
	"math"
)

// Verb is the drawing command paired with a path vertex.
type Verb uint8

const (
	// VerbMoveTo starts a new subpath at its vertex.
	VerbMoveTo Verb = iota
	// VerbLineTo draws a straight line to its vertex.
	VerbLineTo
	// VerbQuadTo marks the two vertices (control, end) of a quadratic Bezier.
	VerbQuadTo
	// VerbCubicTo marks the three vertices (control1, control2, end) of a cubic Bezier.
	VerbCubicTo
	// VerbClose closes the subpath. Its vertex is the subpath start.
	VerbClose
)

var verbNames = [...]string{
	VerbMoveTo:  "MoveTo",
	VerbLineTo:  "LineTo",
	VerbQuadTo:  "QuadTo",
	VerbCubicTo: "CubicTo",
	VerbClose:   "Close",
}

// String returns the verb name.
func (v Verb) String() string {
	if int(v) < len(verbNames) {
		return verbNames[v]
	}
	return "Unknown"
}

// Segment is one vertex of a path together with its command.
type Segment struct {
	Point Point
	Verb  Verb
}

// Subpath is an ordered run of segments starting with VerbMoveTo.
type Subpath []Segment

// Closed reports whether the subpath ends with VerbClose.
func (s Subpath) Closed() bool {
	return len(s) > 0 && s[len(s)-1].Verb == VerbClose
}

// Path is an ordered sequence of subpaths in the mark-local frame.
// Paths produced by this package are never modified after they are returned;
// Compose, Rotate and Transform always allocate a new Path.
type Path struct {
	subpaths []Subpath
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		subpaths: make([]Subpath, 0, 2),
	}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.subpaths = append(p.subpaths, Subpath{{Point: Pt(x, y), Verb: VerbMoveTo}})
}

// LineTo draws a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.push(Segment{Point: Pt(x, y), Verb: VerbLineTo})
}

// QuadTo draws a quadratic Bezier curve through control point (cx, cy) to (x, y).
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.push(Segment{Point: Pt(cx, cy), Verb: VerbQuadTo})
	p.push(Segment{Point: Pt(x, y), Verb: VerbQuadTo})
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.push(Segment{Point: Pt(c1x, c1y), Verb: VerbCubicTo})
	p.push(Segment{Point: Pt(c2x, c2y), Verb: VerbCubicTo})
	p.push(Segment{Point: Pt(x, y), Verb: VerbCubicTo})
}

// Close closes the current subpath. The close vertex repeats the subpath start.
func (p *Path) Close() {
	if len(p.subpaths) == 0 {
		return
	}
	start := p.subpaths[len(p.subpaths)-1][0].Point
	p.push(Segment{Point: start, Verb: VerbClose})
}

// push appends to the current subpath, starting one at the origin if needed.
func (p *Path) push(s Segment) {
	if len(p.subpaths) == 0 {
		p.MoveTo(0, 0)
	}
	last := len(p.subpaths) - 1
	p.subpaths[last] = append(p.subpaths[last], s)
}

// Subpaths returns the subpaths of p. The result must not be modified.
func (p *Path) Subpaths() []Subpath {
	if p == nil {
		return nil
	}
	return p.subpaths
}

// Len returns the number of subpaths.
func (p *Path) Len() int {
	if p == nil {
		return 0
	}
	return len(p.subpaths)
}

// Vertices returns all vertices in draw order.
func (p *Path) Vertices() []Point {
	var pts []Point
	for _, sp := range p.Subpaths() {
		for _, s := range sp {
			pts = append(pts, s.Point)
		}
	}
	return pts
}

// Verbs returns all commands in draw order, one per vertex.
func (p *Path) Verbs() []Verb {
	var verbs []Verb
	for _, sp := range p.Subpaths() {
		for _, s := range sp {
			verbs = append(verbs, s.Verb)
		}
	}
	return verbs
}

// Extent returns the largest absolute coordinate of any vertex.
// Renderers scale a marker path so that Extent maps to half the marker size.
func (p *Path) Extent() float64 {
	var ext float64
	for _, sp := range p.Subpaths() {
		for _, s := range sp {
			ext = math.Max(ext, math.Max(math.Abs(s.Point.X), math.Abs(s.Point.Y)))
		}
	}
	return ext
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	for _, sp := range p.Subpaths() {
		result.subpaths = append(result.subpaths, append(Subpath(nil), sp...))
	}
	return result
}

// Equal reports whether p and q have the same subpaths, verbs and vertices.
func (p *Path) Equal(q *Path) bool {
	if p.Len() != q.Len() {
		return false
	}
	qs := q.Subpaths()
	for i, sp := range p.Subpaths() {
		if len(sp) != len(qs[i]) {
			return false
		}
		for j := range sp {
			if sp[j] != qs[i][j] {
				return false
			}
		}
	}
	return true
}

// Transform applies a transformation matrix to all points in the path.
func (p *Path) Transform(m Matrix) *Path {
	if m.IsIdentity() {
		return p.Clone()
	}
	result := NewPath()
	for _, sp := range p.Subpaths() {
		out := make(Subpath, len(sp))
		for i, s := range sp {
			out[i] = Segment{Point: m.TransformPoint(s.Point), Verb: s.Verb}
		}
		result.subpaths = append(result.subpaths, out)
	}
	return result
}

// Rotate returns p rotated by angle radians about the mark-local origin.
func (p *Path) Rotate(angle float64) *Path {
	return p.Transform(Rotate(angle))
}

// Compose concatenates paths into one compound path in argument order.
// Subpaths are copied, never merged or reordered, so later paths paint on top
// of earlier ones. Nil paths are skipped.
func Compose(paths ...*Path) *Path {
	result := NewPath()
	for _, p := range paths {
		for _, sp := range p.Subpaths() {
			result.subpaths = append(result.subpaths, append(Subpath(nil), sp...))
		}
	}
	return result
}

// Validate checks the structural invariants of every subpath: it starts with
// VerbMoveTo, curve vertices come in complete groups, and VerbClose appears only
// last, on the subpath start.
func (p *Path) Validate() error {
	for i, sp := range p.Subpaths() {
		if len(sp) == 0 || sp[0].Verb != VerbMoveTo {
			return fmt.Errorf("%w: subpath %d does not begin with MoveTo", ErrInvalidPath, i)
		}
		for j := 1; j < len(sp); {
			switch sp[j].Verb {
			case VerbMoveTo:
				return fmt.Errorf("%w: subpath %d has MoveTo at vertex %d", ErrInvalidPath, i, j)
			case VerbLineTo:
				j++
			case VerbQuadTo, VerbCubicTo:
				n := 2
				if sp[j].Verb == VerbCubicTo {
					n = 3
				}
				for k := 0; k < n; k++ {
					if j+k >= len(sp) || sp[j+k].Verb != sp[j].Verb {
						return fmt.Errorf("%w: subpath %d has an incomplete %v at vertex %d",
							ErrInvalidPath, i, sp[j].Verb, j)
					}
				}
				j += n
			case VerbClose:
				if j != len(sp)-1 {
					return fmt.Errorf("%w: subpath %d closes before its end", ErrInvalidPath, i)
				}
				if sp[j].Point != sp[0].Point {
					return fmt.Errorf("%w: subpath %d close vertex is not the start", ErrInvalidPath, i)
				}
				j++
			default:
				return fmt.Errorf("%w: subpath %d has unknown verb %d", ErrInvalidPath, i, sp[j].Verb)
			}
		}
	}
	return nil
}
