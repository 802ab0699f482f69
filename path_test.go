package seamark

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func TestPathBuilding(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(1, 0)
	p.QuadTo(2, 0, 2, 1)
	p.CubicTo(2, 2, 1, 3, 0, 3)
	p.Close()

	wantVerbs := []Verb{
		VerbMoveTo, VerbLineTo,
		VerbQuadTo, VerbQuadTo,
		VerbCubicTo, VerbCubicTo, VerbCubicTo,
		VerbClose,
	}
	if got := p.Verbs(); !slices.Equal(got, wantVerbs) {
		t.Errorf("Verbs() = %v, want %v", got, wantVerbs)
	}
	if n := len(p.Vertices()); n != len(wantVerbs) {
		t.Errorf("len(Vertices()) = %d, want %d", n, len(wantVerbs))
	}
	if last := p.Vertices()[len(wantVerbs)-1]; last != Pt(0, 0) {
		t.Errorf("close vertex = %v, want subpath start", last)
	}
	if !p.Subpaths()[0].Closed() {
		t.Error("subpath should be closed")
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestPathImplicitMoveTo(t *testing.T) {
	p := NewPath()
	p.LineTo(1, 1)
	if got := p.Verbs(); !slices.Equal(got, []Verb{VerbMoveTo, VerbLineTo}) {
		t.Errorf("Verbs() = %v, want implicit MoveTo", got)
	}
	if p.Vertices()[0] != Pt(0, 0) {
		t.Errorf("implicit MoveTo at %v, want origin", p.Vertices()[0])
	}
}

func TestPathNil(t *testing.T) {
	var p *Path
	if p.Len() != 0 || p.Subpaths() != nil || p.Extent() != 0 {
		t.Error("nil path should be empty")
	}
	if p.Clone().Len() != 0 {
		t.Error("Clone of nil path should be empty")
	}
}

func TestCompose(t *testing.T) {
	a := Rectangle(2, 2, 0)
	b := Compose(Triangle(2, 2, 0), Line(0, 0, 1, 1))

	c := Compose(a, nil, b)
	if c.Len() != a.Len()+b.Len() {
		t.Fatalf("Len() = %d, want %d", c.Len(), a.Len()+b.Len())
	}
	if want := append(a.Vertices(), b.Vertices()...); !slices.Equal(c.Vertices(), want) {
		t.Errorf("Compose does not preserve argument order")
	}

	// Compose copies, so the inputs stay untouched.
	c.subpaths[0][0].Point = Pt(100, 100)
	if a.Vertices()[0] == Pt(100, 100) {
		t.Error("Compose shares storage with its inputs")
	}

	if Compose().Len() != 0 {
		t.Error("Compose() should be empty")
	}
}

func TestCloneAndEqual(t *testing.T) {
	p := Circle(1, 2)
	q := p.Clone()
	if !p.Equal(q) {
		t.Fatal("clone should equal original")
	}
	q.subpaths[0][1].Point.X += 1e-3
	if p.Equal(q) {
		t.Error("modified clone should differ")
	}
	if p.Equal(Compose(p, p)) {
		t.Error("paths with different subpath counts should differ")
	}
}

func TestExtent(t *testing.T) {
	tests := []struct {
		name string
		p    *Path
		want float64
	}{
		{"can", Rectangle(12, 10, 0), 12},
		{"wide", Rectangle(1, 10, 0), 5},
		{"negative", Line(-7, 0, 1, -2), 7},
		{"empty", NewPath(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Extent(); got != tt.want {
				t.Errorf("Extent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRotate(t *testing.T) {
	p := Rectangle(12, 10, 0)

	if !p.Rotate(0).Equal(p) {
		t.Error("Rotate(0) should leave vertices unchanged")
	}

	back := p.Rotate(0.3).Rotate(-0.3)
	want := p.Vertices()
	for i, v := range back.Vertices() {
		if !near(v, want[i]) {
			t.Errorf("vertex %d: %v, want %v", i, v, want[i])
		}
	}

	q := Line(1, 0, 2, 0).Rotate(math.Pi / 2)
	if v := q.Vertices()[1]; !near(v, Pt(0, 2)) {
		t.Errorf("quarter turn = %v, want (0, 2)", v)
	}
	if !slices.Equal(p.Rotate(1).Verbs(), p.Verbs()) {
		t.Error("Rotate should keep verbs")
	}
}

func TestValidate(t *testing.T) {
	badStart := &Path{subpaths: []Subpath{{{Point: Pt(0, 0), Verb: VerbLineTo}}}}
	midMove := &Path{subpaths: []Subpath{{
		{Point: Pt(0, 0), Verb: VerbMoveTo},
		{Point: Pt(1, 0), Verb: VerbMoveTo},
	}}}
	halfQuad := &Path{subpaths: []Subpath{{
		{Point: Pt(0, 0), Verb: VerbMoveTo},
		{Point: Pt(1, 0), Verb: VerbQuadTo},
	}}}
	shortCubic := &Path{subpaths: []Subpath{{
		{Point: Pt(0, 0), Verb: VerbMoveTo},
		{Point: Pt(1, 0), Verb: VerbCubicTo},
		{Point: Pt(1, 1), Verb: VerbCubicTo},
		{Point: Pt(2, 1), Verb: VerbLineTo},
	}}}
	earlyClose := &Path{subpaths: []Subpath{{
		{Point: Pt(0, 0), Verb: VerbMoveTo},
		{Point: Pt(0, 0), Verb: VerbClose},
		{Point: Pt(1, 0), Verb: VerbLineTo},
	}}}
	wrongClose := &Path{subpaths: []Subpath{{
		{Point: Pt(0, 0), Verb: VerbMoveTo},
		{Point: Pt(1, 0), Verb: VerbLineTo},
		{Point: Pt(1, 0), Verb: VerbClose},
	}}}

	tests := []struct {
		name string
		p    *Path
		ok   bool
	}{
		{"empty", NewPath(), true},
		{"line", Line(0, 0, 1, 1), true},
		{"circle", Circle(1, 0), true},
		{"conical", Conical(12, 10), true},
		{"bad start", badStart, false},
		{"move mid subpath", midMove, false},
		{"half quad", halfQuad, false},
		{"short cubic", shortCubic, false},
		{"early close", earlyClose, false},
		{"close off start", wrongClose, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidPath) {
				t.Errorf("Validate() = %v, want ErrInvalidPath", err)
			}
		})
	}
}

func TestVerbString(t *testing.T) {
	if VerbQuadTo.String() != "QuadTo" {
		t.Errorf("VerbQuadTo.String() = %q", VerbQuadTo.String())
	}
	if Verb(99).String() != "Unknown" {
		t.Errorf("Verb(99).String() = %q", Verb(99).String())
	}
}

func TestTransformIdentityCopies(t *testing.T) {
	p := Rectangle(2, 2, 0)
	q := p.Transform(Scale(1, 1))
	if q == p || !q.Equal(p) {
		t.Error("identity Transform should return an equal copy")
	}
	q.subpaths[0][0].Point = Pt(9, 9)
	if p.Vertices()[0] == Pt(9, 9) {
		t.Error("identity Transform shares storage with its input")
	}
}
