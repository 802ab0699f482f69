// Package svg provides an SVG backend for the recording system.
//
// Chart positions are mapped to SVG user units by Backend.Unit (Y flipped so
// north is up). Each marker path is scaled so its extent spans half of
// Style.Size, the same convention plotting libraries use for marker sizes.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/seamark/recording/backends/svg"
//
//	backend, _ := recording.NewBackend("svg")
//	_ = rec.FinishRecording().Playback(backend)
//	_, _ = backend.(recording.WriterBackend).WriteTo(os.Stdout)
package svg

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/go-text/typesetting/di"
	"github.com/gogpu/seamark"
	"github.com/gogpu/seamark/recording"
)

func init() {
	recording.Register("svg", func() recording.Backend {
		return NewBackend()
	})
}

// Default layout values.
const (
	DefaultUnit   = 60 // SVG units per chart unit
	DefaultMargin = 60 // SVG units around the drawing
	fontSize      = 10
)

var errNotStarted = errors.New("svg: Begin not called")

// Backend writes symbols as SVG path elements.
type Backend struct {
	Unit   float64
	Margin float64

	bounds  recording.Bounds
	body    bytes.Buffer
	started bool
	done    bool
}

var _ recording.WriterBackend = (*Backend)(nil)

// NewBackend creates a Backend with the default layout.
func NewBackend() *Backend {
	return &Backend{Unit: DefaultUnit, Margin: DefaultMargin}
}

// Begin implements recording.Backend.
func (b *Backend) Begin(bounds recording.Bounds) error {
	if bounds.Empty() {
		bounds = recording.Bounds{}
	}
	b.bounds = bounds
	b.body.Reset()
	b.started = true
	b.done = false
	return nil
}

// End implements recording.Backend.
func (b *Backend) End() error {
	if !b.started {
		return errNotStarted
	}
	b.done = true
	return nil
}

// toSVG maps a chart position to SVG user units.
func (b *Backend) toSVG(p seamark.Point) (float64, float64) {
	return (p.X-b.bounds.MinX)*b.Unit + b.Margin, (b.bounds.MaxY-p.Y)*b.Unit + b.Margin
}

// DrawMarker implements seamark.Renderer.
func (b *Backend) DrawMarker(pos seamark.Point, path *seamark.Path, style seamark.Style) error {
	if !b.started {
		return errNotStarted
	}
	ext := path.Extent()
	if ext == 0 {
		return nil
	}
	scale := style.Size / 2 / ext
	x, y := b.toSVG(pos)
	m := seamark.Translate(x, y).Multiply(seamark.Scale(scale, -scale))

	fill := "none"
	if !style.Fill.IsNone() {
		fill = style.Fill.Name
	}
	stroke := "none"
	if !style.Edge.IsNone() {
		stroke = style.Edge.Name
	}
	fmt.Fprintf(&b.body,
		`<path transform="%s" fill="%s" stroke="%s" stroke-width="%s" vector-effect="non-scaling-stroke" d="%s"/>`+"\n",
		transform(m), fill, stroke, num(style.EdgeWidth), PathData(path))
	return nil
}

// DrawText implements seamark.Renderer.
func (b *Backend) DrawText(label seamark.Label) error {
	if !b.started {
		return errNotStarted
	}
	x, y := b.toSVG(label.Position)
	dir := "ltr"
	if label.Direction == di.DirectionRTL {
		dir = "rtl"
	}
	fmt.Fprintf(&b.body, `<text x="%s" y="%s" font-size="%d" direction="%s">`, num(x), num(y), fontSize, dir)
	if err := xml.EscapeText(&b.body, []byte(label.Text)); err != nil {
		return err
	}
	b.body.WriteString("</text>\n")
	return nil
}

// WriteTo writes the finished SVG document.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.done {
		return 0, errors.New("svg: End not called")
	}
	width := (b.bounds.MaxX-b.bounds.MinX)*b.Unit + 2*b.Margin
	height := (b.bounds.MaxY-b.bounds.MinY)*b.Unit + 2*b.Margin

	var doc bytes.Buffer
	fmt.Fprintf(&doc, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		num(width), num(height), num(width), num(height))
	doc.Write(b.body.Bytes())
	doc.WriteString("</svg>\n")
	return doc.WriteTo(w)
}

// transform formats m as an SVG transform attribute.
func transform(m seamark.Matrix) string {
	return fmt.Sprintf("matrix(%s %s %s %s %s %s)", num(m.A), num(m.D), num(m.B), num(m.E), num(m.C), num(m.F))
}

// PathData returns the SVG path data ("d" attribute) for p in mark-local units.
func PathData(p *seamark.Path) string {
	var buf bytes.Buffer
	for _, sp := range p.Subpaths() {
		for i := 0; i < len(sp); {
			s := sp[i]
			switch s.Verb {
			case seamark.VerbMoveTo:
				fmt.Fprintf(&buf, "M%s %s", num(s.Point.X), num(s.Point.Y))
				i++
			case seamark.VerbLineTo:
				fmt.Fprintf(&buf, "L%s %s", num(s.Point.X), num(s.Point.Y))
				i++
			case seamark.VerbQuadTo:
				if i+1 >= len(sp) {
					return buf.String()
				}
				e := sp[i+1].Point
				fmt.Fprintf(&buf, "Q%s %s %s %s", num(s.Point.X), num(s.Point.Y), num(e.X), num(e.Y))
				i += 2
			case seamark.VerbCubicTo:
				if i+2 >= len(sp) {
					return buf.String()
				}
				c2, e := sp[i+1].Point, sp[i+2].Point
				fmt.Fprintf(&buf, "C%s %s %s %s %s %s",
					num(s.Point.X), num(s.Point.Y), num(c2.X), num(c2.Y), num(e.X), num(e.Y))
				i += 3
			case seamark.VerbClose:
				buf.WriteByte('Z')
				i++
			default:
				i++
			}
		}
	}
	return buf.String()
}

// num formats a coordinate with at most four decimals.
func num(v float64) string {
	v = math.Round(v*1e4) / 1e4
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
