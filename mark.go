package seamark

import (
	"errors"
	"fmt"
	"log/slog"
)

// MarkSpec describes one chart symbol.
type MarkSpec struct {
	Position Point

	// Type names a hull shape (sea mark), a landmark or a danger, matched
	// case-insensitively.
	Type string

	// Topmark is the topmark category of a sea mark. Empty means the mark
	// carries no topmark and is drawn like HideTopmark.
	Topmark     string
	HideTopmark bool

	// Floating tilts the hull to show a buoy rather than a fixed beacon.
	Floating bool

	// LightColor adds a light flare of this color (SVG color keyword).
	LightColor string
	// LightAngle overrides Config.LightAngle for this mark (radians).
	LightAngle *float64

	Label string
}

// Layer is one marker draw call of a symbol.
type Layer struct {
	Name  string
	Path  *Path
	Style Style
}

// Layer names.
const (
	LayerReference = "reference"
	LayerBody      = "body"
	LayerBand      = "band"
	LayerRing      = "ring"
	LayerGlyph     = "glyph"
	LayerLightDot  = "light-dot"
	LayerLight     = "light"
)

// Symbol is a fully resolved mark, ready to be handed to a Renderer.
// Layers are in draw order; later layers paint on top.
type Symbol struct {
	Position Point
	Layers   []Layer
	Label    *Label

	// Unresolved lists the parts that were omitted, one *CategoryError each.
	Unresolved []error
}

// Err joins the unresolved parts into one error, or returns nil.
func (s Symbol) Err() error {
	return errors.Join(s.Unresolved...)
}

// Render hands the symbol to r: every layer in order, then the label.
func (s Symbol) Render(r Renderer) error {
	for _, l := range s.Layers {
		if err := r.DrawMarker(s.Position, l.Path, l.Style); err != nil {
			return fmt.Errorf("seamark: draw %s: %w", l.Name, err)
		}
	}
	if s.Label != nil {
		if err := r.DrawText(*s.Label); err != nil {
			return fmt.Errorf("seamark: draw label: %w", err)
		}
	}
	return nil
}

func (s *Symbol) add(name string, p *Path, style Style) {
	s.Layers = append(s.Layers, Layer{Name: name, Path: p, Style: style})
}

// Builder turns MarkSpecs into Symbols. A Builder is immutable and safe for
// concurrent use.
type Builder struct {
	config Config
	logger *slog.Logger
}

// NewBuilder creates a Builder with the default style, modified by opts.
func NewBuilder(opts ...Option) *Builder {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	b := &Builder{config: o.config, logger: o.logger}
	b.log().Debug("seamark: builder created",
		slog.Float64("marker_size", o.config.MarkerSize),
		slog.Float64("shape_height", o.config.ShapeHeight))
	return b
}

// Config returns the style the Builder was created with.
func (b *Builder) Config() Config {
	return b.config
}

func (b *Builder) log() *slog.Logger {
	if b.logger != nil {
		return b.logger
	}
	return Logger()
}

// Marks builds one symbol per MarkSpec, in order.
func (b *Builder) Marks(specs []MarkSpec) []Symbol {
	symbols := make([]Symbol, len(specs))
	for i, spec := range specs {
		symbols[i] = b.Mark(spec)
	}
	return symbols
}

// Mark builds the symbol for spec. Parts whose category cannot be resolved
// are left out and recorded in Symbol.Unresolved; the rest of the symbol is
// built regardless.
func (b *Builder) Mark(spec MarkSpec) Symbol {
	sym := Symbol{Position: spec.Position}

	light, hasLight := b.lightPaint(&sym, spec)

	switch ParseKind(spec.Type) {
	case KindSeaMark:
		b.seaMark(&sym, spec)
	case KindDanger:
		b.dangerMark(&sym, spec)
	case KindLandmark:
		b.landMark(&sym, spec, light, hasLight)
	default:
		b.omit(&sym, &CategoryError{Part: "mark", Value: spec.Type, Err: ErrUnknownMarkType})
	}

	if hasLight {
		angle := b.config.LightAngle
		if spec.LightAngle != nil {
			angle = *spec.LightAngle
		}
		sym.add(LayerLight, LightSector(angle), Style{
			Fill:      light,
			Edge:      light,
			EdgeWidth: b.config.EdgeWidth,
			Size:      b.config.MarkerSize,
		})
	}

	if spec.Label != "" {
		shift := Pt(b.config.TextShift, b.config.TextShift)
		label := NewLabel(spec.Position.Add(shift), spec.Label)
		sym.Label = &label
	}
	return sym
}

// omit records an unresolved part and logs it.
func (b *Builder) omit(sym *Symbol, err error) {
	sym.Unresolved = append(sym.Unresolved, err)
	var ce *CategoryError
	if errors.As(err, &ce) {
		b.log().Warn("seamark: symbol part omitted",
			slog.String("part", ce.Part),
			slog.String("value", ce.Value),
			slog.Float64("x", sym.Position.X),
			slog.Float64("y", sym.Position.Y))
		return
	}
	b.log().Warn("seamark: symbol part omitted", slog.Any("err", err))
}

func (b *Builder) lightPaint(sym *Symbol, spec MarkSpec) (Paint, bool) {
	if spec.LightColor == "" {
		return Paint{}, false
	}
	p, ok := ParsePaint(spec.LightColor)
	if !ok || p.IsNone() {
		b.omit(sym, &CategoryError{Part: "light", Value: spec.LightColor, Err: ErrUnknownPaint})
		return Paint{}, false
	}
	return p, true
}

// ring is the white circle marking the charted position.
func (b *Builder) ring(sym *Symbol, radius float64) {
	sym.add(LayerRing, Circle(radius, 0), Style{
		Fill:      White,
		Edge:      Black,
		EdgeWidth: b.config.RingEdgeWidth,
		Size:      b.config.MarkerSize / 12,
	})
}

func (b *Builder) seaMark(sym *Symbol, spec MarkSpec) {
	cfg := b.config
	shape, _ := ParseShape(spec.Type)
	topmark, knownTopmark := ParseTopmark(spec.Topmark)
	primary, secondary := SelectColor(topmark)

	// Spars are thin poles and get a shorter baseline tick.
	refSize := cfg.MarkerSize / 2
	if shape == ShapeSpar {
		refSize = cfg.MarkerSize / 4
	}
	sym.add(LayerReference, Line(-1, 0, 1, 0), Style{
		Fill:      NoPaint,
		Edge:      Black,
		EdgeWidth: cfg.EdgeWidth,
		Size:      refSize,
	})

	base, banded, err := SelectShape(shape, topmark, cfg.ShapeHeight)
	if err != nil {
		b.omit(sym, &CategoryError{Part: "shape", Value: spec.Type, Err: ErrUnknownShape})
		return
	}

	size := cfg.MarkerSize
	switch {
	case spec.HideTopmark || spec.Topmark == "":
		size = 2 * size / 3
	case !knownTopmark:
		b.omit(sym, &CategoryError{Part: "topmark", Value: spec.Topmark, Err: ErrUnknownTopmark})
	default:
		top, err := SelectTopmark(topmark, cfg.TopmarkSize, cfg.ShapeHeight+2)
		if err != nil {
			b.omit(sym, err)
			break
		}
		base = Compose(base, top)
		banded = Compose(banded, top)
	}

	if spec.Floating {
		base = base.Rotate(cfg.FloatingAngle)
		banded = banded.Rotate(cfg.FloatingAngle)
	}

	sym.add(LayerBody, base, Style{
		Fill:      primary,
		Secondary: secondary,
		Edge:      Black,
		EdgeWidth: cfg.EdgeWidth,
		Size:      size,
	})
	sym.add(LayerBand, banded, Style{
		Fill:      secondary,
		Secondary: primary,
		Edge:      Black,
		EdgeWidth: cfg.EdgeWidth,
		Size:      size,
	})
	b.ring(sym, cfg.ShapeHeight)
}

// glyphRingRadius is the ring radius used by flat-table glyphs.
const glyphRingRadius = 10

func (b *Builder) glyph(sym *Symbol, g Glyph) {
	if g.Ring == RingBelow {
		b.ring(sym, glyphRingRadius)
	}
	sym.add(LayerGlyph, g.Path, Style{
		Fill:      g.Fill,
		Edge:      Black,
		EdgeWidth: b.config.EdgeWidth,
		Size:      b.config.MarkerSize * g.Scale,
	})
	if g.Ring == RingAbove {
		b.ring(sym, glyphRingRadius)
	}
}

func (b *Builder) dangerMark(sym *Symbol, spec MarkSpec) {
	d, _ := ParseDanger(spec.Type)
	g, err := SelectDanger(d)
	if err != nil {
		b.omit(sym, &CategoryError{Part: "danger", Value: spec.Type, Err: ErrUnknownDanger})
		return
	}
	b.glyph(sym, g)
}

func (b *Builder) landMark(sym *Symbol, spec MarkSpec, light Paint, hasLight bool) {
	l, _ := ParseLandmark(spec.Type)
	g, err := SelectLandmark(l)
	if err != nil {
		b.omit(sym, &CategoryError{Part: "landmark", Value: spec.Type, Err: ErrUnknownLandmark})
		return
	}
	b.glyph(sym, g)
	if l == LandmarkMajorLighthouse && hasLight {
		sym.add(LayerLightDot, Circle(1, 0), Style{
			Fill:      light,
			Edge:      light,
			EdgeWidth: b.config.EdgeWidth,
			Size:      b.config.MarkerSize * g.Scale * lighthouseScale,
		})
	}
}
