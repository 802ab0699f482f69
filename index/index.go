package index

import (
	"errors"
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/gogpu/seamark"
)

// DefaultTolerance is the half-size of the box each symbol occupies in the
// tree, in chart units. Symbols are points; the R-tree needs a positive extent.
const DefaultTolerance = 1e-9

// R-tree node fan-out.
const (
	minChildren = 25
	maxChildren = 50
)

// ErrEmptyBounds is returned by Bounds.Validate for inverted boxes.
var ErrEmptyBounds = errors.New("index: bounds have negative extent")

// Bounds is an axis-aligned query box in chart units.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Validate reports whether b is a usable query box.
func (b Bounds) Validate() error {
	if b.MaxX < b.MinX || b.MaxY < b.MinY {
		return ErrEmptyBounds
	}
	return nil
}

// entry is a symbol stored in the tree.
type entry struct {
	seq    int
	symbol seamark.Symbol
	rect   rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *entry) Bounds() rtreego.Rect {
	return e.rect
}

// Symbols indexes symbols by position.
//
// Symbols is not safe for concurrent use. If concurrent access is needed,
// external synchronization must be provided.
type Symbols struct {
	tolerance float64
	rtree     *rtreego.Rtree
	count     int
}

// New creates an empty index. A non-positive tolerance selects DefaultTolerance.
func New(tolerance float64) *Symbols {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &Symbols{
		tolerance: tolerance,
		rtree:     rtreego.NewTree(2, minChildren, maxChildren),
	}
}

// Insert adds a symbol at its position.
func (s *Symbols) Insert(sym seamark.Symbol) {
	pt := rtreego.Point{sym.Position.X, sym.Position.Y}
	s.rtree.Insert(&entry{seq: s.count, symbol: sym, rect: pt.ToRect(s.tolerance)})
	s.count++
}

// Len returns the number of indexed symbols.
func (s *Symbols) Len() int {
	return s.count
}

// Query returns the symbols whose position lies inside b, in insertion order
// so that draw order is preserved.
func (s *Symbols) Query(b Bounds) []seamark.Symbol {
	if b.Validate() != nil || s.count == 0 {
		return nil
	}
	point := rtreego.Point{b.MinX - s.tolerance, b.MinY - s.tolerance}
	lengths := []float64{
		b.MaxX - b.MinX + 2*s.tolerance,
		b.MaxY - b.MinY + 2*s.tolerance,
	}
	queryRect, err := rtreego.NewRect(point, lengths)
	if err != nil {
		seamark.Logger().Debug("index: invalid query rect", "err", err)
		return nil
	}

	spatials := s.rtree.SearchIntersect(queryRect)
	entries := make([]*entry, 0, len(spatials))
	for _, sp := range spatials {
		entries = append(entries, sp.(*entry))
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	out := make([]seamark.Symbol, len(entries))
	for i, e := range entries {
		out[i] = e.symbol
	}
	return out
}

// Nearest returns up to k symbols closest to p, nearest first.
func (s *Symbols) Nearest(p seamark.Point, k int) []seamark.Symbol {
	if k <= 0 || s.count == 0 {
		return nil
	}
	spatials := s.rtree.NearestNeighbors(k, rtreego.Point{p.X, p.Y})
	out := make([]seamark.Symbol, 0, len(spatials))
	for _, sp := range spatials {
		if sp == nil {
			continue
		}
		out = append(out, sp.(*entry).symbol)
	}
	return out
}
