package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/seamark"
)

func placed(x, y float64, label string) seamark.Symbol {
	return seamark.NewBuilder().Mark(seamark.MarkSpec{
		Position: seamark.Pt(x, y), Type: "can", Topmark: "red", Label: label,
	})
}

func labels(symbols []seamark.Symbol) []string {
	out := make([]string, len(symbols))
	for i, s := range symbols {
		out[i] = s.Label.Text
	}
	return out
}

func TestQueryViewport(t *testing.T) {
	idx := New(0)
	for i := 0; i < 200; i++ {
		idx.Insert(placed(float64(i%20), float64(i/20), "m"+string(rune('a'+i%26))))
	}
	require.Equal(t, 200, idx.Len())

	got := idx.Query(Bounds{MinX: 2, MinY: 3, MaxX: 4, MaxY: 4})
	require.Len(t, got, 6)
	for _, s := range got {
		assert.GreaterOrEqual(t, s.Position.X, 2.0)
		assert.LessOrEqual(t, s.Position.X, 4.0)
		assert.GreaterOrEqual(t, s.Position.Y, 3.0)
		assert.LessOrEqual(t, s.Position.Y, 4.0)
	}
}

func TestQueryInsertionOrder(t *testing.T) {
	idx := New(DefaultTolerance)
	idx.Insert(placed(5, 5, "third-drawn-first"))
	idx.Insert(placed(1, 1, "second"))
	idx.Insert(placed(5, 5, "stacked"))

	got := idx.Query(Bounds{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10})
	assert.Equal(t, []string{"third-drawn-first", "second", "stacked"}, labels(got))
}

func TestQueryPointBox(t *testing.T) {
	idx := New(0)
	idx.Insert(placed(3, 3, "hit"))
	idx.Insert(placed(3.1, 3, "miss"))

	got := idx.Query(Bounds{MinX: 3, MinY: 3, MaxX: 3, MaxY: 3})
	assert.Equal(t, []string{"hit"}, labels(got))
}

func TestQueryEmpty(t *testing.T) {
	idx := New(0)
	assert.Nil(t, idx.Query(Bounds{MaxX: 1, MaxY: 1}))

	idx.Insert(placed(0, 0, "a"))
	assert.Nil(t, idx.Query(Bounds{MinX: 2, MaxX: 1, MaxY: 1}), "inverted bounds")
	assert.Empty(t, idx.Query(Bounds{MinX: 5, MinY: 5, MaxX: 6, MaxY: 6}))
}

func TestNearest(t *testing.T) {
	idx := New(0)
	idx.Insert(placed(0, 0, "origin"))
	idx.Insert(placed(10, 0, "east"))
	idx.Insert(placed(0, 3, "north"))

	got := idx.Nearest(seamark.Pt(0, 1), 2)
	assert.Equal(t, []string{"origin", "north"}, labels(got))

	assert.Len(t, idx.Nearest(seamark.Pt(0, 0), 10), 3)
	assert.Nil(t, idx.Nearest(seamark.Pt(0, 0), 0))
	assert.Nil(t, New(0).Nearest(seamark.Pt(0, 0), 1))
}

func TestBoundsValidate(t *testing.T) {
	assert.NoError(t, Bounds{MaxX: 1, MaxY: 1}.Validate())
	assert.NoError(t, Bounds{}.Validate())
	assert.ErrorIs(t, Bounds{MinY: 1}.Validate(), ErrEmptyBounds)
}
