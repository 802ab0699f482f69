// Package index provides a spatial index over placed seamark symbols.
//
// A chart renderer builds every symbol once, inserts them into a Symbols
// index and then asks only for the symbols inside the current viewport.
// Queries are O(log N) with the R-tree, compared to O(N) with a linear scan.
//
// Example:
//
//	idx := index.New(index.DefaultTolerance)
//	for _, sym := range builder.Marks(specs) {
//	    idx.Insert(sym)
//	}
//	visible := idx.Query(index.Bounds{MinX: 2, MinY: 0, MaxX: 6, MaxY: 4})
package index
