// Package seamark generates IALA nautical chart symbology as vector paths.
//
// # Overview
//
// seamark turns a small set of categories (hull shape, topmark, landmark,
// danger, light color) into compound vector paths and paint styles for buoys,
// beacons, landmarks, hazards and light flares. It never rasterizes: symbols
// are handed to a Renderer supplied by the caller.
//
// # Quick Start
//
//	b := seamark.NewBuilder()
//
//	sym := b.Mark(seamark.MarkSpec{
//	    Position:   seamark.Pt(3, 23),
//	    Type:       "spar",
//	    Topmark:    "east",
//	    Floating:   true,
//	    LightColor: "yellow",
//	    Label:      "E1",
//	})
//	if err := sym.Err(); err != nil {
//	    // some parts were omitted; the rest is still drawable
//	}
//	_ = sym.Render(renderer)
//
// # Building Blocks
//
// The package is organized into:
//   - Primitives: Rectangle, Triangle, Tower, Conical, Pillar, crosses, Arc, Circle, Star
//   - Composition: Compose, Path.Rotate, Path.Transform
//   - Lookups: SelectColor, SelectTopmark, SelectShape, SelectDanger, SelectLandmark, LightSector
//   - Orchestration: Builder.Mark assembles a Symbol from a MarkSpec
//
// # Coordinate System
//
// Paths live in a mark-local frame:
//   - Origin (0,0) at the charted position, on the hull's waterline
//   - X increases right, Y increases up
//   - Angles in radians, counter-clockwise
//
// A renderer scales each path so that its Extent maps to half of the
// layer's Style.Size points.
//
// # Unknown Categories
//
// SelectColor is total and falls back to yellow/black. Every other lookup
// reports an unknown category as a *CategoryError; Builder.Mark leaves that
// part out, logs a warning and keeps building the rest of the symbol.
package seamark
