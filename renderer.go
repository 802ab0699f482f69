package seamark

// Renderer is the drawing surface a Symbol is handed to.
// seamark never rasterizes; implementations draw on whatever 2D surface they
// wrap. The recording package provides one that captures the calls.
type Renderer interface {
	// DrawMarker draws path at pos. The path is in mark-local units and is
	// scaled so that its Extent maps to half of style.Size points.
	DrawMarker(pos Point, path *Path, style Style) error

	// DrawText draws a label.
	DrawText(label Label) error
}

// Style is the paint applied to one marker draw call.
type Style struct {
	Fill      Paint
	Secondary Paint // companion paint of a two-color hull, informational
	Edge      Paint
	EdgeWidth float64
	Size      float64 // nominal marker size in points
}
