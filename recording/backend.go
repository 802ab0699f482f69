package recording

import (
	"io"

	"github.com/gogpu/seamark"
)

// Backend is the interface that all export backends must implement.
// Backends receive symbol draw calls and translate them to their output
// format (SVG elements, a display list, a chart plotter stream, etc.).
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
//
// # Example Backend Registration
//
//	func init() {
//	    recording.Register("svg", func() recording.Backend {
//	        return NewBackend()
//	    })
//	}
type Backend interface {
	seamark.Renderer

	// Begin initializes the backend for a drawing covering bounds.
	// This must be called before any drawing operations.
	Begin(bounds Bounds) error

	// End finalizes the rendering and prepares the output.
	// After End is called, output methods (WriteTo) can be used.
	End() error
}

// WriterBackend is a Backend that can serialize its output.
type WriterBackend interface {
	Backend
	io.WriterTo
}
