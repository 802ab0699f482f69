package seamark

import (
	"errors"
	"fmt"
)

// Sentinel errors for unresolved symbol parts. They are wrapped by
// *CategoryError and can be tested with errors.Is.
var (
	ErrUnknownShape    = errors.New("seamark: unknown shape category")
	ErrUnknownTopmark  = errors.New("seamark: unknown topmark category")
	ErrUnknownLandmark = errors.New("seamark: unknown landmark category")
	ErrUnknownDanger   = errors.New("seamark: unknown danger category")
	ErrUnknownPaint    = errors.New("seamark: unknown paint color")
	ErrUnknownMarkType = errors.New("seamark: unknown mark type")

	// ErrInvalidPath is returned by Path.Validate.
	ErrInvalidPath = errors.New("seamark: invalid path")
)

// CategoryError reports a symbol part that could not be resolved.
// The part is omitted from the symbol; the rest of the mark is still built.
type CategoryError struct {
	Part  string // "shape", "topmark", "landmark", "danger", "light", "mark"
	Value string // input as given by the caller
	Err   error  // one of the ErrUnknown* sentinels
}

func (e *CategoryError) Error() string {
	return fmt.Sprintf("%v: %q (%s omitted)", e.Err, e.Value, e.Part)
}

func (e *CategoryError) Unwrap() error {
	return e.Err
}
