package recording

import (
	"fmt"
	"math"

	"github.com/gogpu/seamark"
)

// Recorder captures symbol draw calls as commands.
// It implements seamark.Renderer, so a Symbol can be rendered into it
// directly. Use FinishRecording to obtain an immutable Recording that can be
// replayed to different backends.
//
// Example:
//
//	rec := recording.NewRecorder()
//	b := seamark.NewBuilder()
//	sym := b.Mark(seamark.MarkSpec{Type: "can", Topmark: "red"})
//	_ = sym.Render(rec)
//	r := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands  []Command
	resources *ResourcePool
	bounds    Bounds
}

var _ seamark.Renderer = (*Recorder)(nil)

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		commands:  make([]Command, 0, 256),
		resources: NewResourcePool(),
		bounds:    emptyBounds(),
	}
}

// DrawMarker implements seamark.Renderer.
func (r *Recorder) DrawMarker(pos seamark.Point, path *seamark.Path, style seamark.Style) error {
	ref := r.resources.AddPath(path)
	r.commands = append(r.commands, MarkerCommand{Position: pos, Path: ref, Style: style})
	r.bounds = r.bounds.extend(pos)
	return nil
}

// DrawText implements seamark.Renderer.
func (r *Recorder) DrawText(label seamark.Label) error {
	r.commands = append(r.commands, TextCommand{Label: label})
	r.bounds = r.bounds.extend(label.Position)
	return nil
}

// Len returns the number of commands recorded so far.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// FinishRecording returns an immutable Recording containing all recorded commands.
// After calling FinishRecording, the Recorder should not be used again.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		commands:  r.commands,
		resources: r.resources,
		bounds:    r.bounds,
	}
}

// Bounds is an axis-aligned box in chart units.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

func emptyBounds() Bounds {
	return Bounds{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
}

// Empty reports whether no point has been added to b.
func (b Bounds) Empty() bool {
	return b.MinX > b.MaxX || b.MinY > b.MaxY
}

func (b Bounds) extend(p seamark.Point) Bounds {
	return Bounds{
		MinX: math.Min(b.MinX, p.X),
		MinY: math.Min(b.MinY, p.Y),
		MaxX: math.Max(b.MaxX, p.X),
		MaxY: math.Max(b.MaxY, p.Y),
	}
}

// Recording is an immutable container for recorded commands.
// It can be replayed to any Backend implementation.
type Recording struct {
	commands  []Command
	resources *ResourcePool
	bounds    Bounds
}

// Commands returns the recorded commands in draw order.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Bounds returns the box enclosing every recorded position.
func (r *Recording) Bounds() Bounds {
	return r.bounds
}

// Playback replays all commands to the given backend, between Begin and End.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(r.bounds); err != nil {
		return err
	}

	for i, cmd := range r.commands {
		var err error
		switch c := cmd.(type) {
		case MarkerCommand:
			err = backend.DrawMarker(c.Position, r.resources.GetPath(c.Path), c.Style)
		case TextCommand:
			err = backend.DrawText(c.Label)
		}
		if err != nil {
			return fmt.Errorf("recording: command %d (%v): %w", i, cmd.Type(), err)
		}
	}

	seamark.Logger().Debug("recording: playback finished", "commands", len(r.commands))
	return backend.End()
}
