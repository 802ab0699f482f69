// Package recording captures seamark symbols as draw commands that can be
// played back to export backends.
//
// A Recorder implements seamark.Renderer. Symbols are rendered into it, the
// finished Recording holds the commands with their pooled paths, and Playback
// hands them to any Backend:
//
//	rec := recording.NewRecorder()
//	for _, sym := range builder.Marks(specs) {
//	    _ = sym.Render(rec)
//	}
//	r := rec.FinishRecording()
//
//	backend, err := recording.NewBackend("svg")
//	if err != nil {
//	    return err
//	}
//	if err := r.Playback(backend); err != nil {
//	    return err
//	}
//	_, err = backend.(recording.WriterBackend).WriteTo(w)
//
// # Backend Registration
//
// Backends register themselves by name in init(), database/sql style. Import a
// backend package with a blank identifier to make it available:
//
//	import _ "github.com/gogpu/seamark/recording/backends/svg"
//
// Paths are cloned into a ResourcePool when recorded, so a Recording is
// immutable and can be played back any number of times.
package recording
