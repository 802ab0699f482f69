package recording

import (
	"math"
	"strings"
	"testing"

	"github.com/gogpu/seamark"
)

func recordSheet(t *testing.T, specs ...seamark.MarkSpec) *Recording {
	t.Helper()
	rec := NewRecorder()
	for _, sym := range seamark.NewBuilder().Marks(specs) {
		if err := sym.Render(rec); err != nil {
			t.Fatalf("Render: %v", err)
		}
	}
	return rec.FinishRecording()
}

func TestRecorderCapturesSymbols(t *testing.T) {
	rec := NewRecorder()
	sym := seamark.NewBuilder().Mark(seamark.MarkSpec{
		Position: seamark.Pt(2, 4), Type: "can", Topmark: "red", Label: "R2",
	})
	if err := sym.Render(rec); err != nil {
		t.Fatal(err)
	}
	if rec.Len() != len(sym.Layers)+1 {
		t.Fatalf("Len() = %d, want %d", rec.Len(), len(sym.Layers)+1)
	}

	r := rec.FinishRecording()
	cmds := r.Commands()
	for i, l := range sym.Layers {
		mc, ok := cmds[i].(MarkerCommand)
		if !ok {
			t.Fatalf("command %d is %v, want DrawMarker", i, cmds[i].Type())
		}
		if mc.Style != l.Style {
			t.Errorf("command %d style = %+v, want %+v", i, mc.Style, l.Style)
		}
		if !r.Resources().GetPath(mc.Path).Equal(l.Path) {
			t.Errorf("command %d path differs from layer %s", i, l.Name)
		}
	}
	tc, ok := cmds[len(cmds)-1].(TextCommand)
	if !ok || tc.Label.Text != "R2" {
		t.Errorf("last command = %#v, want the label", cmds[len(cmds)-1])
	}
}

func TestRecordingBounds(t *testing.T) {
	if b := NewRecorder().FinishRecording().Bounds(); !b.Empty() {
		t.Errorf("empty recording bounds = %+v", b)
	}

	r := recordSheet(t,
		seamark.MarkSpec{Position: seamark.Pt(2, 0), Type: "spar", Topmark: "green"},
		seamark.MarkSpec{Position: seamark.Pt(7, 23), Type: "lighthouse"},
		seamark.MarkSpec{Position: seamark.Pt(-1, 5), Type: "wreck"},
	)
	want := Bounds{MinX: -1, MinY: 0, MaxX: 7, MaxY: 23}
	if got := r.Bounds(); got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
	if r.Bounds().Empty() {
		t.Error("Bounds().Empty() = true")
	}
	if !math.IsInf(emptyBounds().MinX, 1) {
		t.Error("emptyBounds should start at +Inf")
	}
}

func TestPlayback(t *testing.T) {
	r := recordSheet(t,
		seamark.MarkSpec{Position: seamark.Pt(1, 1), Type: "tower", Topmark: "south", Label: "S"},
		seamark.MarkSpec{Position: seamark.Pt(3, 1), Type: "church", Label: "St Mary"},
	)

	mock := newMockBackend("mock")
	if err := r.Playback(mock); err != nil {
		t.Fatalf("Playback: %v", err)
	}
	if mock.beginCalls != 1 || mock.endCalls != 1 {
		t.Errorf("Begin/End calls = %d/%d, want 1/1", mock.beginCalls, mock.endCalls)
	}
	if mock.bounds != r.Bounds() {
		t.Errorf("Begin bounds = %+v, want %+v", mock.bounds, r.Bounds())
	}
	// tower: reference, body, band, ring; church: glyph
	if len(mock.markers) != 5 {
		t.Errorf("markers = %d, want 5", len(mock.markers))
	}
	if len(mock.labels) != 2 || mock.labels[1] != "St Mary" {
		t.Errorf("labels = %v", mock.labels)
	}

	// A recording can be replayed.
	again := newMockBackend("again")
	if err := r.Playback(again); err != nil {
		t.Fatal(err)
	}
	if len(again.markers) != len(mock.markers) {
		t.Error("second playback differs")
	}
}

func TestPlaybackError(t *testing.T) {
	r := recordSheet(t, seamark.MarkSpec{Type: "can", Topmark: "green"})

	mock := newMockBackend("mock")
	mock.failAt = 1
	err := r.Playback(mock)
	if err == nil {
		t.Fatal("expected playback error")
	}
	if !strings.Contains(err.Error(), "command 1 (DrawMarker)") {
		t.Errorf("err = %v, want the failing command index", err)
	}
	if mock.endCalls != 0 {
		t.Errorf("End calls = %d, want 0 after a failure", mock.endCalls)
	}
	if len(mock.markers) != 1 {
		t.Errorf("markers drawn before the failure = %d, want 1", len(mock.markers))
	}
}

func TestRecordingIsolatedFromCaller(t *testing.T) {
	rec := NewRecorder()
	p := seamark.Rectangle(2, 2, 0)
	if err := rec.DrawMarker(seamark.Pt(0, 0), p, seamark.Style{Size: 10}); err != nil {
		t.Fatal(err)
	}
	r := rec.FinishRecording()
	ref := r.Commands()[0].(MarkerCommand).Path
	if r.Resources().GetPath(ref) == p {
		t.Error("recording aliases the caller's path")
	}
}
