package recording

import (
	"testing"

	"github.com/gogpu/seamark"
)

func TestResourcePoolAddPath(t *testing.T) {
	pool := NewResourcePool()
	if pool.PathCount() != 0 {
		t.Fatalf("new pool has %d paths", pool.PathCount())
	}

	p := seamark.Rectangle(12, 10, 0)
	ref := pool.AddPath(p)
	if ref != 0 || !ref.IsValid() {
		t.Errorf("first ref = %d", ref)
	}

	got := pool.GetPath(ref)
	if got == p {
		t.Error("pool should store a clone")
	}
	if !got.Equal(p) {
		t.Error("pooled path differs from the original")
	}

	if ref := pool.AddPath(seamark.Circle(1, 0)); ref != 1 {
		t.Errorf("second ref = %d, want 1", ref)
	}
	if pool.PathCount() != 2 {
		t.Errorf("PathCount() = %d, want 2", pool.PathCount())
	}
}

func TestResourcePoolNilAndInvalid(t *testing.T) {
	pool := NewResourcePool()

	ref := pool.AddPath(nil)
	if pool.GetPath(ref) != nil {
		t.Error("nil path should be kept as nil")
	}
	if pool.PathCount() != 1 {
		t.Errorf("PathCount() = %d, want 1", pool.PathCount())
	}

	if pool.GetPath(PathRef(InvalidRef)) != nil {
		t.Error("GetPath(InvalidRef) should be nil")
	}
	if PathRef(InvalidRef).IsValid() {
		t.Error("InvalidRef.IsValid() = true")
	}
	if pool.GetPath(42) != nil {
		t.Error("out of range ref should be nil")
	}
}

func TestCommandType(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{MarkerCommand{}, "DrawMarker"},
		{TextCommand{}, "DrawText"},
	}
	for _, tt := range tests {
		if got := tt.cmd.Type().String(); got != tt.want {
			t.Errorf("Type().String() = %q, want %q", got, tt.want)
		}
	}
	if got := CommandType(200).String(); got != "Unknown" {
		t.Errorf("CommandType(200).String() = %q", got)
	}
}
