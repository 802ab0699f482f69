package seamark

import (
	"log/slog"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.MarkerSize != 30 || c.ShapeHeight != 12 || c.TopmarkSize != 2 {
		t.Errorf("DefaultConfig() = %+v", c)
	}
	if c.FloatingAngle != -0.3 || c.LightAngle != -0.45 {
		t.Errorf("DefaultConfig() angles = %v, %v", c.FloatingAngle, c.LightAngle)
	}
	if got := NewBuilder().Config(); got != c {
		t.Errorf("NewBuilder().Config() = %+v, want defaults", got)
	}
}

func TestBuilderOptions(t *testing.T) {
	custom := DefaultConfig()
	custom.ShapeHeight = 20

	tests := []struct {
		name  string
		opts  []Option
		check func(Config) bool
	}{
		{"marker size", []Option{WithMarkerSize(50)}, func(c Config) bool { return c.MarkerSize == 50 }},
		{"text shift", []Option{WithTextShift(0.5)}, func(c Config) bool { return c.TextShift == 0.5 }},
		{"floating angle", []Option{WithFloatingAngle(0.1)}, func(c Config) bool { return c.FloatingAngle == 0.1 }},
		{"light angle", []Option{WithLightAngle(1)}, func(c Config) bool { return c.LightAngle == 1 }},
		{"config", []Option{WithConfig(custom)}, func(c Config) bool { return c == custom }},
		{
			"later option wins",
			[]Option{WithConfig(custom), WithMarkerSize(10)},
			func(c Config) bool { return c.ShapeHeight == 20 && c.MarkerSize == 10 },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if c := NewBuilder(tt.opts...).Config(); !tt.check(c) {
				t.Errorf("Config() = %+v", c)
			}
		})
	}
}

func TestWithLogger(t *testing.T) {
	l := slog.Default()
	b := NewBuilder(WithLogger(l))
	if b.log() != l {
		t.Error("WithLogger should set the builder logger")
	}
	if NewBuilder().log() != Logger() {
		t.Error("builder without WithLogger should use the package logger")
	}
}
