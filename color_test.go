package seamark

import (
	"testing"

	"golang.org/x/image/colornames"
)

func TestSelectColor(t *testing.T) {
	tests := []struct {
		topmark   Topmark
		primary   Paint
		secondary Paint
	}{
		{TopmarkGreen, Green, Green},
		{TopmarkGreenBis, Red, Green},
		{TopmarkRed, Red, Red},
		{TopmarkRedBis, Green, Red},
		{TopmarkSpecial, Yellow, Yellow},
		{TopmarkSafeWater, White, Red},
		{TopmarkDanger, Red, Black},
		{TopmarkEmergency, Blue, Yellow},
		{TopmarkNorth, Yellow, Black},
		{TopmarkSouth, Yellow, Black},
		{TopmarkEast, Yellow, Black},
		{TopmarkWest, Yellow, Black},
		{TopmarkUnknown, Yellow, Black},
		{Topmark(200), Yellow, Black},
	}
	for _, tt := range tests {
		t.Run(tt.topmark.String(), func(t *testing.T) {
			p, s := SelectColor(tt.topmark)
			if p != tt.primary || s != tt.secondary {
				t.Errorf("SelectColor(%v) = (%s, %s), want (%s, %s)",
					tt.topmark, p.Name, s.Name, tt.primary.Name, tt.secondary.Name)
			}
			// Deterministic.
			p2, s2 := SelectColor(tt.topmark)
			if p2 != p || s2 != s {
				t.Error("SelectColor is not deterministic")
			}
		})
	}
}

func TestParsePaint(t *testing.T) {
	tests := []struct {
		in   string
		want Paint
		ok   bool
	}{
		{"yellow", Yellow, true},
		{"Red", Red, true},
		{"k", Black, true},
		{"g", Green, true},
		{"SkyBlue", SkyBlue, true},
		{"orange", Paint{Name: "orange", Color: colornames.Orange}, true},
		{"none", NoPaint, true},
		{"chartreuse-ish", Paint{}, false},
		{"", Paint{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParsePaint(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParsePaint(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestPaintIsNone(t *testing.T) {
	if !NoPaint.IsNone() || !(Paint{}).IsNone() {
		t.Error("NoPaint and the zero Paint should be none")
	}
	if Black.IsNone() {
		t.Error("Black.IsNone() = true")
	}
}
