package seamark

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Paint is a named fill or edge color.
// Name is the SVG/CSS color keyword the paint was resolved from.
type Paint struct {
	Name  string
	Color color.RGBA
}

// IsNone reports whether the paint leaves the region unpainted.
func (p Paint) IsNone() bool {
	return p.Name == "" || p.Name == NoPaint.Name
}

// Common paints
var (
	NoPaint = Paint{Name: "none"}
	Black   = Paint{Name: "black", Color: colornames.Black}
	White   = Paint{Name: "white", Color: colornames.White}
	Red     = Paint{Name: "red", Color: colornames.Red}
	Green   = Paint{Name: "green", Color: colornames.Green}
	Blue    = Paint{Name: "blue", Color: colornames.Blue}
	Yellow  = Paint{Name: "yellow", Color: colornames.Yellow}
	SkyBlue = Paint{Name: "skyblue", Color: colornames.Skyblue}
)

// paintAliases are the single-letter color codes common in plotting tools.
var paintAliases = map[string]string{
	"k": "black",
	"w": "white",
	"r": "red",
	"g": "green",
	"b": "blue",
	"y": "yellow",
	"c": "cyan",
	"m": "magenta",
}

// ParsePaint resolves an SVG color keyword (case-insensitive) or a single
// letter alias. It returns false for unknown names.
func ParsePaint(name string) (Paint, bool) {
	key := fold(name)
	if alias, ok := paintAliases[key]; ok {
		key = alias
	}
	if key == NoPaint.Name {
		return NoPaint, true
	}
	c, ok := colornames.Map[key]
	if !ok {
		return Paint{}, false
	}
	return Paint{Name: key, Color: c}, true
}

// SelectColor returns the primary and secondary hull paints for a topmark
// category following IALA convention. It is total: cardinal topmarks and
// unknown categories share the yellow/black default.
func SelectColor(t Topmark) (primary, secondary Paint) {
	switch t {
	case TopmarkGreen:
		return Green, Green
	case TopmarkGreenBis:
		return Red, Green
	case TopmarkRed:
		return Red, Red
	case TopmarkRedBis:
		return Green, Red
	case TopmarkSpecial:
		return Yellow, Yellow
	case TopmarkSafeWater:
		return White, Red
	case TopmarkDanger:
		return Red, Black
	case TopmarkEmergency:
		return Blue, Yellow
	default:
		return Yellow, Black
	}
}
