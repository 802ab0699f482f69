package seamark

import (
	"strings"

	"golang.org/x/text/cases"
)

// Topmark identifies the topmark category of a sea mark. The zero value is
// TopmarkUnknown.
type Topmark uint8

// Topmark categories.
const (
	TopmarkUnknown Topmark = iota
	TopmarkGreen
	TopmarkGreenBis
	TopmarkRed
	TopmarkRedBis
	TopmarkNorth
	TopmarkSouth
	TopmarkEast
	TopmarkWest
	TopmarkDanger
	TopmarkSpecial
	TopmarkSafeWater
	TopmarkEmergency
)

var topmarkNames = [...]string{
	TopmarkUnknown:   "unknown",
	TopmarkGreen:     "green",
	TopmarkGreenBis:  "green_bis",
	TopmarkRed:       "red",
	TopmarkRedBis:    "red_bis",
	TopmarkNorth:     "north",
	TopmarkSouth:     "south",
	TopmarkEast:      "east",
	TopmarkWest:      "west",
	TopmarkDanger:    "danger",
	TopmarkSpecial:   "special",
	TopmarkSafeWater: "safe_water",
	TopmarkEmergency: "emergency",
}

func (t Topmark) String() string {
	if int(t) < len(topmarkNames) {
		return topmarkNames[t]
	}
	return topmarkNames[TopmarkUnknown]
}

// Topmarks lists every known topmark in chart legend order.
func Topmarks() []Topmark {
	return []Topmark{
		TopmarkGreen, TopmarkGreenBis, TopmarkRed, TopmarkRedBis,
		TopmarkNorth, TopmarkSouth, TopmarkEast, TopmarkWest,
		TopmarkDanger, TopmarkSpecial, TopmarkSafeWater, TopmarkEmergency,
	}
}

// Shape identifies the hull shape of a buoy or beacon.
type Shape uint8

// Shape categories.
const (
	ShapeUnknown Shape = iota
	ShapeSpar
	ShapeCan
	ShapeSpherical
	ShapeConical
	ShapePillar
	ShapeTower
)

var shapeNames = [...]string{
	ShapeUnknown:   "unknown",
	ShapeSpar:      "spar",
	ShapeCan:       "can",
	ShapeSpherical: "spherical",
	ShapeConical:   "conical",
	ShapePillar:    "pillar",
	ShapeTower:     "tower",
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return shapeNames[ShapeUnknown]
}

// Shapes lists every known shape.
func Shapes() []Shape {
	return []Shape{ShapeSpar, ShapeCan, ShapeSpherical, ShapeConical, ShapePillar, ShapeTower}
}

// Landmark identifies a conspicuous land feature.
type Landmark uint8

// Landmark categories.
const (
	LandmarkUnknown Landmark = iota
	LandmarkLighthouse
	LandmarkMajorLighthouse
	LandmarkLandTower
	LandmarkWaterTower
	LandmarkChurch
)

var landmarkNames = [...]string{
	LandmarkUnknown:         "unknown",
	LandmarkLighthouse:      "lighthouse",
	LandmarkMajorLighthouse: "major_lighthouse",
	LandmarkLandTower:       "land_tower",
	LandmarkWaterTower:      "water_tower",
	LandmarkChurch:          "church",
}

func (l Landmark) String() string {
	if int(l) < len(landmarkNames) {
		return landmarkNames[l]
	}
	return landmarkNames[LandmarkUnknown]
}

// Landmarks lists every known landmark.
func Landmarks() []Landmark {
	return []Landmark{
		LandmarkLighthouse, LandmarkMajorLighthouse, LandmarkLandTower,
		LandmarkWaterTower, LandmarkChurch,
	}
}

// Danger identifies a hazard symbol.
type Danger uint8

// Danger categories.
const (
	DangerUnknown Danger = iota
	DangerWreck
	DangerWreckDepth
	DangerGeneric
	DangerRockCovers
	DangerRockDepth
)

var dangerNames = [...]string{
	DangerUnknown:    "unknown",
	DangerWreck:      "wreck",
	DangerWreckDepth: "wreck_depth",
	DangerGeneric:    "danger",
	DangerRockCovers: "rock_covers",
	DangerRockDepth:  "rock_depth",
}

func (d Danger) String() string {
	if int(d) < len(dangerNames) {
		return dangerNames[d]
	}
	return dangerNames[DangerUnknown]
}

// Dangers lists every known danger.
func Dangers() []Danger {
	return []Danger{DangerWreck, DangerWreckDepth, DangerGeneric, DangerRockCovers, DangerRockDepth}
}

// Kind classifies a mark type string.
type Kind uint8

// Mark kinds.
const (
	KindUnknown Kind = iota
	KindSeaMark
	KindLandmark
	KindDanger
)

// fold normalizes a category name for case-insensitive lookup.
// A Caser is stateful, so a fresh one is used per call.
func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// lookup builds a case-folded name index, skipping the unknown entry.
func lookup[T ~uint8](names []string) map[string]T {
	m := make(map[string]T, len(names))
	for i, name := range names[1:] {
		m[name] = T(i + 1)
	}
	return m
}

var (
	topmarkByName  = lookup[Topmark](topmarkNames[:])
	shapeByName    = lookup[Shape](shapeNames[:])
	landmarkByName = lookup[Landmark](landmarkNames[:])
	dangerByName   = lookup[Danger](dangerNames[:])
)

// ParseTopmark matches name case-insensitively. Unknown names return
// TopmarkUnknown and false.
func ParseTopmark(name string) (Topmark, bool) {
	t, ok := topmarkByName[fold(name)]
	return t, ok
}

// ParseShape matches name case-insensitively.
func ParseShape(name string) (Shape, bool) {
	s, ok := shapeByName[fold(name)]
	return s, ok
}

// ParseLandmark matches name case-insensitively.
func ParseLandmark(name string) (Landmark, bool) {
	l, ok := landmarkByName[fold(name)]
	return l, ok
}

// ParseDanger matches name case-insensitively.
func ParseDanger(name string) (Danger, bool) {
	d, ok := dangerByName[fold(name)]
	return d, ok
}

// ParseKind reports whether a mark type names a hull shape, a landmark or a
// danger. "danger" is a danger mark here; as a topmark it is parsed by
// ParseTopmark.
func ParseKind(name string) Kind {
	key := fold(name)
	switch {
	case shapeByName[key] != ShapeUnknown:
		return KindSeaMark
	case dangerByName[key] != DangerUnknown:
		return KindDanger
	case landmarkByName[key] != LandmarkUnknown:
		return KindLandmark
	default:
		return KindUnknown
	}
}
