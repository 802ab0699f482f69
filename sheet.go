package seamark

// Sheet returns the reference sheet of the symbol set in chart units: the
// hull × topmark matrix (topmarks along X from x=2, hulls along Y every 2
// units), a landmark row at y=15, a danger row at y=19 and three lit marks at
// y=23.
func Sheet() []MarkSpec {
	var specs []MarkSpec
	for i, t := range Topmarks() {
		for j, s := range SheetShapes() {
			specs = append(specs, MarkSpec{
				Position: Pt(float64(i+2), float64(j*2)),
				Type:     s.String(),
				Topmark:  t.String(),
			})
		}
	}
	for i, l := range Landmarks() {
		specs = append(specs, MarkSpec{Position: Pt(float64(i*2+4), 15), Type: l.String()})
	}
	for i, d := range Dangers() {
		specs = append(specs, MarkSpec{Position: Pt(float64(i*2+4), 19), Type: d.String()})
	}
	return append(specs,
		MarkSpec{Position: Pt(3, 23), Type: "spar", Topmark: "east", Floating: true, LightColor: "yellow"},
		MarkSpec{Position: Pt(5, 23), Type: "can", Topmark: "green", LightColor: "green"},
		MarkSpec{Position: Pt(7, 23), Type: "lighthouse", LightColor: "red"},
	)
}

// SheetShapes returns the hull rows of the reference sheet, bottom to top.
func SheetShapes() []Shape {
	return []Shape{ShapeConical, ShapeCan, ShapeSpherical, ShapeSpar, ShapePillar, ShapeTower}
}
