// Package pointset reads and writes labelled 3D point lists.
//
// The input format is one point per line: a text label followed by X, Y, Z
// coordinates in millimetres, separated by commas and/or whitespace. Output
// is strict CSV with numeric fields fixed at 3 decimal digits.
package pointset

// Point is a labelled 3D coordinate in millimetres.
// Points are value types; nothing in this module mutates one after
// construction.
type Point struct {
	Label string
	X     float64
	Y     float64
	Z     float64
}

// Translate returns a copy of p shifted by (dx, dy, dz) with suffix appended
// to the label.
func (p Point) Translate(suffix string, dx, dy, dz float64) Point {
	return Point{
		Label: p.Label + suffix,
		X:     p.X + dx,
		Y:     p.Y + dy,
		Z:     p.Z + dz,
	}
}
