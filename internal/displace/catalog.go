package displace

import (
	"fmt"
	"math"
)

// Default geometry parameters, in millimetres and degrees.
const (
	// DefaultDiagonalBase is r, the base radius of the small diagonal
	// offsets. The diagonal magnitude is D = r * sqrt(2), the historical
	// convention where r is the per-axis extent at 45 degrees.
	DefaultDiagonalBase = 2.0

	// DefaultRadialMagnitude is R, the magnitude of the three large
	// radial offsets.
	DefaultRadialMagnitude = 6.0
)

// DefaultRadialAngles are the fixed radial directions in degrees.
func DefaultRadialAngles() [3]float64 { return [3]float64{-30, 90, -150} }

// Entry is one displacement: a label suffix plus a coordinate offset.
type Entry struct {
	Suffix string
	DX     float64
	DY     float64
	DZ     float64
}

// Set is an ordered displacement set. Order determines output ordering of
// the derived points, nothing else.
type Set []Entry

// Geometry holds the closed-form parameters a category's displacement set
// is built from.
type Geometry struct {
	DiagonalBase    float64    // r; diagonal magnitude is r * sqrt(2)
	RadialMagnitude float64    // R
	RadialAngles    [3]float64 // degrees
	MirrorY         bool       // negate the y component of radial entries only
}

// DefaultGeometry returns the standard parameters with the given mirror
// setting.
func DefaultGeometry(mirrorY bool) Geometry {
	return Geometry{
		DiagonalBase:    DefaultDiagonalBase,
		RadialMagnitude: DefaultRadialMagnitude,
		RadialAngles:    DefaultRadialAngles(),
		MirrorY:         mirrorY,
	}
}

// Build constructs the displacement set: four diagonal entries at the
// signed combinations of D = r*sqrt(2), then three radial entries at
// (R*cos a, R*sin a). Mirroring negates only the radial y components;
// diagonals are symmetric already and are never mirrored. All z offsets
// are zero. Build is pure: no I/O, no randomness, and two builds from the
// same Geometry yield bit-identical sets.
func (g Geometry) Build() Set {
	d := g.DiagonalBase * math.Sqrt2

	set := Set{
		{Suffix: "_1", DX: +d, DY: +d}, // up-right
		{Suffix: "_2", DX: -d, DY: +d}, // up-left
		{Suffix: "_3", DX: -d, DY: -d}, // down-left
		{Suffix: "_4", DX: +d, DY: -d}, // down-right
	}

	ySign := 1.0
	if g.MirrorY {
		ySign = -1.0
	}
	for i, deg := range g.RadialAngles {
		a := deg * math.Pi / 180
		set = append(set, Entry{
			Suffix: fmt.Sprintf("_%d", i+5),
			DX:     g.RadialMagnitude * math.Cos(a),
			DY:     ySign * g.RadialMagnitude * math.Sin(a),
		})
	}
	return set
}
