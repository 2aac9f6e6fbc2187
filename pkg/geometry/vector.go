package geometry

import (
	"math"

	"github.com/jbeda/geom"
)

// Point is the 2D vector used throughout the knot packages. geom.Coord
// already carries the arithmetic (Plus, Minus, Times, Unit, Magnitude);
// this package adds the pieces the weave algorithm needs on top of it.
type Point = geom.Coord

// Vector2 is an alias for code that reads better with vector naming.
type Vector2 = Point

// Angle returns the polar angle of p, in (-pi, pi].
func Angle(p Point) float64 {
	return math.Atan2(p.Y, p.X)
}

// AngleAround returns the polar angle of p as seen from origin.
func AngleAround(origin, p Point) float64 {
	return Angle(p.Minus(origin))
}

// Less is a strict total order on points: by X, then by Y. It exists so
// points can key deterministic ordered scans; equality is exact (no
// epsilon), matching the junction-merging rules.
func Less(a, b Point) bool {
	if a.X == b.X {
		return a.Y < b.Y
	}
	return a.X < b.X
}

// Perp returns p rotated a quarter turn counterclockwise.
func Perp(p Point) Point {
	return Point{X: -p.Y, Y: p.X}
}

// FromPolar returns the point at the given angle and distance from the origin.
func FromPolar(angle, length float64) Point {
	return Point{X: math.Cos(angle) * length, Y: math.Sin(angle) * length}
}

// Mid returns the midpoint of a and b.
func Mid(a, b Point) Point {
	return a.Plus(b.Minus(a).Times(0.5))
}
