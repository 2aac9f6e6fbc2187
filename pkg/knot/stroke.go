// Package knot decomposes a planar mesh of strokes into the disjoint
// closed threads of a Celtic interlace pattern. Strokes meeting at shared
// endpoints form junctions; each stroke midpoint is a crossing point where
// a thread either crosses over/under, bounces back, or glances off to the
// side, depending on the stroke's type. Weave walks the derived graph and
// returns one closed curve per thread, paired with a step curve that tells
// whether the thread is over or under at any point along it.
package knot

import (
	"knotweave/pkg/geometry"
)

// StrokeType selects the behavior of a thread passing a stroke's midpoint.
type StrokeType int

const (
	// Cross threads pass straight through the midpoint, alternating
	// over and under with the crossing thread.
	Cross StrokeType = iota
	// Bounce threads reflect back toward the junction they came from.
	Bounce
	// Glance threads deflect to the other side of the stroke without
	// passing through it.
	Glance
)

func (t StrokeType) String() string {
	switch t {
	case Cross:
		return "Cross"
	case Bounce:
		return "Bounce"
	case Glance:
		return "Glance"
	}
	return "StrokeType(?)"
}

// Stroke is one input line segment of the mesh. A and B are junction
// positions; strokes sharing an endpoint (by exact equality) meet at the
// same junction. Strokes are never mutated by the algorithm.
type Stroke struct {
	A, B geometry.Point
	Type StrokeType
}

// Angle returns the angle of the stroke, from A to B.
func (s Stroke) Angle() float64 {
	return geometry.Angle(s.B.Minus(s.A))
}

// Length returns the length of the stroke.
func (s Stroke) Length() float64 {
	return s.B.Minus(s.A).Magnitude()
}

// Mid returns the midpoint of the stroke, where its crossing lives.
func (s Stroke) Mid() geometry.Point {
	return geometry.Mid(s.A, s.B)
}
