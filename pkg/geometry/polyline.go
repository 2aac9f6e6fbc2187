package geometry

import (
	"math"
)

// A Polyline is an open or closed chain of points.
type Polyline []Point

// A LineSegment joins two points.
type LineSegment struct {
	A Point
	B Point
}

func (s LineSegment) Length() float64 {
	return s.A.DistanceFrom(s.B)
}

// Distance returns the distance from p to the segment. Beyond either
// endpoint the nearest endpoint wins.
func (s LineSegment) Distance(p Point) float64 {
	ap := p.Minus(s.A)
	ab := s.A.Minus(s.B)
	mAP := ap.Magnitude()
	mBP := p.Minus(s.B).Magnitude()
	mAB := ab.Magnitude()

	if mAP > mAB || mBP > mAB {
		return math.Min(mAP, mBP)
	}

	return math.Abs(cross(ap, ab)) / mAB
}

func cross(a, b Point) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Simplify reduces the polyline with the Douglas-Peucker algorithm,
// keeping every point that deviates from its chord by epsilon or more.
// The endpoints always survive.
func (points Polyline) Simplify(epsilon float64) Polyline {
	if len(points) < 2 {
		return nil
	}
	first, last := points[0], points[len(points)-1]
	if len(points) == 2 {
		return Polyline{first, last}
	}

	chord := LineSegment{A: first, B: last}
	dmax := 0.0
	index := 0
	for i := 1; i < len(points)-1; i++ {
		if d := chord.Distance(points[i]); d > dmax {
			index = i
			dmax = d
		}
	}

	if dmax < epsilon {
		return Polyline{first, last}
	}

	head := points[:index+1].Simplify(epsilon)
	tail := points[index:].Simplify(epsilon)
	return append(head[:len(head)-1], tail...)
}
