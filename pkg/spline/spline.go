// Package spline provides the interpolation curves the knot threads are
// packaged as: cubic Hermite and Catmull-Rom curves over 2D points, and
// step/linear curves over scalars. Every curve is defined by strictly
// increasing knot parameters; a looping curve wraps its query parameter
// modulo the knot span, a non-looping curve extrapolates along its
// boundary segment.
package spline

import (
	"fmt"
	"math"
	"sort"

	"knotweave/pkg/geometry"
)

// knots holds the shared parameter axis of a curve.
type knots struct {
	xs   []float64
	loop bool
}

func newKnots(xs []float64, loop bool) (knots, error) {
	if len(xs) < 2 {
		return knots{}, fmt.Errorf("spline: need at least 2 knots, have %d", len(xs))
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return knots{}, fmt.Errorf("spline: knots must increase strictly, xs[%d]=%g follows %g", i, xs[i], xs[i-1])
		}
	}
	return knots{xs: xs, loop: loop}, nil
}

// KnotCount returns the number of knots, including the closing knot of a
// looping curve.
func (k *knots) KnotCount() int { return len(k.xs) }

// Loop reports whether the curve wraps outside its knot range.
func (k *knots) Loop() bool { return k.loop }

// segment locates the knot interval for x and the normalized position
// within it. For a looping curve x is first wrapped into the knot span,
// so t always lands in [0, 1); otherwise the boundary interval is used
// and t runs outside [0, 1], extrapolating.
func (k *knots) segment(x float64) (int, float64) {
	n := len(k.xs)
	if k.loop {
		x = wrapRange(x, k.xs[0], k.xs[n-1])
	}
	i := sort.Search(n-1, func(j int) bool { return x < k.xs[j+1] })
	if i > n-2 {
		i = n - 2
	}
	return i, (x - k.xs[i]) / (k.xs[i+1] - k.xs[i])
}

// wrapRange maps x into [start, end) by the span end-start.
func wrapRange(x, start, end float64) float64 {
	span := end - start
	d := math.Mod(x-start, span)
	if d < 0 {
		d += span
	}
	return start + d
}

// index wraps a knot index around the curve, for neighbor lookups on
// looping Catmull-Rom curves.
func (k *knots) index(i int) int {
	n := len(k.xs)
	return ((i % n) + n) % n
}

// Hermite basis functions.
func h1(t float64) float64 { return 2*t*t*t - 3*t*t + 1 }
func h2(t float64) float64 { return -2*t*t*t + 3*t*t }
func h3(t float64) float64 { return t*t*t - 2*t*t + t }
func h4(t float64) float64 { return t*t*t - t*t }

// Hermite is a cubic curve through 2D points with an explicit tangent at
// every knot. Tangents are expressed per segment-parameter, the way the
// weave emits them.
type Hermite struct {
	knots
	ys []geometry.Point
	ms []geometry.Point
}

// NewHermite builds a Hermite curve over the given knots, points, and
// tangents. A looping curve must repeat its first point and tangent at
// the final knot.
func NewHermite(xs []float64, ys, ms []geometry.Point, loop bool) (*Hermite, error) {
	k, err := newKnots(xs, loop)
	if err != nil {
		return nil, err
	}
	if len(ys) != len(xs) || len(ms) != len(xs) {
		return nil, fmt.Errorf("spline: %d knots with %d points and %d tangents", len(xs), len(ys), len(ms))
	}
	if loop && ys[0] != ys[len(ys)-1] {
		return nil, fmt.Errorf("spline: looping curve must close, first point %v != last %v", ys[0], ys[len(ys)-1])
	}
	return &Hermite{knots: k, ys: ys, ms: ms}, nil
}

// At evaluates the curve at parameter x.
func (h *Hermite) At(x float64) geometry.Point {
	i, t := h.segment(x)
	return hermite(h.ms[i], h.ys[i], h.ys[i+1], h.ms[i+1], t)
}

func hermite(m0, y0, y1, m1 geometry.Point, t float64) geometry.Point {
	return y0.Times(h1(t)).
		Plus(y1.Times(h2(t))).
		Plus(m0.Times(h3(t))).
		Plus(m1.Times(h4(t)))
}

// CatmullRom is a cubic curve through 2D points with tangents derived
// from the neighboring points. Knots should be uniformly spaced.
type CatmullRom struct {
	knots
	ys []geometry.Point
}

// NewCatmullRom builds a Catmull-Rom curve. A looping curve must repeat
// its first point at the final knot; the point before the duplicate then
// serves as the wrap-around neighbor.
func NewCatmullRom(xs []float64, ys []geometry.Point, loop bool) (*CatmullRom, error) {
	k, err := newKnots(xs, loop)
	if err != nil {
		return nil, err
	}
	if len(ys) != len(xs) {
		return nil, fmt.Errorf("spline: %d knots with %d points", len(xs), len(ys))
	}
	if loop && ys[0] != ys[len(ys)-1] {
		return nil, fmt.Errorf("spline: looping curve must close, first point %v != last %v", ys[0], ys[len(ys)-1])
	}
	return &CatmullRom{knots: k, ys: ys}, nil
}

// At evaluates the curve at parameter x. Without looping, the end
// segments fall back on their inner neighbor, giving a zero tangent at
// the boundary points.
func (c *CatmullRom) At(x float64) geometry.Point {
	i, t := c.segment(x)
	n := len(c.ys)

	y1 := c.ys[i]
	y2 := c.ys[i+1]

	y0 := y2
	if i > 0 {
		y0 = c.ys[i-1]
	} else if c.loop {
		y0 = c.ys[c.index(i - 2)]
	}
	y3 := y1
	if i+2 < n {
		y3 = c.ys[i+2]
	} else if c.loop {
		y3 = c.ys[c.index(i + 3)]
	}

	t2 := t * t
	t3 := t2 * t
	p := y1.Times(2)
	p = p.Plus(y2.Minus(y0).Times(t))
	p = p.Plus(y0.Times(2).Minus(y1.Times(5)).Plus(y2.Times(4)).Minus(y3).Times(t2))
	p = p.Plus(y1.Times(3).Minus(y0).Minus(y2.Times(3)).Plus(y3).Times(t3))
	return p.Times(0.5)
}

// Step is a nearest-neighbor scalar curve: each query snaps to the
// closer of the two surrounding knot values, with no smoothing. The
// weave uses it for the over/under flag.
type Step struct {
	knots
	ys []float64
}

// NewStep builds a step curve. A looping curve must repeat its first
// value at the final knot.
func NewStep(xs, ys []float64, loop bool) (*Step, error) {
	k, err := newKnots(xs, loop)
	if err != nil {
		return nil, err
	}
	if len(ys) != len(xs) {
		return nil, fmt.Errorf("spline: %d knots with %d values", len(xs), len(ys))
	}
	if loop && ys[0] != ys[len(ys)-1] {
		return nil, fmt.Errorf("spline: looping curve must close, first value %g != last %g", ys[0], ys[len(ys)-1])
	}
	return &Step{knots: k, ys: ys}, nil
}

// At evaluates the curve at parameter x.
func (s *Step) At(x float64) float64 {
	i, t := s.segment(x)
	if t < 0.5 {
		return s.ys[i]
	}
	return s.ys[i+1]
}

// Linear is a piecewise-linear scalar curve.
type Linear struct {
	knots
	ys []float64
}

// NewLinear builds a linear curve. A looping curve must repeat its first
// value at the final knot.
func NewLinear(xs, ys []float64, loop bool) (*Linear, error) {
	k, err := newKnots(xs, loop)
	if err != nil {
		return nil, err
	}
	if len(ys) != len(xs) {
		return nil, fmt.Errorf("spline: %d knots with %d values", len(xs), len(ys))
	}
	if loop && ys[0] != ys[len(ys)-1] {
		return nil, fmt.Errorf("spline: looping curve must close, first value %g != last %g", ys[0], ys[len(ys)-1])
	}
	return &Linear{knots: k, ys: ys}, nil
}

// At evaluates the curve at parameter x.
func (l *Linear) At(x float64) float64 {
	i, t := l.segment(x)
	return l.ys[i] + (l.ys[i+1]-l.ys[i])*t
}
