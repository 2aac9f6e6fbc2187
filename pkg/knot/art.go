package knot

import (
	"knotweave/pkg/geometry"
	"knotweave/pkg/spline"
)

// Thread is one closed weave path: a looping Hermite curve through the
// sampled crossing points plus a looping step curve giving the over/under
// state. Both are parameterized uniformly over [0, 1] and wrap beyond it.
type Thread struct {
	path *spline.Hermite
	z    *spline.Step
}

// newThread packages one traced sample sequence. The closing knot
// repeats the first sample so the loop joins smoothly.
func newThread(pts, tangents []geometry.Point, zs []float64) (*Thread, error) {
	frames := len(pts)
	xs := make([]float64, frames+1)
	for i := 0; i < frames; i++ {
		xs[i] = float64(i) / float64(frames)
	}
	xs[frames] = 1

	pts = append(pts, pts[0])
	tangents = append(tangents, tangents[0])
	zs = append(zs, zs[0])

	path, err := spline.NewHermite(xs, pts, tangents, true)
	if err != nil {
		return nil, err
	}
	z, err := spline.NewStep(xs, zs, true)
	if err != nil {
		return nil, err
	}
	return &Thread{path: path, z: z}, nil
}

// At returns the thread's position at parameter x. The parameter wraps,
// so x and x+1 evaluate to the same point.
func (t *Thread) At(x float64) geometry.Point {
	return t.path.At(x)
}

// Over reports whether the thread passes over the mesh at parameter x.
func (t *Thread) Over(x float64) bool {
	return t.z.At(x) >= 0.5
}

// Path exposes the underlying position curve.
func (t *Thread) Path() *spline.Hermite { return t.path }

// Z exposes the underlying over/under step curve.
func (t *Thread) Z() *spline.Step { return t.z }

// Samples returns the number of crossing passes recorded on the thread,
// excluding the closing knot.
func (t *Thread) Samples() int {
	return t.path.KnotCount() - 1
}

// Art is the finished decomposition: every thread of the mesh, in the
// order they were traced. It owns its threads outright; nothing in it
// refers back to the discarded traversal graph.
type Art struct {
	threads []*Thread
}

// ThreadCount returns the number of separate threads in the design.
func (a *Art) ThreadCount() int { return len(a.threads) }

// Thread returns the i'th thread.
func (a *Art) Thread(i int) *Thread { return a.threads[i] }

// Threads returns all threads, in trace order.
func (a *Art) Threads() []*Thread { return a.threads }
