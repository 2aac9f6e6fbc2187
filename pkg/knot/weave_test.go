package knot_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"knotweave/pkg/geometry"
	"knotweave/pkg/knot"
)

func pt(x, y float64) geometry.Point {
	return geometry.Point{X: x, Y: y}
}

var approx = cmp.Comparer(func(x, y float64) bool {
	return math.Abs(x-y) < 1e-9
})

// knotSamples reads back a thread's sample sequence by evaluating at the
// uniform knot parameters, excluding the closing knot.
func knotSamples(th *knot.Thread) (pts []geometry.Point, over []bool) {
	n := th.Samples()
	for i := 0; i < n; i++ {
		x := float64(i) / float64(n)
		pts = append(pts, th.At(x))
		over = append(over, th.Over(x))
	}
	return pts, over
}

func checkPortConservation(t *testing.T, art *knot.Art, strokeCount int) {
	t.Helper()
	total := 0
	for _, th := range art.Threads() {
		total += th.Samples() * 2 // each pass consumes an entry and an exit port
	}
	if total != 4*strokeCount {
		t.Errorf("threads consumed %d ports, want %d", total, 4*strokeCount)
	}
}

func checkClosure(t *testing.T, art *knot.Art) {
	t.Helper()
	for i, th := range art.Threads() {
		if diff := cmp.Diff(th.At(0), th.At(1), approx); diff != "" {
			t.Errorf("thread %d not closed: %s", i, diff)
		}
		if th.Over(0) != th.Over(1) {
			t.Errorf("thread %d step curve differs at 0 and 1", i)
		}
	}
}

// checkCrossAlternation verifies that each Cross midpoint visited twice
// was passed once over and once under. Cross samples sit exactly on the
// stroke midpoint, so they can be matched back to their stroke.
func checkCrossAlternation(t *testing.T, art *knot.Art, strokes []knot.Stroke) {
	t.Helper()
	mids := make(map[geometry.Point][]bool)
	for _, s := range strokes {
		if s.Type == knot.Cross {
			mids[s.Mid()] = nil
		}
	}
	for _, th := range art.Threads() {
		pts, over := knotSamples(th)
		for i, p := range pts {
			if _, ok := mids[p]; ok {
				mids[p] = append(mids[p], over[i])
			}
		}
	}
	for mid, passes := range mids {
		if len(passes) == 0 {
			continue
		}
		if len(passes) != 2 {
			t.Errorf("crossing %v passed %d times, want 2", mid, len(passes))
			continue
		}
		if passes[0] == passes[1] {
			t.Errorf("crossing %v passed twice with the same over/under state", mid)
		}
	}
}

func TestWeaveRadialCrossings(t *testing.T) {
	// Four Cross strokes radiating from one shared junction. The walk
	// passes every midpoint twice, once under and once over, so the
	// single closed thread carries eight samples (two per stroke, all
	// 16 ports consumed), not one sample per stroke.
	strokes := []knot.Stroke{
		{A: pt(0, 0), B: pt(1, 0), Type: knot.Cross},
		{A: pt(0, 0), B: pt(0, 1), Type: knot.Cross},
		{A: pt(0, 0), B: pt(-1, 0), Type: knot.Cross},
		{A: pt(0, 0), B: pt(0, -1), Type: knot.Cross},
	}
	art, err := knot.Weave(strokes)
	if err != nil {
		t.Fatalf("Weave: %s", err)
	}
	if art.ThreadCount() != 1 {
		t.Fatalf("got %d threads, want 1", art.ThreadCount())
	}

	pts, over := knotSamples(art.Thread(0))
	wantPts := []geometry.Point{
		pt(-0.5, 0), pt(-0.5, 0), pt(0, 0.5), pt(0, 0.5),
		pt(0.5, 0), pt(0.5, 0), pt(0, -0.5), pt(0, -0.5),
	}
	if diff := cmp.Diff(wantPts, pts, approx); diff != "" {
		t.Errorf("sample points: %s", diff)
	}
	wantOver := []bool{false, true, false, true, false, true, false, true}
	if diff := cmp.Diff(wantOver, over); diff != "" {
		t.Errorf("over/under sequence: %s", diff)
	}

	checkPortConservation(t, art, len(strokes))
	checkClosure(t, art)
	checkCrossAlternation(t, art, strokes)
}

func TestWeaveIsolatedStroke(t *testing.T) {
	// Both junctions have degree 1, so the angular step always returns
	// to the same midpoint: the stroke loops onto itself through its
	// own four ports.
	strokes := []knot.Stroke{{A: pt(0, 0), B: pt(1, 0), Type: knot.Cross}}
	art, err := knot.Weave(strokes)
	if err != nil {
		t.Fatalf("Weave: %s", err)
	}
	if art.ThreadCount() != 1 {
		t.Fatalf("got %d threads, want 1", art.ThreadCount())
	}
	th := art.Thread(0)
	if th.Samples() != 2 {
		t.Fatalf("got %d samples, want 2", th.Samples())
	}

	pts, over := knotSamples(th)
	if diff := cmp.Diff([]geometry.Point{pt(0.5, 0), pt(0.5, 0)}, pts, approx); diff != "" {
		t.Errorf("sample points: %s", diff)
	}
	if diff := cmp.Diff([]bool{false, true}, over); diff != "" {
		t.Errorf("over/under sequence: %s", diff)
	}

	// The two passes leave at -45 and 225 degrees, mirror images across
	// the stroke axis, so between the knots their sideways components
	// cancel and the curve bulges along the stroke: half-way out by
	// h3(1/2) = 1/8 of the tangent difference, tangent length being the
	// stroke length scaled 1.3.
	bulge := 1.3 * math.Sqrt2 / 2 / 4
	if diff := cmp.Diff(pt(0.5+bulge, 0), th.At(0.25), approx); diff != "" {
		t.Errorf("At(0.25): %s", diff)
	}

	checkPortConservation(t, art, len(strokes))
	checkClosure(t, art)
}

func TestWeaveSquare(t *testing.T) {
	strokes := []knot.Stroke{
		{A: pt(0, 0), B: pt(1, 0), Type: knot.Cross},
		{A: pt(1, 0), B: pt(1, 1), Type: knot.Cross},
		{A: pt(0, 1), B: pt(1, 1), Type: knot.Cross},
		{A: pt(0, 0), B: pt(0, 1), Type: knot.Cross},
	}
	art, err := knot.Weave(strokes)
	if err != nil {
		t.Fatalf("Weave: %s", err)
	}
	if art.ThreadCount() != 2 {
		t.Fatalf("got %d threads, want 2", art.ThreadCount())
	}

	pts0, over0 := knotSamples(art.Thread(0))
	if diff := cmp.Diff([]geometry.Point{pt(0, 0.5), pt(0.5, 1), pt(1, 0.5), pt(0.5, 0)}, pts0, approx); diff != "" {
		t.Errorf("thread 0 points: %s", diff)
	}
	if diff := cmp.Diff([]bool{false, true, false, true}, over0); diff != "" {
		t.Errorf("thread 0 over/under: %s", diff)
	}

	pts1, over1 := knotSamples(art.Thread(1))
	if diff := cmp.Diff([]geometry.Point{pt(0, 0.5), pt(0.5, 0), pt(1, 0.5), pt(0.5, 1)}, pts1, approx); diff != "" {
		t.Errorf("thread 1 points: %s", diff)
	}
	if diff := cmp.Diff([]bool{true, false, true, false}, over1); diff != "" {
		t.Errorf("thread 1 over/under: %s", diff)
	}

	checkPortConservation(t, art, len(strokes))
	checkClosure(t, art)
	checkCrossAlternation(t, art, strokes)
}

func gridStrokes(n int, typ knot.StrokeType) []knot.Stroke {
	var strokes []knot.Stroke
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			if x+1 < n {
				strokes = append(strokes, knot.Stroke{A: pt(float64(x), float64(y)), B: pt(float64(x + 1), float64(y)), Type: typ})
			}
			if y+1 < n {
				strokes = append(strokes, knot.Stroke{A: pt(float64(x), float64(y)), B: pt(float64(x), float64(y + 1)), Type: typ})
			}
		}
	}
	return strokes
}

func TestWeaveGrid(t *testing.T) {
	strokes := gridStrokes(3, knot.Cross)
	art, err := knot.Weave(strokes)
	if err != nil {
		t.Fatalf("Weave: %s", err)
	}
	if art.ThreadCount() != 3 {
		t.Fatalf("got %d threads, want 3", art.ThreadCount())
	}
	for i, th := range art.Threads() {
		if th.Samples() != 8 {
			t.Errorf("thread %d has %d samples, want 8", i, th.Samples())
		}
	}

	// The first thread circles the grid's inner diamond.
	pts0, _ := knotSamples(art.Thread(0))
	want := []geometry.Point{
		pt(0, 0.5), pt(0.5, 1), pt(1, 1.5), pt(1.5, 2),
		pt(2, 1.5), pt(1.5, 1), pt(1, 0.5), pt(0.5, 0),
	}
	if diff := cmp.Diff(want, pts0, approx); diff != "" {
		t.Errorf("thread 0 points: %s", diff)
	}

	checkPortConservation(t, art, len(strokes))
	checkClosure(t, art)
	checkCrossAlternation(t, art, strokes)
}

func TestWeaveMixedTypes(t *testing.T) {
	// Bounce and Glance strokes fold the walk back through the square,
	// joining everything into a single thread.
	strokes := []knot.Stroke{
		{A: pt(0, 0), B: pt(1, 0), Type: knot.Bounce},
		{A: pt(1, 0), B: pt(1, 1), Type: knot.Glance},
		{A: pt(0, 1), B: pt(1, 1), Type: knot.Cross},
		{A: pt(0, 0), B: pt(0, 1), Type: knot.Cross},
	}
	art, err := knot.Weave(strokes)
	if err != nil {
		t.Fatalf("Weave: %s", err)
	}
	if art.ThreadCount() != 1 {
		t.Fatalf("got %d threads, want 1", art.ThreadCount())
	}

	pts, over := knotSamples(art.Thread(0))
	wantPts := []geometry.Point{
		pt(0, 0.5), pt(0.5, 1), pt(1.25, 0.5), pt(0.75, 0),
		pt(0.75, 0.5), pt(0.5, 1), pt(0, 0.5), pt(0.25, 0),
	}
	if diff := cmp.Diff(wantPts, pts, approx); diff != "" {
		t.Errorf("sample points: %s", diff)
	}
	wantOver := []bool{false, true, false, false, false, false, true, false}
	if diff := cmp.Diff(wantOver, over); diff != "" {
		t.Errorf("over/under sequence: %s", diff)
	}

	checkPortConservation(t, art, len(strokes))
	checkClosure(t, art)
	checkCrossAlternation(t, art, strokes)
}

func TestWeaveDeterminism(t *testing.T) {
	strokes := gridStrokes(4, knot.Cross)
	first, err := knot.Weave(strokes)
	if err != nil {
		t.Fatalf("Weave: %s", err)
	}
	second, err := knot.Weave(strokes)
	if err != nil {
		t.Fatalf("Weave: %s", err)
	}
	if first.ThreadCount() != second.ThreadCount() {
		t.Fatalf("thread counts differ: %d vs %d", first.ThreadCount(), second.ThreadCount())
	}
	for i := range first.Threads() {
		p1, o1 := knotSamples(first.Thread(i))
		p2, o2 := knotSamples(second.Thread(i))
		if diff := cmp.Diff(p1, p2); diff != "" {
			t.Errorf("thread %d points differ between runs: %s", i, diff)
		}
		if diff := cmp.Diff(o1, o2); diff != "" {
			t.Errorf("thread %d over/under differs between runs: %s", i, diff)
		}
	}
}

func TestWeaveRejectsBadInput(t *testing.T) {
	if _, err := knot.Weave([]knot.Stroke{{A: pt(0, 0), B: pt(0, 0)}}); err == nil {
		t.Error("zero-length stroke accepted")
	}
	dup := []knot.Stroke{
		{A: pt(0, 0), B: pt(2, 2), Type: knot.Cross},
		{A: pt(0, 0), B: pt(2, 2), Type: knot.Cross},
	}
	if _, err := knot.Weave(dup); err == nil {
		t.Error("duplicate stroke accepted")
	}
}
