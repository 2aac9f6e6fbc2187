package knot

import (
	"fmt"
	"math"

	"knotweave/pkg/geometry"
)

// quarter is the 45 degree rotation step used to splay Cross tangents.
const quarter = math.Pi / 4

// Weave decomposes the stroke mesh into its closed interlaced threads.
// It is a pure function of the stroke list: the derived graph lives only
// for the duration of the call, and identical input (same strokes, same
// order) produces identical output. Construction errors (zero-length or
// midpoint-sharing strokes) are returned; a port missing when the
// traversal's own bookkeeping guarantees its presence is an internal
// fault and panics.
func Weave(strokes []Stroke) (*Art, error) {
	g, err := buildGraph(strokes)
	if err != nil {
		return nil, err
	}

	var threads []*Thread

	// Cross midpoints first traversed from below queue their sibling
	// ports here: the other thread through that crossing must go over.
	crossedBelow := make(portSet)

	for len(g.unused) > 0 || len(crossedBelow) > 0 {
		var (
			pts      []geometry.Point
			tangents []geometry.Point
			zs       []float64
		)

		// Starting from a crossed-from-below port keeps the over/under
		// promise made by the thread that went under; otherwise start
		// anywhere, lowest port first.
		up := false
		cur, ok := crossedBelow.min()
		if ok {
			up = true
		} else {
			cur, _ = g.unused.min()
		}

		for {
			if up {
				zs = append(zs, 1)
			} else {
				zs = append(zs, 0)
			}

			c := g.crossings[cur.mid]

			if !up && c.typ == Cross {
				// Going under an untouched crossing: the perpendicular
				// pass through it must later go over. Queue both of its
				// directional states.
				above := port{mid: cur.mid, dir: cur.dir.Glance()}
				if g.unused.has(above) {
					crossedBelow.insert(above)
					diag := port{mid: cur.mid, dir: above.dir.Cross()}
					if !g.unused.has(diag) {
						panic(fmt.Sprintf("knot: crossing %v lost port %v", cur.mid, diag.dir))
					}
					crossedBelow.insert(diag)
				}
			}

			// Consume the entry state, note which junction we came
			// from, then advance to and consume the exit state. Both
			// states of one physical pass count as used.
			g.consume(cur, crossedBelow)
			entry := c.right
			if cur.dir.IsLeft() {
				entry = c.left
			}
			cur.dir = cur.dir.advance(c.typ)
			g.consume(cur, crossedBelow)

			switch c.typ {
			case Cross:
				up = !up
				pts = append(pts, c.mid)
				t := geometry.Angle(c.normal)
				switch cur.dir {
				case FrontLeft:
					t += quarter
				case BackLeft:
					t += 3 * quarter
				case BackRight:
					t -= 3 * quarter
				case FrontRight:
					t -= quarter
				}
				tangents = append(tangents, geometry.FromPolar(t, c.normal.Magnitude()*1.3))
			case Glance:
				off := 0.25
				if !cur.dir.IsFront() {
					off = -0.25
				}
				pts = append(pts, c.mid.Plus(c.normal.Times(off)))
				side := 0.3
				if !cur.dir.IsLeft() {
					side = -0.3
				}
				tangents = append(tangents, c.left.Position.Minus(c.right.Position).Times(side))
			case Bounce:
				side := 0.25
				if !cur.dir.IsLeft() {
					side = -0.25
				}
				pts = append(pts, c.mid.Plus(c.left.Position.Minus(c.right.Position).Times(side)))
				off := 0.3
				if !cur.dir.IsFront() {
					off = -0.3
				}
				tangents = append(tangents, c.normal.Times(off))
			}

			// Bounce exits toward the junction it entered from; the
			// other types exit through the far end of the stroke.
			exit := entry
			if c.typ != Bounce {
				if entry == c.right {
					exit = c.left
				} else {
					exit = c.right
				}
			}

			// Step to the angular neighbor at the exit junction. The
			// turn direction depends on the exit lane, which is what
			// makes adjacent strokes interleave instead of retrace.
			clockwise := cur.dir == FrontLeft || cur.dir == BackRight
			nextMid := exit.next(c.mid, clockwise)

			// Try entering the neighbor from the right first.
			dir := BackRight
			if clockwise {
				dir = FrontRight
			}
			cand := port{mid: nextMid, dir: dir}
			if !g.unused.has(cand) {
				cand.dir = dir.Cross()
				if !g.unused.has(cand) {
					break // nowhere to go; the thread is complete
				}
				cur = cand
			} else {
				cur = cand
				if g.crossings[nextMid].right != exit {
					// Entered from the wrong side; flip to the
					// matching lane.
					cand.dir = cand.dir.Cross()
					if !g.unused.has(cand) {
						break
					}
					cur = cand
				}
			}
		}

		th, err := newThread(pts, tangents, zs)
		if err != nil {
			return nil, fmt.Errorf("knot: packaging thread %d: %w", len(threads), err)
		}
		threads = append(threads, th)
	}

	return &Art{threads: threads}, nil
}

// consume marks a port as used in both traversal sets. The traversal only
// consumes ports it has proven present, so absence is graph corruption.
func (g *graph) consume(p port, crossedBelow portSet) {
	crossedBelow.remove(p)
	if !g.unused.has(p) {
		panic(fmt.Sprintf("knot: port (%g, %g)/%v consumed twice", p.mid.X, p.mid.Y, p.dir))
	}
	g.unused.remove(p)
}
