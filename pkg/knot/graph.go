package knot

import (
	"fmt"

	"knotweave/pkg/geometry"
)

// port identifies one of the four directional traversal states at a
// stroke midpoint. Ports are pure identifiers; the per-midpoint payload
// (type, normal, junctions) lives in crossing so that "consumed exactly
// once" stays a property of a plain set of keys.
type port struct {
	mid geometry.Point
	dir Dir
}

// less orders ports by midpoint, then direction. It backs the
// deterministic minimum-port scans that replace the original ordered set.
func (p port) less(q port) bool {
	if p.mid == q.mid {
		return p.dir < q.dir
	}
	return geometry.Less(p.mid, q.mid)
}

// portSet tracks which ports remain available to the traversal.
type portSet map[port]struct{}

func (s portSet) has(p port) bool {
	_, ok := s[p]
	return ok
}

func (s portSet) insert(p port) { s[p] = struct{}{} }
func (s portSet) remove(p port) { delete(s, p) }

// min returns the smallest port in the set under the port order. The
// traversal starts each thread here, which pins down thread order for a
// given input.
func (s portSet) min() (port, bool) {
	var best port
	found := false
	for p := range s {
		if !found || p.less(best) {
			best = p
			found = true
		}
	}
	return best, found
}

// crossing is the fixed per-midpoint data shared by all four of its
// ports: the stroke type, the stroke's perpendicular (unrotated, scaled
// to the stroke length), and the junctions at the stroke's two ends.
// left and right follow the original stroke orientation (left = endpoint
// A, right = endpoint B); the traversal decides entry side by comparing
// against these references, not by geometry.
type crossing struct {
	mid    geometry.Point
	typ    StrokeType
	normal geometry.Point
	left   *Junction
	right  *Junction
}

// graph is the derived structure the traversal consumes: the unused-port
// set plus lookups for junctions and crossings. It is scoped to a single
// Weave call and discarded when the Art is built.
type graph struct {
	unused    portSet
	junctions map[geometry.Point]*Junction
	crossings map[geometry.Point]*crossing
}

// buildGraph derives junctions, crossings, and the initial port set from
// the stroke list. Zero-length strokes are rejected, as are strokes whose
// midpoints coincide (duplicate strokes being the common case): a shared
// midpoint would collide in the port set and break the four-ports-per-
// stroke invariant.
func buildGraph(strokes []Stroke) (*graph, error) {
	g := &graph{
		unused:    make(portSet, 4*len(strokes)),
		junctions: make(map[geometry.Point]*Junction),
		crossings: make(map[geometry.Point]*crossing, len(strokes)),
	}

	for i, s := range strokes {
		if s.A == s.B {
			return nil, fmt.Errorf("knot: stroke %d has zero length at (%g, %g)", i, s.A.X, s.A.Y)
		}

		mid := s.Mid()
		if _, dup := g.crossings[mid]; dup {
			return nil, fmt.Errorf("knot: stroke %d duplicates the midpoint (%g, %g) of an earlier stroke", i, mid.X, mid.Y)
		}

		ja := g.junction(s.A)
		ja.add(mid)
		jb := g.junction(s.B)
		jb.add(mid)

		g.crossings[mid] = &crossing{
			mid:    mid,
			typ:    s.Type,
			normal: geometry.Perp(s.B.Minus(s.A)),
			left:   ja,
			right:  jb,
		}

		for _, d := range []Dir{FrontLeft, FrontRight, BackLeft, BackRight} {
			g.unused.insert(port{mid: mid, dir: d})
		}
	}

	for _, j := range g.junctions {
		j.sortMids()
	}
	return g, nil
}

// junction returns the junction at pos, creating it on first use.
// Positions compare by exact equality; callers wanting fuzzy matching
// snap their coordinates first (see pkg/mesh).
func (g *graph) junction(pos geometry.Point) *Junction {
	if j, ok := g.junctions[pos]; ok {
		return j
	}
	j := &Junction{Position: pos}
	g.junctions[pos] = j
	return j
}
