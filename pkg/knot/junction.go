package knot

import (
	"sort"

	"knotweave/pkg/geometry"
)

// Junction is a shared stroke endpoint. It records the midpoint of every
// incident stroke; after construction the list is sorted by polar angle
// around the junction so that neighboring strokes can be walked clockwise
// or counterclockwise.
type Junction struct {
	Position geometry.Point
	mids     []geometry.Point
}

// add records an incident stroke's midpoint.
func (j *Junction) add(mid geometry.Point) {
	j.mids = append(j.mids, mid)
}

// sortMids fixes the cyclic angular order of the incident midpoints.
// Ties (identical angles) fall back to the point total order so the
// result is deterministic for any input order.
func (j *Junction) sortMids() {
	sort.Slice(j.mids, func(a, b int) bool {
		va := geometry.AngleAround(j.Position, j.mids[a])
		vb := geometry.AngleAround(j.Position, j.mids[b])
		if va == vb {
			return geometry.Less(j.mids[a], j.mids[b])
		}
		return va < vb
	})
}

// next returns the incident midpoint one step around from mid, clockwise
// or counterclockwise in the angular order. If mid is not incident to
// this junction, mid itself is returned; a degree-1 junction likewise
// hands back the same midpoint, which is what closes an isolated
// stroke's thread onto itself.
func (j *Junction) next(mid geometry.Point, clockwise bool) geometry.Point {
	for i, m := range j.mids {
		if m == mid {
			if clockwise {
				return j.mids[(i+1)%len(j.mids)]
			}
			return j.mids[(i+len(j.mids)-1)%len(j.mids)]
		}
	}
	return mid
}

// Degree returns the number of incident stroke midpoints.
func (j *Junction) Degree() int {
	return len(j.mids)
}
