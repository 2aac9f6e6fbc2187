package mesh

import (
	"github.com/asim/quadtree"

	"knotweave/pkg/geometry"
	"knotweave/pkg/knot"
)

// Snap rewrites stroke endpoints so that any two within tolerance of
// each other become the same exact point, letting the weave core's exact
// junction matching find them. The first endpoint seen in each cluster
// becomes the canonical position. Strokes that collapse to zero length
// under snapping are dropped. A non-positive tolerance returns the
// input unchanged.
func Snap(strokes []knot.Stroke, tolerance float64) []knot.Stroke {
	if len(strokes) == 0 || tolerance <= 0 {
		return strokes
	}

	min := strokes[0].A
	max := strokes[0].A
	expand := func(p geometry.Point) {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	for _, s := range strokes {
		expand(s.A)
		expand(s.B)
	}

	// Margin keeps boundary endpoints inside the tree.
	center := quadtree.NewPoint((min.X+max.X)/2, (min.Y+max.Y)/2, nil)
	half := quadtree.NewPoint((max.X-min.X)/2+tolerance+1, (max.Y-min.Y)/2+tolerance+1, nil)
	tree := quadtree.New(quadtree.NewAABB(center, half), 0, nil)

	reach := quadtree.NewPoint(tolerance, tolerance, nil)
	canon := func(p geometry.Point) geometry.Point {
		probe := quadtree.NewPoint(p.X, p.Y, nil)
		near := tree.KNearest(quadtree.NewAABB(probe, reach), 1, nil)
		if len(near) > 0 {
			x, y := near[0].Coordinates()
			q := geometry.Point{X: x, Y: y}
			if q.Minus(p).Magnitude() <= tolerance {
				return q
			}
		}
		tree.Insert(quadtree.NewPoint(p.X, p.Y, nil))
		return p
	}

	out := make([]knot.Stroke, 0, len(strokes))
	for _, s := range strokes {
		s.A = canon(s.A)
		s.B = canon(s.B)
		if s.A == s.B {
			continue
		}
		out = append(out, s)
	}
	return out
}
