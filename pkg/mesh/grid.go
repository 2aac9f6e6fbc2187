// Package mesh supplies stroke meshes for the knot weaver: a randomized
// square-grid generator, a thinning pass that knocks strokes out to vary
// the knots, and an endpoint snapping helper for callers with inexact
// coordinates. The weave core compares endpoints by exact equality, so
// everything here produces exactly shared junction positions.
package mesh

import (
	"math/rand"

	"knotweave/pkg/cfg"
	"knotweave/pkg/geometry"
	"knotweave/pkg/knot"
)

// Config controls square-grid generation.
type Config struct {
	// Width and Height give the extent of the grid in world units.
	Width, Height float64
	// JunctionsPerUnit pins the junction density. Zero picks a random
	// density from the cfg range, fresh per mesh.
	JunctionsPerUnit float64
}

// SquareGrid builds the strokes of an axis-aligned grid covering the
// configured extent, each stroke with a randomly drawn type. The border
// row and column of junctions are left off so the mesh does not touch
// the extent boundary. Generation is deterministic for a given rand
// source and config.
func SquareGrid(c Config, r *rand.Rand) []knot.Stroke {
	per := c.JunctionsPerUnit
	if per <= 0 {
		per = float64(cfg.MinJunctionsPerUnit + r.Intn(cfg.JunctionSpread))
	}

	nx := int(per * c.Width)
	ny := int(per * c.Height)

	var strokes []knot.Stroke

	// cx/nx walk the column positions so both strokes touching a
	// junction see bit-identical coordinates.
	cx := 1 / float64(nx) * c.Width
	for x := 1; x < nx; x++ {
		nextX := float64(x+1) / float64(nx) * c.Width
		cy := 1 / float64(ny) * c.Height
		for y := 1; y < ny; y++ {
			nextY := float64(y+1) / float64(ny) * c.Height

			if x+1 != nx {
				strokes = append(strokes, knot.Stroke{
					A:    geometry.Point{X: cx, Y: cy},
					B:    geometry.Point{X: nextX, Y: cy},
					Type: randomType(r),
				})
			}
			if y+1 != ny {
				strokes = append(strokes, knot.Stroke{
					A:    geometry.Point{X: cx, Y: cy},
					B:    geometry.Point{X: cx, Y: nextY},
					Type: randomType(r),
				})
			}
			cy = nextY
		}
		cx = nextX
	}
	return strokes
}

func randomType(r *rand.Rand) knot.StrokeType {
	f := r.Float64()
	switch {
	case f < cfg.BounceOdds:
		return knot.Bounce
	case f < cfg.BounceOdds+cfg.GlanceOdds:
		return knot.Glance
	default:
		return knot.Cross
	}
}

// Thin deletes a random fraction of the strokes, then purges strokes
// left dangling at a degree-1 junction. Dangling strokes are purged in
// one pass only: the purge can open new junctions, but those loops have
// room to breathe and are left alone.
func Thin(strokes []knot.Stroke, r *rand.Rand) []knot.Stroke {
	odds := 1 / float64(cfg.MinThinDivisor+r.Intn(cfg.ThinSpread))

	kept := make([]knot.Stroke, 0, len(strokes))
	for _, s := range strokes {
		if r.Float64() >= odds {
			kept = append(kept, s)
		}
	}

	degree := make(map[geometry.Point]int)
	for _, s := range kept {
		degree[s.A]++
		degree[s.B]++
	}

	out := kept[:0]
	for _, s := range kept {
		if degree[s.A] == 1 || degree[s.B] == 1 {
			continue
		}
		out = append(out, s)
	}
	return out
}
