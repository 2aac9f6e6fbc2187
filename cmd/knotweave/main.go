package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"knotweave/pkg/cfg"
	"knotweave/pkg/geometry"
	"knotweave/pkg/knot"
	"knotweave/pkg/mesh"
	"knotweave/pkg/svg"
)

func main() {
	var (
		out       = flag.String("o", "knot.svg", "output SVG file")
		width     = flag.Float64("width", 1.6, "mesh width in world units")
		height    = flag.Float64("height", 1.0, "mesh height in world units")
		density   = flag.Float64("density", 0, "junctions per world unit (0 = random)")
		seed      = flag.Int64("seed", 1, "random seed")
		thin      = flag.Bool("thin", true, "randomly remove strokes before weaving")
		drawGraph = flag.Bool("graph", false, "also draw the underlying stroke mesh")
	)
	flag.Parse()

	r := rand.New(rand.NewSource(*seed))

	strokes := mesh.SquareGrid(mesh.Config{
		Width:            *width,
		Height:           *height,
		JunctionsPerUnit: *density,
	}, r)
	if *thin {
		strokes = mesh.Thin(strokes, r)
	}
	if len(strokes) == 0 {
		log.Fatalf("mesh came out empty; try another seed or a larger size")
	}

	art, err := knot.Weave(strokes)
	if err != nil {
		log.Fatalf("weave error: %s", err)
	}
	log.Printf("%d strokes wove into %d thread(s)", len(strokes), art.ThreadCount())

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create error: %s", err)
	}
	defer f.Close()

	doc := svg.New(f)
	margin := 0.1
	doc.Start(
		geometry.Point{X: -margin, Y: -margin},
		*width+2*margin, *height+2*margin,
		"stroke-width: 0.006; stroke-linecap: round; fill: none",
	)

	if *drawGraph {
		for _, s := range strokes {
			doc.Line(s.A, s.B, "stroke: #cccccc; stroke-width: 0.002")
		}
	}

	for i, th := range art.Threads() {
		steps := th.Samples() * cfg.SegmentsPerCrossing
		hue := (i * 360) / art.ThreadCount()
		style := fmt.Sprintf("stroke: hsl(%d, 70%%, 45%%)", hue)

		line := make(geometry.Polyline, 0, steps+1)
		for j := 0; j <= steps; j++ {
			line = append(line, th.At(float64(j)/float64(steps)))
		}
		line = line.Simplify(cfg.SimplifyEpsilon)

		doc.StartPath(line[0], style)
		for _, p := range line[1:] {
			doc.LineTo(p)
		}
		doc.EndPath(true)
	}

	doc.End()
}
