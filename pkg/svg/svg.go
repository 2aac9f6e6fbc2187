// Package svg is a minimal streaming SVG writer, just enough for the CLI
// to plot woven threads and their underlying stroke mesh.
package svg

import (
	"fmt"
	"io"

	"knotweave/pkg/geometry"
)

type SVG struct {
	w io.Writer
}

func New(w io.Writer) *SVG {
	return &SVG{w: w}
}

func (s *SVG) printf(format string, a ...interface{}) {
	fmt.Fprintf(s.w, format, a...)
}

// Start opens the document with the given view box and a default style
// applied to the root element.
func (s *SVG) Start(min geometry.Point, width, height float64, style string) {
	s.printf(`<?xml version="1.0"?>
<svg version="1.1"
     viewBox="%f %f %f %f"
     xmlns="http://www.w3.org/2000/svg" style="%s">
`, min.X, min.Y, width, height, style)
}

func (s *SVG) End() {
	s.printf("</svg>\n")
}

func (s *SVG) Line(p1, p2 geometry.Point, style string) {
	s.printf("<line x1='%f' y1='%f' x2='%f' y2='%f' style='%s'/>\n",
		p1.X, p1.Y, p2.X, p2.Y, style)
}

func (s *SVG) StartPath(p geometry.Point, style string) {
	s.printf("<path style='%s' d='M%f,%f", style, p.X, p.Y)
}

func (s *SVG) LineTo(p geometry.Point) {
	s.printf("\n  L%f,%f", p.X, p.Y)
}

func (s *SVG) EndPath(closed bool) {
	if closed {
		s.printf(" Z'/>\n")
	} else {
		s.printf("'/>\n")
	}
}
