// Package svgexport renders a welded voronoi.Graph to SVG — a visual check
// on the reshaped cell boundaries, independent of any raster re-encoding.
package svgexport

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/go-depix/depix/voronoi"
)

const (
	vertexRadius = 2
	strokeStyle  = "stroke:black;stroke-width:1;fill:none"
	vertexStyle  = "fill:black"
)

// Write renders g to w as an SVG document scaled by scale pixels per
// Voronoi-graph unit. A scale of 0 defaults to 32.
func Write(w io.Writer, g *voronoi.Graph, scale float64) error {
	if scale <= 0 {
		scale = 32
	}

	width, height := bounds(g, scale)

	canvas := svg.New(w)
	canvas.Start(width, height)
	defer canvas.End()

	for _, e := range g.Edges() {
		a, b := g.Vertices[e[0]], g.Vertices[e[1]]
		canvas.Line(
			scaleCoord(a.X, scale), scaleCoord(a.Y, scale),
			scaleCoord(b.X, scale), scaleCoord(b.Y, scale),
			strokeStyle,
		)
	}
	for _, v := range g.Vertices {
		canvas.Circle(scaleCoord(v.X, scale), scaleCoord(v.Y, scale), vertexRadius, vertexStyle)
	}

	return nil
}

func bounds(g *voronoi.Graph, scale float64) (int, int) {
	maxX, maxY := 0.0, 0.0
	for _, v := range g.Vertices {
		if v.X > maxX {
			maxX = v.X
		}
		if v.Y > maxY {
			maxY = v.Y
		}
	}
	return scaleCoord(maxX, scale) + vertexRadius*2, scaleCoord(maxY, scale) + vertexRadius*2
}

func scaleCoord(v, scale float64) int {
	return int(v*scale + 0.5)
}
