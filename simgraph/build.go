package simgraph

import (
	"fmt"

	"github.com/go-depix/depix/core"
	"github.com/go-depix/depix/gridgraph"
	"github.com/go-depix/depix/pixel"
)

// Build constructs the similarity graph over img: one vertex per pixel
// holding its converted YCbCr triple, and one edge per in-bounds 8-neighbor
// pair. Returns ErrEmptyImage if img has zero width or height.
//
// Adjacency is delegated to gridgraph: the image is treated as a grid whose
// cell "value" is the pixel's YCbCr channel sum (a cheap proxy gridgraph's
// land/water distinction never uses here — only its rectangularity check
// and precomputed 8-directional offset table are wanted), so this package
// reuses gridgraph's bounds checking and neighbor enumeration rather than
// re-deriving them.
func Build(img pixel.Image) (*Graph, error) {
	w, h := img.Width(), img.Height()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("simgraph: build: %w", ErrEmptyImage)
	}

	cells := make([][]int, h)
	pixels := make(map[int]pixel.Color, w*h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		for x := 0; x < w; x++ {
			r, gr, b := img.At(x, y)
			c := pixel.ToYCbCr(r, gr, b)
			cells[y][x] = int(c.Y) + int(c.Cb) + int(c.Cr)
			pixels[y*w+x] = c
		}
	}

	gg, err := gridgraph.NewGridGraph(cells, gridgraph.GridOptions{Conn: gridgraph.Conn8})
	if err != nil {
		return nil, fmt.Errorf("simgraph: build: %w", err)
	}

	g := &Graph{
		Graph:  core.NewGraph(),
		Width:  w,
		Height: h,
		pixels: pixels,
		attrs:  make(map[EdgeKey]*EdgeAttrs),
	}

	for idx := 0; idx < w*h; idx++ {
		if err := g.Graph.AddVertex(g.VertexID(idx)); err != nil {
			return nil, fmt.Errorf("simgraph: build: add vertex %d: %w", idx, err)
		}
	}

	offsets := gg.NeighborOffsets()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := g.Index(x, y)
			for _, d := range offsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.InBounds(nx, ny) {
					continue
				}
				// Conn8 offsets are symmetric, so every undirected pair is
				// reached from both endpoints; keep only the forward
				// direction so each edge is added once.
				nIdx := g.Index(nx, ny)
				if nIdx <= idx {
					continue
				}
				if err := g.addEdge(idx, nIdx); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

func (g *Graph) addEdge(a, b int) error {
	key := NewEdgeKey(a, b)
	if _, err := g.Graph.AddEdge(g.VertexID(a), g.VertexID(b), 0); err != nil {
		return fmt.Errorf("simgraph: build: add edge %s: %w", key, err)
	}
	g.attrs[key] = &EdgeAttrs{}
	return nil
}
