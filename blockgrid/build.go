package blockgrid

import "github.com/go-depix/depix/simgraph"

// Build partitions g's edge lattice into a (W-1)x(H-1) block grid, recording
// for each block which of its six edges appear in edges.
//
// A W<2 or H<2 image produces an empty grid: there is no 2x2 block to
// anchor, and downstream template matching and welding both no-op on it.
func Build(g *simgraph.Graph, edges []simgraph.EdgeKey) (*Grid, error) {
	w, h := g.Width, g.Height
	if w < 2 || h < 2 {
		return &Grid{}, nil
	}

	live := make(map[simgraph.EdgeKey]struct{}, len(edges))
	for _, k := range edges {
		live[k] = struct{}{}
	}

	cols, rows := w-1, h-1
	blocks := make([]Block, cols*rows)

	for bh := 0; bh < rows; bh++ {
		for bw := 0; bw < cols; bw++ {
			tl := g.Index(bw, bh)
			tr := g.Index(bw+1, bh)
			bl := g.Index(bw, bh+1)
			br := g.Index(bw+1, bh+1)

			blocks[bh*cols+bw] = Block{
				Left:        lookup(live, tl, bl),
				Right:       lookup(live, tr, br),
				Top:         lookup(live, tl, tr),
				Bottom:      lookup(live, bl, br),
				ForwardDiag: lookup(live, bl, tr),
				BackDiag:    lookup(live, tl, br),
			}
		}
	}

	return &Grid{Rows: rows, Cols: cols, blocks: blocks}, nil
}

// lookup returns a pointer to the canonical key for (a, b) if it is present
// in live, or nil otherwise.
func lookup(live map[simgraph.EdgeKey]struct{}, a, b int) *simgraph.EdgeKey {
	k := simgraph.NewEdgeKey(a, b)
	if _, ok := live[k]; !ok {
		return nil
	}
	return &k
}
