package voronoi

import (
	"github.com/go-depix/depix/blockgrid"
	"github.com/go-depix/depix/simgraph"
)

// anchorOrder is the fixed priority order edges are tried in when choosing
// the block's reference point.
var anchorOrder = []struct {
	key func(blockgrid.Block) *simgraph.EdgeKey
	tag string
}{
	{func(b blockgrid.Block) *simgraph.EdgeKey { return b.Left }, "left"},
	{func(b blockgrid.Block) *simgraph.EdgeKey { return b.Right }, "right"},
	{func(b blockgrid.Block) *simgraph.EdgeKey { return b.Top }, "top"},
	{func(b blockgrid.Block) *simgraph.EdgeKey { return b.Bottom }, "bottom"},
	{func(b blockgrid.Block) *simgraph.EdgeKey { return b.ForwardDiag }, "forward_diag"},
	{func(b blockgrid.Block) *simgraph.EdgeKey { return b.BackDiag }, "back_diag"},
}

// Instantiate builds the local Voronoi cell for a single block: an empty
// graph if the block has no surviving edges, ErrInvalidBlock if both
// diagonals survived (an edge-filter invariant breach), or otherwise the
// template MatchTemplate resolves for the block's signature, transformed
// into place. This stays a free function taking (g, b) rather than a method
// on Template, since placing the shape requires g to resolve the block's
// anchor pixel coordinates — state a Template enum value cannot carry.
func Instantiate(g *simgraph.Graph, b blockgrid.Block) (*Graph, WeldMap, error) {
	if _, err := MatchTemplate(b); err != nil {
		return &Graph{}, WeldMap{}, err
	}

	sig := b.Signature()
	if sig == "" {
		return &Graph{}, WeldMap{}, nil
	}

	def, rotation := lookup(sig)
	dx, dy, err := anchor(g, b)
	if err != nil {
		return &Graph{}, WeldMap{}, err
	}

	out := &Graph{}
	weld := WeldMap{}
	weldSet := make(map[int]struct{}, len(def.weldIdx))
	for _, i := range def.weldIdx {
		weldSet[i] = struct{}{}
	}

	for i, v := range def.vertices {
		r := rotate(v, rotation)
		p := Vertex{
			X: round2(r.X + dx + 0.5),
			Y: round2(r.Y + dy + 0.5),
		}
		idx := out.AddVertex(p)
		if _, ok := weldSet[i]; ok {
			c := Coord{X: p.X, Y: p.Y}
			weld[c] = append(weld[c], idx)
		}
	}
	for _, e := range def.edges {
		out.AddEdge(e[0], e[1])
	}

	return out, weld, nil
}

// anchor resolves the block's (Δx, Δy) reference point: the top-left
// corner of the bounding box of the first present edge in the fixed
// priority order left, right, top, bottom, forward_diag, back_diag, with
// Δx reduced by 1 for a right anchor and Δy reduced by 1 for a bottom
// anchor.
func anchor(g *simgraph.Graph, b blockgrid.Block) (float64, float64, error) {
	for _, a := range anchorOrder {
		key := a.key(b)
		if key == nil {
			continue
		}
		x1, y1 := g.Coord(key.U)
		x2, y2 := g.Coord(key.V)
		dx, dy := float64(min(x1, x2)), float64(min(y1, y2))
		switch a.tag {
		case "right":
			dx--
		case "bottom":
			dy--
		}
		return dx, dy, nil
	}
	return 0, 0, ErrInvalidBlock
}
