package heuristics

import (
	"strconv"

	"github.com/go-depix/depix/bfs"
	"github.com/go-depix/depix/simgraph"
)

// extentPadding is the inflation applied to the bounding rectangle of a
// crossing pair's four endpoints before restricting the component-size
// walk to it.
const extentPadding = 3

// SparsePixels awards weight to whichever of a crossing diagonal pair sits
// in the smaller locally-connected component — the heuristic that favors
// preserving thin, sparse shapes over thick ones. Prerequisite: Dissimilar.
type SparsePixels struct{}

type rect struct{ minX, minY, maxX, maxY int }

func (r rect) contains(x, y int) bool {
	return x >= r.minX && x <= r.maxX && y >= r.minY && y <= r.maxY
}

// Apply examines every diagonal edge with a surviving crossing counterpart
// and awards SparsePixelsWeight to the edge rooted in the smaller
// component.
func (SparsePixels) Apply(g *simgraph.Graph) error {
	for _, e := range g.Edges() {
		a, b, err := endpoints(e)
		if err != nil {
			return err
		}
		key := simgraph.NewEdgeKey(a, b)
		if !g.IsDiagonal(key) {
			continue
		}

		if attrs := g.Attrs(key); attrs.Dissimilar {
			continue
		}
		crossing := g.Crossing(key)
		crossingAttrs := g.Attrs(crossing)
		if crossingAttrs == nil || crossingAttrs.Dissimilar {
			continue
		}

		r := boundingRect(g, key, crossing)

		sizeE, err := componentSize(g, key.U, r)
		if err != nil {
			return err
		}
		sizeX, err := componentSize(g, crossing.U, r)
		if err != nil {
			return err
		}

		switch {
		case sizeE < sizeX:
			g.Attrs(key).SparsePixelsWeight += float64(sizeX-sizeE) / 2.0
		case sizeX < sizeE:
			g.Attrs(crossing).SparsePixelsWeight += float64(sizeE-sizeX) / 2.0
		}
	}
	return nil
}

func boundingRect(g *simgraph.Graph, key, crossing simgraph.EdgeKey) rect {
	xs := make([]int, 0, 4)
	ys := make([]int, 0, 4)
	for _, idx := range []int{key.U, key.V, crossing.U, crossing.V} {
		x, y := g.Coord(idx)
		xs = append(xs, x)
		ys = append(ys, y)
	}
	minX, maxX := minMax(xs)
	minY, maxY := minMax(ys)
	return rect{
		minX: minX - extentPadding,
		minY: minY - extentPadding,
		maxX: maxX + extentPadding,
		maxY: maxY + extentPadding,
	}
}

func minMax(vs []int) (min, max int) {
	min, max = vs[0], vs[0]
	for _, v := range vs[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// componentSize counts the edges reachable via a breadth-first walk from
// idx, restricted to vertices inside r and to non-dissimilar edges. The
// filter gates on the *currently expanding* vertex's own containment (not
// the neighbor's), mirroring a terminator predicate that stops exploring
// past a vertex once it leaves the rectangle rather than refusing to ever
// step into it.
func componentSize(g *simgraph.Graph, idx int, r rect) (int, error) {
	startID := g.VertexID(idx)

	filterNeighbor := func(curr, nbr string) bool {
		curIdx, err := strconv.Atoi(curr)
		if err != nil {
			return false
		}
		nIdx, err := strconv.Atoi(nbr)
		if err != nil {
			return false
		}
		if attrs := g.Attrs(simgraph.NewEdgeKey(curIdx, nIdx)); attrs == nil || attrs.Dissimilar {
			return false
		}
		x, y := g.Coord(curIdx)
		return r.contains(x, y)
	}

	res, err := bfs.BFS(g.Graph, startID, bfs.WithFilterNeighbor(filterNeighbor))
	if err != nil {
		return 0, err
	}

	return len(res.Order) - 1, nil
}
