package heuristics

import (
	"strconv"

	"github.com/go-depix/depix/dfs"
	"github.com/go-depix/depix/simgraph"
)

// Curves awards weight to the longer of two crossing diagonals, where
// "longer" means the maximal curve feature — a chain of degree-2 vertices —
// passing through the edge's endpoint. Prerequisite: Dissimilar must already
// have run, since this heuristic only ever walks the dissimilar-filtered
// graph.
type Curves struct{}

// Apply examines every diagonal edge with a surviving crossing counterpart
// and accumulates the length difference into the winning edge's
// CurvesWeight. Ties award nothing, matching the tie-break rule exactly.
func (Curves) Apply(g *simgraph.Graph) error {
	for _, e := range g.Edges() {
		a, b, err := endpoints(e)
		if err != nil {
			return err
		}
		key := simgraph.NewEdgeKey(a, b)
		if !g.IsDiagonal(key) {
			continue // I2: horizontal/vertical edges are never inspected here
		}

		crossing := g.Crossing(key)
		if !g.HasEdgeKey(crossing) {
			continue
		}
		if attrs := g.Attrs(key); attrs.Dissimilar {
			continue
		}
		if attrs := g.Attrs(crossing); attrs.Dissimilar {
			continue
		}

		lenE, err := curveLength(g, key.U)
		if err != nil {
			return err
		}
		lenX, err := curveLength(g, crossing.U)
		if err != nil {
			return err
		}

		switch {
		case lenE > lenX:
			g.Attrs(key).CurvesWeight += float64(lenE-lenX) / 2.0
		case lenX > lenE:
			g.Attrs(crossing).CurvesWeight += float64(lenX-lenE) / 2.0
		}
	}
	return nil
}

// curveLength counts the edges of the maximal curve feature through the
// vertex at idx: a depth-first walk that, on reaching any vertex whose
// filtered degree is not exactly 2, stops expanding past it (the boost
// "terminator" predicate) without counting the edge that led there last.
// A vertex stack tracked via OnVisit/OnExit mirrors that terminator: the
// stack top during a vertex's neighbor loop is always that vertex itself,
// even when the root branches into two unvisited neighbors, since pushes
// and pops nest symmetrically around the recursive calls in between.
func curveLength(g *simgraph.Graph, idx int) (int, error) {
	startID := g.VertexID(idx)

	var stack []string
	count := 0

	filterNeighbor := func(nid string) bool {
		if len(stack) == 0 {
			return false
		}
		cur := stack[len(stack)-1]
		curIdx, err := strconv.Atoi(cur)
		if err != nil {
			return false
		}
		nIdx, err := strconv.Atoi(nid)
		if err != nil {
			return false
		}
		if attrs := g.Attrs(simgraph.NewEdgeKey(curIdx, nIdx)); attrs == nil || attrs.Dissimilar {
			return false
		}
		deg, err := filteredDegree(g, curIdx)
		if err != nil {
			return false
		}
		return deg == 2
	}
	onVisit := func(id string) error {
		stack = append(stack, id)
		if id == startID {
			return nil
		}
		vIdx, err := strconv.Atoi(id)
		if err != nil {
			return err
		}
		deg, err := filteredDegree(g, vIdx)
		if err != nil {
			return err
		}
		if deg == 2 {
			count++ // the edge into a terminator is not counted
		}
		return nil
	}
	onExit := func(string) error {
		stack = stack[:len(stack)-1]
		return nil
	}

	if _, err := dfs.DFS(g.Graph,
		startID,
		dfs.WithFilterNeighbor(filterNeighbor),
		dfs.WithOnVisit(onVisit),
		dfs.WithOnExit(onExit),
	); err != nil {
		return 0, err
	}

	if count == 0 {
		return 1, nil
	}
	return count, nil
}
