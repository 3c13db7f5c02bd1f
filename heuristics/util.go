package heuristics

import (
	"strconv"

	"github.com/go-depix/depix/core"
	"github.com/go-depix/depix/simgraph"
)

// endpoints parses a core.Edge's string vertex IDs back into the
// similarity-graph's integer indices.
func endpoints(e *core.Edge) (a, b int, err error) {
	a, err = strconv.Atoi(e.From)
	if err != nil {
		return 0, 0, err
	}
	b, err = strconv.Atoi(e.To)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// filteredDegree returns the degree of vertex idx counting only edges not
// marked Dissimilar — the "degree in the filtered graph" every heuristic
// past Dissimilar itself operates against.
func filteredDegree(g *simgraph.Graph, idx int) (int, error) {
	ids, err := g.NeighborIDs(g.VertexID(idx))
	if err != nil {
		return 0, err
	}
	deg := 0
	for _, nbr := range ids {
		n, err := strconv.Atoi(nbr)
		if err != nil {
			return 0, err
		}
		attrs := g.Attrs(simgraph.NewEdgeKey(idx, n))
		if attrs != nil && !attrs.Dissimilar {
			deg++
		}
	}
	return deg, nil
}
