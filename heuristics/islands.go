package heuristics

import "github.com/go-depix/depix/simgraph"

// islandWeight is the fixed amount awarded to the non-island side of a
// crossing pair when exactly one side touches a valence-1 vertex.
const islandWeight = 2.5

// Islands awards weight to whichever of a crossing diagonal pair does *not*
// touch an isolated (degree-1) pixel, keeping that pixel attached to the
// rest of the shape instead of pinching it off. Prerequisite: Dissimilar.
type Islands struct{}

// Apply examines every diagonal edge with a surviving crossing counterpart
// and, when exactly one side is an island (XOR) and the examined edge is the
// non-island side, awards IslandsWeight to it. Both diagonals of a pair are
// examined, so the non-island diagonal receives the award once.
func (Islands) Apply(g *simgraph.Graph) error {
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

		edgeIsland, err := hasIsland(g, key)
		if err != nil {
			return err
		}
		crossingIsland, err := hasIsland(g, crossing)
		if err != nil {
			return err
		}

		if !edgeIsland && crossingIsland {
			g.Attrs(key).IslandsWeight += islandWeight
		}
	}
	return nil
}

func hasIsland(g *simgraph.Graph, k simgraph.EdgeKey) (bool, error) {
	du, err := filteredDegree(g, k.U)
	if err != nil {
		return false, err
	}
	if du == 1 {
		return true, nil
	}
	dv, err := filteredDegree(g, k.V)
	if err != nil {
		return false, err
	}
	return dv == 1, nil
}
