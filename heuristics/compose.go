package heuristics

import (
	"sort"

	"github.com/go-depix/depix/simgraph"
)

// weight sums the weight fields enabled by f on the edge identified by k.
func weight(g *simgraph.Graph, k simgraph.EdgeKey, f Filter) float64 {
	a := g.Attrs(k)
	if a == nil {
		return 0
	}
	var w float64
	if f.Has(FilterCurves) {
		w += a.CurvesWeight
	}
	if f.Has(FilterIslands) {
		w += a.IslandsWeight
	}
	if f.Has(FilterSparsePixels) {
		w += a.SparsePixelsWeight
	}
	return w
}

// Keep evaluates the final edge predicate for k under filter f, exactly per
// the composition rule:
//  1. Dissimilar suppression.
//  2. Horizontal/vertical edges always survive.
//  3. A diagonal with no live (non-dissimilar) crossing survives.
//  4. Otherwise the heavier of the crossing pair survives; a tie removes
//     both.
func Keep(g *simgraph.Graph, k simgraph.EdgeKey, f Filter) bool {
	attrs := g.Attrs(k)
	if attrs == nil {
		return false
	}
	if f.Has(FilterDissimilar) && attrs.Dissimilar {
		return false
	}
	if !g.IsDiagonal(k) {
		return true
	}

	crossing := g.Crossing(k)
	crossingAttrs := g.Attrs(crossing)
	if crossingAttrs == nil || (f.Has(FilterDissimilar) && crossingAttrs.Dissimilar) {
		return true
	}

	we, wx := weight(g, k, f), weight(g, crossing, f)
	if we == wx {
		return false
	}
	return we > wx
}

// Edges materializes the set of edges surviving filter f as canonical
// (min_idx, max_idx) pairs, sorted for deterministic output.
func Edges(g *simgraph.Graph, f Filter) []simgraph.EdgeKey {
	out := make([]simgraph.EdgeKey, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		a, b, err := endpoints(e)
		if err != nil {
			continue
		}
		k := simgraph.NewEdgeKey(a, b)
		if Keep(g, k, f) {
			out = append(out, k)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})
	return out
}

// Apply runs Dissimilar, then Curves, Islands, and SparsePixels in that
// order against g, honoring the ordering guarantee in the concurrency
// model: later heuristics depend on Dissimilar's marks, while Curves,
// Islands, and SparsePixels are mutually independent (distinct weight
// fields, same Dissimilar-filtered view).
func Apply(g *simgraph.Graph) error {
	if err := (Dissimilar{}).Apply(g); err != nil {
		return err
	}
	if err := (Curves{}).Apply(g); err != nil {
		return err
	}
	if err := (Islands{}).Apply(g); err != nil {
		return err
	}
	if err := (SparsePixels{}).Apply(g); err != nil {
		return err
	}
	return nil
}
