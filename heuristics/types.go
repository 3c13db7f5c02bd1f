// Package heuristics implements the four pixel-similarity heuristics —
// dissimilar-pixels, curves, islands, sparse-pixels — that disambiguate
// crossing diagonal edges in a simgraph.Graph, plus the filter composition
// that turns their accumulated marks into a final kept-edge predicate.
//
// Each heuristic is a plain, stateless value type with an Apply method: no
// global registry, no copy-constructor identity tricks. A heuristic reads
// the graph, walks it with dfs/bfs, and writes only its own weight field
// per edge.
package heuristics

import "errors"

// Filter is a bitset over the four heuristic kinds, controlling both which
// marks suppress edges during a traversal (§4.B) and which weight fields
// contribute to the final edge predicate (§4.G).
type Filter uint8

// Filter flag values, matching the external bitset contract exactly: 0=none,
// 1=Curves, 2=Dissimilar, 4=Islands, 8=SparsePixels, 15=All.
const (
	None               Filter = 0
	FilterCurves       Filter = 1
	FilterDissimilar   Filter = 2
	FilterIslands      Filter = 4
	FilterSparsePixels Filter = 8
	All                Filter = FilterCurves | FilterDissimilar | FilterIslands | FilterSparsePixels
)

// Has reports whether f includes kind.
func (f Filter) Has(kind Filter) bool { return f&kind != 0 }

// ErrEdgeNotFound indicates a heuristic tried to mark an edge that is no
// longer present in the graph — an invariant breach, fatal to the pipeline.
var ErrEdgeNotFound = errors.New("heuristics: edge not found")
