// Package simgraph builds the 8-connected similarity lattice over an
// image's pixels: one vertex per pixel, one edge per in-bounds 8-neighbor
// pair, vertex attributes carrying the converted YCbCr triple and edge
// attributes carrying the four heuristic marks the later stages accumulate.
package simgraph

import (
	"errors"
	"fmt"

	"github.com/go-depix/depix/core"
	"github.com/go-depix/depix/pixel"
)

// Sentinel errors for similarity-graph operations.
var (
	// ErrEmptyImage indicates the source image has zero width or height.
	ErrEmptyImage = errors.New("simgraph: image has zero width or height")
	// ErrEdgeNotFound indicates a heuristic addressed an edge no longer
	// present in the graph — an invariant breach, not a recoverable input.
	ErrEdgeNotFound = errors.New("simgraph: edge not found")
)

// EdgeKey canonically identifies an undirected similarity-graph edge by its
// two endpoint vertex indices, U < V.
type EdgeKey struct {
	U, V int
}

// NewEdgeKey builds the canonical (min, max) key for an edge between
// vertex indices a and b.
func NewEdgeKey(a, b int) EdgeKey {
	if a > b {
		a, b = b, a
	}
	return EdgeKey{U: a, V: b}
}

func (k EdgeKey) String() string {
	return fmt.Sprintf("(%d,%d)", k.U, k.V)
}

// EdgeAttrs is the heuristic bookkeeping record carried per edge. It never
// influences the core graph's own weighted-edge machinery — the similarity
// graph is unweighted; these fields are the four marks §4 heuristics write.
type EdgeAttrs struct {
	Dissimilar          bool
	CurvesWeight        float64
	IslandsWeight       float64
	SparsePixelsWeight  float64
}

// Graph is the similarity graph: an embedded, unweighted, undirected
// core.Graph plus typed side tables for vertex pixels and edge attributes
// (core.Vertex carries only a generic Metadata map and core.Edge carries no
// metadata at all, so attributes live here instead of inside core types).
type Graph struct {
	*core.Graph

	Width, Height int

	pixels map[int]pixel.Color
	attrs  map[EdgeKey]*EdgeAttrs
}

// Index returns the flattened vertex index y·W+x for in-bounds (x, y).
func (g *Graph) Index(x, y int) int { return y*g.Width + x }

// Coord returns the (x, y) coordinate for a flattened vertex index.
func (g *Graph) Coord(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// VertexID returns the core.Graph vertex identifier for a pixel index.
func (g *Graph) VertexID(idx int) string {
	return fmt.Sprintf("%d", idx)
}

// Pixel returns the YCbCr color stored at vertex index idx.
func (g *Graph) Pixel(idx int) pixel.Color {
	return g.pixels[idx]
}

// Attrs returns the edge attribute record for key k, or nil if no such edge
// exists in the graph.
func (g *Graph) Attrs(k EdgeKey) *EdgeAttrs {
	return g.attrs[k]
}

// HasEdgeKey reports whether k identifies a live edge in the similarity
// graph.
func (g *Graph) HasEdgeKey(k EdgeKey) bool {
	_, ok := g.attrs[k]
	return ok
}

// Degree returns the undirected degree of vertex idx in the similarity
// graph (count of live similarity edges incident to it).
func (g *Graph) Degree(idx int) (int, error) {
	_, _, undirected, err := g.Graph.Degree(g.VertexID(idx))
	return undirected, err
}
