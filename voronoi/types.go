package voronoi

import "errors"

// ErrInvalidBlock indicates a block's edge signature could not be mapped to
// any known template — in practice only a block whose forward and back
// diagonal are both present, which should never survive edge-filter
// composition. The block contributes an empty local cell; the caller is
// expected to record the defect and continue.
var ErrInvalidBlock = errors.New("voronoi: block signature matches no known template")

// ErrWeldDegreeViolation indicates a weld candidate did not have degree 1
// (a single neighbor) in the combined graph at fusion time. The fusion is
// skipped; the caller is expected to record the defect and continue with
// the remainder of the merge.
var ErrWeldDegreeViolation = errors.New("voronoi: weld candidate does not have degree 1")

// Vertex is a point in the reshaped Voronoi diagram, in pixel-grid units
// with y growing downward, rounded to two decimal places.
type Vertex struct {
	X, Y float64
}

// Graph is a planar graph of Vertex records connected by undirected edges,
// represented as a flat vertex slice and a list of index pairs rather than
// the core package's string-keyed adjacency model: Voronoi vertices have no
// natural string identity, only a position, and the weld phase needs cheap
// positional renumbering when concatenating two local graphs.
type Graph struct {
	Vertices []Vertex
	edges    [][2]int
}

// AddVertex appends v and returns its index.
func (g *Graph) AddVertex(v Vertex) int {
	g.Vertices = append(g.Vertices, v)
	return len(g.Vertices) - 1
}

// AddEdge records an undirected edge between vertex indices a and b.
func (g *Graph) AddEdge(a, b int) {
	g.edges = append(g.edges, [2]int{a, b})
}

// Edges returns the graph's edges as vertex-index pairs.
func (g *Graph) Edges() [][2]int {
	return g.edges
}

// VertexCount returns the number of vertices in g.
func (g *Graph) VertexCount() int {
	return len(g.Vertices)
}

// EdgeCount returns the number of edges in g.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// degree returns the number of edges incident to vertex idx.
func (g *Graph) degree(idx int) int {
	d := 0
	for _, e := range g.edges {
		if e[0] == idx || e[1] == idx {
			d++
		}
	}
	return d
}

// neighbor returns the unique vertex connected to idx by a single edge. It
// is only meaningful when degree(idx) == 1.
func (g *Graph) neighbor(idx int) (int, bool) {
	for _, e := range g.edges {
		if e[0] == idx {
			return e[1], true
		}
		if e[1] == idx {
			return e[0], true
		}
	}
	return 0, false
}

// removeIncident deletes every edge touching idx.
func (g *Graph) removeIncident(idx int) {
	kept := g.edges[:0]
	for _, e := range g.edges {
		if e[0] != idx && e[1] != idx {
			kept = append(kept, e)
		}
	}
	g.edges = kept
}

// Coord is a rounded (x, y) position used as a WeldMap key.
type Coord struct {
	X, Y float64
}

// WeldMap is a multi-map from a rounded coordinate to the indices of every
// vertex at that position which is a candidate for fusion with a
// neighboring local cell.
type WeldMap map[Coord][]int

// WeldDefect records a skipped vertex fusion: a weld candidate whose degree
// was not exactly 1 in the combined graph at fusion time. depix.Run also
// uses it for a block whose template lookup failed.
type WeldDefect struct {
	Coord Coord
	Side  string // "A" or "B", which input graph's candidate was skipped; "block(w,h)" for a failed block
}
