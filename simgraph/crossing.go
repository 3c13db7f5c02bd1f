package simgraph

// IsDiagonal reports whether k connects two vertices that differ in both x
// and y — i.e. is one of the two crossing diagonals of some 2×2 block.
func (g *Graph) IsDiagonal(k EdgeKey) bool {
	x1, y1 := g.Coord(k.U)
	x2, y2 := g.Coord(k.V)
	return x1 != x2 && y1 != y2
}

// Crossing derives the crossing diagonal of a diagonal edge k: a pure
// function of the endpoint coordinates and the lattice width, obtained by
// swapping the y-coordinates of the two endpoints and re-flattening — no
// graph lookup is needed for discovery, only for existence testing via
// HasEdgeKey.
func (g *Graph) Crossing(k EdgeKey) EdgeKey {
	x1, y1 := g.Coord(k.U)
	x2, y2 := g.Coord(k.V)
	a := g.Index(x1, y2)
	b := g.Index(x2, y1)
	return NewEdgeKey(a, b)
}
