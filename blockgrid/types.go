package blockgrid

import (
	"errors"

	"github.com/go-depix/depix/simgraph"
)

// ErrEmptyGrid indicates a Grid with zero rows or columns — the W<2 or H<2
// special case, which is not an error condition for Build itself but is
// returned by accessors that require a non-empty grid to index into. At
// also returns it for a (w, h) outside the grid.
var ErrEmptyGrid = errors.New("blockgrid: grid has no blocks")

// Block records a 2x2 pixel block's surviving edges, anchored at its
// top-left pixel TL = (w, h): TR = (w+1, h), BL = (w, h+1), BR = (w+1, h+1).
// A nil field means that edge did not survive filtering.
type Block struct {
	Left, Right, Top, Bottom *simgraph.EdgeKey
	ForwardDiag, BackDiag    *simgraph.EdgeKey
}

// present returns the block's set edges, in the fixed signature order
// left, right, top, bottom, forward_diag, back_diag.
func (b Block) present() []struct {
	tag string
	key *simgraph.EdgeKey
} {
	return []struct {
		tag string
		key *simgraph.EdgeKey
	}{
		{"l", b.Left},
		{"r", b.Right},
		{"t", b.Top},
		{"b", b.Bottom},
		{"[fD]", b.ForwardDiag},
		{"[bD]", b.BackDiag},
	}
}

// Signature composes the template-dispatch signature string by
// concatenating the tag of each present edge, in the fixed order
// left, right, top, bottom, forward_diag, back_diag.
func (b Block) Signature() string {
	var sig string
	for _, e := range b.present() {
		if e.key != nil {
			sig += e.tag
		}
	}
	return sig
}

// Grid is a (W-1)x(H-1) array of Blocks over a W x H similarity graph. A
// Grid over an image with W<2 or H<2 is empty: Rows and Cols are both 0.
type Grid struct {
	Rows, Cols int // Rows = H-1, Cols = W-1
	blocks     []Block
}

// At returns the block at (w, h) for 0 <= w < g.Cols and 0 <= h < g.Rows.
func (g *Grid) At(w, h int) (Block, error) {
	if g.Rows == 0 || g.Cols == 0 {
		return Block{}, ErrEmptyGrid
	}
	if w < 0 || w >= g.Cols || h < 0 || h >= g.Rows {
		return Block{}, ErrEmptyGrid
	}
	return g.blocks[h*g.Cols+w], nil
}

// Blocks returns every block in row-major (h asc, then w asc) order.
func (g *Grid) Blocks() []Block {
	return g.blocks
}
