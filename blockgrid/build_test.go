package blockgrid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-depix/depix/blockgrid"
	"github.com/go-depix/depix/pixel"
	"github.com/go-depix/depix/simgraph"
)

func TestBuild_TooSmallIsEmpty(t *testing.T) {
	g, err := simgraph.Build(pixel.NewGrid(1, 3))
	require.NoError(t, err)

	grid, err := blockgrid.Build(g, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, grid.Rows)
	assert.Equal(t, 0, grid.Cols)

	_, err = grid.At(0, 0)
	assert.ErrorIs(t, err, blockgrid.ErrEmptyGrid)
}

func TestBuild_TriangleSignature(t *testing.T) {
	// 2x2 image, vertex indices: 0=TL,1=TR,2=BL,3=BR.
	g, err := simgraph.Build(pixel.NewGrid(2, 2))
	require.NoError(t, err)

	edges := []simgraph.EdgeKey{
		simgraph.NewEdgeKey(0, 2), // left
		simgraph.NewEdgeKey(0, 3), // back diagonal
		simgraph.NewEdgeKey(2, 3), // bottom
	}

	grid, err := blockgrid.Build(g, edges)
	require.NoError(t, err)
	require.Equal(t, 1, grid.Rows)
	require.Equal(t, 1, grid.Cols)

	block, err := grid.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "lb[bD]", block.Signature())
}
