package depix

import (
	"fmt"
	"sync"

	"github.com/go-depix/depix/blockgrid"
	"github.com/go-depix/depix/heuristics"
	"github.com/go-depix/depix/pixel"
	"github.com/go-depix/depix/simgraph"
	"github.com/go-depix/depix/voronoi"
)

// Result is the outcome of running the full pipeline on one image: the
// welded Voronoi graph plus any weld defects encountered along the way.
// Defects are non-fatal — the pipeline always completes. Each entry is
// either a skipped weld fusion (a missing connection in the output graph)
// or a block whose template lookup failed (Side "block(w,h)"), which
// contributes an empty cell.
type Result struct {
	Graph   *voronoi.Graph
	Defects []voronoi.WeldDefect
}

// Run executes the full depixelization pipeline against img: similarity
// graph construction, the four disambiguation heuristics, block-grid
// partitioning, per-block template matching, and weld reduction, in that
// order. filter selects which heuristic marks are honored when extracting
// the surviving edge set for the block grid; heuristics.All is the usual
// choice.
func Run(img pixel.Image, filter heuristics.Filter) (*Result, error) {
	g, err := simgraph.Build(img)
	if err != nil {
		return nil, fmt.Errorf("depix: build similarity graph: %w", err)
	}

	if err := heuristics.Apply(g); err != nil {
		return nil, fmt.Errorf("depix: apply heuristics: %w", err)
	}

	edges := heuristics.Edges(g, filter)

	grid, err := blockgrid.Build(g, edges)
	if err != nil {
		return nil, fmt.Errorf("depix: build block grid: %w", err)
	}

	var (
		mu           sync.Mutex
		blockDefects []voronoi.WeldDefect
	)
	graph, defects := voronoi.Reduce(grid.Rows, grid.Cols, func(w, h int) (*voronoi.Graph, voronoi.WeldMap) {
		block, err := grid.At(w, h)
		if err != nil {
			return &voronoi.Graph{}, voronoi.WeldMap{}
		}
		cell, weld, err := voronoi.Instantiate(g, block)
		if err != nil {
			mu.Lock()
			blockDefects = append(blockDefects, voronoi.WeldDefect{Side: fmt.Sprintf("block(%d,%d)", w, h)})
			mu.Unlock()
		}
		return cell, weld
	})

	all := append(blockDefects, defects...)
	return &Result{Graph: graph, Defects: all}, nil
}
