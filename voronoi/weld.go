package voronoi

import (
	"fmt"
	"sync"
)

// Weld merges two local cells into one, fusing any vertex pair that shares
// a coordinate across both weld maps. It is a pure function of its
// arguments: a and b are read, never mutated, and the result is a fresh
// graph plus the merged weld map. Weld(a, b, ...) and Weld(b, a, ...)
// produce graphs isomorphic up to vertex renumbering, since fusion acts
// symmetrically on each matched coordinate regardless of which side it
// came from.
func Weld(a, b *Graph, wa, wb WeldMap) (*Graph, WeldMap, []WeldDefect) {
	out := &Graph{}
	out.Vertices = append(out.Vertices, a.Vertices...)
	out.Vertices = append(out.Vertices, b.Vertices...)

	offset := len(a.Vertices)
	for _, e := range a.Edges() {
		out.AddEdge(e[0], e[1])
	}
	for _, e := range b.Edges() {
		out.AddEdge(e[0]+offset, e[1]+offset)
	}

	shiftedB := shiftWeldMap(wb, offset)
	remainA := cloneWeldMap(wa)

	var defects []WeldDefect
	for coord, aIdxs := range wa {
		bIdxs, ok := shiftedB[coord]
		if !ok {
			continue
		}

		n := len(aIdxs)
		if len(bIdxs) < n {
			n = len(bIdxs)
		}

		fusedA := make(map[int]bool, n)
		fusedB := make(map[int]bool, n)
		for i := 0; i < n; i++ {
			vA, vB := aIdxs[i], bIdxs[i]
			if out.degree(vA) != 1 {
				defects = append(defects, WeldDefect{Coord: coord, Side: "A"})
				continue
			}
			if out.degree(vB) != 1 {
				defects = append(defects, WeldDefect{Coord: coord, Side: "B"})
				continue
			}

			tA, _ := out.neighbor(vA)
			tB, _ := out.neighbor(vB)
			out.removeIncident(vA)
			out.removeIncident(vB)
			out.AddEdge(tA, tB)
			fusedA[vA] = true
			fusedB[vB] = true
		}

		var remaining []int
		for _, idx := range aIdxs {
			if !fusedA[idx] {
				remaining = append(remaining, idx)
			}
		}
		for _, idx := range bIdxs {
			if !fusedB[idx] {
				remaining = append(remaining, idx)
			}
		}
		if len(remaining) > 0 {
			remainA[coord] = remaining
		} else {
			delete(remainA, coord)
		}
		delete(shiftedB, coord)
	}

	merged := make(WeldMap, len(remainA)+len(shiftedB))
	for coord, idxs := range remainA {
		merged[coord] = append(merged[coord], idxs...)
	}
	for coord, idxs := range shiftedB {
		merged[coord] = append(merged[coord], idxs...)
	}

	return out, merged, defects
}

func cloneWeldMap(wm WeldMap) WeldMap {
	out := make(WeldMap, len(wm))
	for coord, idxs := range wm {
		cp := make([]int, len(idxs))
		copy(cp, idxs)
		out[coord] = cp
	}
	return out
}

func shiftWeldMap(wm WeldMap, offset int) WeldMap {
	out := make(WeldMap, len(wm))
	for coord, idxs := range wm {
		shifted := make([]int, len(idxs))
		for i, idx := range idxs {
			shifted[i] = idx + offset
		}
		out[coord] = shifted
	}
	return out
}

// cell pairs a local graph with its weld map, the unit Reduce operates on.
type cell struct {
	graph *Graph
	weld  WeldMap
}

// Reduce welds a (rows x cols) array of cells (row-major) into one graph:
// row reduction left-to-right in parallel across rows, then column
// reduction top-to-bottom over the row results. Defects accumulated across
// every fusion attempt are returned alongside the final graph, with
// isolated vertices — chiefly the weld candidates each fusion detaches —
// pruned from the result.
func Reduce(rows, cols int, at func(w, h int) (*Graph, WeldMap)) (*Graph, []WeldDefect) {
	rowGraphs := make([]*Graph, rows)
	rowWelds := make([]WeldMap, rows)
	rowDefects := make([][]WeldDefect, rows)

	var wg sync.WaitGroup
	wg.Add(rows)
	for h := 0; h < rows; h++ {
		go func(h int) {
			defer wg.Done()
			g, wm := at(0, h)
			var defects []WeldDefect
			for w := 1; w < cols; w++ {
				next, nextWm := at(w, h)
				var rowDefs []WeldDefect
				g, wm, rowDefs = Weld(g, next, wm, nextWm)
				defects = append(defects, rowDefs...)
			}
			rowGraphs[h] = g
			rowWelds[h] = wm
			rowDefects[h] = defects
		}(h)
	}
	wg.Wait()

	var defects []WeldDefect
	for _, d := range rowDefects {
		defects = append(defects, d...)
	}
	if rows == 0 {
		return &Graph{}, defects
	}

	final, finalWeld := rowGraphs[0], rowWelds[0]
	for h := 1; h < rows; h++ {
		var colDefs []WeldDefect
		final, finalWeld, colDefs = Weld(final, rowGraphs[h], finalWeld, rowWelds[h])
		defects = append(defects, colDefs...)
	}

	pruneIsolated(final)
	return final, defects
}

// pruneIsolated removes every vertex with no incident edges, renumbering
// the remaining vertices and edges in place.
func pruneIsolated(g *Graph) {
	keep := make([]bool, len(g.Vertices))
	for _, e := range g.edges {
		keep[e[0]] = true
		keep[e[1]] = true
	}

	remap := make([]int, len(g.Vertices))
	vertices := g.Vertices[:0]
	for i, v := range g.Vertices {
		if !keep[i] {
			remap[i] = -1
			continue
		}
		remap[i] = len(vertices)
		vertices = append(vertices, v)
	}
	g.Vertices = vertices

	edges := g.edges[:0]
	for _, e := range g.edges {
		edges = append(edges, [2]int{remap[e[0]], remap[e[1]]})
	}
	g.edges = edges
}

// DefectError renders a WeldDefect as an error, wrapping ErrWeldDegreeViolation
// so callers can branch on it with errors.Is while still reporting where the
// defect occurred.
func DefectError(d WeldDefect) error {
	return fmt.Errorf("weld candidate at (%.2f, %.2f) side %s: %w", d.Coord.X, d.Coord.Y, d.Side, ErrWeldDegreeViolation)
}
