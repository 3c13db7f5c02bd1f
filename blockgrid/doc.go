// Package blockgrid partitions a similarity graph's surviving edges into a
// (W-1)x(H-1) array of 2x2 pixel blocks, the unit of work for the Voronoi
// template matcher. Each block records which of its six possible edges
// survived the heuristic filter — the edge configuration a template is
// chosen from.
package blockgrid
