// Package depix turns pixel art into a resolution-independent vector
// reshaping — from a raster grid of RGB pixels to a welded Voronoi-style
// polygon graph that follows the art's inferred contours.
//
// 🚀 What is depix?
//
//	A thread-safe, composable pipeline built on top of this module's own
//	graph engine:
//		• pixel      — RGB → YCbCr conversion and the Image contract
//		• simgraph   — 8-connected similarity graph over a pixel lattice
//		• heuristics — dissimilar-pixel, curve, island & sparse-pixel
//		               disambiguation of crossing diagonals
//		• blockgrid  — 2×2 pixel-block tiling of the filtered graph
//		• voronoi    — local cell template matching + parallel weld reduction
//		• depix      — the single-entry-point orchestrator (this package)
//
// ✨ Why depix?
//
//   - Deterministic — same image, same filter set, same polygon graph
//   - Composable — every heuristic is a plain value, apply as many or as
//     few as the image calls for
//   - Rock-solid guarantees — sentinel errors, no panics on malformed input
//   - Extensible — swap in new heuristics without touching the welder
//
// Under the hood, the pixel-art pipeline sits on the shared graph
// primitives:
//
//	core/      — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	dfs/       — depth-first traversal, used by the curve & island heuristics
//	bfs/       — breadth-first traversal, used by the sparse-pixels heuristic
//	gridgraph/ — rectangular lattice construction the similarity graph builds on
//
// plus three ambient add-ons outside the core pipeline:
//
//	imageio/   — decode PNG/GIF/BMP/WebP files into a pixel.Image
//	palette/   — dominant-color & perceptual-distance diagnostics
//	svgexport/ — render a welded voronoi.Graph to SVG
//
// Quick ASCII example: a 2×2 block of uniformly colored pixels reshapes into
// a single diamond-bordered cell —
//
//	┌──┬──┐        ◇
//	│  │  │  ──►  ◇  ◇
//	├──┼──┤        ◇
//	│  │  │
//	└──┴──┘
//
// See SPEC_FULL.md for the full component design and DESIGN.md for the
// grounding ledger behind each package.
//
//	go get github.com/go-depix/depix
package depix
