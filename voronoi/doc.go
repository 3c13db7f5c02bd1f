// Package voronoi maps each 2x2 pixel block's surviving edge configuration
// onto one of three fixed polygonal cell templates, then welds the local
// cells of a block grid into a single connected planar graph.
//
// The templates are plain value types rather than a class hierarchy: a
// pure function from a block's edge signature to a (vertices, edges, weld
// vertices) triple, matching the fixed set of geometric shapes the
// original pixel-art reshaping algorithm produces.
package voronoi
