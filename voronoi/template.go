package voronoi

import "github.com/go-depix/depix/blockgrid"

// Template names the three polygonal cell shapes a block's edge
// configuration can resolve to.
type Template int

const (
	// TemplateDefault is the 5-vertex, 4-edge "plus" cell used whenever a
	// block's signature doesn't match one of the Triangle or Diagonal
	// configurations below — the common case.
	TemplateDefault Template = iota
	// TemplateTriangle is the 6-vertex, 5-edge cell produced when exactly
	// one straight pair and the matching diagonal survive together.
	TemplateTriangle
	// TemplateDiagonal is the 7-vertex, 6-edge cell produced when only a
	// diagonal edge survives, with no adjoining straight edge.
	TemplateDiagonal
)

// templateDef is the canonical, untransformed constellation of points for
// one template family: vertex positions centered at the origin, the edge
// list connecting them by index, and which vertex indices are weld
// candidates.
type templateDef struct {
	vertices []Vertex
	edges    [][2]int
	weldIdx  []int
}

var defaultDef = templateDef{
	vertices: []Vertex{
		{0, -0.5},
		{-0.5, 0},
		{0, 0},
		{0.5, 0},
		{0, 0.5},
	},
	edges:   [][2]int{{0, 2}, {1, 2}, {2, 3}, {2, 4}},
	weldIdx: []int{0, 1, 3, 4},
}

var triangleDef = templateDef{
	vertices: []Vertex{
		{0, -0.5},
		{0.25, -0.25},
		{-0.5, 0},
		{0, 0},
		{0.5, 0},
		{0, 0.5},
	},
	edges:   [][2]int{{0, 1}, {2, 3}, {3, 1}, {1, 4}, {3, 5}},
	weldIdx: []int{0, 2, 4, 5},
}

var diagonalDef = templateDef{
	vertices: []Vertex{
		{0, -0.5},
		{-0.25, -0.25},
		{-0.5, 0},
		{0, 0},
		{0.5, 0},
		{0.25, 0.25},
		{0, 0.5},
	},
	edges:   [][2]int{{0, 1}, {1, 2}, {1, 3}, {3, 5}, {5, 4}, {6, 5}},
	weldIdx: []int{0, 2, 4, 6},
}

// triangleRotation maps a Triangle-triggering signature to its rotation in
// degrees, relative to the canonical lb[bD] orientation.
var triangleRotation = map[string]int{
	"lb[bD]": 0,
	"lt[fD]": 270,
	"rt[bD]": 180,
	"rb[fD]": 90,
}

// diagonalRotation maps a Diagonal-triggering signature to its rotation in
// degrees, relative to the canonical [fD] orientation.
var diagonalRotation = map[string]int{
	"[fD]": 0,
	"[bD]": 90,
}

// lookup resolves a block's edge signature to a template and its rotation
// in degrees. An empty signature (no surviving edges) is handled upstream
// by the caller, not here.
func lookup(signature string) (templateDef, int) {
	if rot, ok := triangleRotation[signature]; ok {
		return triangleDef, rot
	}
	if rot, ok := diagonalRotation[signature]; ok {
		return diagonalDef, rot
	}
	return defaultDef, 0
}

// MatchTemplate resolves which cell shape b's surviving edges dispatch to,
// without instantiating it. Returns ErrInvalidBlock if both diagonals
// survived filtering — an edge-filter invariant breach, since Keep never
// lets a diagonal and its crossing both survive.
func MatchTemplate(b blockgrid.Block) (Template, error) {
	if b.ForwardDiag != nil && b.BackDiag != nil {
		return TemplateDefault, ErrInvalidBlock
	}
	sig := b.Signature()
	if _, ok := triangleRotation[sig]; ok {
		return TemplateTriangle, nil
	}
	if _, ok := diagonalRotation[sig]; ok {
		return TemplateDiagonal, nil
	}
	return TemplateDefault, nil
}

// rotate applies a multiple-of-90-degrees counterclockwise rotation to v
// around the origin, using exact coefficients rather than math.Sin/Cos to
// avoid floating-point drift before the final two-decimal rounding.
func rotate(v Vertex, degrees int) Vertex {
	switch ((degrees % 360) + 360) % 360 {
	case 90:
		return Vertex{X: -v.Y, Y: v.X}
	case 180:
		return Vertex{X: -v.X, Y: -v.Y}
	case 270:
		return Vertex{X: v.Y, Y: -v.X}
	default:
		return v
	}
}

func round2(f float64) float64 {
	return float64(int(f*100+sign(f)*0.5)) / 100
}

func sign(f float64) float64 {
	if f < 0 {
		return -1
	}
	return 1
}
