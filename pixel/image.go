package pixel

import stdimage "image"

// Image is the input contract to the core pipeline: a read-only, row-major
// grid of RGB triples with top-left origin.
type Image interface {
	Width() int
	Height() int
	At(x, y int) (r, g, b uint8)
}

// rgbaImage adapts a standard library image.Image to Image.
type rgbaImage struct {
	img stdimage.Image
	w, h int
	ox, oy int
}

// FromRGBA adapts a standard library image.Image (as produced by image/png,
// image/gif, or any decoder registered against the image package) to the
// Image contract this core consumes.
func FromRGBA(img stdimage.Image) Image {
	b := img.Bounds()
	return &rgbaImage{img: img, w: b.Dx(), h: b.Dy(), ox: b.Min.X, oy: b.Min.Y}
}

func (a *rgbaImage) Width() int  { return a.w }
func (a *rgbaImage) Height() int { return a.h }

func (a *rgbaImage) At(x, y int) (r, g, b uint8) {
	c := a.img.At(a.ox+x, a.oy+y)
	r32, g32, b32, _ := c.RGBA()
	return uint8(r32 >> 8), uint8(g32 >> 8), uint8(b32 >> 8)
}

// Grid is an in-memory Image backed by a flat RGB buffer, useful for
// synthetic test fixtures and for results materialized purely in this core.
type Grid struct {
	w, h int
	pix  [][3]uint8 // row-major, length w*h
}

// NewGrid allocates a w×h Grid with all pixels initialized to black.
func NewGrid(w, h int) *Grid {
	return &Grid{w: w, h: h, pix: make([][3]uint8, w*h)}
}

func (g *Grid) Width() int  { return g.w }
func (g *Grid) Height() int { return g.h }

func (g *Grid) At(x, y int) (r, g2, b uint8) {
	p := g.pix[y*g.w+x]
	return p[0], p[1], p[2]
}

// Set assigns the RGB triple at (x, y).
func (g *Grid) Set(x, y int, r, gr, b uint8) {
	g.pix[y*g.w+x] = [3]uint8{r, gr, b}
}
