package heuristics

import (
	"github.com/go-depix/depix/pixel"
	"github.com/go-depix/depix/simgraph"
)

// Thresholds for the dissimilar-pixels test, expressed in raw 8-bit units
// (the effective bounds once the nominal 48/255, 7/255, 6/255 fractions are
// applied to an 8-bit delta).
const (
	thresholdY  = 48
	thresholdCb = 7
	thresholdCr = 6
)

// Dissimilar flags every edge whose endpoints' YCbCr values differ by at
// least the per-channel threshold in any channel. It is always the first heuristic applied;
// every later heuristic queries the graph with dissimilar edges suppressed.
type Dissimilar struct{}

// Apply examines every edge in g and records Dissimilar on its attributes.
// Idempotent: re-running yields the same dissimilar set (L3).
func (Dissimilar) Apply(g *simgraph.Graph) error {
	for _, e := range g.Edges() {
		a, b, err := endpoints(e)
		if err != nil {
			return err
		}
		key := simgraph.NewEdgeKey(a, b)
		attrs := g.Attrs(key)
		if attrs == nil {
			return ErrEdgeNotFound
		}

		attrs.Dissimilar = isDissimilar(g.Pixel(a), g.Pixel(b))
	}
	return nil
}

func isDissimilar(pa, pb pixel.Color) bool {
	return absDiff(pa.Y, pb.Y) >= thresholdY ||
		absDiff(pa.Cb, pb.Cb) >= thresholdCb ||
		absDiff(pa.Cr, pb.Cr) >= thresholdCr
}

func absDiff(x, y uint8) int {
	d := int(x) - int(y)
	if d < 0 {
		return -d
	}
	return d
}
