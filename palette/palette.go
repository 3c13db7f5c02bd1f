// Package palette reports dominant-color and perceptual-distance
// diagnostics over a pixel.Image — a small side-channel useful for judging
// how much visual detail a depixelization run actually had to work with,
// independent of the similarity-graph pipeline itself.
package palette

import (
	"errors"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/go-depix/depix/pixel"
)

// ErrEmptyImage indicates a zero-width or zero-height image was given to
// Summarize.
var ErrEmptyImage = errors.New("palette: image has zero width or height")

// Swatch is one entry of a dominant-color report: a representative color
// and the fraction of the image's pixels closest to it.
type Swatch struct {
	Color     colorful.Color
	Frequency float64
}

// Report summarizes an image's color usage: its top-K dominant swatches by
// pixel frequency, and the largest perceptual (CIE76 Lab) distance found
// between any two of them — a rough measure of how much contrast the
// image's palette spans.
type Report struct {
	Swatches    []Swatch
	MaxContrast float64
}

// Summarize buckets img's pixels into quantized RGB bins, keeps the k most
// frequent, and reports their perceptual spread. k<=0 defaults to 8.
func Summarize(img pixel.Image, k int) (*Report, error) {
	w, h := img.Width(), img.Height()
	if w == 0 || h == 0 {
		return nil, ErrEmptyImage
	}
	if k <= 0 {
		k = 8
	}

	const quantize = 16 // bucket width per channel, coarsens near-identical shades together
	type bucket struct {
		sumR, sumG, sumB int
		count            int
	}
	buckets := make(map[[3]uint8]*bucket)

	total := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b := img.At(x, y)
			key := [3]uint8{r / quantize, g / quantize, b / quantize}
			bk, ok := buckets[key]
			if !ok {
				bk = &bucket{}
				buckets[key] = bk
			}
			bk.sumR += int(r)
			bk.sumG += int(g)
			bk.sumB += int(b)
			bk.count++
			total++
		}
	}

	swatches := make([]Swatch, 0, len(buckets))
	for _, bk := range buckets {
		avgR := uint8(bk.sumR / bk.count)
		avgG := uint8(bk.sumG / bk.count)
		avgB := uint8(bk.sumB / bk.count)
		col, _ := colorful.MakeColor(rgba{avgR, avgG, avgB})
		swatches = append(swatches, Swatch{
			Color:     col,
			Frequency: float64(bk.count) / float64(total),
		})
	}

	sort.Slice(swatches, func(i, j int) bool {
		return swatches[i].Frequency > swatches[j].Frequency
	})
	if len(swatches) > k {
		swatches = swatches[:k]
	}

	maxContrast := 0.0
	for i := range swatches {
		for j := i + 1; j < len(swatches); j++ {
			d := swatches[i].Color.DistanceLab(swatches[j].Color)
			if d > maxContrast {
				maxContrast = d
			}
		}
	}

	return &Report{Swatches: swatches, MaxContrast: maxContrast}, nil
}

// rgba adapts a plain (r, g, b) triple to color.Color so colorful.MakeColor
// can consume it without pulling in the full image/color RGBA type.
type rgba struct {
	r, g, b uint8
}

func (c rgba) RGBA() (r, g, b, a uint32) {
	return uint32(c.r) * 0x101, uint32(c.g) * 0x101, uint32(c.b) * 0x101, 0xffff
}
