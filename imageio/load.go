// Package imageio decodes PNG, GIF, BMP, and WebP files into a pixel.Image,
// the only image source the similarity-graph builder understands. Decoding
// itself is explicitly out of scope for the core pipeline; this package is
// the opaque loader the core treats as a black box.
package imageio

import (
	"fmt"
	"image"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/webp"

	"github.com/go-depix/depix/pixel"
)

// Load decodes the image file at path into a pixel.Image, dispatching on
// its extension. Supported extensions: .png, .gif, .bmp, .webp.
func Load(path string) (pixel.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: open %s: %w", path, err)
	}
	defer f.Close()

	img, err := decode(f, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return nil, fmt.Errorf("imageio: decode %s: %w", path, err)
	}
	return pixel.FromRGBA(img), nil
}

func decode(r *os.File, ext string) (image.Image, error) {
	switch ext {
	case ".png":
		return png.Decode(r)
	case ".gif":
		return gif.Decode(r)
	case ".bmp":
		return bmp.Decode(r)
	case ".webp":
		return webp.Decode(r)
	default:
		return nil, fmt.Errorf("unsupported extension %q", ext)
	}
}
