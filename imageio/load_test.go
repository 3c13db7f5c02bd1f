package imageio_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-depix/depix/imageio"
)

func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	img.Set(1, 0, color.RGBA{R: 40, G: 50, B: 60, A: 255})

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestLoad_PNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.png")
	writePNG(t, path)

	img, err := imageio.Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, img.Width())
	require.Equal(t, 1, img.Height())

	r, g, b := img.At(0, 0)
	assert.Equal(t, uint8(10), r)
	assert.Equal(t, uint8(20), g)
	assert.Equal(t, uint8(30), b)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.tiff")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err := imageio.Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := imageio.Load("/nonexistent/path.png")
	assert.Error(t, err)
}
