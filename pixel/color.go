package pixel

import "math"

// Color is a single pixel expressed in the YCbCr color space, the space the
// similarity-graph heuristics reason about. Each channel is 8-bit.
type Color struct {
	Y, Cb, Cr uint8
}

// ToYCbCr converts an 8-bit RGB triple to YCbCr using the ITU-R BT.601
// coefficients, rounding each channel to the nearest integer and clamping to
// [0, 255].
func ToYCbCr(r, g, b uint8) Color {
	rf, gf, bf := float64(r), float64(g), float64(b)

	y := 0.299*rf + 0.587*gf + 0.114*bf
	cb := -0.168736*rf - 0.331264*gf + 0.500000*bf + 128
	cr := 0.500000*rf - 0.418688*gf - 0.081312*bf + 128

	return Color{
		Y:  clamp8(y),
		Cb: clamp8(cb),
		Cr: clamp8(cr),
	}
}

// ToRGB converts a YCbCr triple back to RGB. Round-trips within ±1 per
// channel of the original input, as this core only needs the forward
// direction exactly.
func (c Color) ToRGB() (r, g, b uint8) {
	yf, cbf, crf := float64(c.Y), float64(c.Cb)-128, float64(c.Cr)-128

	r = clamp8(yf + 1.402*crf)
	g = clamp8(yf - 0.344136*cbf - 0.714136*crf)
	b = clamp8(yf + 1.772*cbf)

	return r, g, b
}

func clamp8(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
