// Package pixel defines the color model and image contract the rest of the
// pipeline builds on: an 8-bit YCbCr triple and a read-only, row-major RGB
// image abstraction.
//
// Conversion from RGB to YCbCr follows the ITU-R BT.601 formula exactly;
// only the forward direction is required by the core, though ToRGB is
// provided for diagnostics and round-trips within ±1 per channel.
package pixel
