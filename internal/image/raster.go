// Package image provides the RGBA8 raster buffer exchanged between blend operators,
// together with decoding, encoding, resampling and buffer pooling.
package image

import (
	"errors"
	"fmt"
)

// BytesPerPixel is the size of one RGBA8 pixel.
const BytesPerPixel = 4

// Common errors for raster operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidBuffer is returned when a pixel buffer's length does not equal
	// width*height*4.
	ErrInvalidBuffer = errors.New("image: buffer length does not match dimensions")

	// ErrOutOfBounds is returned when pixel coordinates are outside image bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")
)

// Raster is a width x height grid of non-premultiplied RGBA8 pixels stored
// row-major in a flat byte slice. Pixel i occupies bytes [4i, 4i+4).
//
// Thread safety: Raster is safe for concurrent reads. Writes require external
// synchronization; the blend operators never write to their inputs.
type Raster struct {
	data   []byte
	width  int
	height int
}

// NewRaster creates a zeroed (transparent black) raster.
// Returns ErrInvalidDimensions if width or height is non-positive.
func NewRaster(width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Raster{
		data:   make([]byte, width*height*BytesPerPixel),
		width:  width,
		height: height,
	}, nil
}

// FromRaw wraps existing pixel data without copying.
// The length of data must be exactly width*height*4.
// The caller must not modify data while the Raster is in use.
func FromRaw(data []byte, width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if want := width * height * BytesPerPixel; len(data) != want {
		return nil, fmt.Errorf("%w: %dx%d needs %d bytes, got %d",
			ErrInvalidBuffer, width, height, want, len(data))
	}
	return &Raster{data: data, width: width, height: height}, nil
}

// Clone creates a deep copy of the raster.
func (r *Raster) Clone() *Raster {
	data := make([]byte, len(r.data))
	copy(data, r.data)
	return &Raster{data: data, width: r.width, height: r.height}
}

// Width returns the image width in pixels.
func (r *Raster) Width() int {
	return r.width
}

// Height returns the image height in pixels.
func (r *Raster) Height() int {
	return r.height
}

// Bounds returns the image dimensions as (width, height).
func (r *Raster) Bounds() (int, int) {
	return r.width, r.height
}

// Data returns the raw pixel data.
func (r *Raster) Data() []byte {
	return r.data
}

// Len returns the length of the pixel buffer in bytes.
func (r *Raster) Len() int {
	return len(r.data)
}

// Pixels returns the number of pixels.
func (r *Raster) Pixels() int {
	return len(r.data) / BytesPerPixel
}

// SameSize reports whether r and o have identical dimensions.
func (r *Raster) SameSize(o *Raster) bool {
	return r.width == o.width && r.height == o.height
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (r *Raster) PixelOffset(x, y int) int {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return -1
	}
	return (y*r.width + x) * BytesPerPixel
}

// RGBA returns the pixel at (x, y).
// Returns (0,0,0,0) if coordinates are out of bounds.
func (r *Raster) RGBA(x, y int) (red, green, blue, alpha uint8) {
	off := r.PixelOffset(x, y)
	if off < 0 {
		return 0, 0, 0, 0
	}
	p := r.data[off : off+BytesPerPixel]
	return p[0], p[1], p[2], p[3]
}

// SetRGBA sets the pixel at (x, y).
// Returns ErrOutOfBounds if coordinates are outside image bounds.
func (r *Raster) SetRGBA(x, y int, red, green, blue, alpha uint8) error {
	off := r.PixelOffset(x, y)
	if off < 0 {
		return ErrOutOfBounds
	}
	r.data[off] = red
	r.data[off+1] = green
	r.data[off+2] = blue
	r.data[off+3] = alpha
	return nil
}

// Clear sets all pixels to transparent black.
func (r *Raster) Clear() {
	clear(r.data)
}

// Fill sets all pixels to the given color.
func (r *Raster) Fill(red, green, blue, alpha uint8) {
	for i := 0; i < len(r.data); i += BytesPerPixel {
		r.data[i] = red
		r.data[i+1] = green
		r.data[i+2] = blue
		r.data[i+3] = alpha
	}
}

// String returns a short description such as "Raster(640x480)".
func (r *Raster) String() string {
	return fmt.Sprintf("Raster(%dx%d)", r.width, r.height)
}
