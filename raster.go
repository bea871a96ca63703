package layerblend

import (
	"io"

	"github.com/gogpu/layerblend/internal/color"
	"github.com/gogpu/layerblend/internal/image"
)

// Raster is a width x height grid of non-premultiplied RGBA8 pixels in a flat
// buffer of length width*height*4.
type Raster = image.Raster

// Color is a normalized RGBA color.
type Color = color.RGBA

// NewRaster creates a transparent black raster.
func NewRaster(width, height int) (*Raster, error) {
	return image.NewRaster(width, height)
}

// NewRasterFromRGBA wraps an RGBA8 buffer without copying. It returns an
// error wrapping ErrInvalidImageBuffer when len(data) != width*height*4.
func NewRasterFromRGBA(data []byte, width, height int) (*Raster, error) {
	return image.FromRaw(data, width, height)
}

// RGBA builds a color from components in either 0-255 or 0-1 range.
// Components whose absolute sum exceeds 4 are read as 0-255.
func RGBA(r, g, b, a float64) Color {
	return color.NewRGBA(r, g, b, a)
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseColor(hex string) (Color, error) {
	return color.ParseHex(hex)
}

// PixelColor returns the pixel at (x, y) of r as a normalized color.
func PixelColor(r *Raster, x, y int) Color {
	return color.FromBytes(r.RGBA(x, y))
}

// Solid creates a raster filled with c.
func Solid(width, height int, c Color) (*Raster, error) {
	r, err := image.NewRaster(width, height)
	if err != nil {
		return nil, err
	}
	r.Fill(c.Bytes())
	return r, nil
}

// Resize resamples r to width x height with a Catmull-Rom filter. Layers of
// different sizes can be brought to a common size with Resize before blending;
// otherwise a smaller foreground truncates the output.
func Resize(r *Raster, width, height int) (*Raster, error) {
	return image.Resize(r, width, height)
}

// Load decodes an image file into an RGBA8 raster.
// Supported formats: PNG, JPEG, GIF, BMP, TIFF, WebP.
func Load(path string) (*Raster, error) {
	return image.Load(path)
}

// LoadBytes decodes an encoded image held in memory.
func LoadBytes(data []byte) (*Raster, error) {
	return image.LoadBytes(data)
}

// Decode decodes an image from r.
func Decode(r io.Reader) (*Raster, error) {
	return image.Decode(r)
}
