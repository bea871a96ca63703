// Package color provides RGB and RGBA values that accept either 0-255 or 0-1
// components, plus hex parsing for solid layer fills.
package color

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/layerblend/internal/image"
	"github.com/gogpu/layerblend/internal/vec"
)

// RGB is a normalized color triple with components in [0, 1].
type RGB struct {
	v vec.Vector
}

// NewRGB builds a color from three components in either range.
//
// A triple whose L1 norm exceeds 3 cannot be a 0-1 color and is treated as
// 0-255 and scaled down. Otherwise it is kept as is, so (1, 1, 1) is white
// and not near-black.
func NewRGB(r, g, b float64) RGB {
	return RGB{v: normalize(vec.New(r, g, b))}
}

// R returns the red component.
func (c RGB) R() float64 { return c.v.Get(0) }

// G returns the green component.
func (c RGB) G() float64 { return c.v.Get(1) }

// B returns the blue component.
func (c RGB) B() float64 { return c.v.Get(2) }

// Hex formats the color as "#rrggbb".
func (c RGB) Hex() string {
	return colorful.Color{R: c.R(), G: c.G(), B: c.B()}.Clamped().Hex()
}

// Opaque returns c with alpha 1.
func (c RGB) Opaque() RGBA {
	return RGBA{v: vec.New(c.R(), c.G(), c.B(), 1)}
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return c.Hex()
}

// RGBA is a normalized color with alpha, components in [0, 1].
type RGBA struct {
	v vec.Vector
}

// NewRGBA builds a color from four components in either range.
// Same heuristic as NewRGB with a threshold of 4.
func NewRGBA(r, g, b, a float64) RGBA {
	return RGBA{v: normalize(vec.New(r, g, b, a))}
}

// FromBytes converts a stored RGBA8 pixel to a normalized color.
func FromBytes(r, g, b, a uint8) RGBA {
	return RGBA{v: vec.FromBytes([]byte{r, g, b, a}).ScalarMul(1.0 / 255)}
}

// R returns the red component.
func (c RGBA) R() float64 { return c.v.Get(0) }

// G returns the green component.
func (c RGBA) G() float64 { return c.v.Get(1) }

// B returns the blue component.
func (c RGBA) B() float64 { return c.v.Get(2) }

// A returns the alpha component.
func (c RGBA) A() float64 { return c.v.Get(3) }

// RGB drops the alpha component.
func (c RGBA) RGB() RGB {
	return RGB{v: vec.New(c.R(), c.G(), c.B())}
}

// Bytes converts c to a stored RGBA8 pixel.
func (c RGBA) Bytes() (r, g, b, a uint8) {
	s := c.v.ScalarMul(255)
	return image.ToByte(s.Get(0)), image.ToByte(s.Get(1)), image.ToByte(s.Get(2)), image.ToByte(s.Get(3))
}

// Hex formats the color as "#rrggbbaa".
func (c RGBA) Hex() string {
	r, g, b, a := c.Bytes()
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// String implements fmt.Stringer.
func (c RGBA) String() string {
	return c.Hex()
}

// ParseHex parses "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseHex(s string) (RGBA, error) {
	if len(s) == 9 && s[0] == '#' {
		var a uint8
		if _, err := fmt.Sscanf(s[7:], "%02x", &a); err != nil {
			return RGBA{}, fmt.Errorf("color: parse alpha of %q: %w", s, err)
		}
		c, err := colorful.Hex(s[:7])
		if err != nil {
			return RGBA{}, fmt.Errorf("color: %w", err)
		}
		return RGBA{v: vec.New(c.R, c.G, c.B, float64(a)/255)}, nil
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return RGBA{}, fmt.Errorf("color: %w", err)
	}
	return RGBA{v: vec.New(c.R, c.G, c.B, 1)}, nil
}

func normalize(v vec.Vector) vec.Vector {
	if v.Norm(vec.L1) > float64(v.Len()) {
		return v.ScalarMul(1.0 / 255)
	}
	return v
}
