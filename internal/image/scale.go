package image

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Resize resamples r to width x height with a Catmull-Rom filter.
// Returns r unchanged (not copied) if it already has the requested size.
func Resize(r *Raster, width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if r.width == width && r.height == height {
		return r, nil
	}

	src := r.ToStdImage()
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	return FromRaw(dst.Pix, width, height)
}
