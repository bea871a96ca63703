// Package layerblend composites a stack of RGBA raster layers into one image.
//
// # Overview
//
// Layers are listed top to bottom. The first two are blended with the chosen
// operator, the first one as foreground; every following layer is then
// blended as the foreground over the running result. Five operators are
// available: additive, multiply, screen, difference and alpha ("over").
//
// # Quick Start
//
//	import "github.com/gogpu/layerblend"
//
//	top, _ := layerblend.Load("top.png")
//	bottom, _ := layerblend.Load("bottom.png")
//
//	out, err := layerblend.BlendLayers(layerblend.ModeMultiply, top, bottom)
//	if err != nil {
//	    return err
//	}
//	return out.Save("out.png")
//
// # Pixel Format
//
// Rasters are non-premultiplied RGBA8 in a flat buffer of width*height*4 bytes.
// Channel math runs in float64; results are stored saturated to [0, 255] and
// rounded half to even.
//
// # Mismatched Sizes
//
// Every output is sized like its background. A pass walks the background
// buffer and stops at the first pixel the foreground buffer cannot supply;
// the remaining output pixels stay transparent black. Use Resize to bring
// layers to a common size first when that is not wanted.
//
// # Concurrency
//
// The package-level functions run on the calling goroutine. A Compositor
// created with WithWorkers splits each pass across a worker pool and
// produces byte-identical output.
package layerblend

// Version is the current version of the library.
const Version = "0.1.0"
