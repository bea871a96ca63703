// Package blend implements the five pairwise layer blend operators and the
// fold that reduces a layer stack with one of them.
//
// All operators work on non-premultiplied RGBA8 rasters. Channel math is done
// in float64 with vec.Vector and converted back to bytes with image.ToByte.
package blend

import (
	"github.com/gogpu/layerblend/internal/image"
	"github.com/gogpu/layerblend/internal/parallel"
	"github.com/gogpu/layerblend/internal/vec"
)

// Func is a pairwise blend: it returns a new raster sized like bg.
// fg and bg are never modified.
type Func func(fg, bg *image.Raster) *image.Raster

// kernel computes the output pixel at byte offset i.
// Callers guarantee i+4 <= len(fg), len(bg), len(out).
type kernel func(fg, bg, out []byte, i int)

// Runner executes span work, possibly in parallel.
// *parallel.WorkerPool implements Runner.
type Runner interface {
	Run(spans []parallel.Span, fn func(parallel.Span))
	Workers() int
}

// Operator is a named blend operator.
type Operator struct {
	name string
	k    kernel
}

// The five operators.
var (
	Additive   = Operator{name: "additive", k: additive}
	Multiply   = Operator{name: "multiply", k: multiply}
	Screen     = Operator{name: "screen", k: screen}
	Difference = Operator{name: "difference", k: difference}
	Alpha      = Operator{name: "alpha", k: alphaOver}
)

// Name returns the operator's mode name.
func (o Operator) Name() string {
	return o.name
}

// Blend composites fg over bg on the calling goroutine and returns a new raster.
func (o Operator) Blend(fg, bg *image.Raster) *image.Raster {
	out, _ := image.NewRaster(bg.Bounds())
	o.BlendInto(out, fg, bg, nil)
	return out
}

// Func returns o.Blend as a Func.
func (o Operator) Func() Func {
	return o.Blend
}

// BlendInto writes the blend of fg over bg into dst, which must be zeroed and
// sized like bg. With a nil Runner the pass is sequential; otherwise it is split
// into one pixel-aligned span per worker.
//
// Pixels at or past Limit(fg, bg) are left untouched.
func (o Operator) BlendInto(dst, fg, bg *image.Raster, run Runner) {
	limit := Limit(fg, bg)
	f, b, out := fg.Data(), bg.Data(), dst.Data()

	pass := func(s parallel.Span) {
		for i := s.Start; i < s.End; i += image.BytesPerPixel {
			o.k(f, b, out, i)
		}
	}

	if run == nil || run.Workers() < 2 {
		pass(parallel.Span{Start: 0, End: limit})
		return
	}
	run.Run(parallel.Split(limit, run.Workers(), image.BytesPerPixel), pass)
}

// Limit returns the byte offset at which a blend pass stops.
//
// The background is walked in 4-byte strides and the pass ends at the first
// pixel the foreground cannot supply, so a smaller foreground leaves the rest
// of the output transparent black. This is a stop, not a per-pixel skip: a
// foreground wider but shorter than the background still covers the leading
// bytes of the background buffer.
func Limit(fg, bg *image.Raster) int {
	f := fg.Len() - fg.Len()%image.BytesPerPixel
	return min(bg.Len(), f)
}

// must unwraps a vector result. Pixel vectors always have length 3 or 4, so a
// mismatch is a programming error.
func must(v vec.Vector, err error) vec.Vector {
	if err != nil {
		panic(err)
	}
	return v
}

// store writes v to out starting at i.
func store(out []byte, i int, v vec.Vector) {
	image.PutFloats(out, i, v.Elements()...)
}

// over mixes c over the background color b with foreground coverage af:
// c*af + b*(1-af).
func over(c, b vec.Vector, af float64) vec.Vector {
	return must(c.ScalarMul(af).Add(b.ScalarMul(1 - af)))
}

// overAlpha is the "over" alpha: af + ab*(1-af).
func overAlpha(af, ab float64) float64 {
	return af + ab*(1-af)
}
