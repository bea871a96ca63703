package blend

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/layerblend/internal/image"
)

// ErrInsufficientLayers is returned when fewer than two layers are reduced.
var ErrInsufficientLayers = errors.New("blend: not enough layers")

// ErrNilLayer is returned when a queue holds a nil layer.
var ErrNilLayer = errors.New("blend: nil layer")

// Reduce folds q into one raster with fn, top to bottom:
//
//	result = fn(L0, L1)
//	result = fn(Lk, result) for k = 2..n-1
//
// Each popped layer is the foreground and the running composite is the
// background. q is drained on success and left untouched on error.
func Reduce(q *LayerQueue, fn Func) (*image.Raster, error) {
	return fold(q, fn, nil, nil)
}

// Reducer folds layer queues with one operator, optionally splitting each pass
// across a worker pool and recycling intermediates through a raster pool.
//
// A Reducer is safe for concurrent use if its Runner and Pool are.
type Reducer struct {
	Op     Operator
	Runner Runner       // nil: sequential
	Pool   *image.Pool  // nil: intermediates are left to the GC
	Logger *slog.Logger // nil: no logging
}

// Reduce folds q like the package-level Reduce.
//
// The returned raster is owned by the caller and never returned to the pool.
func (r *Reducer) Reduce(q *LayerQueue) (*image.Raster, error) {
	step := 0
	apply := func(fg, bg *image.Raster) *image.Raster {
		step++
		if r.Logger != nil {
			r.Logger.Debug("blend: fold step",
				slog.String("mode", r.Op.Name()),
				slog.Int("step", step),
				slog.String("fg", fg.String()),
				slog.String("bg", bg.String()))
		}
		out := r.alloc(bg)
		r.Op.BlendInto(out, fg, bg, r.Runner)
		return out
	}

	var release func(*image.Raster)
	if r.Pool != nil {
		release = r.Pool.Put
	}
	return fold(q, apply, release, r.Logger)
}

func (r *Reducer) alloc(bg *image.Raster) *image.Raster {
	if r.Pool != nil {
		if out := r.Pool.Get(bg.Bounds()); out != nil {
			return out
		}
	}
	out, _ := image.NewRaster(bg.Bounds())
	return out
}

// fold is the shared left fold. release, if set, receives each superseded
// intermediate; caller layers are never released.
func fold(q *LayerQueue, fn Func, release func(*image.Raster), log *slog.Logger) (*image.Raster, error) {
	if q == nil || q.Len() < 2 {
		n := 0
		if q != nil {
			n = q.Len()
		}
		return nil, fmt.Errorf("%w: need at least 2, got %d", ErrInsufficientLayers, n)
	}
	for i := range q.Len() {
		if q.at(i) == nil {
			return nil, fmt.Errorf("%w at position %d", ErrNilLayer, i)
		}
	}
	if log != nil {
		warnMismatch(q, log)
	}

	fg, _ := q.Pop()
	bg, _ := q.Pop()
	result := fn(fg, bg)

	for {
		layer, ok := q.Pop()
		if !ok {
			return result, nil
		}
		next := fn(layer, result)
		if release != nil {
			release(result)
		}
		result = next
	}
}

// warnMismatch logs layers that will truncate the composite.
func warnMismatch(q *LayerQueue, log *slog.Logger) {
	base := q.at(1)
	for i := range q.Len() {
		l := q.at(i)
		if l.Len() < base.Len() {
			log.Warn("blend: layer smaller than background, output will be truncated",
				slog.Int("layer", i),
				slog.String("size", l.String()),
				slog.String("background", base.String()))
		}
	}
}
