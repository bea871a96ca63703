package layerblend

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/layerblend/internal/blend"
	"github.com/gogpu/layerblend/internal/image"
	"github.com/gogpu/layerblend/internal/parallel"
)

// LayerQueue is an ordered layer stack, top layer first. Blending consumes it.
type LayerQueue = blend.LayerQueue

// NewLayerQueue creates a queue from layers listed top to bottom.
// The caller's slice is copied and is not drained.
func NewLayerQueue(layers ...*Raster) *LayerQueue {
	return blend.NewLayerQueue(layers...)
}

// Compositor folds layer stacks into a single raster.
//
// A Compositor is safe for concurrent use. Call Close to stop its workers
// when it was created with WithWorkers(n > 1).
type Compositor struct {
	workers *parallel.WorkerPool
	pool    *image.Pool
	logger  *slog.Logger
}

// defaultCompositor backs Blend and BlendLayers.
var defaultCompositor = NewCompositor()

// NewCompositor creates a compositor. Without options it blends on the
// calling goroutine with no buffer reuse and logs to the package logger.
func NewCompositor(opts ...CompositorOption) *Compositor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Compositor{logger: o.logger}
	if o.workers > 1 {
		c.workers = parallel.NewWorkerPool(o.workers)
	}
	if o.poolSize > 0 {
		c.pool = image.NewPool(o.poolSize)
	}
	return c
}

// Reduce folds q with mode's operator, top to bottom: the first two layers are
// blended (first as foreground), then every following layer is blended as the
// foreground over the running result.
//
// q is drained on success. With fewer than two layers Reduce returns an error
// wrapping ErrInsufficientLayers and leaves q untouched.
func (c *Compositor) Reduce(mode Mode, q *LayerQueue) (*Raster, error) {
	op, err := mode.operator()
	if err != nil {
		return nil, err
	}

	log := c.log()
	r := &blend.Reducer{Op: op, Pool: c.pool, Logger: log}
	if c.workers != nil {
		r.Runner = c.workers
		log.Debug("layerblend: parallel reduction", slog.Int("workers", c.workers.Workers()))
	}

	out, err := r.Reduce(q)
	if err != nil {
		return nil, fmt.Errorf("layerblend: %s: %w", mode, err)
	}
	return out, nil
}

// BlendLayers blends layers listed top to bottom without draining the
// caller's slice.
func (c *Compositor) BlendLayers(mode Mode, layers ...*Raster) (*Raster, error) {
	return c.Reduce(mode, NewLayerQueue(layers...))
}

// Close stops the compositor's workers. It is safe to call more than once.
// A closed compositor keeps working sequentially.
func (c *Compositor) Close() {
	if c.workers != nil {
		c.workers.Close()
	}
}

func (c *Compositor) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return Logger()
}

// Blend consumes q and folds it with mode on the calling goroutine.
func Blend(mode Mode, q *LayerQueue) (*Raster, error) {
	return defaultCompositor.Reduce(mode, q)
}

// BlendLayers folds layers, listed top to bottom, with mode.
func BlendLayers(mode Mode, layers ...*Raster) (*Raster, error) {
	return defaultCompositor.BlendLayers(mode, layers...)
}

// Pairwise returns the blend function for mode.
func Pairwise(mode Mode) (func(fg, bg *Raster) *Raster, error) {
	op, err := mode.operator()
	if err != nil {
		return nil, err
	}
	return op.Blend, nil
}

// Additive returns fg + bg on all four channels, saturated on store.
func Additive(fg, bg *Raster) *Raster { return blend.Additive.Blend(fg, bg) }

// Multiply returns fg*bg/255 composited over bg by fg's alpha.
func Multiply(fg, bg *Raster) *Raster { return blend.Multiply.Blend(fg, bg) }

// Screen returns 1-(1-fg)(1-bg) composited over bg by fg's alpha.
func Screen(fg, bg *Raster) *Raster { return blend.Screen.Blend(fg, bg) }

// Difference returns |fg-bg| composited over bg by fg's alpha.
func Difference(fg, bg *Raster) *Raster { return blend.Difference.Blend(fg, bg) }

// Alpha returns fg "over" bg computed on raw 0-255 alpha values.
func Alpha(fg, bg *Raster) *Raster { return blend.Alpha.Blend(fg, bg) }
