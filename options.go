package layerblend

import "log/slog"

// CompositorOption configures a Compositor during creation.
//
// Example:
//
//	// Blend on the calling goroutine
//	c := layerblend.NewCompositor()
//
//	// Split each pass across 8 workers and recycle intermediates
//	c := layerblend.NewCompositor(layerblend.WithWorkers(8), layerblend.WithBufferPool(2))
//	defer c.Close()
type CompositorOption func(*compositorOptions)

// compositorOptions holds optional configuration for Compositor creation.
type compositorOptions struct {
	workers  int
	poolSize int
	logger   *slog.Logger
}

// defaultOptions returns the default compositor options.
func defaultOptions() compositorOptions {
	return compositorOptions{
		workers:  1,   // sequential
		poolSize: 0,   // no intermediate recycling
		logger:   nil, // package logger, resolved per reduction
	}
}

// WithWorkers splits every blend pass into n disjoint pixel spans run on a
// worker pool. n <= 1 keeps the pass on the calling goroutine. Output is
// byte-identical either way.
func WithWorkers(n int) CompositorOption {
	return func(o *compositorOptions) {
		o.workers = n
	}
}

// WithBufferPool recycles superseded intermediate rasters, keeping at most
// maxPerSize idle rasters per image size. maxPerSize <= 0 disables pooling.
func WithBufferPool(maxPerSize int) CompositorOption {
	return func(o *compositorOptions) {
		o.poolSize = maxPerSize
	}
}

// WithLogger sets a logger for this compositor instead of the package logger.
func WithLogger(l *slog.Logger) CompositorOption {
	return func(o *compositorOptions) {
		o.logger = l
	}
}
