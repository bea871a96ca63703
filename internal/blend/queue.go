package blend

import "github.com/gogpu/layerblend/internal/image"

// LayerQueue is an ordered stack of layers; the front is the topmost layer.
//
// A queue is consumed by Reduce: every layer is popped, and the queue is
// empty afterwards. Build a new queue for each reduction.
//
// Thread safety: LayerQueue is not safe for concurrent access.
type LayerQueue struct {
	layers []*image.Raster
}

// NewLayerQueue creates a queue holding layers, top first.
// The slice is copied, so draining the queue never touches the caller's slice.
func NewLayerQueue(layers ...*image.Raster) *LayerQueue {
	q := &LayerQueue{layers: make([]*image.Raster, len(layers))}
	copy(q.layers, layers)
	return q
}

// Push appends a layer beneath the current bottom layer.
func (q *LayerQueue) Push(layer *image.Raster) {
	q.layers = append(q.layers, layer)
}

// Pop removes and returns the front (topmost) layer.
func (q *LayerQueue) Pop() (*image.Raster, bool) {
	if len(q.layers) == 0 {
		return nil, false
	}
	l := q.layers[0]
	q.layers[0] = nil
	q.layers = q.layers[1:]
	return l, true
}

// Peek returns the front layer without removing it.
func (q *LayerQueue) Peek() (*image.Raster, bool) {
	if len(q.layers) == 0 {
		return nil, false
	}
	return q.layers[0], true
}

// Len returns the number of layers left.
func (q *LayerQueue) Len() int {
	return len(q.layers)
}

// at returns the i-th remaining layer.
func (q *LayerQueue) at(i int) *image.Raster {
	return q.layers[i]
}
