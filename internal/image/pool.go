package image

import "sync"

// Pool is a thread-safe pool for reusing Raster buffers.
//
// Pool groups rasters by their dimensions, so a layer fold over equally sized
// layers recycles a single intermediate buffer instead of allocating one per step.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*Raster
	maxSize int // max rasters per bucket
}

// poolKey identifies a bucket of identically sized rasters.
type poolKey struct {
	width  int
	height int
}

// NewPool creates a new raster pool with the given maximum rasters per bucket.
// A maxPerBucket of 0 or less means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*Raster),
		maxSize: maxPerBucket,
	}
}

// Get retrieves a zeroed raster from the pool or creates a new one.
// Returns nil if the dimensions are invalid.
func (p *Pool) Get(width, height int) *Raster {
	key := poolKey{width: width, height: height}

	p.mu.Lock()
	bucket := p.buckets[key]
	if len(bucket) > 0 {
		r := bucket[len(bucket)-1]
		p.buckets[key] = bucket[:len(bucket)-1]
		p.mu.Unlock()
		return r
	}
	p.mu.Unlock()

	r, err := NewRaster(width, height)
	if err != nil {
		return nil
	}
	return r
}

// Put clears r and returns it to the pool.
// If r is nil or its bucket is full, r is discarded.
func (p *Pool) Put(r *Raster) {
	if r == nil {
		return
	}
	r.Clear()

	key := poolKey{width: r.width, height: r.height}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, r)
}

// Len returns the number of pooled rasters across all buckets.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, b := range p.buckets {
		n += len(b)
	}
	return n
}
