// Package parallel splits one blend pass into disjoint pixel spans and runs them
// on a fixed set of worker goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a pool of goroutines that execute blend spans.
//
// Each worker has its own queue and steals from the others when idle, which
// keeps all workers busy when spans take uneven time.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers    int
	workQueues []chan func()
	done       chan struct{}
	wg         sync.WaitGroup

	// mu orders the running check in ExecuteAll against Close, so Close
	// waits for every batch that was accepted before the workers stop.
	mu       sync.RWMutex
	inflight sync.WaitGroup
	running  atomic.Bool
}

// NewWorkerPool creates a pool with the given number of workers and starts them.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers:    workers,
		workQueues: make([]chan func(), workers),
		done:       make(chan struct{}),
	}
	for i := range workers {
		p.workQueues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)
	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	own := p.workQueues[id]
	for {
		select {
		case <-p.done:
			p.drain(own)
			return
		case work := <-own:
			work()
		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
				continue
			}
			select {
			case <-p.done:
				p.drain(own)
				return
			case work := <-own:
				work()
			}
		}
	}
}

func (p *WorkerPool) drain(queue chan func()) {
	for {
		select {
		case work := <-queue:
			work()
		default:
			return
		}
	}
}

// steal takes one item from another worker's queue, or returns nil.
func (p *WorkerPool) steal(id int) func() {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case work := <-p.workQueues[i]:
			return work
		default:
		}
	}
	return nil
}

// ExecuteAll distributes work round-robin across workers and waits for all
// of it to complete. If the pool is closed, the work runs on the calling goroutine.
// A concurrent Close waits for ExecuteAll to finish before stopping the workers.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}

	p.mu.RLock()
	if !p.running.Load() {
		p.mu.RUnlock()
		for _, fn := range work {
			fn()
		}
		return
	}
	p.inflight.Add(1)
	p.mu.RUnlock()
	defer p.inflight.Done()

	// Workers outlive this call, so a blocking send always drains.
	var pending sync.WaitGroup
	pending.Add(len(work))
	for i, fn := range work {
		p.workQueues[i%p.workers] <- func() {
			defer pending.Done()
			fn()
		}
	}
	pending.Wait()
}

// Run executes fn once per span and returns when every span is done.
// A single span runs on the calling goroutine.
func (p *WorkerPool) Run(spans []Span, fn func(Span)) {
	if len(spans) == 1 {
		fn(spans[0])
		return
	}
	work := make([]func(), len(spans))
	for i, s := range spans {
		work[i] = func() { fn(s) }
	}
	p.ExecuteAll(work)
}

// Close stops the workers after in-flight ExecuteAll calls complete.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()

	p.inflight.Wait()
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still accepts work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
