package layerblend

import (
	"io"
	"log/slog"
	"testing"
)

// TestNewCompositorDefault tests that NewCompositor is sequential and unpooled by default.
func TestNewCompositorDefault(t *testing.T) {
	o := defaultOptions()
	if o.workers != 1 || o.poolSize != 0 || o.logger != nil {
		t.Errorf("defaultOptions() = %+v", o)
	}

	c := NewCompositor()
	defer c.Close()

	if c.workers != nil {
		t.Error("default compositor should not start a worker pool")
	}
	if c.pool != nil {
		t.Error("default compositor should not pool buffers")
	}
	if c.log() != Logger() {
		t.Error("default compositor should use the package logger")
	}
}

func TestCompositorOptions(t *testing.T) {
	l := slog.New(slog.NewTextHandler(io.Discard, nil))

	c := NewCompositor(WithWorkers(3), WithBufferPool(2), WithLogger(l))
	defer c.Close()

	if c.workers == nil || c.workers.Workers() != 3 {
		t.Errorf("workers = %v, want pool of 3", c.workers)
	}
	if c.pool == nil {
		t.Error("WithBufferPool(2) should create a pool")
	}
	if c.log() != l {
		t.Error("WithLogger should override the package logger")
	}
}

func TestOptionsDisabledValues(t *testing.T) {
	tests := []struct {
		name string
		opts []CompositorOption
	}{
		{"one worker", []CompositorOption{WithWorkers(1)}},
		{"zero workers", []CompositorOption{WithWorkers(0)}},
		{"negative pool", []CompositorOption{WithBufferPool(-1)}},
		{"nil logger", []CompositorOption{WithLogger(nil)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCompositor(tt.opts...)
			defer c.Close()
			if c.workers != nil || c.pool != nil {
				t.Errorf("options %s should leave the compositor sequential and unpooled", tt.name)
			}
			if c.log() != Logger() {
				t.Error("expected package logger")
			}
		})
	}
}

func TestLastOptionWins(t *testing.T) {
	c := NewCompositor(WithWorkers(4), WithWorkers(1))
	defer c.Close()
	if c.workers != nil {
		t.Error("later WithWorkers(1) should disable the pool")
	}
}
