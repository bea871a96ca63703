package layerblend

import "github.com/gogpu/layerblend/internal/vec"

// Vector is the fixed-length float64 vector the blend operators compute with.
// Elementwise operations return ErrDimensionMismatch for unequal lengths.
type Vector = vec.Vector

// NewVector creates a vector holding a copy of elems.
func NewVector(elems ...float64) Vector {
	return vec.New(elems...)
}
