// Package vec provides a fixed-length float64 vector used for per-pixel blend math.
//
// Every operation except Set returns a new Vector; the receiver is never modified.
// Elementwise operations require both operands to have the same length and report
// ErrDimensionMismatch otherwise.
package vec

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Common errors for vector operations.
var (
	// ErrDimensionMismatch is returned when an elementwise operation is given
	// vectors of different lengths.
	ErrDimensionMismatch = errors.New("vec: dimension mismatch")

	// ErrNoVectors is returned by the variadic folds when called with no operands.
	ErrNoVectors = errors.New("vec: no vectors")

	// ErrIndexOutOfRange is returned by Set for an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("vec: index out of range")
)

// NormType selects the reduction used by Vector.Norm.
type NormType uint8

const (
	// L2 is the Euclidean length. It is the default.
	L2 NormType = iota
	// L1 is the sum of absolute values.
	L1
)

// String returns "L1" or "L2".
func (n NormType) String() string {
	if n == L1 {
		return "L1"
	}
	return "L2"
}

// Vector is an ordered sequence of float64 components with a length fixed at construction.
//
// The zero value is an empty vector.
type Vector struct {
	elems []float64
}

// New creates a vector holding a copy of elems.
func New(elems ...float64) Vector {
	c := make([]float64, len(elems))
	copy(c, elems)
	return Vector{elems: c}
}

// FromBytes creates a vector from raw channel bytes, one component per byte.
func FromBytes(b []byte) Vector {
	c := make([]float64, len(b))
	for i, v := range b {
		c[i] = float64(v)
	}
	return Vector{elems: c}
}

// Fill creates a vector of length n with every component set to v.
func Fill(n int, v float64) Vector {
	c := make([]float64, n)
	for i := range c {
		c[i] = v
	}
	return Vector{elems: c}
}

// Len returns the number of components.
func (v Vector) Len() int {
	return len(v.elems)
}

// Get returns component i. It panics if i is out of range, like a slice index.
func (v Vector) Get(i int) float64 {
	return v.elems[i]
}

// Set replaces component i in place.
func (v Vector) Set(i int, value float64) error {
	if i < 0 || i >= len(v.elems) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(v.elems))
	}
	v.elems[i] = value
	return nil
}

// Elements returns a copy of the components.
func (v Vector) Elements() []float64 {
	c := make([]float64, len(v.elems))
	copy(c, v.elems)
	return c
}

// String formats the vector as "(a, b, c)".
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, e := range v.elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(e, 'g', -1, 64))
	}
	sb.WriteByte(')')
	return sb.String()
}

// zip applies op to each pair of components.
func (v Vector) zip(w Vector, op func(a, b float64) float64) (Vector, error) {
	if len(v.elems) != len(w.elems) {
		return Vector{}, fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, len(v.elems), len(w.elems))
	}
	c := make([]float64, len(v.elems))
	for i, a := range v.elems {
		c[i] = op(a, w.elems[i])
	}
	return Vector{elems: c}, nil
}

// each applies op to every component.
func (v Vector) each(op func(a float64) float64) Vector {
	c := make([]float64, len(v.elems))
	for i, a := range v.elems {
		c[i] = op(a)
	}
	return Vector{elems: c}
}

// Add returns v + w.
func (v Vector) Add(w Vector) (Vector, error) {
	return v.zip(w, func(a, b float64) float64 { return a + b })
}

// Sub returns v - w.
func (v Vector) Sub(w Vector) (Vector, error) {
	return v.zip(w, func(a, b float64) float64 { return a - b })
}

// Mul returns the elementwise (Hadamard) product of v and w.
func (v Vector) Mul(w Vector) (Vector, error) {
	return v.zip(w, func(a, b float64) float64 { return a * b })
}

// Div returns the elementwise quotient v / w.
// Division by a zero component follows IEEE 754 (±Inf or NaN).
func (v Vector) Div(w Vector) (Vector, error) {
	return v.zip(w, func(a, b float64) float64 { return a / b })
}

// ScalarAdd adds k to every component.
func (v Vector) ScalarAdd(k float64) Vector {
	return v.each(func(a float64) float64 { return a + k })
}

// ScalarMul multiplies every component by k.
func (v Vector) ScalarMul(k float64) Vector {
	return v.each(func(a float64) float64 { return a * k })
}

// Abs returns the elementwise absolute value.
func (v Vector) Abs() Vector {
	return v.each(math.Abs)
}

// Norm reduces the vector to a single length. Unknown kinds use L2.
func (v Vector) Norm(kind NormType) float64 {
	var sum float64
	if kind == L1 {
		for _, a := range v.elems {
			sum += math.Abs(a)
		}
		return sum
	}
	for _, a := range v.elems {
		sum += a * a
	}
	return math.Sqrt(sum)
}

// Magnitude returns the Euclidean length of v.
func (v Vector) Magnitude() float64 {
	return v.Norm(L2)
}

// Equal reports whether v and w have the same length and every pair of
// components differs by at most tol.
func (v Vector) Equal(w Vector, tol float64) bool {
	if len(v.elems) != len(w.elems) {
		return false
	}
	for i, a := range v.elems {
		if math.Abs(a-w.elems[i]) > tol {
			return false
		}
	}
	return true
}

// Sum folds vs left to right with Add.
// A single operand is returned as a copy.
func Sum(vs ...Vector) (Vector, error) {
	return fold(vs, Vector.Add)
}

// Difference folds vs left to right with Sub: vs[0] - vs[1] - ... - vs[n-1].
func Difference(vs ...Vector) (Vector, error) {
	return fold(vs, Vector.Sub)
}

func fold(vs []Vector, op func(Vector, Vector) (Vector, error)) (Vector, error) {
	if len(vs) == 0 {
		return Vector{}, ErrNoVectors
	}
	acc := New(vs[0].elems...)
	for i, w := range vs[1:] {
		next, err := op(acc, w)
		if err != nil {
			return Vector{}, fmt.Errorf("operand %d: %w", i+1, err)
		}
		acc = next
	}
	return acc, nil
}
