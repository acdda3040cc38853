package ndim

import (
	"errors"
	"fmt"
	"math"
)

// ErrDimensionMismatch is returned when two operands disagree on dimension
// in a way that has no sensible lenient interpretation.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// Matrix is a square matrix stored row-major. Like Vector it is treated as
// immutable; operations return new matrices.
type Matrix [][]float64

// Identity returns the n by n identity matrix.
func Identity(n int) Matrix {
	if n < 0 {
		n = 0
	}
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]float64, n)
		m[i][i] = 1
	}
	return m
}

// Zeros returns the n by n zero matrix.
func Zeros(n int) Matrix {
	if n < 0 {
		n = 0
	}
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	return m
}

// RotationMatrix returns the n by n matrix rotating the axis1/axis2 plane
// by angle radians: identity everywhere except the four plane cells
//
//	[axis1][axis1] = cos  [axis1][axis2] = -sin
//	[axis2][axis1] = sin  [axis2][axis2] = cos
//
// Axes out of range leave the identity untouched; axis validation belongs
// to NewRotation.
func RotationMatrix(n, axis1, axis2 int, angle float64) Matrix {
	m := Identity(n)
	sin, cos := math.Sincos(angle)
	m = m.Set(axis1, axis1, cos)
	m = m.Set(axis1, axis2, -sin)
	m = m.Set(axis2, axis1, sin)
	m = m.Set(axis2, axis2, cos)
	return m
}

func (m Matrix) Size() int {
	return len(m)
}

// At returns the cell at row r, column c, or 0 when out of range.
func (m Matrix) At(r, c int) float64 {
	if r < 0 || r >= len(m) || c < 0 || c >= len(m[r]) {
		return 0
	}
	return m[r][c]
}

// Set returns a copy with cell r,c replaced. Out of range coordinates
// return an unchanged copy.
func (m Matrix) Set(r, c int, v float64) Matrix {
	out := m.clone()
	if r >= 0 && r < len(out) && c >= 0 && c < len(out[r]) {
		out[r][c] = v
	}
	return out
}

func (m Matrix) clone() Matrix {
	out := make(Matrix, len(m))
	for i := range m {
		out[i] = make([]float64, len(m[i]))
		copy(out[i], m[i])
	}
	return out
}

// Multiply returns m times o. Sizes must match.
func (m Matrix) Multiply(o Matrix) (Matrix, error) {
	n := len(m)
	if n != len(o) {
		return nil, fmt.Errorf("matrix multiply %dx%d by %dx%d: %w", n, n, len(o), len(o), ErrDimensionMismatch)
	}
	out := Zeros(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var sum float64
			for k := 0; k < n; k++ {
				sum += m[i][k] * o[k][j]
			}
			out[i][j] = sum
		}
	}
	return out, nil
}

// Transform applies m to a column vector of matching dimension.
func (m Matrix) Transform(v Vector) (Vector, error) {
	n := len(m)
	if n != len(v) {
		return nil, fmt.Errorf("transform %dx%d matrix by %d-vector: %w", n, n, len(v), ErrDimensionMismatch)
	}
	out := make(Vector, n)
	for i := 0; i < n; i++ {
		var sum float64
		for k := 0; k < n; k++ {
			sum += m[i][k] * v[k]
		}
		out[i] = sum
	}
	return out, nil
}

func (m Matrix) Transpose() Matrix {
	n := len(m)
	out := Zeros(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[j][i] = m[i][j]
		}
	}
	return out
}

func (m Matrix) Scale(s float64) Matrix {
	out := m.clone()
	for i := range out {
		for j := range out[i] {
			out[i][j] *= s
		}
	}
	return out
}

// Equals reports whether both matrices match cell-wise within Epsilon.
func (m Matrix) Equals(o Matrix) bool {
	if len(m) != len(o) {
		return false
	}
	for i := range m {
		if len(m[i]) != len(o[i]) {
			return false
		}
		for j := range m[i] {
			if math.Abs(m[i][j]-o[i][j]) > Epsilon {
				return false
			}
		}
	}
	return true
}
