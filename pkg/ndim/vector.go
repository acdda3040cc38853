// Package ndim implements vector and matrix algebra over arbitrary
// dimension, plus plane-based rotations. It is the math kernel behind the
// polytope generators and the projection pipeline.
package ndim

import "math"

// Epsilon is the default tolerance for approximate comparisons.
const Epsilon = 1e-10

// Vector is an ordered sequence of real components. Treat it as immutable:
// every operation returns a new Vector and never modifies its receiver or
// arguments.
type Vector []float64

// New returns a vector with the given components.
func New(components ...float64) Vector {
	v := make(Vector, len(components))
	copy(v, components)
	return v
}

// Zero returns the zero vector of the given dimension.
func Zero(dim int) Vector {
	if dim < 0 {
		dim = 0
	}
	return make(Vector, dim)
}

// Basis returns the unit vector along the given axis.
func Basis(dim, axis int) Vector {
	v := Zero(dim)
	if axis >= 0 && axis < dim {
		v[axis] = 1
	}
	return v
}

func (v Vector) Dimension() int {
	return len(v)
}

// At returns component i, or 0 when i is out of range. The leniency is
// relied on by the padding and truncation rules below.
func (v Vector) At(i int) float64 {
	if i < 0 || i >= len(v) {
		return 0
	}
	return v[i]
}

// Add sums component-wise over the larger of the two dimensions, treating
// missing components as zero.
func (v Vector) Add(o Vector) Vector {
	out := make(Vector, max(len(v), len(o)))
	for i := range out {
		out[i] = v.At(i) + o.At(i)
	}
	return out
}

// Sub subtracts component-wise over the larger of the two dimensions,
// treating missing components as zero.
func (v Vector) Sub(o Vector) Vector {
	out := make(Vector, max(len(v), len(o)))
	for i := range out {
		out[i] = v.At(i) - o.At(i)
	}
	return out
}

func (v Vector) Scale(s float64) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] * s
	}
	return out
}

// Dot multiplies over the smaller of the two dimensions, silently ignoring
// the rest. Note the asymmetry with Add/Sub; both behaviors are part of the
// contract since vectors routinely cross dimension changes.
func (v Vector) Dot(o Vector) float64 {
	n := min(len(v), len(o))
	var sum float64
	for i := 0; i < n; i++ {
		sum += v[i] * o[i]
	}
	return sum
}

func (v Vector) MagnitudeSq() float64 {
	return v.Dot(v)
}

func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns a unit-length vector in the same direction. The zero
// vector normalizes to itself, never to NaN.
func (v Vector) Normalize() Vector {
	m := v.Magnitude()
	if m == 0 {
		return Zero(len(v))
	}
	return v.Scale(1 / m)
}

// ProjectOnto returns the projection of v onto o. Projecting onto the zero
// vector yields the zero vector.
func (v Vector) ProjectOnto(o Vector) Vector {
	den := o.MagnitudeSq()
	if den == 0 {
		return Zero(len(o))
	}
	return o.Scale(v.Dot(o) / den)
}

// Truncate keeps the first dim components.
func (v Vector) Truncate(dim int) Vector {
	if dim < 0 {
		dim = 0
	}
	if dim >= len(v) {
		return New(v...)
	}
	out := make(Vector, dim)
	copy(out, v[:dim])
	return out
}

// Extend pads with zeros up to dim. A no-op when dim is not larger than the
// current dimension.
func (v Vector) Extend(dim int) Vector {
	if dim <= len(v) {
		return New(v...)
	}
	out := make(Vector, dim)
	copy(out, v)
	return out
}

// Equals reports whether both vectors match within Epsilon, treating
// missing components as zero.
func (v Vector) Equals(o Vector) bool {
	return v.EqualsTolerance(o, Epsilon)
}

func (v Vector) EqualsTolerance(o Vector, eps float64) bool {
	n := max(len(v), len(o))
	for i := 0; i < n; i++ {
		if math.Abs(v.At(i)-o.At(i)) > eps {
			return false
		}
	}
	return true
}
