package ndim

import (
	"fmt"
	"strconv"
)

// Rotation describes a rotation in a single coordinate plane. In two and
// three dimensions this matches the familiar axis picture; from four
// dimensions up rotations happen in planes, not around axes, and a
// dimension has dim*(dim-1)/2 of them.
type Rotation struct {
	Dimension int
	Axis1     int
	Axis2     int
	Angle     float64 // radians
}

// NewRotation validates the plane before anything downstream can build a
// matrix from it. Axis order does not name a different plane, so swapped
// axes are reordered rather than rejected.
func NewRotation(dim, axis1, axis2 int, angle float64) (Rotation, error) {
	if dim < 2 {
		return Rotation{}, fmt.Errorf("rotation needs at least 2 dimensions, got %d", dim)
	}
	if axis1 < 0 || axis1 >= dim || axis2 < 0 || axis2 >= dim {
		return Rotation{}, fmt.Errorf("rotation axes %d,%d out of range for dimension %d", axis1, axis2, dim)
	}
	if axis1 == axis2 {
		return Rotation{}, fmt.Errorf("rotation axes must differ, got %d twice", axis1)
	}
	if axis1 > axis2 {
		axis1, axis2 = axis2, axis1
	}
	return Rotation{Dimension: dim, Axis1: axis1, Axis2: axis2, Angle: angle}, nil
}

// Matrix returns the rotation as a Dimension sized matrix.
func (r Rotation) Matrix() Matrix {
	return RotationMatrix(r.Dimension, r.Axis1, r.Axis2, r.Angle)
}

// Apply rotates a single vector of matching dimension.
func (r Rotation) Apply(v Vector) (Vector, error) {
	return r.Matrix().Transform(v)
}

// Compose combines rotations into one matrix, applying the first element
// first. Order matters: in four dimensions and up plane rotations do not
// commute, so Compose(a, b) and Compose(b, a) generally differ.
func Compose(rotations ...Rotation) (Matrix, error) {
	if len(rotations) == 0 {
		return nil, fmt.Errorf("compose: no rotations given")
	}
	dim := rotations[0].Dimension
	result := Identity(dim)
	for _, r := range rotations {
		if r.Dimension != dim {
			return nil, fmt.Errorf("compose: mixed dimensions %d and %d: %w", dim, r.Dimension, ErrDimensionMismatch)
		}
		var err error
		result, err = r.Matrix().Multiply(result)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Planes enumerates every rotation plane of a dimension as axis pairs,
// lower axis first: (0,1), (0,2), ... (1,2), ... That is dim*(dim-1)/2
// pairs.
func Planes(dim int) [][2]int {
	var out [][2]int
	for i := 0; i < dim; i++ {
		for j := i + 1; j < dim; j++ {
			out = append(out, [2]int{i, j})
		}
	}
	return out
}

// axisLetters names the first six axes; beyond that PlaneName falls back
// to numeric labels.
const axisLetters = "XYZWVU"

// PlaneName returns a short label like "XY" or "ZW" for a plane.
func PlaneName(axis1, axis2 int) string {
	return axisName(axis1) + axisName(axis2)
}

func axisName(axis int) string {
	if axis >= 0 && axis < len(axisLetters) {
		return string(axisLetters[axis])
	}
	return "A" + strconv.Itoa(axis)
}

// PlaneNames labels every plane of a dimension in Planes order.
func PlaneNames(dim int) []string {
	planes := Planes(dim)
	out := make([]string, len(planes))
	for i, p := range planes {
		out[i] = PlaneName(p[0], p[1])
	}
	return out
}
