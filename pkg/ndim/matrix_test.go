package ndim_test

import (
	"errors"
	"math"
	"testing"

	"github.com/roffe/polyview/pkg/ndim"
)

func TestIdentityTransform(t *testing.T) {
	v := ndim.New(1, 2, 3, 4)
	got, err := ndim.Identity(4).Transform(v)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equals(v) {
		t.Errorf("identity transform = %v, want %v", got, v)
	}
}

func TestRotationMatrixCells(t *testing.T) {
	angle := math.Pi / 3
	m := ndim.RotationMatrix(4, 1, 3, angle)
	sin, cos := math.Sincos(angle)
	checks := []struct {
		r, c int
		want float64
	}{
		{1, 1, cos},
		{1, 3, -sin},
		{3, 1, sin},
		{3, 3, cos},
		{0, 0, 1},
		{2, 2, 1},
		{0, 1, 0},
		{2, 3, 0},
	}
	for _, c := range checks {
		if got := m.At(c.r, c.c); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("cell [%d][%d] = %v, want %v", c.r, c.c, got, c.want)
		}
	}
}

func TestMatrixMultiplyMismatch(t *testing.T) {
	_, err := ndim.Identity(3).Multiply(ndim.Identity(4))
	if err == nil {
		t.Fatal("expected error multiplying 3x3 by 4x4")
	}
	if !errors.Is(err, ndim.ErrDimensionMismatch) {
		t.Errorf("error = %v, want ErrDimensionMismatch", err)
	}
}

func TestMatrixTransformMismatch(t *testing.T) {
	_, err := ndim.Identity(4).Transform(ndim.New(1, 2, 3))
	if err == nil {
		t.Fatal("expected error transforming 3-vector by 4x4 matrix")
	}
	if !errors.Is(err, ndim.ErrDimensionMismatch) {
		t.Errorf("error = %v, want ErrDimensionMismatch", err)
	}
}

func TestMatrixInverseRotationIsIdentity(t *testing.T) {
	a := ndim.RotationMatrix(5, 1, 4, 0.7)
	b := ndim.RotationMatrix(5, 1, 4, -0.7)
	got, err := a.Multiply(b)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equals(ndim.Identity(5)) {
		t.Errorf("R(a)*R(-a) = %v, want identity", got)
	}
}

func TestMatrixTransposeOfRotationIsInverse(t *testing.T) {
	m := ndim.RotationMatrix(4, 0, 2, 1.1)
	got, err := m.Multiply(m.Transpose())
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equals(ndim.Identity(4)) {
		t.Errorf("R*Rᵀ = %v, want identity", got)
	}
}

func TestMatrixSetCopies(t *testing.T) {
	m := ndim.Identity(3)
	n := m.Set(0, 1, 5)
	if m.At(0, 1) != 0 {
		t.Errorf("Set modified the original matrix")
	}
	if n.At(0, 1) != 5 {
		t.Errorf("Set(0,1,5) not applied, got %v", n.At(0, 1))
	}
	if got := m.Set(9, 9, 1); !got.Equals(m) {
		t.Errorf("out of range Set changed the matrix: %v", got)
	}
}

func TestMatrixAtOutOfRange(t *testing.T) {
	m := ndim.Identity(2)
	if got := m.At(5, 0); got != 0 {
		t.Errorf("At(5,0) = %v, want 0", got)
	}
	if got := m.At(0, -1); got != 0 {
		t.Errorf("At(0,-1) = %v, want 0", got)
	}
}
