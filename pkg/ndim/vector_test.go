package ndim_test

import (
	"math"
	"testing"

	"github.com/roffe/polyview/pkg/ndim"
)

func TestVectorAt(t *testing.T) {
	v := ndim.New(1, 2, 3)
	tests := []struct {
		name  string
		index int
		want  float64
	}{
		{
			name:  "first component",
			index: 0,
			want:  1,
		},
		{
			name:  "last component",
			index: 2,
			want:  3,
		},
		{
			name:  "past the end",
			index: 3,
			want:  0,
		},
		{
			name:  "negative index",
			index: -1,
			want:  0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.At(tt.index); got != tt.want {
				t.Errorf("At(%d) = %v, want %v", tt.index, got, tt.want)
			}
		})
	}
}

func TestVectorAddPadsShorter(t *testing.T) {
	a := ndim.New(1, 2)
	b := ndim.New(10, 20, 30)
	got := a.Add(b)
	want := ndim.New(11, 22, 30)
	if !got.Equals(want) {
		t.Errorf("Add = %v, want %v", got, want)
	}
	if got.Dimension() != 3 {
		t.Errorf("Add dimension = %d, want 3", got.Dimension())
	}
}

func TestVectorSubPadsShorter(t *testing.T) {
	a := ndim.New(1, 2)
	b := ndim.New(10, 20, 30)
	got := a.Sub(b)
	want := ndim.New(-9, -18, -30)
	if !got.Equals(want) {
		t.Errorf("Sub = %v, want %v", got, want)
	}
}

func TestVectorDotTruncatesLonger(t *testing.T) {
	a := ndim.New(1, 2)
	b := ndim.New(10, 20, 30)
	// Only the shared components contribute, the 30 is ignored.
	if got := a.Dot(b); got != 50 {
		t.Errorf("Dot = %v, want 50", got)
	}
	if got, want := a.Dot(b), b.Dot(a); got != want {
		t.Errorf("Dot not symmetric: %v vs %v", got, want)
	}
}

func TestVectorNormalize(t *testing.T) {
	v := ndim.New(3, 4)
	n := v.Normalize()
	if math.Abs(n.Magnitude()-1) > 1e-12 {
		t.Errorf("normalized magnitude = %v, want 1", n.Magnitude())
	}
	if !n.Equals(ndim.New(0.6, 0.8)) {
		t.Errorf("Normalize = %v, want (0.6, 0.8)", n)
	}
}

func TestVectorNormalizeZero(t *testing.T) {
	z := ndim.Zero(4)
	n := z.Normalize()
	if !n.Equals(z) {
		t.Errorf("Normalize of zero = %v, want zero", n)
	}
	for i := 0; i < n.Dimension(); i++ {
		if math.IsNaN(n.At(i)) {
			t.Fatalf("Normalize of zero produced NaN at %d", i)
		}
	}
}

func TestVectorProjectOnto(t *testing.T) {
	v := ndim.New(2, 3)
	got := v.ProjectOnto(ndim.New(1, 0))
	if !got.Equals(ndim.New(2, 0)) {
		t.Errorf("ProjectOnto x axis = %v, want (2, 0)", got)
	}
	if got := v.ProjectOnto(ndim.Zero(2)); !got.Equals(ndim.Zero(2)) {
		t.Errorf("ProjectOnto zero = %v, want zero", got)
	}
}

func TestVectorTruncateExtend(t *testing.T) {
	v := ndim.New(1, 2, 3, 4)
	if got := v.Truncate(2); !got.Equals(ndim.New(1, 2)) || got.Dimension() != 2 {
		t.Errorf("Truncate(2) = %v", got)
	}
	if got := v.Extend(6); got.Dimension() != 6 || !got.Equals(v) {
		t.Errorf("Extend(6) = %v", got)
	}
	if got := v.Truncate(10); got.Dimension() != 4 {
		t.Errorf("Truncate past end changed dimension to %d", got.Dimension())
	}
}

func TestVectorImmutable(t *testing.T) {
	v := ndim.New(1, 2, 3)
	_ = v.Add(ndim.New(9, 9, 9))
	_ = v.Scale(5)
	_ = v.Normalize()
	if !v.Equals(ndim.New(1, 2, 3)) {
		t.Errorf("operations modified their receiver: %v", v)
	}
}

func TestBasis(t *testing.T) {
	b := ndim.Basis(4, 2)
	if !b.Equals(ndim.New(0, 0, 1, 0)) {
		t.Errorf("Basis(4, 2) = %v", b)
	}
	if got := ndim.Basis(3, 7); !got.Equals(ndim.Zero(3)) {
		t.Errorf("Basis out of range = %v, want zero", got)
	}
}
