package ndim_test

import (
	"math"
	"testing"

	"github.com/roffe/polyview/pkg/ndim"
)

func TestNewRotationValidation(t *testing.T) {
	tests := []struct {
		name    string
		dim     int
		axis1   int
		axis2   int
		wantErr bool
	}{
		{
			name:  "valid 4d plane",
			dim:   4,
			axis1: 0,
			axis2: 3,
		},
		{
			name:    "dimension too small",
			dim:     1,
			axis1:   0,
			axis2:   1,
			wantErr: true,
		},
		{
			name:    "axis out of range",
			dim:     3,
			axis1:   0,
			axis2:   3,
			wantErr: true,
		},
		{
			name:    "negative axis",
			dim:     3,
			axis1:   -1,
			axis2:   1,
			wantErr: true,
		},
		{
			name:    "axes equal",
			dim:     4,
			axis1:   2,
			axis2:   2,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ndim.NewRotation(tt.dim, tt.axis1, tt.axis2, 1.0)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewRotation(%d, %d, %d) error = %v, wantErr %v", tt.dim, tt.axis1, tt.axis2, err, tt.wantErr)
			}
		})
	}
}

func TestNewRotationReordersAxes(t *testing.T) {
	r, err := ndim.NewRotation(4, 3, 1, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if r.Axis1 != 1 || r.Axis2 != 3 {
		t.Errorf("axes = %d,%d, want 1,3", r.Axis1, r.Axis2)
	}
}

func TestRotationQuarterTurn(t *testing.T) {
	// A quarter turn in the XY plane carries the X basis vector onto Y.
	r, err := ndim.NewRotation(4, 0, 1, math.Pi/2)
	if err != nil {
		t.Fatal(err)
	}
	got, err := r.Apply(ndim.Basis(4, 0))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equals(ndim.Basis(4, 1)) {
		t.Errorf("quarter turn of e_x = %v, want e_y", got)
	}
}

func TestRotationPreservesMagnitude(t *testing.T) {
	v := ndim.New(1, -2, 3, 0.5, 4)
	for _, p := range ndim.Planes(5) {
		r, err := ndim.NewRotation(5, p[0], p[1], 0.83)
		if err != nil {
			t.Fatal(err)
		}
		got, err := r.Apply(v)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(got.Magnitude()-v.Magnitude()) > 1e-9 {
			t.Errorf("plane %v changed magnitude from %v to %v", p, v.Magnitude(), got.Magnitude())
		}
	}
}

func TestComposeAppliesFirstElementFirst(t *testing.T) {
	// e_x under XY then YZ quarter turns ends on e_z. The reverse order
	// would leave it on e_y, so this pins the composition order down.
	xy, _ := ndim.NewRotation(3, 0, 1, math.Pi/2)
	yz, _ := ndim.NewRotation(3, 1, 2, math.Pi/2)
	m, err := ndim.Compose(xy, yz)
	if err != nil {
		t.Fatal(err)
	}
	got, err := m.Transform(ndim.Basis(3, 0))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equals(ndim.Basis(3, 2)) {
		t.Errorf("composed transform of e_x = %v, want e_z", got)
	}
}

func TestComposeOrderMattersInFourDimensions(t *testing.T) {
	xy, _ := ndim.NewRotation(4, 0, 1, math.Pi/2)
	xw, _ := ndim.NewRotation(4, 0, 3, math.Pi/2)
	ab, err := ndim.Compose(xy, xw)
	if err != nil {
		t.Fatal(err)
	}
	ba, err := ndim.Compose(xw, xy)
	if err != nil {
		t.Fatal(err)
	}
	if ab.Equals(ba) {
		t.Error("rotations sharing an axis should not commute")
	}
}

func TestComposeDisjointPlanesCommute(t *testing.T) {
	// The double rotation of 4d: XY and ZW touch no common axis, so
	// either order yields the same matrix.
	xy, _ := ndim.NewRotation(4, 0, 1, 0.6)
	zw, _ := ndim.NewRotation(4, 2, 3, 1.2)
	ab, err := ndim.Compose(xy, zw)
	if err != nil {
		t.Fatal(err)
	}
	ba, err := ndim.Compose(zw, xy)
	if err != nil {
		t.Fatal(err)
	}
	if !ab.Equals(ba) {
		t.Error("disjoint plane rotations should commute")
	}
}

func TestComposeErrors(t *testing.T) {
	if _, err := ndim.Compose(); err == nil {
		t.Error("expected error composing nothing")
	}
	a, _ := ndim.NewRotation(3, 0, 1, 1)
	b, _ := ndim.NewRotation(4, 0, 1, 1)
	if _, err := ndim.Compose(a, b); err == nil {
		t.Error("expected error composing mixed dimensions")
	}
}

func TestPlanes(t *testing.T) {
	tests := []struct {
		dim  int
		want int
	}{
		{2, 1},
		{3, 3},
		{4, 6},
		{5, 10},
		{6, 15},
	}
	for _, tt := range tests {
		if got := len(ndim.Planes(tt.dim)); got != tt.want {
			t.Errorf("Planes(%d) = %d planes, want %d", tt.dim, got, tt.want)
		}
	}
	first := ndim.Planes(4)[0]
	if first != [2]int{0, 1} {
		t.Errorf("first plane = %v, want {0 1}", first)
	}
}

func TestPlaneNames(t *testing.T) {
	got := ndim.PlaneNames(4)
	want := []string{"XY", "XZ", "XW", "YZ", "YW", "ZW"}
	if len(got) != len(want) {
		t.Fatalf("PlaneNames(4) = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("plane %d = %q, want %q", i, got[i], want[i])
		}
	}
}
