package projection_test

import (
	"math"
	"testing"

	"github.com/roffe/polyview/pkg/ndim"
	"github.com/roffe/polyview/pkg/projection"
)

func TestOrthographicDropsLast(t *testing.T) {
	got := projection.OrthographicPoint(ndim.New(1, 2, 3, 4))
	if !got.Equals(ndim.New(1, 2, 3)) || got.Dimension() != 3 {
		t.Errorf("orthographic of (1,2,3,4) = %v, want (1,2,3)", got)
	}
}

func TestPerspectiveOriginFixed(t *testing.T) {
	got := projection.PerspectivePoint(ndim.Zero(4), 2)
	if !got.Equals(ndim.Zero(3)) {
		t.Errorf("perspective of origin = %v, want origin", got)
	}
}

func TestPerspectiveScale(t *testing.T) {
	// Last coordinate 1 against view distance 2 doubles the rest.
	got := projection.PerspectivePoint(ndim.New(1, 1, 1, 1), 2)
	if !got.Equals(ndim.New(2, 2, 2)) {
		t.Errorf("perspective of (1,1,1,1) = %v, want (2,2,2)", got)
	}
}

func TestPerspectiveSingularityUnclamped(t *testing.T) {
	// A point at the eye diverges, and stays diverged.
	got := projection.PerspectivePoint(ndim.New(1, 0, 0, 2), 2)
	if !math.IsInf(got.At(0), 1) {
		t.Errorf("point at the eye projected to %v, want +Inf first component", got)
	}
}

func TestStereographicMatchesPerspectiveForm(t *testing.T) {
	p := ndim.New(0.5, -0.25, 0.1, 0.4)
	a := projection.StereographicPoint(p, 1.5)
	b := projection.PerspectivePoint(p, 1.5)
	if !a.Equals(b) {
		t.Errorf("stereographic %v != perspective %v with matching distance", a, b)
	}
}

func TestProjectUnknownModeFallsBack(t *testing.T) {
	p := ndim.New(1, 2, 3, 4)
	got := projection.Project(p, projection.Config{Mode: projection.Mode(99)})
	if !got.Equals(ndim.New(1, 2, 3)) {
		t.Errorf("unknown mode projected to %v, want orthographic (1,2,3)", got)
	}
}

func TestProjectTo3D(t *testing.T) {
	cfg := projection.Config{Mode: projection.Orthographic}
	tests := []struct {
		name string
		in   ndim.Vector
		want ndim.Vector
	}{
		{
			name: "three dimensions unchanged",
			in:   ndim.New(1, 2, 3),
			want: ndim.New(1, 2, 3),
		},
		{
			name: "five dimensions drops two",
			in:   ndim.New(1, 2, 3, 4, 5),
			want: ndim.New(1, 2, 3),
		},
		{
			name: "two dimensions unchanged",
			in:   ndim.New(1, 2),
			want: ndim.New(1, 2),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := projection.ProjectTo3D(tt.in, cfg)
			if !got.Equals(tt.want) || got.Dimension() != tt.want.Dimension() {
				t.Errorf("ProjectTo3D(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestProjectTo3DPerspectiveIterates(t *testing.T) {
	// 6d down to 3d is three perspective steps, each with the same view
	// distance.
	p := ndim.New(0, 0, 0, 0, 0, 1)
	got := projection.ProjectTo3D(p, projection.Config{Mode: projection.Perspective, ViewDistance: 2})
	if got.Dimension() != 3 {
		t.Fatalf("result dimension %d, want 3", got.Dimension())
	}
	if !got.Equals(ndim.Zero(3)) {
		t.Errorf("axis point projected to %v, want origin", got)
	}
}

func TestConfigZeroValueDefaults(t *testing.T) {
	p := ndim.New(1, 1, 1, 1)
	got := projection.Project(p, projection.Config{Mode: projection.Perspective})
	want := projection.PerspectivePoint(p, projection.DefaultViewDistance)
	if !got.Equals(want) {
		t.Errorf("zero-value view distance: got %v, want %v", got, want)
	}
}

func TestDepthValue(t *testing.T) {
	tests := []struct {
		name string
		p    ndim.Vector
		min  float64
		max  float64
		want float64
	}{
		{
			name: "midpoint",
			p:    ndim.New(0, 0, 0),
			min:  -1,
			max:  1,
			want: 0.5,
		},
		{
			name: "upper bound",
			p:    ndim.New(0, 0, 1),
			min:  -1,
			max:  1,
			want: 1,
		},
		{
			name: "overshoot stays unclamped",
			p:    ndim.New(0, 0, 2),
			min:  -1,
			max:  1,
			want: 1.5,
		},
		{
			name: "degenerate range",
			p:    ndim.New(0, 0, 5),
			min:  1,
			max:  1,
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := projection.DepthValue(tt.p, tt.min, tt.max); got != tt.want {
				t.Errorf("DepthValue = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	m, err := projection.ParseMode("stereographic")
	if err != nil || m != projection.Stereographic {
		t.Errorf("ParseMode(stereographic) = %v, %v", m, err)
	}
	if _, err := projection.ParseMode("isometric"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
