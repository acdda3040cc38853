package polytope_test

import (
	"testing"

	"github.com/roffe/polyview/pkg/ndim"
	"github.com/roffe/polyview/pkg/polytope"
)

func TestAvailable(t *testing.T) {
	tests := []struct {
		name string
		dim  int
		want int
	}{
		{
			name: "three dimensions has the combinatorial families",
			dim:  3,
			want: 3,
		},
		{
			name: "four dimensions adds the specials",
			dim:  4,
			want: 9,
		},
		{
			name: "five dimensions back to the families",
			dim:  5,
			want: 3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := polytope.Available(tt.dim); len(got) != tt.want {
				t.Errorf("Available(%d) = %v, want %d shapes", tt.dim, got, tt.want)
			}
		})
	}
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		in      string
		want    polytope.Shape
		wantErr bool
	}{
		{in: "hypercube", want: polytope.Hypercube},
		{in: "Clifford torus", want: polytope.CliffordTorus},
		{in: "clifford-torus", want: polytope.CliffordTorus},
		{in: "600-CELL", want: polytope.Cell600},
		{in: "grand-antiprism", want: polytope.GrandAntiprism},
		{in: "dodecahedron", wantErr: true},
	}
	for _, tt := range tests {
		got, err := polytope.ParseShape(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseShape(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseShape(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSlugRoundTrip(t *testing.T) {
	for _, s := range polytope.Shapes() {
		got, err := polytope.ParseShape(s.Slug())
		if err != nil {
			t.Errorf("ParseShape(%q): %v", s.Slug(), err)
			continue
		}
		if got != s {
			t.Errorf("slug %q parsed to %v, want %v", s.Slug(), got, s)
		}
	}
}

func TestNewRejectsWrongDimension(t *testing.T) {
	for _, s := range []polytope.Shape{polytope.CliffordTorus, polytope.Duocylinder, polytope.Hypercone, polytope.GrandAntiprism, polytope.Cell24, polytope.Cell600} {
		if _, err := polytope.New(s, 5, 1); err == nil {
			t.Errorf("New(%v, 5) succeeded, want error", s)
		}
	}
}

// TestAllShapesValid generates the whole catalog at every dimension it
// supports and checks the structural invariants hold.
func TestAllShapesValid(t *testing.T) {
	for _, s := range polytope.Shapes() {
		dims := []int{4}
		if !s.FixedDimension() {
			dims = []int{2, 3, 4, 5, 6}
		}
		for _, dim := range dims {
			g, err := polytope.New(s, dim, 1)
			if err != nil {
				t.Errorf("New(%v, %d): %v", s, dim, err)
				continue
			}
			if err := g.Validate(); err != nil {
				t.Errorf("New(%v, %d): %v", s, dim, err)
			}
			if g.Dimension != dim {
				t.Errorf("New(%v, %d) dimension = %d", s, dim, g.Dimension)
			}
		}
	}
}

func TestTransformLeavesOriginal(t *testing.T) {
	g := polytope.NewHypercube(4, 1)
	m := ndim.RotationMatrix(4, 0, 3, 0.5)
	rotated, err := g.Transform(m)
	if err != nil {
		t.Fatal(err)
	}
	if !g.Vertices[1].Equals(ndim.New(1, -1, -1, -1)) {
		t.Error("Transform mutated the source geometry")
	}
	if rotated.Vertices[1].Equals(g.Vertices[1]) {
		t.Error("Transform returned unrotated vertices")
	}
	if len(rotated.Edges) != len(g.Edges) {
		t.Error("Transform changed the edge list")
	}
}

func TestTransformDimensionMismatch(t *testing.T) {
	g := polytope.NewHypercube(4, 1)
	if _, err := g.Transform(ndim.Identity(3)); err == nil {
		t.Error("expected error transforming 4d geometry by 3x3 matrix")
	}
}
