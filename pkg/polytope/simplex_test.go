package polytope_test

import (
	"math"
	"testing"

	"github.com/roffe/polyview/pkg/polytope"
)

func TestSimplexCounts(t *testing.T) {
	for dim := 2; dim <= 6; dim++ {
		g := polytope.NewSimplex(dim, 1)
		if got, want := len(g.Vertices), dim+1; got != want {
			t.Errorf("dim %d: %d vertices, want %d", dim, got, want)
		}
		if got, want := len(g.Edges), (dim+1)*dim/2; got != want {
			t.Errorf("dim %d: %d edges, want %d", dim, got, want)
		}
	}
}

func TestSimplexCenteredAtOrigin(t *testing.T) {
	for dim := 2; dim <= 6; dim++ {
		g := polytope.NewSimplex(dim, 1)
		if m := g.Center().Magnitude(); m > 1e-9 {
			t.Errorf("dim %d: centroid magnitude %v, want ~0", dim, m)
		}
	}
}

func TestSimplexEquidistant(t *testing.T) {
	g := polytope.NewSimplex(5, 1)
	want := g.Vertices[0].Sub(g.Vertices[1]).Magnitude()
	for i := range g.Vertices {
		for j := i + 1; j < len(g.Vertices); j++ {
			got := g.Vertices[i].Sub(g.Vertices[j]).Magnitude()
			if math.Abs(got-want) > 1e-9 {
				t.Errorf("pair (%d,%d) distance %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestSimplexCircumradiusMatchesSize(t *testing.T) {
	g := polytope.NewSimplex(4, 2.5)
	for i, v := range g.Vertices {
		if math.Abs(v.Magnitude()-2.5) > 1e-9 {
			t.Errorf("vertex %d magnitude %v, want 2.5", i, v.Magnitude())
		}
	}
}
