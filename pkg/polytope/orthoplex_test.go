package polytope_test

import (
	"testing"

	"github.com/roffe/polyview/pkg/polytope"
)

func TestOrthoplexCounts(t *testing.T) {
	for dim := 2; dim <= 6; dim++ {
		g := polytope.NewOrthoplex(dim, 1)
		if got, want := len(g.Vertices), 2*dim; got != want {
			t.Errorf("dim %d: %d vertices, want %d", dim, got, want)
		}
		// Complete graph minus the antipodal pairs.
		if got, want := len(g.Edges), 2*dim*(dim-1); got != want {
			t.Errorf("dim %d: %d edges, want %d", dim, got, want)
		}
	}
}

func TestOrthoplexVerticesOnAxes(t *testing.T) {
	for dim := 2; dim <= 6; dim++ {
		g := polytope.NewOrthoplex(dim, 1)
		for i, v := range g.Vertices {
			nonzero := 0
			for d := 0; d < dim; d++ {
				if v.At(d) != 0 {
					nonzero++
				}
			}
			if nonzero != 1 {
				t.Errorf("dim %d vertex %d has %d non-zero coordinates, want 1", dim, i, nonzero)
			}
		}
	}
}

func TestOrthoplexNoAntipodalEdges(t *testing.T) {
	g := polytope.NewOrthoplex(4, 1)
	for _, e := range g.Edges {
		if e[0]/2 == e[1]/2 {
			t.Errorf("edge %v joins an antipodal pair", e)
		}
	}
}
