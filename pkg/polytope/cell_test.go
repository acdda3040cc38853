package polytope_test

import (
	"math"
	"testing"

	"github.com/roffe/polyview/pkg/polytope"
)

func Test24CellStructure(t *testing.T) {
	g := polytope.New24Cell(1)
	if len(g.Vertices) != 24 {
		t.Fatalf("%d vertices, want 24", len(g.Vertices))
	}
	if len(g.Edges) != 72 {
		t.Errorf("%d edges, want 72", len(g.Edges))
	}
	if len(g.Faces) != 96 {
		t.Errorf("%d faces, want 96", len(g.Faces))
	}
}

func Test24CellVerticesOnSphere(t *testing.T) {
	g := polytope.New24Cell(2)
	for i, v := range g.Vertices {
		if math.Abs(v.Magnitude()-2) > 1e-9 {
			t.Errorf("vertex %d magnitude %v, want 2", i, v.Magnitude())
		}
	}
}

func Test24CellEdgeLengths(t *testing.T) {
	const size = 1.5
	g := polytope.New24Cell(size)
	want := 2 * size * size
	for _, e := range g.Edges {
		got := g.Vertices[e[0]].Sub(g.Vertices[e[1]]).MagnitudeSq()
		if math.Abs(got-want) > 0.01*size*size {
			t.Errorf("edge %v length² = %v, want %v", e, got, want)
		}
	}
}

func Test600CellStructure(t *testing.T) {
	g := polytope.New600Cell(1)
	if len(g.Vertices) != 120 {
		t.Fatalf("%d vertices after dedup, want 120", len(g.Vertices))
	}
	if len(g.Edges) != 720 {
		t.Errorf("%d edges, want 720", len(g.Edges))
	}
	if len(g.Faces) != 1200 {
		t.Errorf("%d faces, want 1200", len(g.Faces))
	}
}

func Test600CellEdgeLengths(t *testing.T) {
	g := polytope.New600Cell(1)
	want := 1 / polytope.Phi
	for _, e := range g.Edges {
		got := g.Vertices[e[0]].Sub(g.Vertices[e[1]]).Magnitude()
		if math.Abs(got-want) > 0.01 {
			t.Errorf("edge %v length %v, want %v", e, got, want)
		}
	}
}

func Test600CellVertexDegree(t *testing.T) {
	// Every 600-cell vertex touches exactly 12 edges, the icosahedral
	// vertex figure.
	g := polytope.New600Cell(1)
	degree := make([]int, len(g.Vertices))
	for _, e := range g.Edges {
		degree[e[0]]++
		degree[e[1]]++
	}
	for i, d := range degree {
		if d != 12 {
			t.Errorf("vertex %d degree %d, want 12", i, d)
		}
	}
}

func Test600CellOnSphere(t *testing.T) {
	g := polytope.New600Cell(1)
	for i, v := range g.Vertices {
		if math.Abs(v.Magnitude()-1) > 1e-9 {
			t.Errorf("vertex %d magnitude %v, want 1", i, v.Magnitude())
		}
	}
}
