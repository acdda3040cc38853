package physics_test

import (
	"testing"

	"github.com/roffe/polyview/pkg/physics"
	"github.com/roffe/polyview/pkg/polytope"
)

func TestSystemAtRestStaysPut(t *testing.T) {
	g := polytope.NewHypercube(4, 1)
	s := physics.NewSystem(g, physics.Config{})
	for i := 0; i < 10; i++ {
		s.Step(1.0 / 30)
	}
	for i, p := range s.Positions() {
		if !p.Equals(g.Vertices[i]) {
			t.Fatalf("vertex %d drifted from %v to %v with no excitation", i, g.Vertices[i], p)
		}
	}
}

func TestSystemSettlesAfterKick(t *testing.T) {
	g := polytope.NewOrthoplex(4, 1)
	s := physics.NewSystem(g, physics.Config{})
	s.Excite(2)
	if s.Energy() == 0 {
		t.Fatal("excitation added no energy")
	}
	for i := 0; i < 600; i++ {
		s.Step(1.0 / 30)
	}
	if e := s.Energy(); e > 1e-3 {
		t.Errorf("energy %v after settling, want ~0", e)
	}
	for i, p := range s.Positions() {
		if !p.EqualsTolerance(g.Vertices[i], 0.05) {
			t.Errorf("vertex %d settled at %v, want near %v", i, p, g.Vertices[i])
		}
	}
}

func TestSystemReset(t *testing.T) {
	g := polytope.NewSimplex(3, 1)
	s := physics.NewSystem(g, physics.Config{})
	s.Excite(5)
	s.Step(1.0 / 30)
	s.Reset()
	if s.Energy() != 0 {
		t.Errorf("energy %v after reset, want 0", s.Energy())
	}
	for i, p := range s.Positions() {
		if !p.Equals(g.Vertices[i]) {
			t.Errorf("vertex %d at %v after reset, want %v", i, p, g.Vertices[i])
		}
	}
}

func TestStepIgnoresBadDelta(t *testing.T) {
	g := polytope.NewHypercube(3, 1)
	s := physics.NewSystem(g, physics.Config{})
	s.Step(0)
	s.Step(-1)
	for i, p := range s.Positions() {
		if !p.Equals(g.Vertices[i]) {
			t.Fatalf("vertex %d moved on a zero or negative step", i)
		}
	}
}
