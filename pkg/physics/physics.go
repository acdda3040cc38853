// Package physics runs a small spring system over a polytope's vertices
// so the wireframe can jiggle. Springs follow the edge list with rest
// lengths taken from the generated shape, plus a weak tether pulling each
// particle back to where it was born.
package physics

import (
	"math/rand"

	"github.com/roffe/polyview/pkg/ndim"
	"github.com/roffe/polyview/pkg/polytope"
)

// Config tunes the integrator. Zero values fall back to the defaults.
type Config struct {
	Stiffness float64 // spring constant along edges
	Tether    float64 // pull toward the rest position
	Damping   float64 // velocity retained per step
	Mass      float64
}

const (
	defaultStiffness = 18.0
	defaultTether    = 4.0
	defaultDamping   = 0.88
	defaultMass      = 1.0
)

func (c Config) withDefaults() Config {
	if c.Stiffness == 0 {
		c.Stiffness = defaultStiffness
	}
	if c.Tether == 0 {
		c.Tether = defaultTether
	}
	if c.Damping == 0 {
		c.Damping = defaultDamping
	}
	if c.Mass == 0 {
		c.Mass = defaultMass
	}
	return c
}

type spring struct {
	a, b int
	rest float64
}

// System integrates point masses seeded from a geometry's vertices.
type System struct {
	cfg       Config
	dimension int
	rest      []ndim.Vector
	positions []ndim.Vector
	velocity  []ndim.Vector
	springs   []spring
}

// NewSystem seeds one particle per vertex and one spring per edge, at
// rest.
func NewSystem(g polytope.Geometry, cfg Config) *System {
	s := &System{
		cfg:       cfg.withDefaults(),
		dimension: g.Dimension,
		rest:      make([]ndim.Vector, len(g.Vertices)),
		positions: make([]ndim.Vector, len(g.Vertices)),
		velocity:  make([]ndim.Vector, len(g.Vertices)),
		springs:   make([]spring, 0, len(g.Edges)),
	}
	for i, v := range g.Vertices {
		s.rest[i] = v
		s.positions[i] = v
		s.velocity[i] = ndim.Zero(g.Dimension)
	}
	for _, e := range g.Edges {
		s.springs = append(s.springs, spring{
			a:    e[0],
			b:    e[1],
			rest: g.Vertices[e[0]].Sub(g.Vertices[e[1]]).Magnitude(),
		})
	}
	return s
}

// Positions returns the current particle positions. The slice is reused
// between steps; callers that hold on to it should copy.
func (s *System) Positions() []ndim.Vector {
	return s.positions
}

// Excite kicks every particle with a random velocity of the given
// magnitude, which is what the jiggle toggle does on activation.
func (s *System) Excite(strength float64) {
	for i := range s.velocity {
		kick := make(ndim.Vector, s.dimension)
		for d := range kick {
			kick[d] = (rand.Float64()*2 - 1) * strength
		}
		s.velocity[i] = s.velocity[i].Add(kick)
	}
}

// Step advances the system by dt seconds of damped Euler integration.
func (s *System) Step(dt float64) {
	if dt <= 0 {
		return
	}
	forces := make([]ndim.Vector, len(s.positions))
	for i := range forces {
		// Tether toward the rest position.
		forces[i] = s.rest[i].Sub(s.positions[i]).Scale(s.cfg.Tether)
	}
	for _, sp := range s.springs {
		delta := s.positions[sp.b].Sub(s.positions[sp.a])
		length := delta.Magnitude()
		if length == 0 {
			continue
		}
		f := delta.Normalize().Scale((length - sp.rest) * s.cfg.Stiffness)
		forces[sp.a] = forces[sp.a].Add(f)
		forces[sp.b] = forces[sp.b].Sub(f)
	}
	for i := range s.positions {
		accel := forces[i].Scale(1 / s.cfg.Mass)
		s.velocity[i] = s.velocity[i].Add(accel.Scale(dt)).Scale(s.cfg.Damping)
		s.positions[i] = s.positions[i].Add(s.velocity[i].Scale(dt))
	}
}

// Reset snaps every particle back to rest with zero velocity.
func (s *System) Reset() {
	for i := range s.positions {
		s.positions[i] = s.rest[i]
		s.velocity[i] = ndim.Zero(s.dimension)
	}
}

// Energy sums the kinetic energy, handy for settling checks.
func (s *System) Energy() float64 {
	var e float64
	for _, v := range s.velocity {
		e += 0.5 * s.cfg.Mass * v.MagnitudeSq()
	}
	return e
}
