// Package polytope generates the vertex, edge and face combinatorics of
// regular and semi-regular polytopes in dimensions two through six.
package polytope

import (
	"fmt"

	"github.com/roffe/polyview/pkg/ndim"
)

// Geometry is one generated polytope: vertices in its native dimension,
// edges as vertex index pairs and optional triangle or quad faces as index
// lists. Generators build it once; downstream code treats it as read-only
// and derives new vertex arrays instead of mutating.
type Geometry struct {
	Name      string
	Dimension int
	Vertices  []ndim.Vector
	Edges     [][2]int
	Faces     [][]int
}

// Transform applies a matrix to every vertex and returns a new Geometry.
// Edges and faces are shared with the receiver since they never change
// under a linear map.
func (g Geometry) Transform(m ndim.Matrix) (Geometry, error) {
	out := g
	out.Vertices = make([]ndim.Vector, len(g.Vertices))
	for i, v := range g.Vertices {
		tv, err := m.Transform(v)
		if err != nil {
			return Geometry{}, fmt.Errorf("transform %s vertex %d: %w", g.Name, i, err)
		}
		out.Vertices[i] = tv
	}
	return out, nil
}

// Center returns the centroid of the vertex set.
func (g Geometry) Center() ndim.Vector {
	c := ndim.Zero(g.Dimension)
	if len(g.Vertices) == 0 {
		return c
	}
	for _, v := range g.Vertices {
		c = c.Add(v)
	}
	return c.Scale(1 / float64(len(g.Vertices)))
}

// Radius returns the largest vertex magnitude.
func (g Geometry) Radius() float64 {
	var r float64
	for _, v := range g.Vertices {
		if m := v.Magnitude(); m > r {
			r = m
		}
	}
	return r
}

// Validate checks the structural invariants every generator must uphold:
// vertex dimensions match, edge and face indices stay in range and no
// unordered edge pair repeats.
func (g Geometry) Validate() error {
	for i, v := range g.Vertices {
		if v.Dimension() != g.Dimension {
			return fmt.Errorf("%s: vertex %d has dimension %d, want %d", g.Name, i, v.Dimension(), g.Dimension)
		}
	}
	seen := make(map[[2]int]bool, len(g.Edges))
	for _, e := range g.Edges {
		if e[0] < 0 || e[0] >= len(g.Vertices) || e[1] < 0 || e[1] >= len(g.Vertices) {
			return fmt.Errorf("%s: edge %v out of range", g.Name, e)
		}
		key := e
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		if seen[key] {
			return fmt.Errorf("%s: duplicate edge %v", g.Name, e)
		}
		seen[key] = true
	}
	for i, f := range g.Faces {
		for _, idx := range f {
			if idx < 0 || idx >= len(g.Vertices) {
				return fmt.Errorf("%s: face %d index %d out of range", g.Name, i, idx)
			}
		}
	}
	return nil
}
