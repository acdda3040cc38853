package polytope

import (
	"math"

	"github.com/roffe/polyview/pkg/ndim"
)

// NewHypercone builds a cone over a 2-sphere: an apex raised along the
// fourth axis to 1.5·size plus rings spherical layers that widen from
// radius 0 toward size while sinking back to w=0. Each layer is a
// segments×⌊segments/2⌋ spherical grid, so layer r starts at vertex index
// 1+(r-1)·segments·⌊segments/2⌋. The apex connects to every first-layer
// vertex; matching grid indices connect consecutive layers.
func NewHypercone(segments, rings int, size float64) Geometry {
	if segments < 4 {
		segments = 4
	}
	if rings < 1 {
		rings = 1
	}
	height := 1.5 * size
	halfSegs := segments / 2
	ringSize := segments * halfSegs

	vertices := make([]ndim.Vector, 0, 1+rings*ringSize)
	vertices = append(vertices, ndim.New(0, 0, 0, height))
	for r := 1; r <= rings; r++ {
		t := float64(r) / float64(rings)
		radius := size * t
		w := height * (1 - t)
		for j := 0; j < halfSegs; j++ {
			// Midpoint latitude sampling keeps the poles off the grid so
			// no two grid points coincide.
			psi := math.Pi * (float64(j) + 0.5) / float64(halfSegs)
			for i := 0; i < segments; i++ {
				theta := 2 * math.Pi * float64(i) / float64(segments)
				vertices = append(vertices, ndim.New(
					radius*math.Sin(psi)*math.Cos(theta),
					radius*math.Sin(psi)*math.Sin(theta),
					radius*math.Cos(psi),
					w,
				))
			}
		}
	}

	ringStart := func(r int) int {
		return 1 + (r-1)*ringSize
	}
	grid := func(r, i, j int) int {
		return ringStart(r) + j*segments + i%segments
	}

	var edges [][2]int
	var faces [][]int

	for k := 0; k < ringSize; k++ {
		edges = append(edges, [2]int{0, ringStart(1) + k})
	}
	for r := 1; r <= rings; r++ {
		for j := 0; j < halfSegs; j++ {
			for i := 0; i < segments; i++ {
				edges = append(edges, [2]int{grid(r, i, j), grid(r, i+1, j)})
				if j+1 < halfSegs {
					edges = append(edges, [2]int{grid(r, i, j), grid(r, i, j+1)})
				}
				if r+1 <= rings {
					edges = append(edges, [2]int{grid(r, i, j), grid(r+1, i, j)})
					faces = append(faces,
						[]int{grid(r, i, j), grid(r, i+1, j), grid(r+1, i, j)},
						[]int{grid(r+1, i, j), grid(r+1, i+1, j), grid(r, i+1, j)})
				}
			}
		}
	}
	for i := 0; i < segments; i++ {
		faces = append(faces, []int{0, grid(1, i, 0), grid(1, i+1, 0)})
	}

	return Geometry{
		Name:      Hypercone.String(),
		Dimension: 4,
		Vertices:  vertices,
		Edges:     edges,
		Faces:     faces,
	}
}
