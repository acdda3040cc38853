package polytope

import (
	"math"

	"github.com/roffe/polyview/pkg/ndim"
)

// NewGrandAntiprism builds a 100-vertex approximation of the grand
// antiprism: five concentric decagons in the XY plane pair (indices 0-49)
// and five more in the ZW plane pair (50-99), layer radii growing linearly
// to size. Decagons are cyclic, adjacent layers connect index to index and
// the two halves are stitched by a fixed index remap. The remap is a
// heuristic, not the true uniform-polytope adjacency, and is kept as is.
func NewGrandAntiprism(size float64) Geometry {
	const layers = 5
	const ringLen = 10
	const half = layers * ringLen

	vertices := make([]ndim.Vector, 2*half)
	for l := 0; l < layers; l++ {
		r := size * float64(l+1) / layers
		for k := 0; k < ringLen; k++ {
			theta := 2 * math.Pi * float64(k) / ringLen
			x, y := r*math.Cos(theta), r*math.Sin(theta)
			vertices[l*ringLen+k] = ndim.New(x, y, 0, 0)
			vertices[half+l*ringLen+k] = ndim.New(0, 0, x, y)
		}
	}

	var edges [][2]int
	for base := 0; base < 2*half; base += half {
		for l := 0; l < layers; l++ {
			for k := 0; k < ringLen; k++ {
				v := base + l*ringLen + k
				edges = append(edges, [2]int{v, base + l*ringLen + (k+1)%ringLen})
				if l+1 < layers {
					edges = append(edges, [2]int{v, v + ringLen})
				}
			}
		}
	}
	for i := 0; i < half; i++ {
		edges = append(edges,
			[2]int{i, half + (3*i)%half},
			[2]int{i, half + (3*i+1)%half})
	}

	return Geometry{
		Name:      GrandAntiprism.String(),
		Dimension: 4,
		Vertices:  vertices,
		Edges:     edges,
	}
}
