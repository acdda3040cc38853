package polytope

import (
	"math"

	"github.com/roffe/polyview/pkg/ndim"
)

// NewSimplex builds the regular dim-simplex: dim+1 mutually equidistant
// vertices. Uses the standard equidistant embedding, then recenters on the
// centroid and rescales so the farthest vertex sits at distance size.
func NewSimplex(dim int, size float64) Geometry {
	if dim < 1 {
		dim = 1
	}
	count := dim + 1
	vertices := make([]ndim.Vector, count)
	for i := 0; i < count; i++ {
		v := make(ndim.Vector, dim)
		for d := 0; d < dim; d++ {
			switch {
			case d == i-1:
				v[d] = math.Sqrt(float64(d+1) / float64(d+2))
			case d >= i:
				v[d] = -1 / math.Sqrt(float64((d+1)*(d+2)))
			}
		}
		vertices[i] = v
	}

	centroid := ndim.Zero(dim)
	for _, v := range vertices {
		centroid = centroid.Add(v)
	}
	centroid = centroid.Scale(1 / float64(count))

	var maxDist float64
	for i, v := range vertices {
		vertices[i] = v.Sub(centroid)
		if m := vertices[i].Magnitude(); m > maxDist {
			maxDist = m
		}
	}
	if maxDist > 0 {
		for i := range vertices {
			vertices[i] = vertices[i].Scale(size / maxDist)
		}
	}

	// Complete graph: every vertex pair is an edge, every triple a face.
	var edges [][2]int
	var faces [][]int
	for i := 0; i < count; i++ {
		for j := i + 1; j < count; j++ {
			edges = append(edges, [2]int{i, j})
			for k := j + 1; k < count; k++ {
				faces = append(faces, []int{i, j, k})
			}
		}
	}

	return Geometry{
		Name:      Simplex.String(),
		Dimension: dim,
		Vertices:  vertices,
		Edges:     edges,
		Faces:     faces,
	}
}
