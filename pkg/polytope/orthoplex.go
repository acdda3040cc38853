package polytope

import "github.com/roffe/polyview/pkg/ndim"

// NewOrthoplex builds the dim-dimensional cross polytope: one +size/-size
// vertex pair per axis, vertex 2d positive and 2d+1 negative. Every vertex
// connects to all others except its own antipode.
func NewOrthoplex(dim int, size float64) Geometry {
	if dim < 1 {
		dim = 1
	}
	count := 2 * dim
	vertices := make([]ndim.Vector, count)
	for d := 0; d < dim; d++ {
		plus := make(ndim.Vector, dim)
		minus := make(ndim.Vector, dim)
		plus[d] = size
		minus[d] = -size
		vertices[2*d] = plus
		vertices[2*d+1] = minus
	}

	var edges [][2]int
	for i := 0; i < count; i++ {
		for j := i + 1; j < count; j++ {
			if i/2 != j/2 {
				edges = append(edges, [2]int{i, j})
			}
		}
	}

	// A triangle for every choice of 3 axes and of a sign on each.
	var faces [][]int
	for a := 0; a < dim; a++ {
		for b := a + 1; b < dim; b++ {
			for c := b + 1; c < dim; c++ {
				for signs := 0; signs < 8; signs++ {
					faces = append(faces, []int{
						2*a + signs&1,
						2*b + signs>>1&1,
						2*c + signs>>2&1,
					})
				}
			}
		}
	}

	return Geometry{
		Name:      Orthoplex.String(),
		Dimension: dim,
		Vertices:  vertices,
		Edges:     edges,
		Faces:     faces,
	}
}
