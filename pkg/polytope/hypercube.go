package polytope

import "github.com/roffe/polyview/pkg/ndim"

// NewHypercube builds the dim-cube with 2^dim vertices at every ±size
// corner. Vertex i encodes its corner in binary: bit d set means +size on
// axis d. Two corners share an edge when they differ in exactly one bit,
// giving dim·2^(dim-1) edges.
func NewHypercube(dim int, size float64) Geometry {
	if dim < 1 {
		dim = 1
	}
	count := 1 << dim
	vertices := make([]ndim.Vector, count)
	for i := 0; i < count; i++ {
		v := make(ndim.Vector, dim)
		for d := 0; d < dim; d++ {
			if i&(1<<d) != 0 {
				v[d] = size
			} else {
				v[d] = -size
			}
		}
		vertices[i] = v
	}

	var edges [][2]int
	for i := 0; i < count; i++ {
		for j := i + 1; j < count; j++ {
			x := i ^ j
			if x&(x-1) == 0 {
				edges = append(edges, [2]int{i, j})
			}
		}
	}

	// One square per axis pair and per sign assignment of the remaining
	// axes: walk the corners by toggling the pair's bits in ring order.
	var faces [][]int
	for a1 := 0; a1 < dim; a1++ {
		for a2 := a1 + 1; a2 < dim; a2++ {
			b1, b2 := 1<<a1, 1<<a2
			for base := 0; base < count; base++ {
				if base&b1 != 0 || base&b2 != 0 {
					continue
				}
				faces = append(faces, []int{base, base | b1, base | b1 | b2, base | b2})
			}
		}
	}

	return Geometry{
		Name:      Hypercube.String(),
		Dimension: dim,
		Vertices:  vertices,
		Edges:     edges,
		Faces:     faces,
	}
}
