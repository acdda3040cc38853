package polytope

import "github.com/roffe/polyview/pkg/ndim"

// New24Cell builds the 24-cell, fixed to four dimensions: the 8 axis
// vertices at ±size plus the 16 half-coordinate vertices, all on the
// radius-size sphere. Adjacency is inferred geometrically, connecting
// pairs whose squared distance matches 2·size².
func New24Cell(size float64) Geometry {
	vertices := cell24Vertices(size)
	edges := edgesNearDistance(vertices, 2*size*size, 0.01*size*size)
	return Geometry{
		Name:      Cell24.String(),
		Dimension: 4,
		Vertices:  vertices,
		Edges:     edges,
		Faces:     triangleFaces(len(vertices), edges),
	}
}

func cell24Vertices(size float64) []ndim.Vector {
	vertices := make([]ndim.Vector, 0, 24)
	for d := 0; d < 4; d++ {
		plus := ndim.Zero(4)
		minus := ndim.Zero(4)
		plus[d] = size
		minus[d] = -size
		vertices = append(vertices, plus, minus)
	}
	half := size / 2
	for signs := 0; signs < 16; signs++ {
		v := make(ndim.Vector, 4)
		for d := 0; d < 4; d++ {
			if signs&(1<<d) != 0 {
				v[d] = half
			} else {
				v[d] = -half
			}
		}
		vertices = append(vertices, v)
	}
	return vertices
}
