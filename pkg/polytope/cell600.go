package polytope

import (
	"math"

	"github.com/roffe/polyview/pkg/ndim"
)

// Phi is the golden ratio, which runs all through the 600-cell's
// coordinates.
var Phi = (1 + math.Sqrt(5)) / 2

// evenPermutations4 lists the 12 even permutations of four positions.
var evenPermutations4 = [12][4]int{
	{0, 1, 2, 3}, {0, 2, 3, 1}, {0, 3, 1, 2},
	{1, 0, 3, 2}, {1, 2, 0, 3}, {1, 3, 2, 0},
	{2, 0, 1, 3}, {2, 1, 3, 0}, {2, 3, 0, 1},
	{3, 0, 2, 1}, {3, 1, 0, 2}, {3, 2, 1, 0},
}

// New600Cell builds the 600-cell, fixed to four dimensions: the 24-cell's
// vertex set united with the even permutations of (φ/2, 1/2, 1/(2φ), 0)
// under every sign choice, 120 vertices in all. The union is deduplicated
// on coordinates rounded to 6 decimals before edges are inferred at edge
// length size/φ. By far the heaviest generator: the face pass alone walks
// every triangle of a 720 edge graph.
func New600Cell(size float64) Geometry {
	vertices := cell24Vertices(size)
	base := [4]float64{Phi / 2, 0.5, 1 / (2 * Phi), 0}
	for signs := 0; signs < 8; signs++ {
		signed := base
		for d := 0; d < 3; d++ {
			if signs&(1<<d) != 0 {
				signed[d] = -signed[d]
			}
		}
		for _, p := range evenPermutations4 {
			vertices = append(vertices, ndim.New(
				size*signed[p[0]],
				size*signed[p[1]],
				size*signed[p[2]],
				size*signed[p[3]],
			))
		}
	}
	vertices = dedupVertices(vertices)

	edgeLen := size / Phi
	edges := edgesNearDistance(vertices, edgeLen*edgeLen, 0.01*size*size)
	return Geometry{
		Name:      Cell600.String(),
		Dimension: 4,
		Vertices:  vertices,
		Edges:     edges,
		Faces:     triangleFaces(len(vertices), edges),
	}
}

// dedupVertices drops repeated vertices, comparing coordinates rounded to
// 6 decimal places.
func dedupVertices(vertices []ndim.Vector) []ndim.Vector {
	seen := make(map[[4]int64]bool, len(vertices))
	out := vertices[:0:0]
	for _, v := range vertices {
		var key [4]int64
		for d := 0; d < 4; d++ {
			key[d] = int64(math.Round(v.At(d) * 1e6))
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	return out
}
