package polytope

import (
	"math"

	"github.com/roffe/polyview/pkg/ndim"
)

// edgesNearDistance connects every vertex pair whose squared distance
// falls within tolerance of targetSq. Used by the shapes whose adjacency
// has no closed form but a known uniform edge length.
func edgesNearDistance(vertices []ndim.Vector, targetSq, tolerance float64) [][2]int {
	var edges [][2]int
	for i := 0; i < len(vertices); i++ {
		for j := i + 1; j < len(vertices); j++ {
			distSq := vertices[j].Sub(vertices[i]).MagnitudeSq()
			if math.Abs(distSq-targetSq) <= tolerance {
				edges = append(edges, [2]int{i, j})
			}
		}
	}
	return edges
}

// triangleFaces closes an edge set into triangles: every vertex triple
// that is pairwise connected becomes one face. Edges must be normalized
// low index first, which is what edgesNearDistance produces.
func triangleFaces(count int, edges [][2]int) [][]int {
	adj := make([][]bool, count)
	for i := range adj {
		adj[i] = make([]bool, count)
	}
	for _, e := range edges {
		adj[e[0]][e[1]] = true
		adj[e[1]][e[0]] = true
	}
	var faces [][]int
	for _, e := range edges {
		for k := e[1] + 1; k < count; k++ {
			if adj[e[0]][k] && adj[e[1]][k] {
				faces = append(faces, []int{e[0], e[1], k})
			}
		}
	}
	return faces
}
