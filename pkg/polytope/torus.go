package polytope

import (
	"math"

	"github.com/roffe/polyview/pkg/ndim"
)

// NewCliffordTorus builds the flat torus of 4-space: the product of two
// circles in the XY and ZW plane pairs. Each circle gets radius size/√2 so
// every vertex sits at distance size from the origin.
func NewCliffordTorus(major, minor int, size float64) Geometry {
	g := circleProductGrid(major, minor, size/math.Sqrt2)
	g.Name = CliffordTorus.String()
	return g
}

// NewDuocylinder builds the ridge of the duocylinder, the same circle
// product sampled at full radius size on both circles.
func NewDuocylinder(major, minor int, size float64) Geometry {
	g := circleProductGrid(major, minor, size)
	g.Name = Duocylinder.String()
	return g
}

// circleProductGrid samples a major×minor grid over two angles, vertex
// (u,v) at (r·cosθ, r·sinθ, r·cosφ, r·sinφ). The grid wraps on both axes;
// each cell contributes its two leading edges and two triangles, so
// nothing is emitted twice.
func circleProductGrid(major, minor int, r float64) Geometry {
	if major < 3 {
		major = 3
	}
	if minor < 3 {
		minor = 3
	}
	idx := func(u, v int) int {
		return (u%major)*minor + v%minor
	}

	vertices := make([]ndim.Vector, 0, major*minor)
	for u := 0; u < major; u++ {
		theta := 2 * math.Pi * float64(u) / float64(major)
		for v := 0; v < minor; v++ {
			phi := 2 * math.Pi * float64(v) / float64(minor)
			vertices = append(vertices, ndim.New(
				r*math.Cos(theta),
				r*math.Sin(theta),
				r*math.Cos(phi),
				r*math.Sin(phi),
			))
		}
	}

	edges := make([][2]int, 0, 2*major*minor)
	faces := make([][]int, 0, 2*major*minor)
	for u := 0; u < major; u++ {
		for v := 0; v < minor; v++ {
			a := idx(u, v)
			b := idx(u+1, v)
			c := idx(u+1, v+1)
			d := idx(u, v+1)
			edges = append(edges, [2]int{a, b}, [2]int{a, d})
			faces = append(faces, []int{a, b, c}, []int{a, c, d})
		}
	}

	return Geometry{
		Dimension: 4,
		Vertices:  vertices,
		Edges:     edges,
		Faces:     faces,
	}
}
