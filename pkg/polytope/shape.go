package polytope

import (
	"fmt"
	"strings"
)

// Shape identifies one of the generators. Keeping it a closed enum means a
// switch over shapes is checkable, unlike the stringly-typed dispatch this
// replaced.
type Shape int

const (
	Hypercube Shape = iota
	Simplex
	Orthoplex
	CliffordTorus
	Duocylinder
	Hypercone
	GrandAntiprism
	Cell24
	Cell600
)

// Default tessellation used by New for the sampled shapes.
const (
	DefaultSegments     = 16
	DefaultConeSegments = 8
	DefaultConeRings    = 4
)

func (s Shape) String() string {
	switch s {
	case Hypercube:
		return "Hypercube"
	case Simplex:
		return "Simplex"
	case Orthoplex:
		return "Orthoplex"
	case CliffordTorus:
		return "Clifford torus"
	case Duocylinder:
		return "Duocylinder"
	case Hypercone:
		return "Hypercone"
	case GrandAntiprism:
		return "Grand antiprism"
	case Cell24:
		return "24-cell"
	case Cell600:
		return "600-cell"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Slug returns the stable lowercase identifier used on the command line
// and in saved settings, "Clifford torus" becoming "clifford-torus".
func (s Shape) Slug() string {
	return strings.ReplaceAll(strings.ToLower(s.String()), " ", "-")
}

// FixedDimension reports whether the shape only exists in four dimensions.
func (s Shape) FixedDimension() bool {
	switch s {
	case CliffordTorus, Duocylinder, Hypercone, GrandAntiprism, Cell24, Cell600:
		return true
	}
	return false
}

// Shapes lists every generator in catalog order.
func Shapes() []Shape {
	return []Shape{Hypercube, Simplex, Orthoplex, CliffordTorus, Duocylinder, Hypercone, GrandAntiprism, Cell24, Cell600}
}

// Available lists the shapes that can be generated at a dimension: the
// three combinatorial families everywhere, the six specials only in four
// dimensions.
func Available(dim int) []Shape {
	out := []Shape{Hypercube, Simplex, Orthoplex}
	if dim == 4 {
		out = append(out, CliffordTorus, Duocylinder, Hypercone, GrandAntiprism, Cell24, Cell600)
	}
	return out
}

// ParseShape resolves a slug or display name, case-insensitively.
func ParseShape(name string) (Shape, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, s := range Shapes() {
		if needle == s.Slug() || needle == strings.ToLower(s.String()) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown shape %q", name)
}

// New generates a shape at the given dimension and size using default
// tessellation, normalizing size to 1 when not positive. Shapes fixed at
// four dimensions reject any other dimension.
func New(s Shape, dim int, size float64) (Geometry, error) {
	if size <= 0 {
		size = 1
	}
	if s.FixedDimension() && dim != 4 {
		return Geometry{}, fmt.Errorf("%s only exists in 4 dimensions, not %d", s, dim)
	}
	switch s {
	case Hypercube:
		return NewHypercube(dim, size), nil
	case Simplex:
		return NewSimplex(dim, size), nil
	case Orthoplex:
		return NewOrthoplex(dim, size), nil
	case CliffordTorus:
		return NewCliffordTorus(DefaultSegments, DefaultSegments, size), nil
	case Duocylinder:
		return NewDuocylinder(DefaultSegments, DefaultSegments, size), nil
	case Hypercone:
		return NewHypercone(DefaultConeSegments, DefaultConeRings, size), nil
	case GrandAntiprism:
		return NewGrandAntiprism(size), nil
	case Cell24:
		return New24Cell(size), nil
	case Cell600:
		return New600Cell(size), nil
	}
	return Geometry{}, fmt.Errorf("unknown shape %d", int(s))
}
